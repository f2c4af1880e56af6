package confs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const defaultSQLitePath = "krapi.sqlite"

// LoadConfig loads environment variables from a .env file if present
// and validates essential settings when needed.
func LoadConfig() error {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		// Only log when the file truly doesn't exist; not an error for runtime
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}
	return nil
}

// DBURL returns the Postgres connection string, empty if unset.
func DBURL() string {
	return os.Getenv("DB_URL")
}

// SQLitePath is the local database file used when DB_URL is not set.
func SQLitePath() string {
	if p := os.Getenv("SQLITE_PATH"); p != "" {
		return p
	}
	return defaultSQLitePath
}
