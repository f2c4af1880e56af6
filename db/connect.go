package db

import (
	"fmt"
	"log/slog"
	"strings"

	"krapi/confs"
	"krapi/entities"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database, configures the connection pool and runs
// migrations before returning. When DB_URL is set it points at a
// Postgres server; otherwise a local sqlite file is used, which is the
// default for development.
func Connect() (Database, error) {
	var dialector gorm.Dialector

	if dbURL := confs.DBURL(); dbURL != "" {
		if !strings.Contains(dbURL, "sslmode=") {
			if strings.Contains(dbURL, "?") {
				dbURL += "&sslmode=prefer"
			} else {
				dbURL += "?sslmode=prefer"
			}
		}
		slog.Info("connecting to postgres", "source", "DB_URL")
		dialector = postgres.Open(dbURL)
	} else {
		path := confs.SQLitePath()
		slog.Info("connecting to sqlite", "path", path)
		dialector = sqlite.Open(path)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:      logger.Default.LogMode(logger.Warn),
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// One shared pool for every handler; each request borrows a
	// connection for the duration of its queries and returns it.
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(0)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return &GormDatabase{DB: db}, nil
}

// Migrate applies pending schema changes. It runs at startup, before
// the server starts accepting traffic.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
