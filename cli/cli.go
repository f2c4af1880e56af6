package cli

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"krapi/confs"
	"krapi/db"
	"krapi/docs"
	"krapi/repositories"
	"krapi/seed"
	"krapi/server"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "krapi",
	Short:        "A small user CRUD API",
	SilenceUsage: true,
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetInt("port")
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

		database, err := connect()
		if err != nil {
			return err
		}
		return server.NewServer(database).Start(port)
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate random data",
	RunE: func(cmd *cobra.Command, args []string) error {
		users, _ := cmd.Flags().GetBool("users")
		n, _ := cmd.Flags().GetInt("len")

		if !users {
			fmt.Println("Nothing to generate")
			fmt.Println("Use --users")
			return nil
		}

		database, err := connect()
		if err != nil {
			return err
		}

		fmt.Printf("Generating %d users\n", n)
		repo := repositories.NewUserPgRepository(database)
		if _, err := seed.GenerateUsers(n, repo); err != nil {
			return err
		}
		fmt.Printf("Generated %d users successfully :)\n", n)
		return nil
	},
}

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show docs",
	RunE: func(cmd *cobra.Command, args []string) error {
		users, _ := cmd.Flags().GetBool("users")
		interactive, _ := cmd.Flags().GetBool("interactive")

		if interactive {
			return docs.Browse()
		}
		docs.Print(users)
		return nil
	},
}

func connect() (db.Database, error) {
	if err := confs.LoadConfig(); err != nil {
		return nil, err
	}
	return db.Connect()
}

func init() {
	startCmd.Flags().IntP("port", "p", 8080, "Port to listen on")

	generateCmd.Flags().IntP("len", "l", 10, "Number of rows to generate")
	generateCmd.Flags().BoolP("users", "u", false, "Generate users")

	docsCmd.Flags().BoolP("users", "u", false, "Show docs for users only")
	docsCmd.Flags().BoolP("interactive", "i", false, "Browse docs interactively")

	rootCmd.AddCommand(startCmd, generateCmd, docsCmd)
}

// Execute runs the CLI. Errors are fatal.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
