package commands

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/taskdeck-dev/taskdeck/db"
	"github.com/taskdeck-dev/taskdeck/internal/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()

		if err := db.ConnectDatabase(cfg.DatabaseURL, cfg.SQLitePath); err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		if err := db.MigrateDatabase(); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}

		log.Println("Migration complete")
	},
}
