package commands

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/taskdeck-dev/taskdeck/db"
	"github.com/taskdeck-dev/taskdeck/internal/auth"
	"github.com/taskdeck-dev/taskdeck/internal/config"
	"github.com/taskdeck-dev/taskdeck/internal/router"
)

var templateGlob string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()

		if err := auth.InitJWTSecret(); err != nil {
			log.Fatalf("Failed to initialize session secret: %v", err)
		}

		if err := db.ConnectDatabase(cfg.DatabaseURL, cfg.SQLitePath); err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		if err := db.MigrateDatabase(); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}

		r := router.NewRouter(templateGlob)

		log.Printf("Listening on :%s", cfg.Port)

		if err := r.Run(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&templateGlob, "templates", "web/templates/*.html", "glob of HTML templates to load")
}
