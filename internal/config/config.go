package config

import (
	"log"
	"os"
)

type Config struct {
	Port        string
	DatabaseURL string
	SQLitePath  string
	Domain      string
}

// Load reads the environment. DATABASE_URL selects Postgres; without it
// the server falls back to a local SQLite file. JWT_SECRET is validated
// separately by the auth package, which is the only consumer.
func Load() Config {
	cfg := Config{
		Port:        os.Getenv("PORT"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  os.Getenv("TASKDECK_DB"),
		Domain:      os.Getenv("DOMAIN"),
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
		log.Println("PORT not set, defaulting to 3000")
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = "taskdeck.db"
	}
	return cfg
}
