package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabasePath string
	LogLevel     string
}

func Load() (*Config, error) {
	// A missing .env file is fine; OS environment variables still apply.
	_ = godotenv.Load()

	cfg := Config{
		DatabasePath: "savings.db",
		LogLevel:     "info",
	}

	envDatabasePath := os.Getenv("SAVINGS_DB_PATH")
	envLogLevel := os.Getenv("SAVINGS_LOG_LEVEL")

	if len(envDatabasePath) != 0 {
		cfg.DatabasePath = envDatabasePath
	}

	if len(envLogLevel) != 0 {
		cfg.LogLevel = envLogLevel
	}

	return &cfg, nil
}
