package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variables recognized by the client. ECG_API_URL selects the
// service address; when unset the local default from LoadDefaults applies.
const (
	envBaseURL      = "ECG_API_URL"
	envDatabasePath = "ECG_DB_PATH"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first, if one exists.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(envDatabasePath); v != "" {
		cfg.DatabasePath = v
	}
}
