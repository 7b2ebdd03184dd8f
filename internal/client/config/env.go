package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env
// file in the working directory is loaded first when present; already
// exported variables win over the file, per godotenv semantics.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("BACKEND_BASE_URL"); v != "" {
		cfg.BackendBaseURL = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
}
