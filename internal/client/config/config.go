// Package config loads runtime configuration for the CLI.
//
// Sources & precedence:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally seeded from a .env file.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override everything.
package config

import "time"

// Config holds runtime settings for the announcements CLI.
type Config struct {
	// BackendBaseURL is the base URL of the proxy exposing the
	// login+fetch and document-probe endpoints.
	BackendBaseURL string

	// RequestTimeout bounds each remote call so a hung backend cannot
	// leave the session busy forever.
	RequestTimeout time.Duration

	LogLevel string
	LogFile  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BackendBaseURL = "http://127.0.0.1:5001"
	c.RequestTimeout = 30 * time.Second
	c.LogLevel = "info"
	c.LogFile = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays
// values from the environment, JSON (if present), and command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
