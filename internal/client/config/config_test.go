package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:5001", c.BackendBaseURL)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "", c.LogFile)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:5001", cfg.BackendBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "https://proxy.example.com")
	t.Setenv("REQUEST_TIMEOUT", "10s")
	t.Setenv("LOG_LEVEL", "debug")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "https://proxy.example.com", c.BackendBaseURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestParseEnv_IgnoresInvalidTimeout(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "soon")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, 30*time.Second, c.RequestTimeout)
}
