package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJsonConfig_Unmarshal(t *testing.T) {
	data := []byte(`{
		"backend_base_url": "https://proxy.example.com",
		"request_timeout": "15s",
		"log_level": "warn",
		"log_file": "/var/log/cli.log"
	}`)

	var jc JsonConfig
	require.NoError(t, json.Unmarshal(data, &jc))

	assert.Equal(t, "https://proxy.example.com", jc.BackendBaseURL)
	assert.Equal(t, 15*time.Second, jc.RequestTimeout.Duration)
	assert.Equal(t, "warn", jc.LogLevel)
	assert.Equal(t, "/var/log/cli.log", jc.LogFile)
}

func TestJsonConfig_PartialFileKeepsDefaults(t *testing.T) {
	var jc JsonConfig
	require.NoError(t, json.Unmarshal([]byte(`{"log_level": "error"}`), &jc))

	var c Config
	c.LoadDefaults()
	if jc.BackendBaseURL != "" {
		c.BackendBaseURL = jc.BackendBaseURL
	}
	if jc.LogLevel != "" {
		c.LogLevel = jc.LogLevel
	}

	assert.Equal(t, "http://127.0.0.1:5001", c.BackendBaseURL)
	assert.Equal(t, "error", c.LogLevel)
}
