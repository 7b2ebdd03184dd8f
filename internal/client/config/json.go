package config

import (
	"encoding/json"
	"os"

	"github.com/vimarshsub/schoolstatus-cli/internal/flagx"
	"github.com/vimarshsub/schoolstatus-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It
// relies on timex.Duration so the file can spell the timeout either as
// a string like "30s" or as integer nanoseconds.
type JsonConfig struct {
	BackendBaseURL string         `json:"backend_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	LogLevel       string         `json:"log_level"`
	LogFile        string         `json:"log_file"`
}

// parseJson overlays Config with values loaded from the JSON file
// named by the -c/-config flag. Absent flag means no JSON source.
// Fields missing from the file keep their earlier values. Panics on
// read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BackendBaseURL != "" {
		cfg.BackendBaseURL = jc.BackendBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogFile != "" {
		cfg.LogFile = jc.LogFile
	}
}
