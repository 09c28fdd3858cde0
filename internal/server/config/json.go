package config

import (
	"encoding/json"
	"os"

	"github.com/mkalns/samplestore/internal/flagx"
)

// jsonConfig is the DTO used only for reading JSON configuration files.
// After unmarshalling, its fields are copied into the runtime Config.
type jsonConfig struct {
	DatabaseDSN      *string `json:"database_dsn"`
	DatabaseMaxConns *int    `json:"database_max_conns"`
	DefaultLanguage  *string `json:"default_language"`
	SSMPrefix        *string `json:"ssm_prefix"`
}

// parseJSON loads configuration values from a JSON file into the provided
// Config. The file path comes from the -c or -config command-line flags;
// when neither is set no file is loaded. Absent JSON keys leave the
// corresponding Config fields untouched. An unreadable or malformed file
// panics, since running with half-applied configuration is worse than not
// starting.
func parseJSON(config *Config) {
	jsonConfigFile := flagx.JSONConfigFlag()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &jsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.DatabaseMaxConns != nil {
		config.DatabaseMaxConns = *c.DatabaseMaxConns
	}
	if c.DefaultLanguage != nil {
		config.DefaultLanguage = *c.DefaultLanguage
	}
	if c.SSMPrefix != nil {
		config.SSMPrefix = *c.SSMPrefix
	}
}
