package config

import (
	"os"
	"strconv"
)

// parseEnv overlays Config with environment variables. This is the layer the
// Lambda entry points actually use, since they receive no command line.
//
// Recognized variables:
//
//	DATABASE_DSN        PostgreSQL DSN
//	DATABASE_MAX_CONNS  connection pool ceiling, integer
//	DEFAULT_LANGUAGE    fallback translation language
//	SSM_PREFIX          SSM parameter path prefix
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("DATABASE_MAX_CONNS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			config.DatabaseMaxConns = n
		}
	}
	if v, ok := os.LookupEnv("DEFAULT_LANGUAGE"); ok {
		config.DefaultLanguage = v
	}
	if v, ok := os.LookupEnv("SSM_PREFIX"); ok {
		config.SSMPrefix = v
	}
}
