package config

import (
	"flag"
	"os"

	"github.com/mkalns/samplestore/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   PostgreSQL DSN
//	-m int      database pool ceiling
//	-l string   default translation language
//	-p string   SSM parameter path prefix
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-m", "-l", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.IntVar(&config.DatabaseMaxConns, "m", config.DatabaseMaxConns, "database pool ceiling")
	fs.StringVar(&config.DefaultLanguage, "l", config.DefaultLanguage, "default translation language")
	fs.StringVar(&config.SSMPrefix, "p", config.SSMPrefix, "SSM parameter path prefix")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
