package config

import (
	"flag"
	"os"

	"symptomexplorer/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   SQLite database file path
//	-p string   PostgreSQL DSN (takes precedence over -d when set)
//	-f string   dataset CSV path
//
// The args are first filtered to only the flags handled here, so the JSON
// config flags (-c/-config) parsed elsewhere do not collide.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-p", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabasePath, "d", config.DatabasePath, "sqlite database file path")
	fs.StringVar(&config.DatabaseDSN, "p", config.DatabaseDSN, "postgres DSN")
	fs.StringVar(&config.DatasetPath, "f", config.DatasetPath, "dataset CSV path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
