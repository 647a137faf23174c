package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/garagebook/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Only the flags listed in doc.go are considered; everything else in os.Args
// (including -c/-config) is filtered out with flagx.FilterArgs. Invalid
// values panic.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"d", "e", "l", "b", "wd", "wk"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the SQLite database file")
	fs.StringVar(&cfg.ExportDir, "e", cfg.ExportDir, "directory for CSV and PDF exports")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogBackend, "b", cfg.LogBackend, "log backend (slog, zap)")
	fs.IntVar(&cfg.WarningDays, "wd", cfg.WarningDays, "days before a date deadline that count as due soon")
	fs.IntVar(&cfg.WarningKm, "wk", cfg.WarningKm, "km before a mileage deadline that count as due soon")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
