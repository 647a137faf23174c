// Package config loads runtime configuration for the garagebook CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJSON) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path of the SQLite database file
//	-e string   directory for CSV and PDF exports
//	-l string   log level (debug, info, warn, error)
//	-b string   log backend (slog, zap)
//	-wd int     days before a date deadline that count as "due soon"
//	-wk int     km before a mileage deadline that count as "due soon"
//
// # JSON schema
//
//	{
//	  "database_path": "garage.db",
//	  "export_dir": "export",
//	  "log_level": "warn",
//	  "log_backend": "slog",
//	  "warning_days": 30,
//	  "warning_km": 2000,
//	  "interval_warning_ratio": 0.8
//	}
//
// Keys missing from the file keep their previous value. Negative warning
// windows or a ratio outside [0, 1] stop the program at startup.
package config
