package config

import "github.com/dmitrijs2005/garagebook/internal/deadline"

// Config holds runtime settings for the garagebook CLI.
type Config struct {
	// DatabasePath is the SQLite file holding the garage snapshot.
	DatabasePath string
	// ExportDir receives CSV and PDF exports.
	ExportDir string

	LogLevel   string
	LogBackend string

	// Deadline thresholds, see deadline.Thresholds.
	WarningDays          int
	WarningKm            int
	IntervalWarningRatio float64
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "garage.db"
	c.ExportDir = "export"
	c.LogLevel = "warn"
	c.LogBackend = "slog"

	th := deadline.DefaultThresholds()
	c.WarningDays = th.WarningDays
	c.WarningKm = th.WarningKm
	c.IntervalWarningRatio = th.IntervalWarningRatio
}

// Thresholds returns the deadline thresholds described by c.
func (c *Config) Thresholds() deadline.Thresholds {
	return deadline.Thresholds{
		WarningDays:          c.WarningDays,
		WarningKm:            c.WarningKm,
		IntervalWarningRatio: c.IntervalWarningRatio,
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones. Thresholds that fail validation panic.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	if err := cfg.Thresholds().Validate(); err != nil {
		panic(err)
	}
	return cfg
}
