package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/garagebook/internal/flagx"
)

// jsonConfig is the on-disk shape of the configuration file. Pointer fields
// distinguish "absent" from a zero value.
type jsonConfig struct {
	DatabasePath         *string  `json:"database_path"`
	ExportDir            *string  `json:"export_dir"`
	LogLevel             *string  `json:"log_level"`
	LogBackend           *string  `json:"log_backend"`
	WarningDays          *int     `json:"warning_days"`
	WarningKm            *int     `json:"warning_km"`
	IntervalWarningRatio *float64 `json:"interval_warning_ratio"`
}

// parseJSON overlays cfg with the values found in the file named by -c or
// -config. Without such a flag it does nothing. Read or decode failures
// panic: a broken config file is a startup error.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.DatabasePath, jc.DatabasePath)
	overlay(&cfg.ExportDir, jc.ExportDir)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.LogBackend, jc.LogBackend)
	overlay(&cfg.WarningDays, jc.WarningDays)
	overlay(&cfg.WarningKm, jc.WarningKm)
	overlay(&cfg.IntervalWarningRatio, jc.IntervalWarningRatio)
}

func overlay[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
