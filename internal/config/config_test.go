package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "garage.db", c.DatabasePath)
	assert.Equal(t, "export", c.ExportDir)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, "slog", c.LogBackend)
	assert.Equal(t, 30, c.WarningDays)
	assert.Equal(t, 2000, c.WarningKm)
	assert.InDelta(t, 0.8, c.IntervalWarningRatio, 1e-9)
}

func TestThresholds_MirrorsFields(t *testing.T) {
	c := Config{WarningDays: 10, WarningKm: 500, IntervalWarningRatio: 0.5}
	th := c.Thresholds()

	assert.Equal(t, 10, th.WarningDays)
	assert.Equal(t, 500, th.WarningKm)
	assert.InDelta(t, 0.5, th.IntervalWarningRatio, 1e-9)
}

func TestLoadConfig_AppliesDefaultsThenSources(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{"export_dir": "/tmp/backups"})
	os.Args = []string{"garage", "-c", path, "-d", "/data/g.db"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "/data/g.db", cfg.DatabasePath)
	assert.Equal(t, "/tmp/backups", cfg.ExportDir)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 2000, cfg.WarningKm)
}

func TestLoadConfig_InvalidThresholdsPanic(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name string
		args func(t *testing.T) []string
	}{
		{"ratio above one in json", func(t *testing.T) []string {
			return []string{"garage", "-c", writeTempJSON(t, map[string]any{"interval_warning_ratio": 1.5})}
		}},
		{"negative ratio in json", func(t *testing.T) []string {
			return []string{"garage", "-c", writeTempJSON(t, map[string]any{"interval_warning_ratio": -0.2})}
		}},
		{"negative warning days flag", func(t *testing.T) []string {
			return []string{"garage", "-wd=-1"}
		}},
		{"negative warning km flag", func(t *testing.T) []string {
			return []string{"garage", "-wk=-100"}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args(t)
			require.Panics(t, func() { LoadConfig() })
		})
	}
}
