package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcal/config"
	"github.com/katalvlaran/lvcal/daycount"
	"github.com/katalvlaran/lvcal/timeunit"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lvcal.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, daycount.TD7, cfg.Clustering())
	assert.Equal(t, timeunit.Monthly, cfg.Unit())
}

func TestLoad_Layers(t *testing.T) {
	path := writeFile(t, `
logging:
  level: debug
  format: text
cache:
  max_entries: 8
regressors:
  clustering: TD3
  unit: P3M
holidays:
  calendars: [fr.yaml, de.yaml]
  providers: [us-federal]
`)
	t.Setenv("LVCAL_LOGGING_LEVEL", "warn")
	t.Setenv("LVCAL_CACHE_ENABLED", "false")
	t.Setenv("LVCAL_HOLIDAYS_MEAN_CORRECTION", "false")
	t.Setenv("LVCAL_METRICS_EXPORTER", "prometheus")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level, "environment wins over file")
	assert.Equal(t, "text", cfg.Logging.Format, "file wins over default")
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 8, cfg.Cache.MaxEntries)
	assert.Equal(t, 4096, cfg.Cache.MaxRows)
	assert.Equal(t, daycount.TD3, cfg.Clustering())
	assert.Equal(t, timeunit.Quarterly, cfg.Unit())
	assert.True(t, cfg.Regressors.Contrast)
	assert.Equal(t, []string{"fr.yaml", "de.yaml"}, cfg.Holidays.Calendars)
	assert.Equal(t, []string{"us-federal"}, cfg.Holidays.Providers)
	assert.False(t, cfg.Holidays.MeanCorrection)
	assert.Equal(t, "prometheus", cfg.Metrics.Exporter)
}

func TestLoad_EnvList(t *testing.T) {
	t.Setenv("LVCAL_HOLIDAYS_CALENDARS", "a.yaml,b.yaml")
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.yaml", "b.yaml"}, cfg.Holidays.Calendars)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]struct {
		file string
		env  map[string]string
	}{
		"level":      {env: map[string]string{"LVCAL_LOGGING_LEVEL": "loud"}},
		"format":     {file: "logging: {format: xml}"},
		"clustering": {file: "regressors: {clustering: TD5}"},
		"unit":       {env: map[string]string{"LVCAL_REGRESSORS_UNIT": "monthly"}},
		"provider":   {file: "holidays: {providers: [mars]}"},
		"rows":       {env: map[string]string{"LVCAL_CACHE_MAX_ROWS": "-1"}},
		"exporter":   {file: "metrics: {exporter: statsd}"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			path := ""
			if tc.file != "" {
				path = writeFile(t, tc.file)
			}
			_, err := config.Load(path)
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "cache: {unknown: 1}"))
	require.Error(t, err)

	t.Setenv("LVCAL_CACHE_MAX_ENTRIES", "many")
	_, err = config.Load("")
	require.Error(t, err)
}
