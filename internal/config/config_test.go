package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/jeromevaldez/applehealthproject/internal/errors"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "Jerome's Apple Watch", cfg.Filter.HeartRateSource)
	assert.False(t, cfg.Filter.CaseInsensitive)
	assert.Equal(t, "2025-07-16", cfg.Filter.CutoffDate)
	assert.Equal(t, 500.0, cfg.Filter.OutlierMinutes)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Output)
	assert.False(t, cfg.Chart.NoBrowser)
	assert.Equal(t, DefaultPalette, cfg.Chart.Palette)

	require.Len(t, cfg.Chart.Markers, 1)
	assert.Equal(t, "2025-11-13", cfg.Chart.Markers[0].Date)
	assert.Equal(t, "Doctor's Appt", cfg.Chart.Markers[0].Label)
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	t.Setenv("HEALTH_FILTER_HEART_RATE_SOURCE", "Apple Watch Ultra")
	t.Setenv("HEALTH_FILTER_CUTOFF_DATE", "2025-01-01")
	t.Setenv("HEALTH_FILTER_OUTLIER_MINUTES", "300")
	t.Setenv("HEALTH_LOGGING_LEVEL", "debug")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "Apple Watch Ultra", cfg.Filter.HeartRateSource)
	assert.Equal(t, "2025-01-01", cfg.Filter.CutoffDate)
	assert.Equal(t, 300.0, cfg.Filter.OutlierMinutes)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFrom_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")

	content := `
filter:
  heart_rate_source: "Watch A"
  cutoff_date: "2025-03-01"
  outlier_minutes: 250
chart:
  no_browser: true
  markers:
    - date: "2025-09-01"
      label: "Checkup"
    - date: "2025-10-15"
      label: "Medication change"
logging:
  level: warn
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))

	cfg, err := LoadFrom(configFile)
	require.NoError(t, err)

	assert.Equal(t, "Watch A", cfg.Filter.HeartRateSource)
	assert.Equal(t, "2025-03-01", cfg.Filter.CutoffDate)
	assert.Equal(t, 250.0, cfg.Filter.OutlierMinutes)
	assert.True(t, cfg.Chart.NoBrowser)
	assert.Equal(t, "warn", cfg.Logging.Level)

	require.Len(t, cfg.Chart.Markers, 2)
	assert.Equal(t, "Checkup", cfg.Chart.Markers[0].Label)
}

func TestLoadFrom_EnvBeatsFile(t *testing.T) {
	t.Setenv("HEALTH_FILTER_CUTOFF_DATE", "2025-06-01")

	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("filter:\n  cutoff_date: \"2025-02-01\"\n"), 0644))

	cfg, err := LoadFrom(configFile)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", cfg.Filter.CutoffDate)
}

func TestLoadFrom_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad cutoff date", "filter:\n  cutoff_date: \"not-a-date\"\n"},
		{"negative outlier threshold", "filter:\n  outlier_minutes: -10\n"},
		{"bad marker date", "chart:\n  markers:\n    - date: \"someday\"\n      label: \"x\"\n"},
		{"bad palette color", "chart:\n  palette:\n    Cycling: \"blue-ish\"\n"},
		{"bad log level", "logging:\n  level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configFile := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(configFile, []byte(tt.content), 0644))

			_, err := LoadFrom(configFile)
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))
		})
	}
}

func TestConfig_Cutoff(t *testing.T) {
	cfg := &Config{Filter: FilterConfig{CutoffDate: "2025-07-16"}}

	cutoff, err := cfg.Cutoff()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 16, 0, 0, 0, 0, time.UTC), cutoff)

	cfg.Filter.CutoffDate = "16/07/2025"
	_, err = cfg.Cutoff()
	assert.Error(t, err)
}

func TestConfig_ResolveOutputs(t *testing.T) {
	paths := PathsFrom("/base")
	cfg := &Config{Output: OutputConfig{WorkoutCSV: "/custom/workouts.csv"}}

	cfg.ResolveOutputs(paths)

	assert.Equal(t, paths.ExportXML, cfg.Input.XMLPath)
	assert.Equal(t, paths.HeartRateCSV, cfg.Output.HeartRateCSV)
	assert.Equal(t, "/custom/workouts.csv", cfg.Output.WorkoutCSV)
	assert.Equal(t, paths.ChartHTML, cfg.Output.ChartHTML)
}
