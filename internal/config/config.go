package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "github.com/jeromevaldez/applehealthproject/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Input   InputConfig   `yaml:"input" envconfig:"INPUT"`
	Filter  FilterConfig  `yaml:"filter" envconfig:"FILTER"`
	Output  OutputConfig  `yaml:"output" envconfig:"OUTPUT"`
	Chart   ChartConfig   `yaml:"chart" envconfig:"CHART"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// InputConfig locates the Apple Health export document
type InputConfig struct {
	// XMLPath overrides the default data/export/export.xml location
	XMLPath string `yaml:"xml_path" envconfig:"XML_PATH"`
}

// FilterConfig contains the filter/clean stage settings
type FilterConfig struct {
	HeartRateSource string  `yaml:"heart_rate_source" envconfig:"HEART_RATE_SOURCE" default:"Jerome's Apple Watch" validate:"required"`
	CaseInsensitive bool    `yaml:"case_insensitive" envconfig:"CASE_INSENSITIVE" default:"false"`
	CutoffDate      string  `yaml:"cutoff_date" envconfig:"CUTOFF_DATE" default:"2025-07-16" validate:"required,datetime=2006-01-02"`
	OutlierMinutes  float64 `yaml:"outlier_minutes" envconfig:"OUTLIER_MINUTES" default:"500" validate:"gt=0"`
}

// OutputConfig overrides the default report file locations.
// Empty fields fall back to the centralized Paths values.
type OutputConfig struct {
	HeartRateCSV    string `yaml:"heart_rate_csv" envconfig:"HEART_RATE_CSV"`
	WorkoutCSV      string `yaml:"workout_csv" envconfig:"WORKOUT_CSV"`
	LowHREventsCSV  string `yaml:"low_hr_events_csv" envconfig:"LOW_HR_EVENTS_CSV"`
	SummaryWorkbook string `yaml:"summary_workbook" envconfig:"SUMMARY_WORKBOOK"`
	ChartHTML       string `yaml:"chart_html" envconfig:"CHART_HTML"`
}

// Marker is a caller-supplied vertical annotation on the chart time axis
type Marker struct {
	Date  string `yaml:"date" validate:"required,datetime=2006-01-02"`
	Label string `yaml:"label" validate:"required"`
}

// ChartConfig contains visualization settings
type ChartConfig struct {
	// NoBrowser suppresses opening the rendered chart in the default browser
	NoBrowser bool              `yaml:"no_browser" envconfig:"NO_BROWSER" default:"false"`
	Palette   map[string]string `yaml:"palette" envconfig:"PALETTE" validate:"omitempty,dive,hexcolor"`
	Markers   []Marker          `yaml:"markers" ignored:"true" validate:"omitempty,dive"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level       string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	Format      string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output      string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath    string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/app.log"`
	Development bool   `yaml:"development" envconfig:"DEVELOPMENT" default:"false"`
}

// Load loads configuration from environment variables and the optional
// config.yaml next to the executable. Environment variables take precedence.
func Load() (*Config, error) {
	paths, err := GetPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve paths: %w", err)
	}
	return LoadFrom(paths.ConfigFile)
}

// LoadFrom loads configuration using the given config file path.
// A missing file is not an error; env vars and defaults still apply.
func LoadFrom(configFile string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process("HEALTH", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if _, err := os.Stat(configFile); err == nil {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	if cfg.Chart.Palette == nil {
		cfg.Chart.Palette = DefaultPalette
	}
	if len(cfg.Chart.Markers) == 0 {
		// The appointment annotation the original chart carried
		cfg.Chart.Markers = []Marker{{Date: "2025-11-13", Label: "Doctor's Appt"}}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence)
func mergeConfigs(fileConfig, envConfig Config) Config {
	if envConfig.Input.XMLPath == "" {
		envConfig.Input.XMLPath = fileConfig.Input.XMLPath
	}

	if os.Getenv("HEALTH_FILTER_HEART_RATE_SOURCE") == "" && fileConfig.Filter.HeartRateSource != "" {
		envConfig.Filter.HeartRateSource = fileConfig.Filter.HeartRateSource
	}
	if os.Getenv("HEALTH_FILTER_CUTOFF_DATE") == "" && fileConfig.Filter.CutoffDate != "" {
		envConfig.Filter.CutoffDate = fileConfig.Filter.CutoffDate
	}
	if os.Getenv("HEALTH_FILTER_OUTLIER_MINUTES") == "" && fileConfig.Filter.OutlierMinutes != 0 {
		envConfig.Filter.OutlierMinutes = fileConfig.Filter.OutlierMinutes
	}
	if os.Getenv("HEALTH_FILTER_CASE_INSENSITIVE") == "" {
		envConfig.Filter.CaseInsensitive = envConfig.Filter.CaseInsensitive || fileConfig.Filter.CaseInsensitive
	}

	if envConfig.Output.HeartRateCSV == "" {
		envConfig.Output.HeartRateCSV = fileConfig.Output.HeartRateCSV
	}
	if envConfig.Output.WorkoutCSV == "" {
		envConfig.Output.WorkoutCSV = fileConfig.Output.WorkoutCSV
	}
	if envConfig.Output.LowHREventsCSV == "" {
		envConfig.Output.LowHREventsCSV = fileConfig.Output.LowHREventsCSV
	}
	if envConfig.Output.SummaryWorkbook == "" {
		envConfig.Output.SummaryWorkbook = fileConfig.Output.SummaryWorkbook
	}
	if envConfig.Output.ChartHTML == "" {
		envConfig.Output.ChartHTML = fileConfig.Output.ChartHTML
	}

	if len(envConfig.Chart.Palette) == 0 {
		envConfig.Chart.Palette = fileConfig.Chart.Palette
	}
	envConfig.Chart.Markers = fileConfig.Chart.Markers
	envConfig.Chart.NoBrowser = envConfig.Chart.NoBrowser || fileConfig.Chart.NoBrowser

	if os.Getenv("HEALTH_LOGGING_LEVEL") == "" && fileConfig.Logging.Level != "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if os.Getenv("HEALTH_LOGGING_OUTPUT") == "" && fileConfig.Logging.Output != "" {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	if os.Getenv("HEALTH_LOGGING_FILE_PATH") == "" && fileConfig.Logging.FilePath != "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}

	return envConfig
}

// validate validates the configuration using struct tags
func (c *Config) validate() error {
	if err := validator.New().Struct(c); err != nil {
		return apperrors.NewValidationError("config validation failed", err)
	}
	return nil
}

// Cutoff returns the recency cutoff as a time value.
// Records with timestamps at or after the cutoff are retained.
func (c *Config) Cutoff() (time.Time, error) {
	t, err := time.Parse("2006-01-02", c.Filter.CutoffDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid cutoff date %q: %w", c.Filter.CutoffDate, err)
	}
	return t, nil
}

// ResolveOutputs fills empty output paths from the centralized path set
func (c *Config) ResolveOutputs(paths *Paths) {
	if c.Input.XMLPath == "" {
		c.Input.XMLPath = paths.ExportXML
	}
	if c.Output.HeartRateCSV == "" {
		c.Output.HeartRateCSV = paths.HeartRateCSV
	}
	if c.Output.WorkoutCSV == "" {
		c.Output.WorkoutCSV = paths.WorkoutCSV
	}
	if c.Output.LowHREventsCSV == "" {
		c.Output.LowHREventsCSV = paths.LowHREventsCSV
	}
	if c.Output.SummaryWorkbook == "" {
		c.Output.SummaryWorkbook = paths.SummaryWorkbook
	}
	if c.Output.ChartHTML == "" {
		c.Output.ChartHTML = paths.ChartHTML
	}
}
