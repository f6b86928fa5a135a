package config

import (
	"github.com/ayoisaiah/kicks/internal/models"
)

type (
	// Config holds all configuration settings
	Config struct {
		Tracker  TrackerConfig  `mapstructure:"tracker"`
		Settings SettingsConfig `mapstructure:"settings"`
		Display  DisplayConfig  `mapstructure:"display"`
		Log      LogConfig      `mapstructure:"log"`
		System   SystemConfig   `mapstructure:"-"`
	}

	// TrackerConfig holds the categories a movement can be recorded as
	TrackerConfig struct {
		Categories []string `mapstructure:"categories"`
	}

	// SettingsConfig holds behaviour settings
	SettingsConfig struct {
		Confirm bool `mapstructure:"confirm"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
	}

	// LogConfig holds logging settings
	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// SystemConfig holds the resolved file locations
	SystemConfig struct {
		ConfigPath string
		DBPath     string
		LogPath    string
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.1"

// maxCategories is bounded by the number keys available in the TUI.
const maxCategories = 9

// Intensities returns the configured categories.
func (c *Config) Intensities() []models.Intensity {
	result := make([]models.Intensity, len(c.Tracker.Categories))

	for i, v := range c.Tracker.Categories {
		result[i] = models.Intensity(v)
	}

	return result
}

// WithPaths records where the config, database and log files live.
func WithPaths(configPath, dbPath, logPath string) Option {
	return func(c *Config) error {
		c.System = SystemConfig{
			ConfigPath: configPath,
			DBPath:     dbPath,
			LogPath:    logPath,
		}

		return nil
	}
}

// New creates a new Config, applies options in order and validates the
// result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}
