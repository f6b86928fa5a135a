package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/kicks/internal/config"
	"github.com/ayoisaiah/kicks/internal/models"
	"github.com/ayoisaiah/kicks/internal/testutil"
)

type TestCase struct {
	Want       *config.Config
	Name       string
	GoldenFile string
	Snapshot   []byte `json:"-"`
}

func (t TestCase) Output() (out []byte, name string) {
	return t.Snapshot, t.GoldenFile
}

// defaultConfig returns a new Config instance with default values.
func defaultConfig() *config.Config {
	return &config.Config{
		Tracker: config.TrackerConfig{
			Categories: []string{"gentle", "GIANT"},
		},
		Settings: config.SettingsConfig{
			Confirm: true,
		},
		Display: config.DisplayConfig{
			DarkTheme: true,
		},
		Log: config.LogConfig{
			Level: "info",
		},
	}
}

func TestViperWriteConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yml")

	tc := TestCase{
		Name:       "write default config to file",
		GoldenFile: "defaults",
		Want:       defaultConfig(),
	}

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	tc.Snapshot, err = os.ReadFile(configPath)
	require.NoError(t, err, "failed to read config")

	testutil.CompareGoldenFile(t, tc)

	assert.Equal(t, tc.Want, cfg)
	assert.Equal(
		t,
		[]models.Intensity{models.Gentle, models.Giant},
		cfg.Intensities(),
	)
}

func TestViperReadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yml")

	testutil.WriteFixture(t, "testdata/modified_config.golden", configPath)

	tc := TestCase{
		Name: "read a modified config file",
		Want: &config.Config{
			Tracker: config.TrackerConfig{
				Categories: []string{"flutter", "roll", "GIANT"},
			},
			Settings: config.SettingsConfig{
				Confirm: false,
			},
			Display: config.DisplayConfig{
				DarkTheme: false,
			},
			Log: config.LogConfig{
				Level: "debug",
			},
		},
	}

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	assert.Equal(t, tc.Want, cfg)
	assert.Contains(t, cfg.Intensities(), models.Intensity("roll"))
	assert.NotContains(t, cfg.Intensities(), models.Gentle)
}

func TestInvalidConfigIsRejected(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yml")

	data := []byte("tracker:\n    categories:\n        - gentle\n        - gentle\n")

	require.NoError(t, os.WriteFile(configPath, data, 0o600))

	_, err := config.New(
		config.WithViperConfig(configPath),
	)
	assert.Error(t, err)
}

func TestSaveCategories(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yml")

	err := config.SaveCategories(configPath, []string{"hiccup", "kick"})
	require.NoError(t, err)

	cfg, err := config.New(
		config.WithViperConfig(configPath),
		config.WithPaths(configPath, "kicks.db", "kicks.log"),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"hiccup", "kick"}, cfg.Tracker.Categories)
	assert.True(t, cfg.Settings.Confirm, "other settings keep their defaults")
	assert.Equal(t, configPath, cfg.System.ConfigPath)
}
