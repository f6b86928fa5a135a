package config

import (
	"strings"

	"github.com/ayoisaiah/kicks/internal/logger"
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateCategories(); err != nil {
		return err
	}

	if _, ok := logger.Levels[strings.ToLower(c.Log.Level)]; !ok {
		return errUnknownLogLevel.Fmt(c.Log.Level)
	}

	return nil
}

func (c *Config) validateCategories() error {
	categories := c.Tracker.Categories

	if len(categories) == 0 {
		return errNoCategories
	}

	if len(categories) > maxCategories {
		return errTooManyCategories.Fmt(maxCategories, len(categories))
	}

	seen := make(map[string]bool, len(categories))

	for _, v := range categories {
		if strings.TrimSpace(v) == "" {
			return errBlankCategory
		}

		if seen[v] {
			return errDuplicateCategory.Fmt(v)
		}

		seen[v] = true
	}

	return nil
}
