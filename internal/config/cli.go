package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	LogLevel string
	Yes      bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Yes:      ctx.Bool("yes"),
			LogLevel: ctx.String("log-level"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.Yes {
		c.Settings.Confirm = false
	}

	if opts.LogLevel != "" {
		c.Log.Level = opts.LogLevel
	}
}
