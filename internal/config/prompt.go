package config

import (
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
██╗  ██╗██╗ ██████╗██╗  ██╗███████╗
██║ ██╔╝██║██╔════╝██║ ██╔╝██╔════╝
█████╔╝ ██║██║     █████╔╝ ███████╗
██╔═██╗ ██║██║     ██╔═██╗ ╚════██║
██║  ██╗██║╚██████╗██║  ██╗███████║
╚═╝  ╚═╝╚═╝ ╚═════╝╚═╝  ╚═╝╚══════╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Categories string
}

// WithPromptConfig returns an Option that asks for the categories to track
// the first time kicks runs. It does nothing once a config file exists.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return err
		}

		categories := splitAndTrim(opts.Categories)
		if len(categories) == 0 {
			return nil
		}

		return SaveCategories(configPath, categories)
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		Categories: "gentle, GIANT",
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompt below to configure kicks for the first time.
Press ENTER to accept the defaults.
Edit the config file with 'kicks edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Movement categories").
				Description("Comma-separated, up to 9").
				Value(&opts.Categories),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, err
	}

	return opts, nil
}

// splitAndTrim splits a comma-separated string and drops empty parts.
func splitAndTrim(s string) []string {
	var result []string

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}

	return result
}
