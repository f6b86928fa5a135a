package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/kicks/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the kicks app instance.
func Get() *cli.App {
	kicksApp := &cli.App{
		Name: "kicks",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Kicks is a movement counter for the command-line. Log each movement as
		it happens, keep a running tally for the day, and pick up where you
		left off the next time you open it.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Record a movement without opening the interface",
				ArgsUsage: "<category>",
				Flags: []cli.Flag{
					atFlag,
				},
				Action: addAction,
			},
			{
				Name:  "list",
				Usage: "Print the movement log with today's tally",
				Flags: []cli.Flag{
					jsonFlag,
				},
				Action: listAction,
			},
			{
				Name:      "delete",
				Usage:     "Delete a single record by its key",
				ArgsUsage: "<key>",
				Action:    deleteAction,
			},
			{
				Name:   "clear",
				Usage:  "Delete every record and reset the tally",
				Action: clearAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			yesFlag,
			noColorFlag,
			logLevelFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return kicksApp
}
