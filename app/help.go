package app

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// section renders a help heading followed by an indented body.
func section(heading, body string) string {
	return fmt.Sprintf("%s\n\t\t%s\n\n", pterm.Yellow(heading), body)
}

func helpText() string {
	commands := fmt.Sprintf(
		"%s\n{{range .Commands}}{{if not .HideHelp}}   %s {{.ArgsUsage}}{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}\n\n",
		pterm.Yellow("COMMANDS"),
		pterm.Green("{{join .Names `, `}}"),
	)

	options := fmt.Sprintf(
		"%s\n{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
		pterm.Yellow("OPTIONS"),
		pterm.Green("-{{$element}}"),
		pterm.Green("--{{.Name}} {{.DefaultText}}"),
	)

	var b strings.Builder

	b.WriteString(section("DESCRIPTION", "{{.Usage}}"))
	b.WriteString(section("USAGE", "{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}"))
	b.WriteString(section("VERSION", "{{.Version}}"))
	b.WriteString(commands)
	b.WriteString(options)
	b.WriteString(section("KEYS", keysHelp()))
	b.WriteString(section("ENVIRONMENTAL VARIABLES", envHelp()))
	b.WriteString(section("FILES", filesHelp()))

	return b.String()
}

func keysHelp() string {
	return `
1-9: record the movement category at that position in the config
e: switch between viewing and editing
up/down, k/j: select a record while editing
x: delete the selected record
c: clear every record (needs at least two)
q: quit`
}

func envHelp() string {
	return `
KICKS_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

KICKS_ENV: set to a name to keep config, data and logs in separate files for that environment.`
}

func filesHelp() string {
	return `
$XDG_CONFIG_HOME/kicks/config.yml: categories and settings
$XDG_DATA_HOME/kicks/kicks.db: the movement log
$XDG_DATA_HOME/kicks/log/kicks.log: rotated application log`
}
