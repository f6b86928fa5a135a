package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Cyan(a any) string {
	if DarkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

func Magenta(a any) string {
	if DarkTheme {
		return pterm.LightMagenta(a)
	}

	return pterm.Magenta(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

// Intensity colours an intensity label by its position in the configured
// category list so the same category always reads the same way.
func Intensity(label string, index int) string {
	palette := []func(any) string{Cyan, Magenta, Green, Red}

	if index < 0 {
		return label
	}

	return palette[index%len(palette)](label)
}

// Palette holds the lipgloss colours used by the terminal interface.
type Palette struct {
	Accent lipgloss.Color
	Muted  lipgloss.Color
	Alert  lipgloss.Color
	Text   lipgloss.Color
}

// CurrentPalette returns the palette for the active theme.
func CurrentPalette() Palette {
	if DarkTheme {
		return Palette{
			Accent: lipgloss.Color("#B0DB43"),
			Muted:  lipgloss.Color("#7D7D7D"),
			Alert:  lipgloss.Color("#FF6B6B"),
			Text:   lipgloss.Color("#F5F5F5"),
		}
	}

	return Palette{
		Accent: lipgloss.Color("#2E7D32"),
		Muted:  lipgloss.Color("#616161"),
		Alert:  lipgloss.Color("#C62828"),
		Text:   lipgloss.Color("#212121"),
	}
}
