package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/kicks/internal/models"
)

type keymap struct {
	record []key.Binding
	edit   key.Binding
	up     key.Binding
	down   key.Binding
	remove key.Binding
	clear  key.Binding
	quit   key.Binding
}

func newKeymap(categories []models.Intensity) keymap {
	k := keymap{
		edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		remove: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete"),
		),
		clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear all"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}

	for i, c := range categories {
		n := strconv.Itoa(i + 1)

		k.record = append(k.record, key.NewBinding(
			key.WithKeys(n),
			key.WithHelp(n, string(c)),
		))
	}

	return k
}

func (k keymap) shortHelp() []key.Binding {
	bindings := append([]key.Binding{}, k.record...)

	return append(bindings, k.edit, k.up, k.down, k.remove, k.clear, k.quit)
}
