// Package tui is the interactive terminal view of the movement log
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/kicks/internal/editmode"
	"github.com/ayoisaiah/kicks/internal/models"
	"github.com/ayoisaiah/kicks/tracker"
)

const (
	padding  = 2
	maxWidth = 60
)

// Model is a bubbletea model that also serves as the tracker's View. The
// controller pushes display commands into it while Update runs, so every
// operation happens on the bubbletea event loop.
type Model struct {
	ctrl       *tracker.Controller
	form       *huh.Form
	pending    func()
	date       string
	tally      string
	notice     string
	rows       []models.Record
	categories []models.Intensity
	keys       keymap
	help       help.Model
	styles     styles
	visibility editmode.Visibility
	cursor     int
	width      int
	confirm    bool
	answer     bool
}

// New wires a model to ctrl and loads the persisted log. When confirm is
// false, deletions and clears are not questioned.
func New(ctrl *tracker.Controller, confirm bool) (*Model, error) {
	m := &Model{
		ctrl:       ctrl,
		categories: ctrl.Categories(),
		confirm:    confirm,
		help:       help.New(),
		styles:     newStyles(),
		width:      maxWidth,
	}

	m.keys = newKeymap(m.categories)

	ctrl.SetView(m)
	ctrl.SetConfirmer(tracker.ConfirmFunc(m.answered))

	err := ctrl.LoadOnStartup()
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Model) AppendRow(r models.Record) {
	m.rows = append(m.rows, r)
}

func (m *Model) RemoveRow(key string) {
	for i := range m.rows {
		if m.rows[i].Key == key {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			break
		}
	}

	m.clampCursor()
}

func (m *Model) ClearRows() {
	m.rows = nil
	m.cursor = 0
}

func (m *Model) SetDateLabel(label string) {
	m.date = label
}

func (m *Model) SetTallyLabel(label string) {
	m.tally = label
}

func (m *Model) SetControlVisibility(v editmode.Visibility) {
	m.visibility = v

	for i := range m.keys.record {
		m.keys.record[i].SetEnabled(v.Creation)
	}

	m.keys.remove.SetEnabled(v.Delete)
	m.keys.up.SetEnabled(v.Delete)
	m.keys.down.SetEnabled(v.Delete)
	m.keys.clear.SetEnabled(v.ClearAll)
}

func (m *Model) ShowNotice(msg string) {
	m.notice = msg
}

// answered is the confirmer handed to the controller. The question itself
// has already been put to the user by the confirm form.
func (m *Model) answered(string) bool {
	return m.answer
}

// ask runs action once the user has answered prompt. Without confirmation
// the action runs immediately.
func (m *Model) ask(prompt string, action func()) {
	if !m.confirm {
		m.answer = true
		action()

		return
	}

	m.pending = action
	m.answer = false

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(prompt).
				Affirmative("Yes").
				Negative("No").
				Value(&m.answer),
		),
	).WithShowHelp(false)
}

// resolve finishes a pending confirmation. A dismissed form counts as no,
// and the pending action still runs so the controller sees the refusal.
func (m *Model) resolve(answer bool) {
	action := m.pending

	m.form = nil
	m.pending = nil
	m.answer = answer

	if action != nil {
		action()
	}
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}

	if m.cursor < 0 {
		m.cursor = 0
	}
}
