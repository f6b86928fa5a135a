package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/kicks/tracker"
)

func (m *Model) Init() tea.Cmd {
	return nil
}

// handleForm routes every message to the open confirm form so that no other
// action can interleave with the question.
func (m *Model) handleForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	slog.Debug("confirm form message", slog.String("msg", spew.Sdump(msg)))

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.resolve(m.answer)
		return m, nil
	case huh.StateAborted:
		m.resolve(false)
		return m, nil
	case huh.StateNormal:
	}

	return m, cmd
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	for i, b := range m.keys.record {
		if key.Matches(msg, b) {
			_, err := m.ctrl.RecordMovement(m.categories[i])
			m.report(err)

			m.cursor = len(m.rows) - 1

			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.edit):
		_, err := m.ctrl.ToggleEdit()
		m.report(err)

	case key.Matches(msg, m.keys.up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.remove):
		if len(m.rows) == 0 {
			break
		}

		k := m.rows[m.cursor].Key

		m.ask(tracker.DeletePrompt, func() {
			_, err := m.ctrl.DeleteEntry(k)
			m.report(err)
		})

		if m.form != nil {
			return m, m.form.Init()
		}

	case key.Matches(msg, m.keys.clear):
		m.ask(tracker.ClearPrompt, func() {
			_, err := m.ctrl.ClearAll()
			m.report(err)
		})

		if m.form != nil {
			return m, m.form.Init()
		}
	}

	return m, nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form != nil {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		return m.handleForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width - padding*2 - 4
		if m.width > maxWidth {
			m.width = maxWidth
		}

		m.help.Width = m.width
	}

	return m, nil
}

func (m *Model) report(err error) {
	if err == nil {
		return
	}

	slog.Warn("action failed", slog.Any("error", err))

	m.notice = err.Error()
}
