package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/kicks/internal/ui"
)

type styles struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Tally    lipgloss.Style
	Row      lipgloss.Style
	Selected lipgloss.Style
	Hint     lipgloss.Style
	Notice   lipgloss.Style
}

func newStyles() styles {
	p := ui.CurrentPalette()

	return styles{
		Base:     lipgloss.NewStyle().Padding(1, padding),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(p.Text),
		Tally:    lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		Row:      lipgloss.NewStyle().Foreground(p.Text),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(p.Alert),
		Hint:     lipgloss.NewStyle().Foreground(p.Muted),
		Notice:   lipgloss.NewStyle().Italic(true).Foreground(p.Alert),
	}
}

func (m *Model) rowsView() string {
	if len(m.rows) == 0 {
		return m.styles.Hint.Render("No movements recorded yet")
	}

	var s strings.Builder

	for i, r := range m.rows {
		line := fmt.Sprintf("%8s  %s", r.Time, r.Intensity)

		if m.visibility.Delete {
			marker := "  "
			style := m.styles.Row

			if i == m.cursor {
				marker = "✗ "
				style = m.styles.Selected
			}

			line = style.Render(marker + line)
		} else {
			idx := slices.Index(m.categories, r.Intensity)
			line = fmt.Sprintf("  %8s  %s", r.Time, ui.Intensity(string(r.Intensity), idx))
		}

		s.WriteString(line)

		if i < len(m.rows)-1 {
			s.WriteString("\n")
		}
	}

	return s.String()
}

func (m *Model) View() string {
	if m.form != nil {
		return m.styles.Base.Render(m.form.View())
	}

	var s strings.Builder

	s.WriteString(m.styles.Title.Render(m.date))
	s.WriteString("\n")
	s.WriteString(m.styles.Tally.Render(m.tally))

	if m.visibility.Delete {
		s.WriteString(m.styles.Hint.Render("  [editing]"))
	}

	s.WriteString("\n\n")
	s.WriteString(m.rowsView())

	if m.notice != "" {
		s.WriteString("\n\n" + m.styles.Notice.Render(m.notice))
	}

	s.WriteString("\n\n" + m.help.ShortHelpView(m.keys.shortHelp()))

	return m.styles.Base.Render(s.String())
}
