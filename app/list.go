package app

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/kicks/internal/display"
	"github.com/ayoisaiah/kicks/internal/editmode"
	"github.com/ayoisaiah/kicks/internal/models"
	"github.com/ayoisaiah/kicks/internal/ui"
	"github.com/ayoisaiah/kicks/tracker"
)

// tableView collects what the controller renders so that one-shot commands
// can print it once the operation is done.
type tableView struct {
	rows   []models.Record
	date   string
	tally  string
	notice string
}

func (v *tableView) AppendRow(r models.Record) {
	v.rows = append(v.rows, r)
}

func (v *tableView) RemoveRow(key string) {
	v.rows = slices.DeleteFunc(v.rows, func(r models.Record) bool {
		return r.Key == key
	})
}

func (v *tableView) ClearRows() {
	v.rows = nil
}

func (v *tableView) SetDateLabel(s string) {
	v.date = s
}

func (v *tableView) SetTallyLabel(s string) {
	v.tally = s
}

func (v *tableView) SetControlVisibility(editmode.Visibility) {}

func (v *tableView) ShowNotice(s string) {
	v.notice = s
}

// Render prints the log as a table followed by the tally and a per-category
// breakdown.
func (v *tableView) Render(w io.Writer, categories []models.Intensity) {
	fmt.Fprintln(w, pterm.Bold.Sprint(v.date))

	if len(v.rows) == 0 {
		fmt.Fprintln(w, v.tally)
		return
	}

	tableBody := make([][]string, 0, len(v.rows)+1)
	tableBody = append(tableBody, []string{"#", "KEY", "TIME", "INTENSITY"})

	for i, r := range v.rows {
		tableBody = append(tableBody, []string{
			fmt.Sprintf("%d", i+1),
			r.Key,
			r.Time,
			ui.Intensity(string(r.Intensity), slices.Index(categories, r.Intensity)),
		})
	}

	ui.PrintTable(tableBody, w)

	fmt.Fprintln(w, v.tally)

	for _, c := range display.Breakdown(v.rows) {
		fmt.Fprintf(w, "  %s: %d\n", c.Intensity, c.Count)
	}
}

// printRecordsJSON writes the current snapshot as indented JSON.
func printRecordsJSON(w io.Writer, state tracker.AppState) error {
	records := state.Records
	if records == nil {
		records = []models.Record{}
	}

	b, err := json.MarshalIndent(models.Snapshot{
		Records: records,
		Date:    state.Display.DateLabel,
		Tally:   state.Display.Tally,
	}, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}
