// Package report prints the outcome of one-shot commands to the terminal
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/kicks/internal/models"
)

func RecordAdded(r models.Record) {
	pterm.Success.Printfln("%s movement recorded at %s", r.Intensity, r.Time)
}

func RecordDeleted(key string) {
	pterm.Success.Printfln("record %s deleted", key)
}

func Cleared() {
	pterm.Success.Println("all records cleared")
}

func Cancelled() {
	pterm.Info.Println("nothing was changed")
}

func Notice(msg string) {
	pterm.Info.Println(msg)
}

func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(1)
}
