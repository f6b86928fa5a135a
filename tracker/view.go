package tracker

import (
	"github.com/ayoisaiah/kicks/internal/editmode"
	"github.com/ayoisaiah/kicks/internal/models"
)

// View receives display commands from the controller.
type View interface {
	AppendRow(r models.Record)
	RemoveRow(key string)
	ClearRows()
	SetDateLabel(label string)
	SetTallyLabel(label string)
	SetControlVisibility(v editmode.Visibility)
	ShowNotice(msg string)
}

// Confirmer asks the user a yes/no question and blocks until answered.
// Dismissing the question counts as no.
type Confirmer interface {
	Confirm(message string) bool
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(message string) bool

func (f ConfirmFunc) Confirm(message string) bool {
	return f(message)
}

// AlwaysConfirm approves every question.
var AlwaysConfirm = ConfirmFunc(func(string) bool { return true })

// NopView discards every display command.
type NopView struct{}

func (NopView) AppendRow(models.Record)                  {}
func (NopView) RemoveRow(string)                         {}
func (NopView) ClearRows()                               {}
func (NopView) SetDateLabel(string)                      {}
func (NopView) SetTallyLabel(string)                     {}
func (NopView) SetControlVisibility(editmode.Visibility) {}
func (NopView) ShowNotice(string)                        {}
