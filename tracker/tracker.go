// Package tracker coordinates the record log, its persisted mirror and the
// view. Every user action goes through a Controller.
package tracker

import (
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/ayoisaiah/kicks/internal/display"
	"github.com/ayoisaiah/kicks/internal/editmode"
	"github.com/ayoisaiah/kicks/internal/models"
	"github.com/ayoisaiah/kicks/internal/persist"
	"github.com/ayoisaiah/kicks/internal/record"
	"github.com/ayoisaiah/kicks/internal/timeutil"
	"github.com/ayoisaiah/kicks/store"
)

// Questions put to the Confirmer and notices sent to the View.
const (
	DeletePrompt  = "Delete this data?"
	ClearPrompt   = "Clear all records?"
	NothingToEdit = "Nothing to edit yet. Record a movement first"
)

// DefaultCategories are used when no categories are configured.
var DefaultCategories = []models.Intensity{models.Gentle, models.Giant}

// AppState is a point-in-time copy of everything the controller owns.
type AppState struct {
	Records []models.Record
	Display display.State
	Mode    editmode.Mode
}

type (
	// Option customises a Controller.
	Option func(*Controller)
)

// WithClock sets the clock used for timestamps, keys and the date label.
func WithClock(clock timeutil.Clock) Option {
	return func(c *Controller) {
		c.clock = clock
	}
}

// WithCategories restricts the accepted intensities.
func WithCategories(categories []models.Intensity) Option {
	return func(c *Controller) {
		if len(categories) > 0 {
			c.categories = slices.Clone(categories)
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// Controller sequences every operation: mutate the record log, recompute
// the display state, update the view, then persist. It is meant to be
// driven from a single goroutine.
type Controller struct {
	clock      timeutil.Clock
	logger     *slog.Logger
	view       View
	confirm    Confirmer
	records    *record.Store
	bridge     *persist.Bridge
	dateLabel  string
	categories []models.Intensity
	edit       editmode.Controller
	pending    bool
}

// New returns a controller persisting into db. The log starts empty; call
// LoadOnStartup to hydrate it.
func New(db store.DB, view View, confirm Confirmer, opts ...Option) *Controller {
	c := &Controller{
		clock:      timeutil.SystemClock{},
		logger:     slog.Default(),
		view:       view,
		confirm:    confirm,
		categories: slices.Clone(DefaultCategories),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.view == nil {
		c.view = NopView{}
	}

	if c.confirm == nil {
		c.confirm = AlwaysConfirm
	}

	c.records = record.New(c.clock, nil)
	c.bridge = persist.New(db, c.logger)
	c.dateLabel = timeutil.DateLabel(c.clock.Now())

	return c
}

// SetView replaces the view. The new view is not brought up to date; call
// LoadOnStartup or Render for that.
func (c *Controller) SetView(v View) {
	c.view = v
}

// SetConfirmer replaces the confirmation gate.
func (c *Controller) SetConfirmer(confirm Confirmer) {
	c.confirm = confirm
}

// Categories returns the accepted intensities in configured order.
func (c *Controller) Categories() []models.Intensity {
	return slices.Clone(c.categories)
}

// RecordMovement logs a new movement of the given intensity.
func (c *Controller) RecordMovement(
	intensity models.Intensity,
) (models.Record, error) {
	return c.RecordMovementAt(intensity, c.clock.Now())
}

// RecordMovementAt logs a movement whose time label reads at. It is appended
// like any other record.
func (c *Controller) RecordMovementAt(
	intensity models.Intensity,
	at time.Time,
) (models.Record, error) {
	if c.pending {
		return models.Record{}, ErrBusy
	}

	if !slices.Contains(c.categories, intensity) {
		return models.Record{}, ErrUnknownIntensity.Fmt(
			intensity,
			c.categoryList(),
		)
	}

	r := c.records.AddAt(intensity, at)

	c.view.AppendRow(r)
	c.refresh()
	c.save()

	c.logger.Info(
		"movement recorded",
		slog.String("key", r.Key),
		slog.String("intensity", string(r.Intensity)),
	)

	return r, nil
}

// DeleteEntry removes the record with key after confirmation. It reports
// whether a record was removed; an unknown key is not an error.
func (c *Controller) DeleteEntry(key string) (bool, error) {
	if c.pending {
		return false, ErrBusy
	}

	if !c.ask(DeletePrompt) {
		return false, nil
	}

	if !c.records.RemoveByKey(key) {
		c.logger.Debug("delete of unknown key ignored", slog.String("key", key))
		return false, nil
	}

	c.view.RemoveRow(key)
	c.refresh()
	c.save()

	c.logger.Info("movement deleted", slog.String("key", key))

	return true, nil
}

// ClearAll wipes the log and everything persisted after confirmation.
func (c *Controller) ClearAll() (bool, error) {
	if c.pending {
		return false, ErrBusy
	}

	if !c.ask(ClearPrompt) {
		return false, nil
	}

	c.records.Clear()
	c.bridge.Reset()
	c.edit.Reset()

	c.view.ClearRows()
	c.refresh()
	c.save()

	c.logger.Info("all movements cleared")

	return true, nil
}

// ToggleEdit switches between viewing and editing. It reports false, and
// shows a notice, when there is nothing to edit.
func (c *Controller) ToggleEdit() (bool, error) {
	if c.pending {
		return false, ErrBusy
	}

	if !c.edit.Toggle(c.records.Size()) {
		c.view.ShowNotice(NothingToEdit)
		return false, nil
	}

	c.view.SetControlVisibility(c.edit.Visibility(c.records.Size()))

	return true, nil
}

// LoadOnStartup hydrates the log from the store and redraws the view. The
// date label always comes from the clock, never from storage.
func (c *Controller) LoadOnStartup() error {
	if c.pending {
		return ErrBusy
	}

	l := c.bridge.Load()
	snap := l.Snapshot()

	c.records.Replace(snap.Records)
	c.edit.Reset()
	c.dateLabel = timeutil.DateLabel(c.clock.Now())

	if l.HasDate && snap.Date != c.dateLabel {
		c.logger.Info(
			"persisted date is stale",
			slog.String("persisted", snap.Date),
			slog.String("today", c.dateLabel),
		)
	}

	if l.HasTally && snap.Tally != c.records.Size() {
		c.logger.Warn(
			"persisted tally does not match records",
			slog.Int("tally", snap.Tally),
			slog.Int("records", c.records.Size()),
		)
	}

	c.Render()

	return nil
}

// Render redraws the whole view from the current state.
func (c *Controller) Render() {
	c.view.ClearRows()

	for _, r := range c.records.All() {
		c.view.AppendRow(r)
	}

	c.view.SetDateLabel(c.dateLabel)
	c.refresh()
}

// Display returns the derived display state.
func (c *Controller) Display() display.State {
	return display.State{
		DateLabel: c.dateLabel,
		Tally:     c.records.Size(),
		Editing:   c.edit.Editing(),
	}
}

// State returns a copy of the controller's state.
func (c *Controller) State() AppState {
	return AppState{
		Records: c.records.All(),
		Display: c.Display(),
		Mode:    c.edit.Mode(),
	}
}

// ask blocks on the confirmer. Operations attempted while it waits are
// rejected with ErrBusy.
func (c *Controller) ask(message string) bool {
	c.pending = true
	defer func() {
		c.pending = false
	}()

	return c.confirm.Confirm(message)
}

// refresh pushes the tally and control visibility for the current size.
func (c *Controller) refresh() {
	size := c.records.Size()

	c.edit.Sync(size)

	c.view.SetTallyLabel(c.Display().TallyLabel())
	c.view.SetControlVisibility(c.edit.Visibility(size))
}

func (c *Controller) save() {
	c.bridge.Save(c.records.All(), c.Display())
}

func (c *Controller) categoryList() string {
	s := make([]string, len(c.categories))

	for i, v := range c.categories {
		s[i] = string(v)
	}

	return strings.Join(s, ", ")
}
