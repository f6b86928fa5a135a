// Package persist mirrors the record log and display state into a key/value
// store and reads it back on startup.
package persist

import (
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/ayoisaiah/kicks/internal/display"
	"github.com/ayoisaiah/kicks/internal/models"
	"github.com/ayoisaiah/kicks/store"
)

// Keys under which the snapshot is stored.
const (
	KeyRecords = "baby-counter"
	KeyDate    = "date"
	KeyTally   = "tally"
)

// Loaded is whatever subset of the snapshot could be read back. Each field
// is independent: a missing or malformed value only clears its own flag.
type Loaded struct {
	Date       string
	Records    []models.Record
	Tally      int
	HasRecords bool
	HasDate    bool
	HasTally   bool
}

// Empty reports whether nothing was persisted.
func (l Loaded) Empty() bool {
	return !l.HasRecords && !l.HasDate && !l.HasTally
}

// Snapshot returns the loaded values in their persisted shape.
func (l Loaded) Snapshot() models.Snapshot {
	return models.Snapshot{
		Records: l.Records,
		Date:    l.Date,
		Tally:   l.Tally,
	}
}

// Bridge reads and writes snapshots. Store failures are logged and absorbed
// so that the tracker keeps working from memory.
type Bridge struct {
	db     store.DB
	logger *slog.Logger
}

// New returns a bridge over db. A nil logger selects slog.Default.
func New(db store.DB, logger *slog.Logger) *Bridge {
	if logger == nil {
		logger = slog.Default()
	}

	return &Bridge{
		db:     db,
		logger: logger,
	}
}

// Save writes the full snapshot. It reports whether every key was written.
func (b *Bridge) Save(records []models.Record, state display.State) bool {
	if records == nil {
		records = []models.Record{}
	}

	recordBytes, err := json.Marshal(records)
	if err != nil {
		b.logger.Error("encoding records failed", slog.Any("error", err))
		return false
	}

	values := []struct {
		key   string
		value []byte
	}{
		{KeyRecords, recordBytes},
		{KeyDate, []byte(state.DateLabel)},
		{KeyTally, []byte(strconv.Itoa(state.Tally))},
	}

	ok := true

	for _, v := range values {
		err = b.db.Set(v.key, v.value)
		if err != nil {
			b.logger.Warn(
				"persisting snapshot failed",
				slog.String("key", v.key),
				slog.Any("error", err),
			)

			ok = false
		}
	}

	b.logger.Debug(
		"snapshot saved",
		slog.Int("tally", state.Tally),
		slog.String("date", state.DateLabel),
	)

	return ok
}

// Load reads back every key that is present and well formed.
func (b *Bridge) Load() Loaded {
	var l Loaded

	if v := b.get(KeyRecords); v != nil {
		var records []models.Record

		err := json.Unmarshal(v, &records)
		if err != nil {
			b.logger.Warn("ignoring malformed records", slog.Any("error", err))
		} else {
			l.Records = records
			l.HasRecords = true
		}
	}

	if v := b.get(KeyDate); v != nil {
		l.Date = string(v)
		l.HasDate = true
	}

	if v := b.get(KeyTally); v != nil {
		n, err := strconv.Atoi(string(v))
		if err != nil || n < 0 {
			b.logger.Warn("ignoring malformed tally", slog.String("value", string(v)))
		} else {
			l.Tally = n
			l.HasTally = true
		}
	}

	return l
}

// Reset erases everything persisted.
func (b *Bridge) Reset() bool {
	err := b.db.Clear()
	if err != nil {
		b.logger.Warn("clearing persisted state failed", slog.Any("error", err))
		return false
	}

	return true
}

func (b *Bridge) get(key string) []byte {
	v, err := b.db.Get(key)
	if err != nil {
		b.logger.Warn(
			"reading persisted state failed",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return nil
	}

	return v
}
