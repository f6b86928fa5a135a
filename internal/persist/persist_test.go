package persist

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/kicks/internal/display"
	"github.com/ayoisaiah/kicks/internal/models"
	"github.com/ayoisaiah/kicks/store"
)

var errUnavailable = errors.New("store unavailable")

// brokenDB fails every operation.
type brokenDB struct{}

func (brokenDB) Get(string) ([]byte, error) { return nil, errUnavailable }
func (brokenDB) Set(string, []byte) error   { return errUnavailable }
func (brokenDB) Clear() error               { return errUnavailable }
func (brokenDB) Close() error               { return nil }

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

var sampleRecords = []models.Record{
	{Key: "1709993100000", Time: "2:05 PM", Intensity: models.Gentle},
	{Key: "1709993160000", Time: "2:06 PM", Intensity: models.Giant},
}

func TestSaveLoadRoundTrip(t *testing.T) {
	db := store.NewMemory()
	b := New(db, quiet)

	ok := b.Save(sampleRecords, display.State{
		DateLabel: "Saturday, March 9, 2024",
		Tally:     2,
	})
	assert.True(t, ok)

	l := New(db, quiet).Load()

	assert.False(t, l.Empty())
	assert.True(t, l.HasRecords)
	assert.True(t, l.HasDate)
	assert.True(t, l.HasTally)

	want := models.Snapshot{
		Records: sampleRecords,
		Date:    "Saturday, March 9, 2024",
		Tally:   2,
	}

	if diff := cmp.Diff(want, l.Snapshot()); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveEmptyWritesArray(t *testing.T) {
	db := store.NewMemory()

	New(db, quiet).Save(nil, display.State{})

	v, _ := db.Get(KeyRecords)
	assert.Equal(t, "[]", string(v))

	l := New(db, quiet).Load()
	assert.True(t, l.HasRecords)
	assert.Empty(t, l.Records)
}

func TestLoadNothing(t *testing.T) {
	l := New(store.NewMemory(), quiet).Load()

	assert.True(t, l.Empty())
}

func TestLoadFieldsIndependently(t *testing.T) {
	db := store.NewMemory()

	_ = db.Set(KeyRecords, []byte(`{not json`))
	_ = db.Set(KeyDate, []byte("Friday, March 8, 2024"))
	_ = db.Set(KeyTally, []byte("two"))

	l := New(db, quiet).Load()

	assert.False(t, l.Empty())
	assert.False(t, l.HasRecords)
	assert.False(t, l.HasTally)
	assert.True(t, l.HasDate)
	assert.Equal(t, "Friday, March 8, 2024", l.Date)
}

func TestLoadRejectsNegativeTally(t *testing.T) {
	db := store.NewMemory()

	_ = db.Set(KeyTally, []byte("-4"))

	l := New(db, quiet).Load()

	assert.True(t, l.Empty())
}

func TestReset(t *testing.T) {
	db := store.NewMemory()
	b := New(db, quiet)

	b.Save(sampleRecords, display.State{Tally: 2})

	assert.True(t, b.Reset())
	assert.True(t, b.Load().Empty())
}

func TestFailuresAreAbsorbed(t *testing.T) {
	b := New(brokenDB{}, quiet)

	assert.False(t, b.Save(sampleRecords, display.State{Tally: 2}))
	assert.False(t, b.Reset())
	assert.True(t, b.Load().Empty())
}
