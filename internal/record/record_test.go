package record

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/kicks/internal/models"
	"github.com/ayoisaiah/kicks/internal/timeutil"
)

var baseTime = time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)

func newStore() *Store {
	return New(timeutil.FixedClock{T: baseTime}, nil)
}

func TestAddAppendsInOrder(t *testing.T) {
	s := newStore()

	first := s.Add(models.Gentle)
	second := s.Add(models.Giant)

	want := []models.Record{
		{Key: "1709993100000", Time: "2:05 PM", Intensity: models.Gentle},
		{Key: "1709993100001", Time: "2:05 PM", Intensity: models.Giant},
	}

	if diff := cmp.Diff(want, s.All()); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, want[0], first)
	assert.Equal(t, want[1], second)
	assert.Equal(t, 2, s.Size())
}

func TestKeysAreUnique(t *testing.T) {
	s := newStore()

	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		r := s.Add(models.Gentle)

		assert.False(t, seen[r.Key], "duplicate key %s", r.Key)

		seen[r.Key] = true
	}
}

func TestRemoveByKey(t *testing.T) {
	s := newStore()

	a := s.Add(models.Gentle)
	b := s.Add(models.Giant)
	c := s.Add(models.Gentle)

	assert.True(t, s.RemoveByKey(b.Key))
	assert.False(t, s.RemoveByKey(b.Key), "second removal must be a no-op")
	assert.False(t, s.RemoveByKey("missing"))

	if diff := cmp.Diff([]models.Record{a, c}, s.All()); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestClear(t *testing.T) {
	s := newStore()

	s.Add(models.Gentle)
	s.Add(models.Giant)

	s.Clear()

	assert.Equal(t, 0, s.Size())
	assert.Empty(t, s.All())
}

func TestAllReturnsCopy(t *testing.T) {
	s := newStore()

	s.Add(models.Gentle)

	all := s.All()
	all[0].Intensity = models.Giant

	assert.Equal(t, models.Gentle, s.All()[0].Intensity)
}

func TestReplaceDropsDuplicatesAndSeedsKeys(t *testing.T) {
	s := newStore()

	loaded := []models.Record{
		{Key: "1709993200000", Time: "2:06 PM", Intensity: models.Gentle},
		{Key: "1709993200000", Time: "2:07 PM", Intensity: models.Giant},
		{Key: "legacy", Time: "2:08 PM", Intensity: models.Giant},
	}

	kept := s.Replace(loaded)

	assert.Len(t, kept, 2)
	assert.Equal(t, "2:06 PM", kept[0].Time)
	assert.Equal(t, 1, s.index("legacy"))

	// the clock is behind the hydrated keys, so new keys continue after them
	r := s.Add(models.Gentle)
	assert.Equal(t, "1709993200001", r.Key)
}

func TestClockKeysObserveIgnoresNonNumeric(t *testing.T) {
	g := NewClockKeys(timeutil.FixedClock{T: baseTime})

	g.Observe("abc")

	assert.Equal(t, "1709993100000", g.Next())
}

func TestAddAtKeepsCreationOrder(t *testing.T) {
	s := newStore()

	s.Add(models.Gentle)
	r := s.AddAt(models.Giant, baseTime.Add(-2*time.Hour))

	assert.Equal(t, "12:05 PM", r.Time)
	assert.Equal(t, "1709993100001", r.Key)
	assert.Equal(t, r, s.All()[1])
}
