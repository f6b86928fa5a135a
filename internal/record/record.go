// Package record holds the authoritative, ordered log of movements
package record

import (
	"slices"
	"time"

	"github.com/ayoisaiah/kicks/internal/models"
	"github.com/ayoisaiah/kicks/internal/timeutil"
)

// Store is the in-memory record log. Insertion order is display order and
// no two records share a key. It is not safe for concurrent use.
type Store struct {
	clock   timeutil.Clock
	keys    KeyGenerator
	records []models.Record
}

// New returns an empty store. A nil keys argument selects ClockKeys.
func New(clock timeutil.Clock, keys KeyGenerator) *Store {
	if keys == nil {
		keys = NewClockKeys(clock)
	}

	return &Store{
		clock: clock,
		keys:  keys,
	}
}

// Add stamps a new record with the current time and appends it.
func (s *Store) Add(intensity models.Intensity) models.Record {
	return s.AddAt(intensity, s.clock.Now())
}

// AddAt appends a new record whose time label reads at. The key is still
// drawn from the key generator, so it reflects creation order.
func (s *Store) AddAt(intensity models.Intensity, at time.Time) models.Record {
	r := models.Record{
		Key:       s.keys.Next(),
		Time:      timeutil.ClockLabel(at),
		Intensity: intensity,
	}

	s.records = append(s.records, r)

	return r
}

// RemoveByKey deletes the record with the given key and reports whether
// anything was removed.
func (s *Store) RemoveByKey(key string) bool {
	i := s.index(key)
	if i < 0 {
		return false
	}

	s.records = slices.Delete(s.records, i, i+1)

	return true
}

// Clear empties the store in place.
func (s *Store) Clear() {
	s.records = s.records[:0]
}

// Replace swaps the contents of the store for records, keeping the first
// occurrence of any duplicated key. It returns the records actually kept.
func (s *Store) Replace(records []models.Record) []models.Record {
	s.records = make([]models.Record, 0, len(records))

	seen := make(map[string]bool, len(records))

	for _, r := range records {
		if seen[r.Key] {
			continue
		}

		seen[r.Key] = true

		s.keys.Observe(r.Key)
		s.records = append(s.records, r)
	}

	return s.All()
}

func (s *Store) Size() int {
	return len(s.records)
}

// All returns a copy of the records in insertion order.
func (s *Store) All() []models.Record {
	return slices.Clone(s.records)
}

func (s *Store) index(key string) int {
	return slices.IndexFunc(s.records, func(r models.Record) bool {
		return r.Key == key
	})
}
