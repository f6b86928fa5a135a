package record

import (
	"strconv"

	"github.com/ayoisaiah/kicks/internal/timeutil"
)

// KeyGenerator produces a unique key for each new record.
type KeyGenerator interface {
	Next() string
	// Observe registers a key that already exists so that it is never
	// handed out again.
	Observe(key string)
}

// ClockKeys derives keys from the clock's millisecond reading. When two
// records land on the same millisecond (or the clock steps backwards), the
// key is bumped past the last one issued so keys stay unique and increasing.
type ClockKeys struct {
	clock timeutil.Clock
	last  int64
}

// NewClockKeys returns a key generator backed by clock.
func NewClockKeys(clock timeutil.Clock) *ClockKeys {
	return &ClockKeys{
		clock: clock,
	}
}

func (g *ClockKeys) Next() string {
	ms := timeutil.Millis(g.clock.Now())
	if ms <= g.last {
		ms = g.last + 1
	}

	g.last = ms

	return strconv.FormatInt(ms, 10)
}

func (g *ClockKeys) Observe(key string) {
	n, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		// non-numeric keys cannot collide with generated ones
		return
	}

	if n > g.last {
		g.last = n
	}
}
