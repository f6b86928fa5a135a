// Package timeutil provides the clock used to stamp records and the helpers
// that turn time values into display labels.
package timeutil

import (
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"
)

const (
	clockFormat = "3:04 PM"
	dateFormat  = "Monday, January 2, 2006"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant. It is used to backdate a
// record and in tests.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time {
	return c.T
}

// ClockLabel formats t as a 12-hour wall-clock string (e.g. 9:05 PM).
func ClockLabel(t time.Time) string {
	return t.Format(clockFormat)
}

// DateLabel formats the calendar day of t for display.
func DateLabel(t time.Time) string {
	return t.Format(dateFormat)
}

// Millis returns t as milliseconds since the Unix epoch.
func Millis(t time.Time) int64 {
	return t.UnixMilli()
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return RoundToStart(a).Equal(RoundToStart(b.In(a.Location())))
}

// FromStr parses a natural language time expression such as "10 mins ago"
// relative to now. The result is in now's location.
func FromStr(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)

	cfg := &dps.Configuration{
		CurrentTime: now,
	}

	dt, err := dps.Parse(cfg, s)
	if err != nil {
		return time.Time{}, errParsingTime.Fmt(s).Wrap(err)
	}

	return dt.Time.In(now.Location()), nil
}
