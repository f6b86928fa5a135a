package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockLabel(t *testing.T) {
	cases := []struct {
		Name     string
		Time     time.Time
		Expected string
	}{
		{
			Name:     "early morning",
			Time:     time.Date(2024, 3, 9, 6, 7, 0, 0, time.UTC),
			Expected: "6:07 AM",
		},
		{
			Name:     "noon",
			Time:     time.Date(2024, 3, 9, 12, 30, 0, 0, time.UTC),
			Expected: "12:30 PM",
		},
		{
			Name:     "evening",
			Time:     time.Date(2024, 3, 9, 21, 45, 59, 0, time.UTC),
			Expected: "9:45 PM",
		},
		{
			Name:     "exactly noon",
			Time:     time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC),
			Expected: "12:00 PM",
		},
		{
			Name:     "one minute before noon",
			Time:     time.Date(2024, 3, 9, 11, 59, 0, 0, time.UTC),
			Expected: "11:59 AM",
		},
		{
			Name:     "midnight",
			Time:     time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
			Expected: "12:00 AM",
		},
		{
			Name:     "just after midnight",
			Time:     time.Date(2024, 3, 9, 0, 1, 0, 0, time.UTC),
			Expected: "12:01 AM",
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, ClockLabel(tc.Time))
		})
	}
}

func TestDateLabel(t *testing.T) {
	d := time.Date(2024, 3, 9, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, "Saturday, March 9, 2024", DateLabel(d))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(a, a.Add(23*time.Hour)))
	assert.False(t, SameDay(a, a.Add(24*time.Hour)))
}

func TestFromStr(t *testing.T) {
	now := time.Date(2024, 3, 9, 15, 0, 0, 0, time.UTC)

	got, err := FromStr("10 minutes ago", now)
	require.NoError(t, err)

	assert.WithinDuration(t, now.Add(-10*time.Minute), got, time.Second)
	assert.Equal(t, time.UTC, got.Location())
}

func TestFromStrInvalid(t *testing.T) {
	_, err := FromStr("not a time at all", time.Now())

	assert.ErrorIs(t, err, errParsingTime)
}
