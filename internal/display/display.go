// Package display derives the labels shown alongside the record log
package display

import (
	"fmt"
	"slices"

	"github.com/maruel/natural"

	"github.com/ayoisaiah/kicks/internal/models"
)

// EmptyTally is shown when no movement has been recorded.
const EmptyTally = "Baby sleeping"

// State is the display state derived from the record log.
type State struct {
	DateLabel string
	Tally     int
	Editing   bool
}

// TallyLabel returns the tally text for n records.
func TallyLabel(n int) string {
	switch n {
	case 0:
		return EmptyTally
	case 1:
		return "1 movement"
	default:
		return fmt.Sprintf("%d movements", n)
	}
}

// TallyLabel returns the tally text for the state.
func (s State) TallyLabel() string {
	return TallyLabel(s.Tally)
}

// CategoryCount is the number of records with a given intensity.
type CategoryCount struct {
	Intensity models.Intensity
	Count     int
}

// Breakdown counts records per intensity, in natural order of the labels.
func Breakdown(records []models.Record) []CategoryCount {
	counts := make(map[models.Intensity]int)

	for _, r := range records {
		counts[r.Intensity]++
	}

	result := make([]CategoryCount, 0, len(counts))

	for k, v := range counts {
		result = append(result, CategoryCount{
			Intensity: k,
			Count:     v,
		})
	}

	slices.SortFunc(result, func(a, b CategoryCount) int {
		switch {
		case a.Intensity == b.Intensity:
			return 0
		case natural.Less(string(a.Intensity), string(b.Intensity)):
			return -1
		default:
			return 1
		}
	})

	return result
}
