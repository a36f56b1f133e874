package engine

import (
	"math"
	"time"

	"github.com/mkbrennan/ritual/internal/models"
)

// Round1 rounds to one decimal place, half away from zero.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// CompletionRate returns the percentage (0..100, one decimal place) of
// scheduled days satisfied between the habit's first recorded date and
// today inclusive. Unscheduled days are excluded from both the numerator
// and the denominator. A habit with no history rates 0.
func CompletionRate(h models.Habit, today time.Time) float64 {
	first, ok := firstRecorded(h)
	if !ok {
		return 0
	}

	end := truncate(today)
	if first.After(end) {
		first = end
	}

	total := int(end.AddDate(0, 0, 1).Sub(first).Hours() / 24)
	if total == 0 {
		total = 1
	}

	completed := 0
	disabled := 0
	for d := first; !d.After(end); d = d.AddDate(0, 0, 1) {
		if !h.Schedule.DueOn(d.Weekday()) {
			disabled++
			continue
		}
		if dateComplete(h, d) {
			completed++
		}
	}

	total -= disabled
	if total <= 0 {
		return 0
	}

	rate := Round1(float64(completed) / float64(total) * 100)
	if rate < 0 {
		return 0
	}
	if rate > 100 {
		return 100
	}
	return rate
}

// CompletedDays counts the calendar cells marked selected (complete days)
// in a materialized annotation set. The count is scoped to whatever range
// was materialized; callers wanting a full-history figure materialize the
// full history first (see Store stats usage).
func CompletedDays(marked map[string]CellAnnotation) int {
	n := 0
	for _, cell := range marked {
		if cell.Selected {
			n++
		}
	}
	return n
}
