package engine

import (
	"time"

	"github.com/mkbrennan/ritual/internal/constants"
	"github.com/mkbrennan/ritual/internal/models"
)

// CellAnnotation describes how a single calendar cell renders. Disabled
// overlays the other flags rather than replacing them: a completed day on a
// weekday the schedule later dropped stays selected and disabled.
type CellAnnotation struct {
	Selected bool `json:"selected"`
	Marked   bool `json:"marked"`
	Disabled bool `json:"disabled"`
}

// MarkedDates produces cell annotations for the three-month window centered
// on visibleMonth (the previous month's first day through the next month's
// last day): selected for recorded complete days, marked on today, and a
// disabled overlay on every date whose weekday is unscheduled.
func MarkedDates(h models.Habit, visibleMonth, today time.Time) map[string]CellAnnotation {
	start := time.Date(visibleMonth.Year(), visibleMonth.Month()-1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(visibleMonth.Year(), visibleMonth.Month()+2, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)

	cells := make(map[string]CellAnnotation)

	for key, dp := range h.Dates {
		d, err := time.Parse(constants.DateFormat, key)
		if err != nil || d.Before(start) || d.After(end) {
			continue
		}
		if dp.Complete() {
			cell := cells[key]
			cell.Selected = true
			cells[key] = cell
		}
	}

	todayKey := truncate(today).Format(constants.DateFormat)
	if !truncate(today).Before(start) && !truncate(today).After(end) {
		cell := cells[todayKey]
		cell.Marked = true
		cells[todayKey] = cell
	}

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if h.Schedule.DueOn(d.Weekday()) {
			continue
		}
		key := d.Format(constants.DateFormat)
		cell := cells[key]
		cell.Disabled = true
		cells[key] = cell
	}

	return cells
}

// FullHistoryMarkedDates materializes annotations for the habit's entire
// recorded range plus the current month, so completed-day totals derived
// from it cover the whole history rather than a visible window.
func FullHistoryMarkedDates(h models.Habit, today time.Time) map[string]CellAnnotation {
	cells := MarkedDates(h, today, today)
	first, ok := firstRecorded(h)
	if !ok {
		return cells
	}
	for month := time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, time.UTC); month.Before(truncate(today)); month = month.AddDate(0, 2, 0) {
		for key, cell := range MarkedDates(h, month, today) {
			merged := cells[key]
			merged.Selected = merged.Selected || cell.Selected
			merged.Marked = merged.Marked || cell.Marked
			merged.Disabled = merged.Disabled || cell.Disabled
			cells[key] = merged
		}
	}
	return cells
}
