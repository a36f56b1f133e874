package engine

import (
	"time"

	"github.com/mkbrennan/ritual/internal/constants"
)

// WeekStrip returns the seven weekday labels for the rolling display strip
// ending on today's weekday. It is a fixed rotation of MON..SUN: the strip
// always ends on today regardless of which date is selected for viewing.
func WeekStrip(today time.Time) [7]time.Weekday {
	var strip [7]time.Weekday
	for i := 0; i < 7; i++ {
		strip[i] = truncate(today).AddDate(0, 0, i-6).Weekday()
	}
	return strip
}

// LastNDates returns the n calendar date keys ending on today, in
// chronological order. It is a pure function of today: finite, restartable,
// no cursor.
func LastNDates(today time.Time, n int) []string {
	if n <= 0 {
		return nil
	}
	dates := make([]string, 0, n)
	start := truncate(today).AddDate(0, 0, -(n - 1))
	for d := start; len(dates) < n; d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(constants.DateFormat))
	}
	return dates
}

// YearDates returns the rolling 365-day window ending today, used by the
// yearly heat view.
func YearDates(today time.Time) []string {
	return LastNDates(today, constants.YearWindowDays)
}
