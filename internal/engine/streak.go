// Package engine computes streaks, completion statistics and calendar
// annotations for a habit's sparse per-date history. Everything here is a
// pure function of the habit and an explicit reference date; the engine
// never reads the system clock.
package engine

import (
	"time"

	"github.com/mkbrennan/ritual/internal/constants"
	"github.com/mkbrennan/ritual/internal/models"
)

// dateComplete reports whether the given day has a recorded entry that met
// its target. An absent day means zero progress and is never complete.
func dateComplete(h models.Habit, day time.Time) bool {
	dp, ok := h.Dates[day.Format(constants.DateFormat)]
	return ok && dp.Complete()
}

// firstRecorded returns the chronologically earliest date with any recorded
// progress, or false when the habit has no history at all.
func firstRecorded(h models.Habit) (time.Time, bool) {
	var first time.Time
	found := false
	for key := range h.Dates {
		d, err := time.Parse(constants.DateFormat, key)
		if err != nil {
			continue
		}
		if !found || d.Before(first) {
			first = d
			found = true
		}
	}
	return first, found
}

// streakWalk counts completed scheduled days walking backward from the day
// before asOf. Days the schedule skips are transparent: they neither break
// the run nor count toward it. The walk stops at the first scheduled day
// that is missing or incomplete, or once it moves past the earliest
// recorded date. It returns the run length (excluding asOf itself) and the
// date the walk stopped on, which anchors the next run when scanning the
// full history.
func streakWalk(h models.Habit, asOf time.Time) (int, time.Time) {
	d := truncate(asOf).AddDate(0, 0, -1)

	first, ok := firstRecorded(h)
	if !ok {
		return 0, d
	}

	streak := 0
	for !d.Before(first) {
		if !h.Schedule.DueOn(d.Weekday()) {
			d = d.AddDate(0, 0, -1)
			continue
		}
		if !dateComplete(h, d) {
			break
		}
		streak++
		d = d.AddDate(0, 0, -1)
	}
	return streak, d
}

// CurrentStreak returns the habit's streak as of the given date. The run of
// prior days is counted by streakWalk; asOf itself then contributes one
// more iff it is complete or its weekday is unscheduled.
//
// With no history at all this can still return 1 when asOf is unscheduled.
// That is inherited behavior, kept deliberately; see DESIGN.md.
func CurrentStreak(h models.Habit, asOf time.Time) int {
	streak, _ := streakWalk(h, asOf)
	if dateComplete(h, asOf) || !h.Schedule.DueOn(asOf.Weekday()) {
		streak++
	}
	return streak
}

// HighestStreak returns the longest streak anywhere in the habit's history
// as of today. It repeatedly applies the streak walk, re-anchoring each
// pass at the day before the previous walk stopped, until the anchor moves
// earlier than the first recorded date.
func HighestStreak(h models.Habit, today time.Time) int {
	first, ok := firstRecorded(h)
	anchor := truncate(today)
	if !ok || anchor.Before(first) {
		return CurrentStreak(h, today)
	}

	best := 0
	for !anchor.Before(first) {
		streak, stopped := streakWalk(h, anchor)
		if dateComplete(h, anchor) || !h.Schedule.DueOn(anchor.Weekday()) {
			streak++
		}
		if streak > best {
			best = streak
		}
		anchor = stopped.AddDate(0, 0, -1)
	}
	return best
}

// truncate normalizes a timestamp to midnight UTC so day arithmetic is
// exact regardless of the wall-clock time carried in.
func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
