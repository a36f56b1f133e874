package models

import "time"

// HabitType determines how daily progress toward a habit is measured.
type HabitType string

const (
	// TypeCheck is a binary done/not-done habit with an implicit target of 1.
	TypeCheck HabitType = "check"
	// TypeCount is an integer increment habit (e.g. glasses of water).
	TypeCount HabitType = "count"
	// TypeTimer is an elapsed-seconds habit (e.g. 10 minutes of reading).
	TypeTimer HabitType = "timer"
)

// Valid reports whether t is a known habit type.
func (t HabitType) Valid() bool {
	switch t {
	case TypeCheck, TypeCount, TypeTimer:
		return true
	}
	return false
}

// Gradient is a symbolic colour-scheme key. It is purely cosmetic; the
// closed set below is mapped to terminal colours by the CLI.
type Gradient string

const (
	GradientSunrise Gradient = "sunrise"
	GradientOcean   Gradient = "ocean"
	GradientForest  Gradient = "forest"
	GradientEmber   Gradient = "ember"
	GradientViolet  Gradient = "violet"
	GradientSlate   Gradient = "slate"
	GradientGold    Gradient = "gold"
	GradientRose    Gradient = "rose"
)

// Gradients lists every known gradient key.
func Gradients() []Gradient {
	return []Gradient{
		GradientSunrise, GradientOcean, GradientForest, GradientEmber,
		GradientViolet, GradientSlate, GradientGold, GradientRose,
	}
}

// Valid reports whether g is a known gradient key.
func (g Gradient) Valid() bool {
	for _, known := range Gradients() {
		if g == known {
			return true
		}
	}
	return false
}

// Icon is a symbolic reference into an external icon catalog.
type Icon struct {
	Family string `json:"family"`
	Name   string `json:"name"`
}

// DateProgress is a single day's record for a habit. ProgressTotal is a
// snapshot of the habit's target at the time the day was recorded, so
// editing a habit's target never rewrites history: a day is judged against
// the target it was logged under.
type DateProgress struct {
	Progress      int `json:"progress"`
	ProgressTotal int `json:"progress_total"`
}

// Complete reports whether the day's accumulated progress met its target.
func (dp DateProgress) Complete() bool {
	return dp.Progress >= dp.ProgressTotal
}

// Habit is a recurring practice to track. Dates is sparse: only days with
// recorded interaction are present, and an absent key means zero progress.
type Habit struct {
	ID            string                  `json:"id"`
	Name          string                  `json:"name"`
	Icon          Icon                    `json:"icon"`
	Gradient      Gradient                `json:"gradient"`
	Type          HabitType               `json:"type"`
	ProgressTotal int                     `json:"progress_total"`
	Schedule      Schedule                `json:"schedule"`
	Dates         map[string]DateProgress `json:"dates"`
	CreatedAt     time.Time               `json:"created_at"`
}

// MergeProgress returns a copy of dates with the entry for day replaced by
// (progress, total). Last write wins: the prior entry for that day, if any,
// is fully overwritten and never accumulated into. All other keys are
// untouched and the input map is not mutated.
func MergeProgress(dates map[string]DateProgress, day string, progress, total int) map[string]DateProgress {
	merged := make(map[string]DateProgress, len(dates)+1)
	for k, v := range dates {
		merged[k] = v
	}
	merged[day] = DateProgress{Progress: progress, ProgressTotal: total}
	return merged
}
