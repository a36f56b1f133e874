package engine

import (
	"testing"

	"github.com/mkbrennan/ritual/internal/models"
)

func TestRound1(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"thirds round down", 33.333333, 33.3},
		{"two thirds round up", 66.666666, 66.7},
		{"half rounds away from zero", 2.25, 2.3},
		{"negative half rounds away from zero", -2.25, -2.3},
		{"whole number unchanged", 50, 50},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round1(tt.in); got != tt.want {
				t.Errorf("Round1(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// Ten calendar days since the first record, two of them unscheduled, five
// scheduled days completed: 5/8 = 62.5%.
func TestCompletionRateSkipsUnscheduledDays(t *testing.T) {
	h := testHabit(models.Weekdays(), map[string]models.DateProgress{
		"2024-03-04": complete(), // Monday
		"2024-03-05": complete(),
		"2024-03-06": complete(),
		"2024-03-07": complete(),
		"2024-03-08": complete(), // Friday
	})

	// Window 2024-03-04 .. 2024-03-13 holds Sat 03-09 and Sun 03-10.
	if got := CompletionRate(h, day(t, "2024-03-13")); got != 62.5 {
		t.Errorf("CompletionRate() = %v, want 62.5", got)
	}
}

func TestCompletionRateFullCompletion(t *testing.T) {
	h := testHabit(models.Everyday(), map[string]models.DateProgress{
		"2024-03-09": complete(),
		"2024-03-10": complete(),
	})

	if got := CompletionRate(h, day(t, "2024-03-10")); got != 100 {
		t.Errorf("CompletionRate() = %v, want 100", got)
	}
}

func TestCompletionRateRounding(t *testing.T) {
	// 1 of 3 scheduled days complete: 33.333... rounds to 33.3.
	h := testHabit(models.Everyday(), map[string]models.DateProgress{
		"2024-03-08": complete(),
		"2024-03-09": incomplete(),
	})

	if got := CompletionRate(h, day(t, "2024-03-10")); got != 33.3 {
		t.Errorf("CompletionRate() = %v, want 33.3", got)
	}
}

func TestCompletionRateNoHistory(t *testing.T) {
	h := testHabit(models.Everyday(), nil)
	if got := CompletionRate(h, day(t, "2024-03-10")); got != 0 {
		t.Errorf("CompletionRate() = %v, want 0", got)
	}
}

// A single-day window whose one day is unscheduled leaves nothing to rate.
func TestCompletionRateAllDaysUnscheduled(t *testing.T) {
	h := testHabit(models.Weekdays(), map[string]models.DateProgress{
		"2024-03-09": complete(), // Saturday
	})

	if got := CompletionRate(h, day(t, "2024-03-09")); got != 0 {
		t.Errorf("CompletionRate() = %v, want 0", got)
	}
}

// Entries completed on unscheduled days do not count toward the rate.
func TestCompletionRateIgnoresUnscheduledCompletions(t *testing.T) {
	h := testHabit(models.Weekdays(), map[string]models.DateProgress{
		"2024-03-08": complete(), // Friday
		"2024-03-09": complete(), // Saturday, unscheduled
	})

	// Window Fri..Mon has two scheduled days, one complete: 50%.
	if got := CompletionRate(h, day(t, "2024-03-11")); got != 50 {
		t.Errorf("CompletionRate() = %v, want 50", got)
	}
}

func TestCompletionRateBounds(t *testing.T) {
	habits := []models.Habit{
		testHabit(models.Everyday(), map[string]models.DateProgress{
			"2024-01-01": complete(),
			"2024-02-14": incomplete(),
		}),
		testHabit(models.Weekend(), map[string]models.DateProgress{
			"2024-01-06": complete(),
		}),
		testHabit(models.Weekdays(), map[string]models.DateProgress{
			"2024-03-10": {Progress: 3, ProgressTotal: 2},
		}),
	}

	for i, h := range habits {
		got := CompletionRate(h, day(t, "2024-03-15"))
		if got < 0 || got > 100 {
			t.Errorf("habit %d: CompletionRate() = %v, want within [0,100]", i, got)
		}
	}
}

func TestCompletedDaysCountsSelectedCells(t *testing.T) {
	marked := map[string]CellAnnotation{
		"2024-03-08": {Selected: true},
		"2024-03-09": {Selected: true, Disabled: true},
		"2024-03-10": {Marked: true},
		"2024-03-11": {Disabled: true},
	}

	if got := CompletedDays(marked); got != 2 {
		t.Errorf("CompletedDays() = %d, want 2", got)
	}
}
