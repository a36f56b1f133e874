package validation

import (
	"strings"
	"testing"

	"github.com/mkbrennan/ritual/internal/models"
)

func validHabit() models.Habit {
	return models.Habit{
		ID:            "a1",
		Name:          "Read",
		Gradient:      models.GradientForest,
		Type:          models.TypeCount,
		ProgressTotal: 1,
		Schedule:      models.Everyday(),
	}
}

func TestValidateHabit(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Habit)
		wantErr string
	}{
		{
			name:   "valid habit",
			mutate: func(h *models.Habit) {},
		},
		{
			name:    "empty name",
			mutate:  func(h *models.Habit) { h.Name = "" },
			wantErr: "name",
		},
		{
			name:    "whitespace name",
			mutate:  func(h *models.Habit) { h.Name = "   " },
			wantErr: "name",
		},
		{
			name:    "all-false schedule",
			mutate:  func(h *models.Habit) { h.Schedule = models.Schedule{} },
			wantErr: "schedule",
		},
		{
			name:    "zero target",
			mutate:  func(h *models.Habit) { h.ProgressTotal = 0 },
			wantErr: "target",
		},
		{
			name:    "negative target",
			mutate:  func(h *models.Habit) { h.ProgressTotal = -5 },
			wantErr: "target",
		},
		{
			name:    "unknown type",
			mutate:  func(h *models.Habit) { h.Type = "hourly" },
			wantErr: "type",
		},
		{
			name:    "unknown gradient",
			mutate:  func(h *models.Habit) { h.Gradient = "plaid" },
			wantErr: "gradient",
		},
		{
			name:   "empty gradient is allowed",
			mutate: func(h *models.Habit) { h.Gradient = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := validHabit()
			tt.mutate(&h)

			err := ValidateHabit(h)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("ValidateHabit() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateHabit() error = nil, want failure")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ValidateHabit() error = %q, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateHabitCollectsAllProblems(t *testing.T) {
	h := validHabit()
	h.Name = ""
	h.Schedule = models.Schedule{}
	h.ProgressTotal = 0

	err := ValidateHabit(h)
	if err == nil {
		t.Fatal("ValidateHabit() error = nil")
	}
	for _, want := range []string{"name", "schedule", "target"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
}
