package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mkbrennan/ritual/internal/models"
)

// ValidateHabit checks a habit before it is saved. A failure rejects the
// whole save; no partial write occurs.
func ValidateHabit(h models.Habit) error {
	var problems []string

	if strings.TrimSpace(h.Name) == "" {
		problems = append(problems, "name must not be empty")
	}
	if h.Schedule.Empty() {
		problems = append(problems, "schedule must include at least one day")
	}
	if h.ProgressTotal < 1 {
		problems = append(problems, "daily target must be at least 1")
	}
	if !h.Type.Valid() {
		problems = append(problems, fmt.Sprintf("unknown habit type %q", h.Type))
	}
	if h.Gradient != "" && !h.Gradient.Valid() {
		problems = append(problems, fmt.Sprintf("unknown gradient %q", h.Gradient))
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}
