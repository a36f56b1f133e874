package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mkbrennan/ritual/internal/config"
	"github.com/mkbrennan/ritual/internal/constants"
	"github.com/mkbrennan/ritual/internal/models"
	"github.com/mkbrennan/ritual/internal/storage"
)

// Context carries the wired dependencies into every command. The engine and
// store are handed down explicitly; nothing is resolved through ambient
// globals, and Now keeps "today" injectable for tests.
type Context struct {
	Store  *storage.Store
	Config config.Config
	Now    func() time.Time
}

// Today returns the current date truncated to midnight.
func (c *Context) Today() time.Time {
	now := c.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD flag value, defaulting to today when empty.
func (c *Context) ParseDate(s string) (time.Time, error) {
	if s == "" {
		return c.Today(), nil
	}
	d, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", s)
	}
	return d, nil
}

// ParseScheduleDays parses a schedule string: a preset name (everyday,
// weekdays, weekend) or a comma-separated weekday list like "mon,wed,fri".
func ParseScheduleDays(s string) (models.Schedule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "everyday", "daily":
		return models.Everyday(), nil
	case "weekdays":
		return models.Weekdays(), nil
	case "weekend":
		return models.Weekend(), nil
	}

	var schedule models.Schedule
	for _, part := range strings.Split(s, ",") {
		switch strings.TrimSpace(strings.ToLower(part)) {
		case "mon", "monday":
			schedule.Mon = true
		case "tue", "tuesday":
			schedule.Tue = true
		case "wed", "wednesday":
			schedule.Wed = true
		case "thu", "thursday":
			schedule.Thu = true
		case "fri", "friday":
			schedule.Fri = true
		case "sat", "saturday":
			schedule.Sat = true
		case "sun", "sunday":
			schedule.Sun = true
		default:
			return models.Schedule{}, fmt.Errorf("invalid weekday: %s", part)
		}
	}
	return schedule, nil
}

// FormatSchedule renders a schedule as a short human-readable string.
func FormatSchedule(s models.Schedule) string {
	switch s {
	case models.Everyday():
		return "everyday"
	case models.Weekdays():
		return "weekdays"
	case models.Weekend():
		return "weekend"
	}
	var days []string
	for _, wd := range s.Days() {
		days = append(days, wd.String()[:3])
	}
	if len(days) == 0 {
		return "never"
	}
	return strings.Join(days, ",")
}

var gradientColors = map[models.Gradient]lipgloss.Color{
	models.GradientSunrise: lipgloss.Color("208"),
	models.GradientOcean:   lipgloss.Color("39"),
	models.GradientForest:  lipgloss.Color("34"),
	models.GradientEmber:   lipgloss.Color("196"),
	models.GradientViolet:  lipgloss.Color("135"),
	models.GradientSlate:   lipgloss.Color("245"),
	models.GradientGold:    lipgloss.Color("220"),
	models.GradientRose:    lipgloss.Color("205"),
}

// GradientStyle returns the lipgloss style for a habit's gradient key.
func GradientStyle(g models.Gradient) lipgloss.Style {
	color, ok := gradientColors[g]
	if !ok {
		color = lipgloss.Color("39")
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true)
}

// DimStyle renders disabled calendar cells.
var DimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
