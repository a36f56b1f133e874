package models

import "time"

// Schedule is a fixed 7-day mask determining which weekdays a habit is due.
// An all-false schedule is a legal transient state but invalid for save.
type Schedule struct {
	Mon bool `json:"mon"`
	Tue bool `json:"tue"`
	Wed bool `json:"wed"`
	Thu bool `json:"thu"`
	Fri bool `json:"fri"`
	Sat bool `json:"sat"`
	Sun bool `json:"sun"`
}

// Everyday returns the schedule with all seven days due.
func Everyday() Schedule {
	return Schedule{Mon: true, Tue: true, Wed: true, Thu: true, Fri: true, Sat: true, Sun: true}
}

// Weekdays returns the Monday-through-Friday schedule.
func Weekdays() Schedule {
	return Schedule{Mon: true, Tue: true, Wed: true, Thu: true, Fri: true}
}

// Weekend returns the Saturday/Sunday schedule.
func Weekend() Schedule {
	return Schedule{Sat: true, Sun: true}
}

// DueOn reports whether the habit is due on the given weekday.
func (s Schedule) DueOn(wd time.Weekday) bool {
	switch wd {
	case time.Monday:
		return s.Mon
	case time.Tuesday:
		return s.Tue
	case time.Wednesday:
		return s.Wed
	case time.Thursday:
		return s.Thu
	case time.Friday:
		return s.Fri
	case time.Saturday:
		return s.Sat
	case time.Sunday:
		return s.Sun
	}
	return false
}

// Empty reports whether no weekday is due.
func (s Schedule) Empty() bool {
	return s == Schedule{}
}

// Days returns the due weekdays in MON..SUN order.
func (s Schedule) Days() []time.Weekday {
	var days []time.Weekday
	for _, wd := range []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	} {
		if s.DueOn(wd) {
			days = append(days, wd)
		}
	}
	return days
}
