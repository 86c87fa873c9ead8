package calendar

import (
	"fmt"
	"time"
)

// View selects the calendar layout.
type View string

const (
	ViewMonth View = "month"
	ViewWeek  View = "week"
	ViewDay   View = "day"
	ViewList  View = "list"
)

// ParseView validates a view string, defaulting empty to month.
func ParseView(s string) (View, error) {
	switch View(s) {
	case "":
		return ViewMonth, nil
	case ViewMonth, ViewWeek, ViewDay, ViewList:
		return View(s), nil
	}
	return "", fmt.Errorf("unknown view %q", s)
}

// Step advances the current date by delta units of the active view. Month
// and list views step by calendar month with the day pinned to 1, so
// advancing from Jan 31 lands on Feb 1 rather than rolling into March.
// Week views step by seven days, day views by one.
func Step(v View, current time.Time, delta int) time.Time {
	switch v {
	case ViewWeek:
		return DateOnly(current).AddDate(0, 0, 7*delta)
	case ViewDay:
		return DateOnly(current).AddDate(0, 0, delta)
	default: // month, list
		return time.Date(current.Year(), current.Month()+time.Month(delta), 1, 0, 0, 0, 0, current.Location())
	}
}

// Next returns the date one view unit forward.
func Next(v View, current time.Time) time.Time { return Step(v, current, 1) }

// Prev returns the date one view unit back.
func Prev(v View, current time.Time) time.Time { return Step(v, current, -1) }

// Today resets navigation to the real current date, regardless of view.
func Today(now time.Time) time.Time { return DateOnly(now) }
