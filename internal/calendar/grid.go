// Package calendar implements the time-grid geometry, event filtering and
// grouping, view-model building, navigation, and drag-and-drop drafting for
// the scheduling calendar. Everything here is a pure function of its inputs.
package calendar

import (
	"time"

	"github.com/ScriFi/Athletitrack/internal/models"
)

// Week and day views render a bounded axis window of 06:00–23:00, 17 one-hour
// rows of SlotHeight pixels each. Events starting before the window are
// suppressed from rendering entirely, not clamped to the top.
const (
	AxisStartHour = 6
	AxisEndHour   = 23
	SlotHeight    = 64.0
)

// Weekdays are the column labels, Sunday first.
var Weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// HourAxis returns the hours rendered in week/day views.
func HourAxis() []int {
	hours := make([]int, 0, AxisEndHour-AxisStartHour)
	for h := AxisStartHour; h < AxisEndHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// SameDay reports whether two instants fall on the same calendar date.
// Only year, month, and day-of-month are compared.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// DateOnly strips the time-of-day, keeping the location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the Sunday on or before t.
func StartOfWeek(t time.Time) time.Time {
	return DateOnly(t).AddDate(0, 0, -int(t.Weekday()))
}

// WeekDays returns the seven dates of t's week, Sunday first.
func WeekDays(t time.Time) []time.Time {
	start := StartOfWeek(t)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// MonthGrid describes the month view's cell layout: LeadingBlanks empty
// cells, then one cell per day, in Rows rows of seven columns.
type MonthGrid struct {
	Year          int        `json:"year"`
	Month         time.Month `json:"month"`
	LeadingBlanks int        `json:"leading_blanks"`
	DaysInMonth   int        `json:"days_in_month"`
	Rows          int        `json:"rows"`
}

// MonthGridFor computes the grid for t's month. LeadingBlanks is the weekday
// of the first of the month; Rows is ceil((blanks+days)/7).
func MonthGridFor(t time.Time) MonthGrid {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	// Day zero of the next month is the last day of this one.
	last := time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location())
	blanks := int(first.Weekday())
	days := last.Day()
	return MonthGrid{
		Year:          t.Year(),
		Month:         t.Month(),
		LeadingBlanks: blanks,
		DaysInMonth:   days,
		Rows:          (blanks + days + 6) / 7,
	}
}

// DateOf returns the date of the given day number (1-based) in the grid.
func (g MonthGrid) DateOf(day int) time.Time {
	return time.Date(g.Year, g.Month, day, 0, 0, 0, 0, time.Local)
}

// BlockGeometry is the drawable position of an event in a week/day column.
// Top and Height are pixels from the top of the axis window. Visible is
// false when the event starts before the window; such blocks must not be
// drawn.
type BlockGeometry struct {
	Top     float64 `json:"top"`
	Height  float64 `json:"height"`
	Visible bool    `json:"visible"`
}

// FractionalHour converts a clock time to hours with minutes as a fraction.
func FractionalHour(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60
}

// EventGeometry maps an event's start and end to an absolute block in its
// day column: top = (startHour − axisStart) × SlotHeight, height = duration
// in fractional hours × SlotHeight. An event with End <= Start produces a
// non-positive height; that is preserved, not corrected.
func EventGeometry(e models.Event) BlockGeometry {
	startHour := FractionalHour(e.Start)
	endHour := FractionalHour(e.End)
	top := (startHour - AxisStartHour) * SlotHeight
	return BlockGeometry{
		Top:     top,
		Height:  (endHour - startHour) * SlotHeight,
		Visible: top >= 0,
	}
}
