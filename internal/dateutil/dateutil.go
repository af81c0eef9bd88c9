// Package dateutil holds calendar-date helpers. Dates are represented either as
// "2006-01-02" strings (the persisted, comparable form) or as time.Time values
// pinned to midnight UTC, which keeps day arithmetic free of DST surprises.
package dateutil

import (
	"fmt"
	"time"
)

// Layout is the canonical date layout. Lexicographic order of strings in this
// layout equals chronological order.
const Layout = "2006-01-02"

const day = 24 * time.Hour

type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in the given location (local time when nil).
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// FixedClock always returns the same instant, used in tests and tools.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time {
	return c.T
}

// Today returns the clock's current calendar date.
func Today(c Clock) time.Time {
	return DateOf(c.Now())
}

// DateOf drops the time of day, keeping the calendar date as seen in t's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Format(t time.Time) string {
	return t.Format(Layout)
}

func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date [%s]: %w", s, err)
	}
	return t, nil
}

func IsValid(s string) bool {
	_, err := time.Parse(Layout, s)
	return err == nil
}

func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DaysBetween returns the number of calendar days from -> to (negative when to is earlier).
func DaysBetween(from, to time.Time) int {
	return int(DateOf(to).Sub(DateOf(from)) / day)
}

// MondayOffset maps a weekday to its column in a Monday-first week:
// Monday -> 0 ... Sunday -> 6.
func MondayOffset(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// WeekStart returns the Monday of t's week. A Sunday belongs to the week that
// started on the preceding Monday.
func WeekStart(t time.Time) time.Time {
	d := DateOf(t)
	return AddDays(d, -MondayOffset(d.Weekday()))
}

func MonthStart(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func DaysInMonth(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ShiftMonth moves (year, month) by delta months, rolling the year as needed.
func ShiftMonth(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}

func MonthTitle(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}

// FriendlyDate renders a date relative to today: "Today", "Yesterday" or "Jan 2".
// Unparsable input is returned as is.
func FriendlyDate(date string, today time.Time) string {
	d, err := Parse(date)
	if err != nil {
		return date
	}
	switch DaysBetween(d, today) {
	case 0:
		return "Today"
	case 1:
		return "Yesterday"
	default:
		return d.Format("Jan 2")
	}
}

// FriendlyDateLong renders a date as "Mon, Jan 2, 2006".
func FriendlyDateLong(date string) string {
	d, err := Parse(date)
	if err != nil {
		return date
	}
	return d.Format("Mon, Jan 2, 2006")
}
