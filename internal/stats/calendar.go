package stats

import (
	"slices"
	"time"

	"github.com/2beens/fittrack/internal/dateutil"
	"github.com/2beens/fittrack/internal/workouts"
)

// DayCell is one square of the month grid. Leading padding cells have Empty
// set, no date and an empty Types list.
type DayCell struct {
	Empty       bool     `json:"empty,omitempty"`
	Num         int      `json:"num"`
	Date        string   `json:"date"`
	IsToday     bool     `json:"isToday"`
	IsFuture    bool     `json:"isFuture"`
	HasActivity bool     `json:"hasActivity"`
	Types       []string `json:"types"`
}

// CalendarMonth lays out a Monday-first grid for the month: blank cells up to
// the weekday of the 1st, then one cell per day with the distinct activity
// types logged on it, in first-seen order.
func CalendarMonth(ws []workouts.Workout, year int, month time.Month, today time.Time) []DayCell {
	typesByDate := make(map[string][]string)
	for _, w := range ws {
		types := typesByDate[w.Date]
		if !slices.Contains(types, w.Type) {
			typesByDate[w.Date] = append(types, w.Type)
		}
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// normalise out-of-range months (13 -> January next year)
	year, month = first.Year(), first.Month()
	offset := dateutil.MondayOffset(first.Weekday())
	daysInMonth := dateutil.DaysInMonth(year, month)
	todayStr := dateutil.Format(today)

	cells := make([]DayCell, 0, offset+daysInMonth)
	for range offset {
		cells = append(cells, DayCell{Empty: true, Types: []string{}})
	}

	for d := 1; d <= daysInMonth; d++ {
		date := dateutil.Format(time.Date(year, month, d, 0, 0, 0, 0, time.UTC))
		types := typesByDate[date]
		if types == nil {
			types = []string{}
		}
		cells = append(cells, DayCell{
			Num:         d,
			Date:        date,
			IsToday:     date == todayStr,
			IsFuture:    date > todayStr,
			HasActivity: len(types) > 0,
			Types:       types,
		})
	}

	return cells
}

// LegendTypes lists the activity types appearing in cells, in first-seen order.
func LegendTypes(cells []DayCell) []string {
	legend := []string{}
	for _, c := range cells {
		for _, t := range c.Types {
			if !slices.Contains(legend, t) {
				legend = append(legend, t)
			}
		}
	}
	return legend
}

type WeekDay struct {
	Name     string `json:"name"`
	Num      int    `json:"num"`
	Date     string `json:"date"`
	Active   bool   `json:"active"`
	IsToday  bool   `json:"isToday"`
	IsFuture bool   `json:"isFuture"`
}

// WeekStrip returns Monday..Sunday of today's week.
func WeekStrip(ws []workouts.Workout, today time.Time) []WeekDay {
	active := make(map[string]struct{}, len(ws))
	for _, w := range ws {
		active[w.Date] = struct{}{}
	}

	monday := dateutil.WeekStart(today)
	todayStr := dateutil.Format(today)
	strip := make([]WeekDay, 0, 7)
	for i := range 7 {
		d := dateutil.AddDays(monday, i)
		date := dateutil.Format(d)
		_, isActive := active[date]
		strip = append(strip, WeekDay{
			Name:     d.Format("Mon"),
			Num:      d.Day(),
			Date:     date,
			Active:   isActive,
			IsToday:  date == todayStr,
			IsFuture: date > todayStr,
		})
	}
	return strip
}
