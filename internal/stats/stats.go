// Package stats derives dashboard numbers from a workout snapshot.
// Every function is pure: same snapshot and same today, same answer.
package stats

import (
	"math"
	"slices"
	"sort"
	"time"

	"github.com/2beens/fittrack/internal/dateutil"
	"github.com/2beens/fittrack/internal/workouts"
)

// Streak counts consecutive active days ending today or yesterday.
// A newest activity older than yesterday breaks the streak.
func Streak(ws []workouts.Workout, today time.Time) int {
	dates := distinctDates(ws)
	if len(dates) == 0 {
		return 0
	}
	// newest first
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	parsed := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		t, err := dateutil.Parse(d)
		if err != nil {
			continue
		}
		parsed = append(parsed, t)
	}
	if len(parsed) == 0 {
		return 0
	}

	if dateutil.DaysBetween(parsed[0], today) > 1 {
		return 0
	}

	streak := 1
	for i := 1; i < len(parsed); i++ {
		if dateutil.DaysBetween(parsed[i], parsed[i-1]) != 1 {
			break
		}
		streak++
	}
	return streak
}

// CountDistinctDaysInRange counts distinct dates within [start, end], both inclusive.
func CountDistinctDaysInRange(ws []workouts.Workout, start, end string) int {
	seen := make(map[string]struct{})
	for _, w := range ws {
		if w.Date >= start && w.Date <= end {
			seen[w.Date] = struct{}{}
		}
	}
	return len(seen)
}

// WeekCount counts active days from this week's Monday through today.
func WeekCount(ws []workouts.Workout, today time.Time) int {
	return CountDistinctDaysInRange(ws, dateutil.Format(dateutil.WeekStart(today)), dateutil.Format(today))
}

// MonthCount counts active days from the 1st of today's month through today.
func MonthCount(ws []workouts.Workout, today time.Time) int {
	return CountDistinctDaysInRange(ws, dateutil.Format(dateutil.MonthStart(today)), dateutil.Format(today))
}

func TotalActiveDays(ws []workouts.Workout) int {
	return len(distinctDates(ws))
}

type Summary struct {
	Streak          int `json:"streak"`
	WeekCount       int `json:"weekCount"`
	MonthCount      int `json:"monthCount"`
	TotalActiveDays int `json:"totalActiveDays"`
}

func Summarize(ws []workouts.Workout, today time.Time) Summary {
	return Summary{
		Streak:          Streak(ws, today),
		WeekCount:       WeekCount(ws, today),
		MonthCount:      MonthCount(ws, today),
		TotalActiveDays: TotalActiveDays(ws),
	}
}

type BreakdownRow struct {
	Type    string `json:"type"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
}

// TypeBreakdown counts sessions per type, most frequent first. Ties keep the
// order in which the type first appears in ws. Percent is relative to the
// most frequent type.
func TypeBreakdown(ws []workouts.Workout) []BreakdownRow {
	rows := []BreakdownRow{}
	index := make(map[string]int)
	for _, w := range ws {
		i, ok := index[w.Type]
		if !ok {
			index[w.Type] = len(rows)
			rows = append(rows, BreakdownRow{Type: w.Type})
			i = len(rows) - 1
		}
		rows[i].Count++
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})

	if len(rows) > 0 {
		maxCount := float64(rows[0].Count)
		for i := range rows {
			rows[i].Percent = int(math.Round(float64(rows[i].Count) / maxCount * 100))
		}
	}
	return rows
}

// Recent returns up to n workouts, most recent first.
func Recent(ws []workouts.Workout, n int) []workouts.Workout {
	sorted := slices.Clone(ws)
	sort.SliceStable(sorted, func(i, j int) bool {
		return workouts.Less(sorted[i], sorted[j])
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	if sorted == nil {
		sorted = []workouts.Workout{}
	}
	return sorted
}

func distinctDates(ws []workouts.Workout) []string {
	seen := make(map[string]struct{}, len(ws))
	dates := make([]string, 0, len(ws))
	for _, w := range ws {
		if _, ok := seen[w.Date]; ok {
			continue
		}
		seen[w.Date] = struct{}{}
		dates = append(dates, w.Date)
	}
	return dates
}
