// Package history filters, orders and groups workouts for the history view.
package history

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/2beens/fittrack/internal/activity"
	"github.com/2beens/fittrack/internal/dateutil"
	"github.com/2beens/fittrack/internal/settings"
	"github.com/2beens/fittrack/internal/workouts"
)

var ErrInvalidTimeFilter = errors.New("invalid time filter")

// TypeAll disables type filtering.
const TypeAll = "all"

type TimeFilter string

const (
	TimeAll   TimeFilter = "all"
	TimeWeek  TimeFilter = "week"
	TimeMonth TimeFilter = "month"
)

func (f TimeFilter) String() string {
	return string(f)
}

func (f TimeFilter) IsValid() bool {
	switch f {
	case TimeAll, TimeWeek, TimeMonth:
		return true
	default:
		return false
	}
}

// Filter selects workouts. Zero values mean "all".
type Filter struct {
	Time TimeFilter
	Type string
}

type Group struct {
	Label    string             `json:"label"`
	Date     string             `json:"date"`
	Workouts []workouts.Workout `json:"workouts"`
}

type Result struct {
	Groups        []Group  `json:"groups"`
	TotalSessions int      `json:"totalSessions"`
	UniqueDays    int      `json:"uniqueDays"`
	TypeOptions   []string `json:"typeOptions"`
}

// Query applies the time filter, then the type filter, orders the remainder
// most recent first and groups it by day. Each day label appears once.
func Query(ws []workouts.Workout, s settings.Settings, f Filter, today time.Time) (Result, error) {
	if f.Time == "" {
		f.Time = TimeAll
	}
	if !f.Time.IsValid() {
		return Result{}, fmt.Errorf("%w: [%s]", ErrInvalidTimeFilter, f.Time)
	}
	if f.Type == "" {
		f.Type = TypeAll
	}

	var since string
	switch f.Time {
	case TimeWeek:
		since = dateutil.Format(dateutil.WeekStart(today))
	case TimeMonth:
		since = dateutil.Format(dateutil.MonthStart(today))
	}

	filtered := make([]workouts.Workout, 0, len(ws))
	for _, w := range ws {
		if since != "" && w.Date < since {
			continue
		}
		if f.Type != TypeAll && w.Type != f.Type {
			continue
		}
		filtered = append(filtered, w)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return workouts.Less(filtered[i], filtered[j])
	})

	// sorted by date, so equal dates are contiguous
	groups := []Group{}
	for _, w := range filtered {
		if n := len(groups); n > 0 && groups[n-1].Date == w.Date {
			groups[n-1].Workouts = append(groups[n-1].Workouts, w)
			continue
		}
		groups = append(groups, Group{
			Label:    dateutil.FriendlyDateLong(w.Date),
			Date:     w.Date,
			Workouts: []workouts.Workout{w},
		})
	}

	return Result{
		Groups:        groups,
		TotalSessions: len(filtered),
		UniqueDays:    len(groups),
		TypeOptions:   TypeOptions(s),
	}, nil
}

// TypeOptions lists the type filter choices: all, gym, then the catalog.
func TypeOptions(s settings.Settings) []string {
	options := []string{TypeAll, activity.Gym}
	options = append(options, s.Activities...)
	options = append(options, s.CustomActivities...)
	return options
}
