package app

import (
	"time"

	"github.com/2beens/fittrack/internal/activity"
	"github.com/2beens/fittrack/internal/dateutil"
	"github.com/2beens/fittrack/internal/stats"
	"github.com/2beens/fittrack/internal/workouts"
)

// WorkoutView is a workout plus everything needed to render it.
type WorkoutView struct {
	workouts.Workout
	Name     string        `json:"name"`
	When     string        `json:"when"`
	Kind     activity.Kind `json:"kind"`
	Activity activity.Meta `json:"activity"`
}

func newWorkoutView(w workouts.Workout, today time.Time) WorkoutView {
	a := activity.Lookup(w.Type)
	return WorkoutView{
		Workout:  w,
		Name:     w.DisplayName(),
		When:     dateutil.FriendlyDate(w.Date, today),
		Kind:     a.Kind,
		Activity: a.Meta,
	}
}

func newWorkoutViews(ws []workouts.Workout, today time.Time) []WorkoutView {
	views := make([]WorkoutView, 0, len(ws))
	for _, w := range ws {
		views = append(views, newWorkoutView(w, today))
	}
	return views
}

type ActivityOption struct {
	ID   string        `json:"id"`
	Kind activity.Kind `json:"kind"`
	activity.Meta
}

func newActivityOption(id string) ActivityOption {
	a := activity.Lookup(id)
	return ActivityOption{
		ID:   a.ID,
		Kind: a.Kind,
		Meta: a.Meta,
	}
}

type BreakdownView struct {
	stats.BreakdownRow
	Activity activity.Meta `json:"activity"`
}

type LegendItem struct {
	Type     string        `json:"type"`
	Activity activity.Meta `json:"activity"`
}

type MonthRef struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

type CalendarView struct {
	Year   int             `json:"year"`
	Month  int             `json:"month"`
	Title  string          `json:"title"`
	Days   []stats.DayCell `json:"days"`
	Legend []LegendItem    `json:"legend"`
	Prev   MonthRef        `json:"prev"`
	Next   MonthRef        `json:"next"`
}

type Dashboard struct {
	Today     string          `json:"today"`
	Summary   stats.Summary   `json:"summary"`
	WeekStrip []stats.WeekDay `json:"weekStrip"`
	Calendar  CalendarView    `json:"calendar"`
	Breakdown []BreakdownView `json:"breakdown"`
	Recent    []WorkoutView   `json:"recent"`
}

type HistoryGroup struct {
	Label    string        `json:"label"`
	Date     string        `json:"date"`
	Workouts []WorkoutView `json:"workouts"`
}

type TypeOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type HistoryView struct {
	Time          string         `json:"time"`
	Type          string         `json:"type"`
	Groups        []HistoryGroup `json:"groups"`
	TotalSessions int            `json:"totalSessions"`
	UniqueDays    int            `json:"uniqueDays"`
	TypeOptions   []TypeOption   `json:"typeOptions"`
}

type LogOptions struct {
	Today      string           `json:"today"`
	Activities []ActivityOption `json:"activities"`
	GymSplits  []string         `json:"gymSplits"`
}

type IndexedSplit struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

type IndexedActivity struct {
	Index int `json:"index"`
	ActivityOption
}

type SettingsView struct {
	GymSplits         []IndexedSplit    `json:"gymSplits"`
	BuiltinActivities []ActivityOption  `json:"builtinActivities"`
	CustomActivities  []IndexedActivity `json:"customActivities"`
	TotalWorkouts     int               `json:"totalWorkouts"`
}

type ImportResult struct {
	WorkoutsReplaced bool `json:"workoutsReplaced"`
	SettingsReplaced bool `json:"settingsReplaced"`
	WorkoutsCount    int  `json:"workoutsCount"`
}
