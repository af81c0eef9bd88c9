package workouts

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/2beens/fittrack/internal/activity"
	"github.com/2beens/fittrack/internal/dateutil"
)

var (
	ErrMissingType  = errors.New("activity type is required")
	ErrMissingSplit = errors.New("gym session requires a split")
	ErrInvalidDate  = errors.New("invalid workout date")
)

// CreatedAtLayout is the createdAt format written for new workouts: UTC with
// milliseconds. Imported values are kept as they are.
const CreatedAtLayout = "2006-01-02T15:04:05.000Z"

// Workout is a single logged activity session.
// Split is set only for gym sessions; Duration is in minutes.
type Workout struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	Type      string  `json:"type"`
	Split     *string `json:"split"`
	Duration  *int    `json:"duration"`
	Notes     string  `json:"notes"`
	CreatedAt string  `json:"createdAt,omitempty"`
}

func (w Workout) IsGym() bool {
	return w.Type == activity.Gym
}

// DisplayName is the split for gym sessions, the activity label otherwise.
func (w Workout) DisplayName() string {
	if w.IsGym() && w.Split != nil && *w.Split != "" {
		return *w.Split
	}
	return activity.Lookup(w.Type).Label
}

// Created parses CreatedAt. A missing or unparsable value gives the zero time.
func (w Workout) Created() time.Time {
	if w.CreatedAt == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, w.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}

func (w Workout) String() string {
	return fmt.Sprintf("%s [%s] %s", w.Date, w.Type, w.ID)
}

type LogParams struct {
	Type     string `json:"type"`
	Date     string `json:"date"`
	Split    string `json:"split"`
	Duration int    `json:"duration"`
	Notes    string `json:"notes"`
}

// New validates params and builds a fresh workout with a UUIDv7 id.
func New(params LogParams, clock dateutil.Clock) (Workout, error) {
	workoutType := activity.Normalize(params.Type)
	if workoutType == "" {
		return Workout{}, ErrMissingType
	}

	date := strings.TrimSpace(params.Date)
	if date == "" {
		date = dateutil.Format(dateutil.Today(clock))
	} else if !dateutil.IsValid(date) {
		return Workout{}, fmt.Errorf("%w: [%s]", ErrInvalidDate, date)
	}

	var split *string
	if workoutType == activity.Gym {
		s := strings.TrimSpace(params.Split)
		if s == "" {
			return Workout{}, ErrMissingSplit
		}
		split = &s
	}

	var duration *int
	if params.Duration > 0 {
		d := params.Duration
		duration = &d
	}

	id, err := uuid.NewV7()
	if err != nil {
		return Workout{}, fmt.Errorf("generate id: %w", err)
	}

	return Workout{
		ID:        id.String(),
		Date:      date,
		Type:      workoutType,
		Split:     split,
		Duration:  duration,
		Notes:     strings.TrimSpace(params.Notes),
		CreatedAt: clock.Now().UTC().Format(CreatedAtLayout),
	}, nil
}

// Less orders workouts most recent first: date desc, then createdAt desc,
// then id desc. Workouts without a createdAt come last within their day.
func Less(a, b Workout) bool {
	if a.Date != b.Date {
		return a.Date > b.Date
	}
	ac, bc := a.Created(), b.Created()
	if !ac.Equal(bc) {
		return ac.After(bc)
	}
	return a.ID > b.ID
}
