package settings

import (
	"errors"
	"slices"
	"strings"

	"github.com/2beens/fittrack/internal/activity"
)

var (
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrDuplicate       = errors.New("name already exists")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Settings is the user-editable catalog of gym splits and activity types.
type Settings struct {
	GymSplits        []string `json:"gymSplits"`
	Activities       []string `json:"activities"`
	CustomActivities []string `json:"customActivities"`
}

func Defaults() Settings {
	return Settings{
		GymSplits:        []string{"Chest / Triceps", "Back / Biceps", "Shoulders / Legs"},
		Activities:       []string{"cycling", "badminton", "running", "swimming", "yoga", "hiking"},
		CustomActivities: []string{},
	}
}

// Partial is the persisted / imported shape: absent and null fields stay nil
// and are taken from the defaults on merge.
type Partial struct {
	GymSplits        []string `json:"gymSplits"`
	Activities       []string `json:"activities"`
	CustomActivities []string `json:"customActivities"`
}

// Merge applies p over the defaults field by field. Lists are cleaned the way
// the add operations validate input: names are trimmed, blank ones and
// case-insensitive duplicates are dropped, and gym never shows up among the
// activities. Custom activities may not repeat a listed activity.
func (p Partial) Merge() Settings {
	s := Defaults()
	if p.GymSplits != nil {
		s.GymSplits = uniqueNames(p.GymSplits, nil)
	}
	if p.Activities != nil {
		s.Activities = uniqueNames(p.Activities, []string{activity.Gym})
	}
	if p.CustomActivities != nil {
		s.CustomActivities = uniqueNames(p.CustomActivities, append([]string{activity.Gym}, s.Activities...))
	}
	return s
}

// uniqueNames keeps the first occurrence of every non-blank name not already
// in taken, ignoring case.
func uniqueNames(names, taken []string) []string {
	seen := slices.Clone(taken)
	unique := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || containsFold(seen, name) {
			continue
		}
		seen = append(seen, name)
		unique = append(unique, name)
	}
	return unique
}

func (s Settings) Clone() Settings {
	return Settings{
		GymSplits:        cloneNonNil(s.GymSplits),
		Activities:       cloneNonNil(s.Activities),
		CustomActivities: cloneNonNil(s.CustomActivities),
	}
}

// Catalog lists every selectable activity id: gym, then activities, then custom ones.
func (s Settings) Catalog() []string {
	catalog := make([]string, 0, 1+len(s.Activities)+len(s.CustomActivities))
	catalog = append(catalog, activity.Gym)
	catalog = append(catalog, s.Activities...)
	catalog = append(catalog, s.CustomActivities...)
	return catalog
}

// HasActivity reports whether id is already in the catalog, ignoring case.
func (s Settings) HasActivity(id string) bool {
	return containsFold(s.Catalog(), id)
}

func containsFold(list []string, name string) bool {
	return slices.ContainsFunc(list, func(item string) bool {
		return strings.EqualFold(item, name)
	})
}

func cloneNonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return slices.Clone(list)
}
