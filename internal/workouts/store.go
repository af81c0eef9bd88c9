package workouts

import (
	"context"
	"slices"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/storage"
)

// Store holds the workout collection in memory and writes the whole
// collection back through the adapter after every mutation.
// Not safe for concurrent use; callers serialise access.
type Store struct {
	adapter  storage.Adapter
	workouts []Workout
}

// LoadStore reads the persisted collection. Missing or corrupt data starts
// an empty collection.
func LoadStore(ctx context.Context, adapter storage.Adapter) *Store {
	loaded, ok := storage.LoadJSON(ctx, adapter, storage.KeyWorkouts, []Workout{})
	if loaded == nil {
		loaded = []Workout{}
	}
	if ok {
		log.Debugf("workouts store: loaded %d workouts", len(loaded))
	}
	return &Store{
		adapter:  adapter,
		workouts: loaded,
	}
}

// List returns a snapshot in stored order.
func (s *Store) List() []Workout {
	return slices.Clone(s.workouts)
}

func (s *Store) Len() int {
	return len(s.workouts)
}

func (s *Store) Add(ctx context.Context, w Workout) {
	s.workouts = append(s.workouts, w)
	s.persist(ctx)
}

// Remove deletes the workout with the given id and reports whether one was found.
func (s *Store) Remove(ctx context.Context, id string) bool {
	idx := slices.IndexFunc(s.workouts, func(w Workout) bool {
		return w.ID == id
	})
	if idx < 0 {
		return false
	}
	s.workouts = slices.Delete(s.workouts, idx, idx+1)
	s.persist(ctx)
	return true
}

func (s *Store) ReplaceAll(ctx context.Context, workouts []Workout) {
	if workouts == nil {
		workouts = []Workout{}
	}
	s.workouts = slices.Clone(workouts)
	s.persist(ctx)
}

// persist failures leave the in-memory state as the source of truth
// for the rest of the session.
func (s *Store) persist(ctx context.Context) {
	if err := storage.SaveJSON(ctx, s.adapter, storage.KeyWorkouts, s.workouts); err != nil {
		log.Errorf("workouts store: persist %d workouts: %s", len(s.workouts), err)
	}
}
