package settings

import (
	"context"
	"fmt"
	"slices"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/activity"
	"github.com/2beens/fittrack/internal/storage"
)

// Store holds the current settings and persists the full document after
// every successful mutation. Rejected mutations leave state untouched.
// Not safe for concurrent use; callers serialise access.
type Store struct {
	adapter  storage.Adapter
	settings Settings
}

func LoadStore(ctx context.Context, adapter storage.Adapter) *Store {
	partial, ok := storage.LoadJSON(ctx, adapter, storage.KeySettings, Partial{})
	if ok {
		log.Debugf("settings store: loaded persisted settings")
	}
	return &Store{
		adapter:  adapter,
		settings: partial.Merge(),
	}
}

func (s *Store) Get() Settings {
	return s.settings.Clone()
}

func (s *Store) Catalog() []string {
	return s.settings.Catalog()
}

func (s *Store) AddGymSplit(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if containsFold(s.settings.GymSplits, name) {
		return fmt.Errorf("%w: gym split [%s]", ErrDuplicate, name)
	}

	s.settings.GymSplits = append(s.settings.GymSplits, name)
	s.persist(ctx)
	return nil
}

func (s *Store) RemoveGymSplit(ctx context.Context, index int) error {
	if index < 0 || index >= len(s.settings.GymSplits) {
		return fmt.Errorf("%w: gym split %d of %d", ErrIndexOutOfRange, index, len(s.settings.GymSplits))
	}

	s.settings.GymSplits = slices.Delete(s.settings.GymSplits, index, index+1)
	s.persist(ctx)
	return nil
}

// AddCustomActivity stores the lowercased, trimmed name and returns it.
func (s *Store) AddCustomActivity(ctx context.Context, name string) (string, error) {
	id := activity.Normalize(name)
	if id == "" {
		return "", ErrEmptyName
	}
	if s.settings.HasActivity(id) {
		return "", fmt.Errorf("%w: activity [%s]", ErrDuplicate, id)
	}

	s.settings.CustomActivities = append(s.settings.CustomActivities, id)
	s.persist(ctx)
	return id, nil
}

func (s *Store) RemoveCustomActivity(ctx context.Context, index int) error {
	if index < 0 || index >= len(s.settings.CustomActivities) {
		return fmt.Errorf("%w: custom activity %d of %d", ErrIndexOutOfRange, index, len(s.settings.CustomActivities))
	}

	s.settings.CustomActivities = slices.Delete(s.settings.CustomActivities, index, index+1)
	s.persist(ctx)
	return nil
}

// ReplaceAll merges p over the defaults and persists the result.
func (s *Store) ReplaceAll(ctx context.Context, p Partial) {
	s.settings = p.Merge()
	s.persist(ctx)
}

func (s *Store) persist(ctx context.Context) {
	if err := storage.SaveJSON(ctx, s.adapter, storage.KeySettings, s.settings); err != nil {
		log.Errorf("settings store: persist: %s", err)
	}
}
