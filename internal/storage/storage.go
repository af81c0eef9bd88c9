// Package storage is the persistence adapter: a durable key -> JSON document
// store. Values are always full documents; there are no partial updates.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("key not found")

const (
	KeyWorkouts = "ft_workouts"
	KeySettings = "ft_settings"
)

type Adapter interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// LoadJSON reads and decodes key. It never fails: a missing, null or corrupt
// value yields fallback, and the second return value reports whether the
// stored document was used.
func LoadJSON[T any](ctx context.Context, adapter Adapter, key string, fallback T) (T, bool) {
	data, err := adapter.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Debugf("storage: [%s] not found, using defaults", key)
		} else {
			log.Warnf("storage: get [%s]: %s, using defaults", key, err)
		}
		return fallback, false
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return fallback, false
	}

	var value T
	if err := json.Unmarshal(trimmed, &value); err != nil {
		log.Warnf("storage: corrupt [%s] document: %s, using defaults", key, err)
		return fallback, false
	}
	return value, true
}

func SaveJSON(ctx context.Context, adapter Adapter, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal [%s]: %w", key, err)
	}
	if err := adapter.Set(ctx, key, data); err != nil {
		return fmt.Errorf("set [%s]: %w", key, err)
	}
	return nil
}
