package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/coocood/freecache"
)

var _ Adapter = (*MemoryStore)(nil)

// DefaultMemorySizeMB allows single documents of up to 32KB.
const DefaultMemorySizeMB = 32

// MemoryStore keeps documents in process memory. Nothing survives a restart,
// so it is meant for tests and throwaway sessions.
//
// freecache refuses values larger than 1/1024 of the cache size; such writes
// fail with freecache.ErrLargeEntry.
type MemoryStore struct {
	cache *freecache.Cache
}

func NewMemoryStore(sizeMB int) *MemoryStore {
	megabyte := 1024 * 1024
	if sizeMB <= 0 {
		sizeMB = DefaultMemorySizeMB
	}
	return &MemoryStore{
		cache: freecache.NewCache(sizeMB * megabyte),
	}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	value, err := m.cache.Get([]byte(key))
	if err != nil {
		if errors.Is(err, freecache.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("memory get: %w", err)
	}
	return value, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	// 0 -> never expires
	if err := m.cache.Set([]byte(key), value, 0); err != nil {
		return fmt.Errorf("memory set: %w", err)
	}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.cache.Del([]byte(key))
	return nil
}
