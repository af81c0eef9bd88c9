package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDiskStore(t *testing.T) {
	_, err := NewDiskStore("")
	assert.Error(t, err)

	root := filepath.Join(t.TempDir(), "nested", "data")
	store, err := NewDiskStore(root)
	require.NoError(t, err)
	require.NotNil(t, store)

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestDiskStore_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	store, err := NewDiskStore(root)
	require.NoError(t, err)

	_, err = store.Get(ctx, KeySettings)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set(ctx, KeySettings, []byte(`{"gymSplits":[]}`)))
	value, err := store.Get(ctx, KeySettings)
	require.NoError(t, err)
	assert.Equal(t, `{"gymSplits":[]}`, string(value))

	onDisk, err := os.ReadFile(filepath.Join(root, KeySettings+".json"))
	require.NoError(t, err)
	assert.Equal(t, `{"gymSplits":[]}`, string(onDisk))

	require.NoError(t, store.Set(ctx, KeySettings, []byte(`{}`)))
	value, err = store.Get(ctx, KeySettings)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(value))

	// no temp files left behind
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.NoError(t, store.Delete(ctx, KeySettings))
	_, err = store.Get(ctx, KeySettings)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, store.Delete(ctx, KeySettings))
}

func TestDiskStore_InvalidKeys(t *testing.T) {
	ctx := context.Background()
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", ".", "..", "../escape", `a\b`, "a/b"} {
		_, err := store.Get(ctx, key)
		assert.ErrorIs(t, err, ErrInvalidKey, key)
		assert.ErrorIs(t, store.Set(ctx, key, []byte("x")), ErrInvalidKey, key)
		assert.ErrorIs(t, store.Delete(ctx, key), ErrInvalidKey, key)
	}
}
