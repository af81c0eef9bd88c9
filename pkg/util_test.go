package pkg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPathExists(t *testing.T) {
	exists, err := PathExists("/invalid/path/some-dir", true)
	assert.NoError(t, err)
	assert.False(t, exists)
	exists, err = PathExists("/invalid/path/some-file", false)
	assert.NoError(t, err)
	assert.False(t, exists)

	tempDir := t.TempDir()
	exists, err = PathExists(tempDir, true)
	assert.NoError(t, err)
	assert.True(t, exists)

	// a directory is not a file
	exists, err = PathExists(tempDir, false)
	assert.NoError(t, err)
	assert.False(t, exists)

	backupFile := filepath.Join(tempDir, "fittrack-backup-2024-06-03.json")
	require.NoError(t, os.WriteFile(backupFile, []byte(`{}`), 0o600))
	exists, err = PathExists(backupFile, false)
	assert.NoError(t, err)
	assert.True(t, exists)
	exists, err = PathExists(backupFile, true)
	assert.NoError(t, err)
	assert.False(t, exists)
}
