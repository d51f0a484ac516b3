package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/counterware/tally/pkg/types"
)

func TestBackup(t *testing.T) {
	s := setupStore(t)
	mustAddProduct(t, s, "A1", "Apple", "9.99", 5)

	backupDir := t.TempDir()
	path, err := s.Backup(backupDir)
	require.NoError(t, err)
	assert.Equal(t, backupDir, filepath.Dir(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// The snapshot is a complete database: renamed into place, a fresh
	// store opens it and sees the catalog.
	restoreDir := t.TempDir()
	require.NoError(t, os.Rename(path, filepath.Join(restoreDir, DBFileName)))

	restored, err := Open(types.Config{DataDir: restoreDir}, zerolog.Nop())
	require.NoError(t, err)
	defer restored.Close()

	p, err := restored.ProductByBarcode("A1")
	require.NoError(t, err)
	assert.Equal(t, "Apple", p.Name)
	assert.Equal(t, 5, p.Stock)
}

func TestBackupRejectsEmptyDir(t *testing.T) {
	s := setupStore(t)
	_, err := s.Backup("")
	assert.Error(t, err)
}

func TestBackupAfterClose(t *testing.T) {
	s, err := Open(types.Config{DataDir: t.TempDir()}, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = s.Backup(t.TempDir())
	assert.ErrorIs(t, err, types.ErrStoreClosed)
}
