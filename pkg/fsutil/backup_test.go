package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdpara/pkg/fsutil"
)

func TestBackupPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/path/to/.mdpara.yml.bak", fsutil.BackupPath("/path/to/.mdpara.yml"))
}

func TestCreateBackup(t *testing.T) {
	t.Parallel()

	t.Run("missing original needs no backup", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "absent.yml")
		written, err := fsutil.CreateBackup(context.Background(), path)
		require.NoError(t, err)
		assert.False(t, written)

		_, err = os.Stat(fsutil.BackupPath(path))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("copies original with its mode", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("jobs: 2\n"), 0o600))

		written, err := fsutil.CreateBackup(context.Background(), path)
		require.NoError(t, err)
		assert.True(t, written)

		got, err := os.ReadFile(fsutil.BackupPath(path))
		require.NoError(t, err)
		assert.Equal(t, "jobs: 2\n", string(got))

		info, err := os.Stat(fsutil.BackupPath(path))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("replaces an older backup", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(fsutil.BackupPath(path), []byte("old"), 0o644))
		require.NoError(t, os.WriteFile(path, []byte("new"), 0o644))

		_, err := fsutil.CreateBackup(context.Background(), path)
		require.NoError(t, err)

		got, err := os.ReadFile(fsutil.BackupPath(path))
		require.NoError(t, err)
		assert.Equal(t, "new", string(got))
	})
}
