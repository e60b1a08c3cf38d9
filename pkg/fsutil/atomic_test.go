package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goaoc/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("writes new file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".goaoc.yml")
		require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("jobs: 4\n"), 0644))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "jobs: 4\n", string(got))
	})

	t.Run("replaces existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".goaoc.yml")
		require.NoError(t, os.WriteFile(path, []byte("original"), 0644))

		require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("replaced"), 0644))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "replaced", string(got))
	})

	t.Run("applies mode", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			mode os.FileMode
			want os.FileMode
		}{
			{0600, 0600},
			{0, fsutil.DefaultFileMode},
		}

		for _, tt := range tests {
			path := filepath.Join(t.TempDir(), "out.txt")
			require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("x"), tt.mode))

			stat, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stat.Mode().Perm())
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.txt")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := fsutil.WriteAtomic(ctx, path, []byte("content"), 0644)
		require.ErrorIs(t, err, context.Canceled)
		assert.False(t, fsutil.Exists(path))
	})

	t.Run("leaves no temp files on error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		err := fsutil.WriteAtomic(context.Background(), filepath.Join(dir, "missing", "out.txt"), []byte("content"), 0644)
		require.Error(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, entry := range entries {
			assert.False(t, strings.Contains(entry.Name(), ".tmp."), "temp file left behind: %s", entry.Name())
		}
	})
}
