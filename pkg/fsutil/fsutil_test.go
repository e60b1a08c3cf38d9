package fsutil_test

import (
	"context"
	"crypto/sha256"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goaoc/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads content and hash", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "2023-05.txt")
		content := []byte("seeds: 79 14 55 13\n")
		require.NoError(t, os.WriteFile(path, content, 0644))

		got, info, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, content, got)
		assert.Equal(t, path, info.Path)
		assert.Equal(t, int64(len(content)), info.Size)
		assert.Equal(t, sha256.Sum256(content), info.Hash)
		assert.Len(t, info.HashString(), 64)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
		require.ErrorIs(t, err, fsutil.ErrNotFound)
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), t.TempDir())
		require.ErrorIs(t, err, fsutil.ErrIsDirectory)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := fsutil.ReadFile(ctx, "whatever.txt")
		require.ErrorIs(t, err, context.Canceled)
	})
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestReadInput(t *testing.T) {
	t.Parallel()

	t.Run("stdin", func(t *testing.T) {
		t.Parallel()

		got, info, err := fsutil.ReadInput(context.Background(), fsutil.StdinPath, strings.NewReader("Time: 7\n"))
		require.NoError(t, err)
		assert.Equal(t, "Time: 7\n", string(got))
		assert.Equal(t, fsutil.StdinPath, info.Path)
		assert.Equal(t, int64(8), info.Size)
	})

	t.Run("stdin unavailable", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadInput(context.Background(), fsutil.StdinPath, nil)
		require.ErrorIs(t, err, fsutil.ErrNoStdin)
	})

	t.Run("stdin read error", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadInput(context.Background(), fsutil.StdinPath, failingReader{})
		require.ErrorContains(t, err, "broken pipe")
	})

	t.Run("file path ignores stdin", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "input.txt")
		require.NoError(t, os.WriteFile(path, []byte("file"), 0644))

		got, info, err := fsutil.ReadInput(context.Background(), path, strings.NewReader("stdin"))
		require.NoError(t, err)
		assert.Equal(t, "file", string(got))
		assert.Equal(t, path, info.Path)
	})
}

func TestExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	assert.True(t, fsutil.Exists(path))
	assert.False(t, fsutil.Exists(dir))
	assert.False(t, fsutil.Exists(filepath.Join(dir, "missing.txt")))
}

func TestFileInfo_HashStringNil(t *testing.T) {
	t.Parallel()

	var info *fsutil.FileInfo
	assert.Empty(t, info.HashString())
}
