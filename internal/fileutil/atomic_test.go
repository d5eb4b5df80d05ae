package fileutil

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeString(s string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

func TestReplaceFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "save.yml")

	require.NoError(t, ReplaceFile(path, 0o600, writeString("hello world")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files left behind")
	assert.Equal(t, "save.yml", entries[0].Name())
}

func TestReplaceFileOverwrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "save.yml")

	require.NoError(t, ReplaceFile(path, 0o644, writeString("initial")))
	require.NoError(t, ReplaceFile(path, 0o644, writeString("updated content")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "updated content", string(data))
}

func TestReplaceFileWriterErrorKeepsOldFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "save.yml")
	require.NoError(t, ReplaceFile(path, 0o644, writeString("original")))

	boom := errors.New("boom")
	err := ReplaceFile(path, 0o644, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})
	assert.ErrorIs(t, err, boom)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file not cleaned up")
}

func TestReplaceFileInvalidDir(t *testing.T) {
	t.Parallel()

	err := ReplaceFile("/nonexistent/dir/save.yml", 0o644, writeString("data"))
	assert.Error(t, err)
}

func TestRemoveIfExists(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "save.yml")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	require.NoError(t, RemoveIfExists(path))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, RemoveIfExists(path))
}
