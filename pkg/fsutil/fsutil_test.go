package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LooneyRichie/looneygrep/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "poem.txt")
	require.NoError(t, os.WriteFile(path, []byte("line one\nline two\n"), 0644))

	content, info, err := fsutil.ReadFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "line one\nline two\n", string(content))
	require.NotNil(t, info)
	assert.Equal(t, path, info.Path)
	assert.Equal(t, int64(len(content)), info.Size)
}

func TestReadFile_NotFound(t *testing.T) {
	t.Parallel()

	_, _, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, fsutil.ErrNotFound)
}

func TestReadFile_Directory(t *testing.T) {
	t.Parallel()

	_, _, err := fsutil.ReadFile(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, fsutil.ErrIsDirectory)
}

func TestCheckModified(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0644))

	ctx := context.Background()
	_, info, err := fsutil.ReadFile(ctx, path)
	require.NoError(t, err)

	modified, err := fsutil.CheckModified(ctx, info)
	require.NoError(t, err)
	assert.False(t, modified)

	require.NoError(t, os.WriteFile(path, []byte("changed!!"), 0644))

	modified, err = fsutil.CheckModified(ctx, info)
	require.NoError(t, err)
	assert.True(t, modified)
}

func TestCheckModified_TouchWithoutChange(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("stable"), 0644))

	ctx := context.Background()
	_, info, err := fsutil.ReadFile(ctx, path)
	require.NoError(t, err)

	// Bump the mod time but keep the content; the hash check should win.
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, future, future))

	modified, err := fsutil.CheckModified(ctx, info)
	require.NoError(t, err)
	assert.False(t, modified)
}

func TestCheckModified_Deleted(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	ctx := context.Background()
	_, info, err := fsutil.ReadFile(ctx, path)
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))

	modified, err := fsutil.CheckModified(ctx, info)
	require.NoError(t, err)
	assert.True(t, modified)
}

func TestCheckModified_NilInfo(t *testing.T) {
	t.Parallel()

	_, err := fsutil.CheckModified(context.Background(), nil)
	assert.ErrorIs(t, err, fsutil.ErrNilFileInfo)
}
