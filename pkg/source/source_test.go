package source_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LooneyRichie/looneygrep/pkg/fsutil"
	"github.com/LooneyRichie/looneygrep/pkg/source"
)

func TestFromFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "poem.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0644))

	unit, err := source.FromFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, path, unit.Label)
	assert.True(t, unit.IsFile())
	assert.Equal(t, []string{"one", "two", "three"}, unit.Lines)
	assert.True(t, unit.TrailingNewline)
	require.NotNil(t, unit.Info)
}

func TestFromFile_NoTrailingNewline(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "raw.txt")
	require.NoError(t, os.WriteFile(path, []byte("only line"), 0644))

	unit, err := source.FromFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"only line"}, unit.Lines)
	assert.False(t, unit.TrailingNewline)
}

func TestFromFile_CRLF(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "dos.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\r\nb\r\n"), 0644))

	unit, err := source.FromFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, unit.Lines)
}

func TestFromFile_NotFound(t *testing.T) {
	t.Parallel()

	_, err := source.FromFile(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, fsutil.ErrNotFound)
}

func TestFromFile_Binary(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "blob.bin")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x80}, 0644))

	_, err := source.FromFile(context.Background(), path)
	assert.ErrorIs(t, err, source.ErrNotText)
}

func TestFromDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("bravo\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("alpha\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("secret\n"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "nested.txt"), []byte("deep\n"), 0644))

	units, skipped, err := source.FromDir(context.Background(), dir)
	require.NoError(t, err)
	assert.Empty(t, skipped)

	// Deterministic enumeration order, non-recursive, every regular file
	// searched including dot-prefixed ones.
	require.Len(t, units, 3)
	assert.Equal(t, filepath.Join(dir, ".env"), units[0].Label)
	assert.Equal(t, filepath.Join(dir, "a.txt"), units[1].Label)
	assert.Equal(t, filepath.Join(dir, "b.txt"), units[2].Label)
}

func TestFromDir_SkipsUnreadable(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good1.txt"), []byte("fine\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good2.txt"), []byte("fine\n"), 0644))
	// A dangling symlink reads like an unreadable file.
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), filepath.Join(dir, "broken.txt")))

	units, skipped, err := source.FromDir(context.Background(), dir)
	require.NoError(t, err, "one unreadable file must not abort the run")

	assert.Len(t, units, 2)
	require.Len(t, skipped, 1)
	assert.Equal(t, filepath.Join(dir, "broken.txt"), skipped[0].Path)
	assert.Error(t, skipped[0].Err)
}

func TestFromDir_SkipsBinary(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "text.txt"), []byte("ok\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blob.bin"), []byte{0xff, 0x00, 0x80}, 0644))

	units, skipped, err := source.FromDir(context.Background(), dir)
	require.NoError(t, err)

	assert.Len(t, units, 1)
	require.Len(t, skipped, 1)
	assert.ErrorIs(t, skipped[0].Err, source.ErrNotText)
}

func TestJoinLines(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a\nb\n", source.JoinLines([]string{"a", "b"}, true))
	assert.Equal(t, "a\nb", source.JoinLines([]string{"a", "b"}, false))
	assert.Equal(t, "", source.JoinLines(nil, true))
}

func TestSplitJoinRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "poem.txt")
	original := "one\ntwo\n\nthree\n"
	require.NoError(t, os.WriteFile(path, []byte(original), 0644))

	unit, err := source.FromFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, original, source.JoinLines(unit.Lines, unit.TrailingNewline))
}
