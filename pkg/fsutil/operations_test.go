package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyFile(t *testing.T) {
	f := newTestFS()
	dir := t.TempDir()
	src := writeFile(t, dir, "src.txt")
	dest := filepath.Join(dir, "dest.txt")

	ok, err := f.CopyFile(src, dest)
	require.NoError(t, err)
	assert.True(t, ok)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))

	// source is untouched
	assert.True(t, f.IsFile(src))
}

func TestCopyFileMissingSource(t *testing.T) {
	f := newTestFS()
	dir := t.TempDir()
	dest := filepath.Join(dir, "dest.txt")

	ok, err := f.CopyFile(filepath.Join(dir, "missing.txt"), dest)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, f.IsFile(dest))
}

func TestMoveFile(t *testing.T) {
	f := newTestFS()
	dir := t.TempDir()
	src := writeFile(t, dir, "src.txt")
	dest := filepath.Join(dir, "dest.txt")

	ok, err := f.MoveFile(src, dest)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, f.IsFile(src))
	assert.True(t, f.IsFile(dest))
}

func TestMoveFileMissingSource(t *testing.T) {
	f := newTestFS()
	dir := t.TempDir()

	ok, err := f.MoveFile(filepath.Join(dir, "missing.txt"), filepath.Join(dir, "dest.txt"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRemoveFile(t *testing.T) {
	f := newTestFS()
	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt")

	ok, err := f.RemoveFile(path)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, f.IsFile(path))

	// already gone
	ok, err = f.RemoveFile(path)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCreateDirectoryIdempotent(t *testing.T) {
	f := newTestFS()
	path := filepath.Join(t.TempDir(), "a", "b", "c")

	ok, err := f.CreateDirectory(path)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.CreateDirectory(path)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.True(t, f.IsDirectory(path))
}

func TestCreateDirectoryOverFile(t *testing.T) {
	f := newTestFS()
	dir := t.TempDir()
	file := writeFile(t, dir, "taken.txt")

	ok, err := f.CreateDirectory(file)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, f.IsFile(file))

	ok, err = f.CreateDirectory("")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRemoveDirectory(t *testing.T) {
	f := newTestFS()
	dir := t.TempDir()
	sub := makeDir(t, dir, "sub")
	writeFile(t, sub, "a.txt")
	makeDir(t, sub, "nested")

	ok, err := f.RemoveDirectory(sub)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, f.IsDirectory(sub))

	// not a directory any more
	ok, err = f.RemoveDirectory(sub)
	require.NoError(t, err)
	assert.False(t, ok)
}
