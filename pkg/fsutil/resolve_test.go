package fsutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFilePaths(t *testing.T) {
	f := newTestFS()
	dir := t.TempDir()
	makeDir(t, dir, ".git")
	makeDir(t, dir, "__pycache__")
	writeFile(t, dir, "b.txt")
	writeFile(t, dir, "a.txt")
	writeFile(t, dir, ".hidden")

	got, err := f.ResolveFilePaths(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.txt"),
	}, got)
}

func TestResolveFilePathsNotADirectory(t *testing.T) {
	f := newTestFS()
	dir := t.TempDir()
	file := writeFile(t, dir, "a.txt")

	got, err := f.ResolveFilePaths(file)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = f.ResolveFilePaths(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestResolveFilePattern(t *testing.T) {
	f := newTestFS()
	dir := t.TempDir()
	b := writeFile(t, dir, "b.png")
	a := writeFile(t, dir, "a.png")
	writeFile(t, dir, "c.txt")

	got, err := f.ResolveFilePattern(filepath.Join(dir, "*.png"))
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, got)
}

func TestResolveFilePatternGuard(t *testing.T) {
	f := newTestFS()
	dir := t.TempDir()
	writeFile(t, dir, "a.png")

	// pattern whose literal parent does not exist resolves to nothing,
	// even though matching files exist elsewhere
	got, err := f.ResolveFilePattern(filepath.Join(dir, "nope", "*.png"))
	require.NoError(t, err)
	assert.Empty(t, got)

	// a pattern that is itself an existing directory is rejected too
	got, err = f.ResolveFilePattern(dir)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestResolveRelativePath(t *testing.T) {
	got := ResolveRelativePath("../testdata")

	assert.True(t, filepath.IsAbs(got))
	assert.Equal(t, "testdata", filepath.Base(got))
}
