package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bstardust/mediafs/pkg/formats"
	"github.com/stretchr/testify/require"
)

// newTestFS returns an FS with zero inter-attempt delay so failure
// paths do not sleep in tests.
func newTestFS() *FS {
	return NewWithRetry(formats.Default(), RetryConfig{Attempts: 3, Delay: 0})
}

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))
	return path
}

func makeDir(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(path, 0o755))
	return path
}
