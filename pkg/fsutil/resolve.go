package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// isHiddenName reports whether a directory entry name is hidden:
// dot-files and dunder entries like __pycache__.
func isHiddenName(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "__")
}

// ResolveFilePaths lists the non-hidden entries of dir in lexicographic
// order, each joined with dir. A path that is not a directory resolves
// to an empty list; an error is returned only when reading the directory
// failed persistently.
func (f *FS) ResolveFilePaths(dir string) ([]string, error) {
	if !f.IsDirectory(dir) {
		return []string{}, nil
	}

	entries, err := retryValue("listdir", f.retry, func() ([]os.DirEntry, error) {
		return os.ReadDir(dir)
	})
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	// os.ReadDir returns entries sorted by name
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if isHiddenName(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}

// ResolveFilePattern returns the sorted glob matches for pattern, but
// only when the pattern string, taken literally as a path, sits inside
// an existing directory. Anything else resolves to an empty list no
// matter what the glob would match.
func (f *FS) ResolveFilePattern(pattern string) ([]string, error) {
	if !f.InDirectory(pattern) {
		return []string{}, nil
	}

	matches, err := retryValue("glob", f.retry, func() ([]string, error) {
		return doublestar.FilepathGlob(pattern)
	})
	if err != nil {
		return nil, fmt.Errorf("globbing %s: %w", pattern, err)
	}

	sort.Strings(matches)
	return matches, nil
}

// ResolveRelativePath resolves path against this package's own source
// location and returns the result as an absolute path.
func ResolveRelativePath(path string) string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), path)
}
