package fsutil

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"

	"github.com/charlievieth/fastwalk"
)

// ScanMediaPaths walks root recursively and returns every regular file
// whose format belongs to any configured media category, sorted. Hidden
// entries and hidden directory subtrees are skipped, as are entries the
// walker cannot read. A root that is not a directory resolves to an
// empty list.
func (f *FS) ScanMediaPaths(root string) ([]string, error) {
	if !f.IsDirectory(root) {
		return []string{}, nil
	}

	var mu sync.Mutex
	var found []string

	conf := fastwalk.Config{Follow: false}
	walkErr := fastwalk.Walk(&conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && isHiddenName(name) {
				return filepath.SkipDir
			}
			return nil
		}
		if isHiddenName(name) || !d.Type().IsRegular() {
			return nil
		}

		format := FileFormat(name)
		if f.formats.IsAudio(format) || f.formats.IsImage(format) || f.formats.IsVideo(format) {
			mu.Lock()
			found = append(found, path)
			mu.Unlock()
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, walkErr)
	}

	sort.Strings(found)
	return found, nil
}
