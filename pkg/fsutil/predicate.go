package fsutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// stat runs os.Stat through the retry wrapper. A not-exist result is an
// answer, not a failure: it comes back as a nil FileInfo with a nil error
// so it never burns retry attempts.
func (f *FS) stat(path string) (os.FileInfo, error) {
	return retryValue("stat", f.retry, func() (os.FileInfo, error) {
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, nil
			}
			return nil, err
		}
		return info, nil
	})
}

// IsFile reports whether path names an existing regular file.
// Any persistent stat failure reads as false.
func (f *FS) IsFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := f.stat(path)
	return err == nil && info != nil && info.Mode().IsRegular()
}

// IsDirectory reports whether path names an existing directory.
func (f *FS) IsDirectory(path string) bool {
	if path == "" {
		return false
	}
	info, err := f.stat(path)
	return err == nil && info != nil && info.IsDir()
}

// InDirectory reports whether path sits inside an existing directory:
// it has a parent component, is not itself a directory, and the parent
// exists as a directory. A bare name with no parent component is never
// in a directory.
func (f *FS) InDirectory(path string) bool {
	if path == "" {
		return false
	}
	if filepath.Base(path) == path {
		return false
	}
	dir := filepath.Dir(path)
	return !f.IsDirectory(path) && f.IsDirectory(dir)
}
