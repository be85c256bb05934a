package fsutil

import (
	"fmt"
	"io"
	"os"

	"github.com/bstardust/mediafs/internal/logger"
)

// Mutating operations check a precondition, run the OS call through the
// retry wrapper, then verify a postcondition instead of trusting the call.
// They return (false, nil) for ordinary failures (missing path, wrong
// type, failed postcondition) and a non-nil error only when the retry
// budget was exhausted on the OS call itself.

// CopyFile copies src to dest. Reports success only when dest exists as
// a regular file afterwards.
func (f *FS) CopyFile(src, dest string) (bool, error) {
	if !f.IsFile(src) {
		return false, nil
	}
	if err := retryDo("copy", f.retry, func() error {
		return copyFileContents(src, dest)
	}); err != nil {
		return false, fmt.Errorf("copy %s to %s: %w", src, dest, err)
	}
	return f.IsFile(dest), nil
}

// MoveFile moves src to dest, falling back to copy-then-remove when a
// rename is not possible (e.g. across devices). Reports success only
// when src is gone and dest exists as a regular file.
func (f *FS) MoveFile(src, dest string) (bool, error) {
	if !f.IsFile(src) {
		return false, nil
	}
	if err := retryDo("move", f.retry, func() error {
		return movePath(src, dest)
	}); err != nil {
		return false, fmt.Errorf("move %s to %s: %w", src, dest, err)
	}
	return !f.IsFile(src) && f.IsFile(dest), nil
}

// RemoveFile deletes path. Reports success only when path is no longer
// a regular file afterwards.
func (f *FS) RemoveFile(path string) (bool, error) {
	if !f.IsFile(path) {
		return false, nil
	}
	if err := retryDo("remove", f.retry, func() error {
		return os.Remove(path)
	}); err != nil {
		return false, fmt.Errorf("remove %s: %w", path, err)
	}
	return !f.IsFile(path), nil
}

// CreateDirectory creates the directory tree at path. A pre-existing
// directory is not an error; an empty path or a path already taken by a
// regular file fails without touching the filesystem.
func (f *FS) CreateDirectory(path string) (bool, error) {
	if path == "" || f.IsFile(path) {
		return false, nil
	}
	if err := retryDo("mkdir", f.retry, func() error {
		return os.MkdirAll(path, 0o755)
	}); err != nil {
		return false, fmt.Errorf("mkdir %s: %w", path, err)
	}
	return f.IsDirectory(path), nil
}

// RemoveDirectory deletes the directory tree at path. Entries that
// cannot be removed are tolerated; the postcondition check on the
// directory itself decides success.
func (f *FS) RemoveDirectory(path string) (bool, error) {
	if !f.IsDirectory(path) {
		return false, nil
	}
	if err := retryDo("rmtree", f.retry, func() error {
		return os.RemoveAll(path)
	}); err != nil {
		logger.Debug(scope, "rmtree %s left entries behind: %v", path, err)
	}
	return !f.IsDirectory(path), nil
}

// copyFileContents copies src to dest, creating or truncating dest with
// the source file's permissions.
func copyFileContents(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// movePath renames src to dest, degrading to copy-then-remove when the
// rename itself fails (cross-device moves).
func movePath(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}
	if err := copyFileContents(src, dest); err != nil {
		return err
	}
	return os.Remove(src)
}
