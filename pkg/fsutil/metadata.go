package fsutil

import (
	"path/filepath"
	"strings"
)

// formatRenames maps extensions whose bare form differs from the
// normalized format name.
var formatRenames = map[string]string{
	".jpg": "jpeg",
	".tif": "tiff",
}

// FileSize returns the byte size of path when it is a regular file, 0
// otherwise. It never fails.
func (f *FS) FileSize(path string) int64 {
	if !f.IsFile(path) {
		return 0
	}
	info, err := f.stat(path)
	if err != nil || info == nil {
		return 0
	}
	return info.Size()
}

// FileName returns the base name of path with its extension stripped,
// or "" when nothing remains (e.g. a dot-file with no stem).
func FileName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// FileExtension returns the lower-cased extension of path including the
// leading dot, or "" when path has none.
func FileExtension(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// FileFormat returns the extension of path normalized to a bare format
// name: lower-case, no leading dot, with jpg mapped to jpeg and tif to
// tiff. Returns "" when path has no extension.
func FileFormat(path string) string {
	ext := FileExtension(path)
	if ext == "" {
		return ""
	}
	if format, ok := formatRenames[ext]; ok {
		return format
	}
	return strings.TrimPrefix(ext, ".")
}

// SameFileExtension reports whether both paths carry an identical
// extension. Two paths without any extension compare equal.
func SameFileExtension(first, second string) bool {
	return FileExtension(first) == FileExtension(second)
}
