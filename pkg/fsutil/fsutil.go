// Package fsutil provides filesystem and media-type helpers for
// media-processing pipelines: path predicates, file metadata extraction,
// audio/image/video classification by extension, batch filters, verified
// copy/move/remove operations and directory/glob resolution.
//
// Every filesystem call runs through a fixed-delay retry wrapper. Expected
// failures (missing paths, wrong entry type, failed postconditions) collapse
// to false or empty results; an error is returned only when the retry budget
// is exhausted on the underlying OS call.
package fsutil

import (
	"github.com/bstardust/mediafs/pkg/formats"
)

// FS bundles the media format configuration with the retry policy.
// It is stateless and safe for concurrent use.
type FS struct {
	formats formats.Config
	retry   RetryConfig
}

// New returns an FS with the default retry policy.
func New(cfg formats.Config) *FS {
	return NewWithRetry(cfg, DefaultRetryConfig())
}

// NewWithRetry returns an FS with an explicit retry policy.
func NewWithRetry(cfg formats.Config, rc RetryConfig) *FS {
	if rc.Attempts < 1 {
		rc.Attempts = 1
	}
	if rc.Delay < 0 {
		rc.Delay = 0
	}
	return &FS{formats: cfg, retry: rc}
}

// Formats returns the configured format lists.
func (f *FS) Formats() formats.Config {
	return f.formats
}
