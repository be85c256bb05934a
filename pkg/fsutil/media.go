package fsutil

// isMediaType reports whether path is a regular file whose format is a
// member of the given category. Directories and missing paths never
// classify into any category.
func (f *FS) isMediaType(path string, member func(string) bool) bool {
	return f.IsFile(path) && member(FileFormat(path))
}

// IsAudio reports whether path is an existing audio file.
func (f *FS) IsAudio(path string) bool {
	return f.isMediaType(path, f.formats.IsAudio)
}

// IsImage reports whether path is an existing image file.
func (f *FS) IsImage(path string) bool {
	return f.isMediaType(path, f.formats.IsImage)
}

// IsVideo reports whether path is an existing video file.
func (f *FS) IsVideo(path string) bool {
	return f.isMediaType(path, f.formats.IsVideo)
}

// HasAudio reports whether at least one path in the list is an audio
// file. An empty list has no audio.
func (f *FS) HasAudio(paths []string) bool {
	return anyMatch(paths, f.IsAudio)
}

// HasImage reports whether at least one path in the list is an image file.
func (f *FS) HasImage(paths []string) bool {
	return anyMatch(paths, f.IsImage)
}

// HasVideo reports whether at least one path in the list is a video file.
func (f *FS) HasVideo(paths []string) bool {
	return anyMatch(paths, f.IsVideo)
}

// AreAudios reports whether the list is non-empty and every path in it
// is an audio file. An empty list is not all-audio.
func (f *FS) AreAudios(paths []string) bool {
	return allMatch(paths, f.IsAudio)
}

// AreImages reports whether the list is non-empty and every path in it
// is an image file.
func (f *FS) AreImages(paths []string) bool {
	return allMatch(paths, f.IsImage)
}

// AreVideos reports whether the list is non-empty and every path in it
// is a video file.
func (f *FS) AreVideos(paths []string) bool {
	return allMatch(paths, f.IsVideo)
}

// FilterAudioPaths returns the audio files from paths, order preserved.
func (f *FS) FilterAudioPaths(paths []string) []string {
	return filterPaths(paths, f.IsAudio)
}

// FilterImagePaths returns the image files from paths, order preserved.
func (f *FS) FilterImagePaths(paths []string) []string {
	return filterPaths(paths, f.IsImage)
}

// FilterVideoPaths returns the video files from paths, order preserved.
func (f *FS) FilterVideoPaths(paths []string) []string {
	return filterPaths(paths, f.IsVideo)
}

func anyMatch(paths []string, pred func(string) bool) bool {
	for _, path := range paths {
		if pred(path) {
			return true
		}
	}
	return false
}

func allMatch(paths []string, pred func(string) bool) bool {
	if len(paths) == 0 {
		return false
	}
	for _, path := range paths {
		if !pred(path) {
			return false
		}
	}
	return true
}

func filterPaths(paths []string, pred func(string) bool) []string {
	matched := make([]string, 0, len(paths))
	for _, path := range paths {
		if pred(path) {
			matched = append(matched, path)
		}
	}
	return matched
}
