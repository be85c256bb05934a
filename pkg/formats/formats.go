// Package formats holds the media format configuration: which bare,
// lower-case format names (e.g. "mp3", "jpeg", "mp4") count as audio,
// image and video.
package formats

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config lists the recognized formats per media category. Values are
// bare lower-case format names without a leading dot ("jpeg", never
// ".jpg"). Config values are treated as immutable once built.
type Config struct {
	Audio []string `mapstructure:"audio"`
	Image []string `mapstructure:"image"`
	Video []string `mapstructure:"video"`
}

// Default returns the built-in format lists.
func Default() Config {
	return Config{
		Audio: []string{"aac", "flac", "m4a", "mp3", "ogg", "opus", "wav", "wma"},
		Image: []string{"bmp", "gif", "heic", "heif", "jpeg", "png", "tiff", "webp"},
		Video: []string{"3gp", "avi", "flv", "m4v", "mkv", "mov", "mp4", "webm", "wmv"},
	}
}

// Load reads format lists from the given config file (YAML, JSON or TOML,
// decided by extension) with MEDIAFS_* environment overrides. Keys absent
// from both file and environment keep their Default() value.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("mediafs")
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("audio", def.Audio)
	v.SetDefault("image", def.Image)
	v.SetDefault("video", def.Video)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading format config %s: %w", path, err)
		}
	}

	cfg := Config{
		Audio: normalize(v.GetStringSlice("audio")),
		Image: normalize(v.GetStringSlice("image")),
		Video: normalize(v.GetStringSlice("video")),
	}
	return cfg, nil
}

// normalize lower-cases entries and strips any leading dot, so config
// files may list ".JPG" and still match the internal format form.
func normalize(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.ToLower(strings.TrimSpace(value))
		value = strings.TrimPrefix(value, ".")
		if value != "" {
			out = append(out, value)
		}
	}
	return out
}

// IsAudio reports whether format is a configured audio format.
func (c Config) IsAudio(format string) bool {
	return contains(c.Audio, format)
}

// IsImage reports whether format is a configured image format.
func (c Config) IsImage(format string) bool {
	return contains(c.Image, format)
}

// IsVideo reports whether format is a configured video format.
func (c Config) IsVideo(format string) bool {
	return contains(c.Video, format)
}

func contains(list []string, format string) bool {
	if format == "" {
		return false
	}
	for _, entry := range list {
		if entry == format {
			return true
		}
	}
	return false
}
