// Package logger wraps log/slog with printf-style helpers and tag/package/file filtering.
package logger

import (
	"log/slog"
	"strings"
)

// Config holds all settings for the logger. It is decoded from the [logger] table.
type Config struct {
	// LogLevel is the minimum level: debug, info, warn or error.
	LogLevel string `toml:"log_level"`

	// LogFilePath is the output file. Empty or "-" means stderr.
	LogFilePath string `toml:"log_file"`

	// Enabled* lists restrict output to matching records when non-empty.
	// Disabled* lists always win over the enabled ones.
	EnabledTags      []string `toml:"enabled_tags"`
	DisabledTags     []string `toml:"disabled_tags"`
	EnabledPackages  []string `toml:"enabled_packages"`
	DisabledPackages []string `toml:"disabled_packages"`
	EnabledFiles     []string `toml:"enabled_files"`
	DisabledFiles    []string `toml:"disabled_files"`

	level    slog.Level
	tags     filterSet
	packages filterSet
	files    filterSet
}

// NewConfig returns a Config with default values.
func NewConfig() Config {
	return Config{LogLevel: "info"}
}

// ParseLevel maps a level name to a slog.Level. Unknown names map to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// process converts the string lists into lookup sets.
func (c *Config) process() {
	c.level = ParseLevel(c.LogLevel)
	c.tags = newFilterSet(c.EnabledTags, c.DisabledTags)
	c.packages = newFilterSet(c.EnabledPackages, c.DisabledPackages)
	c.files = newFilterSet(c.EnabledFiles, c.DisabledFiles)
}

// filterSet is an allow/deny pair. A nil allow map means "allow everything".
type filterSet struct {
	allow map[string]struct{}
	deny  map[string]struct{}
}

func newFilterSet(allow, deny []string) filterSet {
	return filterSet{allow: sliceToSet(allow), deny: sliceToSet(deny)}
}

// permits reports whether key passes the filter. Empty keys only fail an allow list.
func (f filterSet) permits(key string) bool {
	key = strings.ToLower(key)
	if _, denied := f.deny[key]; denied && key != "" {
		return false
	}
	if f.allow == nil {
		return true
	}
	_, ok := f.allow[key]
	return ok
}

func (f filterSet) active() bool {
	return f.allow != nil || f.deny != nil
}

func sliceToSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		item = strings.ToLower(strings.TrimSpace(item))
		if item != "" {
			set[item] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}

// SplitList splits a comma separated flag value, dropping blanks.
func SplitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
