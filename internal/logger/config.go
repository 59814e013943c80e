// Package logger provides configurable logging for templit.
package logger

import (
	"log/slog"
	"strings"
)

// Config holds all settings for the logger.
type Config struct {
	// LogLevel specifies the minimum level to log ("debug", "info",
	// "warn", "error").
	LogLevel string `toml:"level"`

	// LogFilePath is the path to the output log file. Empty or "-"
	// means stderr.
	LogFilePath string `toml:"file"`

	// EnabledTags only logs messages carrying these tags (if non-empty).
	EnabledTags []string `toml:"tags"`
	// DisabledTags drops messages carrying these tags. Overrides
	// EnabledTags.
	DisabledTags []string `toml:"disable_tags"`

	level           slog.Leveler
	enabledTagsSet  map[string]struct{}
	disabledTagsSet map[string]struct{}
}

// NewConfig creates a Config with default values.
func NewConfig() Config {
	return Config{
		LogLevel:    "info",
		LogFilePath: "",
	}
}

// process parses string levels and filter lists into efficient
// internal forms.
func (c *Config) process() {
	c.level = slog.LevelInfo
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		c.level = slog.LevelDebug
	case "info":
		c.level = slog.LevelInfo
	case "warn", "warning":
		c.level = slog.LevelWarn
	case "error", "err":
		c.level = slog.LevelError
	}

	c.enabledTagsSet = sliceToSet(c.EnabledTags)
	c.disabledTagsSet = sliceToSet(c.DisabledTags)
}

func sliceToSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item != "" {
			set[strings.ToLower(item)] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil // nil map simplifies the checks in the handler
	}
	return set
}
