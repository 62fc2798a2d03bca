package config

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !slices.Contains(OutputModes, c.Output) {
		return fmt.Errorf("invalid output %q (expected one of %s)", c.Output, strings.Join(OutputModes, ", "))
	}
	if !slices.Contains(LogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log_level %q (expected one of %s)", c.LogLevel, strings.Join(LogLevels, ", "))
	}
	if !slices.Contains(ASTFormats, c.ASTFormat) {
		return fmt.Errorf("invalid ast_format %q (expected one of %s)", c.ASTFormat, strings.Join(ASTFormats, ", "))
	}
	if c.WatchDebounce < 0 {
		return fmt.Errorf("watch_debounce must not be negative, got %s", c.WatchDebounce)
	}
	return nil
}

// Level returns the slog level for the configuration. Verbose forces debug.
func (c *Config) Level() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
