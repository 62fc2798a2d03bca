// Package config provides configuration management for the lox CLI.
//
// Values are layered with koanf, lowest precedence first: built-in
// defaults, lox.yaml (or lox.yml) found by searching upward from the
// working directory, LOX_* environment variables, and finally flags that
// were set explicitly on the command line.
package config

import "time"

// Config holds all CLI configuration options.
type Config struct {
	Output        string        `koanf:"output"`
	NoColor       bool          `koanf:"no_color"`
	Verbose       bool          `koanf:"verbose"`
	LogLevel      string        `koanf:"log_level"`
	LogFile       string        `koanf:"log_file"`
	HistoryFile   string        `koanf:"history_file"`
	Prompt        string        `koanf:"prompt"`
	ASTFormat     string        `koanf:"ast_format"`
	WatchDebounce time.Duration `koanf:"watch_debounce"`
}

// Default configuration values.
const (
	DefaultOutput        = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultLogLevel      = "warn"
	DefaultPrompt        = "> "
	DefaultASTFormat     = "prefix"
	DefaultWatchDebounce = 100 * time.Millisecond
	DefaultHistoryFile   = ".lox_history"
)

// Allowed values for enumerated options.
var (
	OutputModes = []string{"auto", "text", "json", "yaml", "markdown"}
	LogLevels   = []string{"debug", "info", "warn", "error"}
	ASTFormats  = []string{"prefix", "tree"}
)

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Output:        DefaultOutput,
		LogLevel:      DefaultLogLevel,
		Prompt:        DefaultPrompt,
		ASTFormat:     DefaultASTFormat,
		WatchDebounce: DefaultWatchDebounce,
	}
}
