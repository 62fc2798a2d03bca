package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// NewLogger builds the CLI logger: a text handler on w at the configured
// level. When log_file is set, records are also appended to that file as JSON
// at debug level. The returned closer releases the file and is never nil.
func NewLogger(cfg *Config, w io.Writer) (*slog.Logger, io.Closer, error) {
	text := slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.Level()})
	if cfg.LogFile == "" {
		return slog.New(text), nopCloser{}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	file := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(slogmulti.Fanout(text, file)), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
