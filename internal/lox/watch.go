package lox

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch calls onChange with the changed script paths whenever any of paths
// is written or recreated. Events within debounce of each other are
// coalesced into one call with the paths sorted. onChange runs on the
// goroutine that called Watch, one call at a time, and never after Watch
// returns. Watch blocks until ctx is cancelled.
func Watch(ctx context.Context, paths []string, debounce time.Duration, logger *slog.Logger, onChange func([]string)) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Editors often replace files on save, so watch the directories and
	// filter events by name.
	watched := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending = make(map[string]bool)
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			// Only handle write/create events for watched scripts
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || !watched[name] {
				continue
			}
			logger.Debug("change detected", "path", name, "op", event.Op.String())

			pending[name] = true
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			changed := slices.Sorted(maps.Keys(pending))
			clear(pending)
			if ctx.Err() == nil {
				onChange(changed)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}
