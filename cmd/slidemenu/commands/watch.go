package commands

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce collapses the burst of events editors emit on save.
const reloadDebounce = 100 * time.Millisecond

// ConfigWatcher reloads the config file whenever it changes on disk.
type ConfigWatcher struct {
	fsWatcher *fsnotify.Watcher
	path      string
	debounce  time.Duration
	logger    *slog.Logger
}

// NewConfigWatcher watches path. The parent directory is watched rather
// than the file so that editors replacing the file by rename are seen.
func NewConfigWatcher(path string, logger *slog.Logger) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ConfigWatcher{
		fsWatcher: fsw,
		path:      abs,
		debounce:  reloadDebounce,
		logger:    logger,
	}, nil
}

// Run delivers a freshly loaded config (or the load error) to onChange
// after each debounced change, until ctx is done or the watcher fails.
// Run closes the watcher before returning.
func (w *ConfigWatcher) Run(ctx context.Context, onChange func(Config, error)) error {
	defer w.fsWatcher.Close()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			cfg, err := LoadConfig(w.path)
			if err != nil {
				w.logger.Warn("config reload failed", "path", w.path, "err", err)
			} else {
				w.logger.Info("config reloaded", "path", w.path)
			}
			onChange(cfg, err)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", w.path, err)
		}
	}
}

func (w *ConfigWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}
