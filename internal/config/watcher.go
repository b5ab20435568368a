package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the configuration whenever its file changes on disk
type Watcher struct {
	path       string
	customPath string
	loader     *Loader
	watcher    *fsnotify.Watcher
}

// NewWatcher watches path, the file resolved from customPath. The parent
// directory is watched so editors that replace the file are noticed too.
func NewWatcher(path, customPath string, loader *Loader) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}

	return &Watcher{
		path:       filepath.Clean(path),
		customPath: customPath,
		loader:     loader,
		watcher:    watcher,
	}, nil
}

// Path returns the watched file
func (w *Watcher) Path() string {
	return w.path
}

// Run blocks until ctx is done, calling onChange with every successfully
// reloaded configuration and onError with reload or watcher failures.
func (w *Watcher) Run(ctx context.Context, onChange func(*Config), onError func(error)) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.relevant(event) {
				continue
			}
			cfg, err := w.loader.LoadConfig(w.customPath)
			if err != nil {
				onError(fmt.Errorf("reload %s: %w", w.path, err))
				continue
			}
			onChange(cfg)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			onError(err)
		}
	}
}

// Close stops watching
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create) != 0
}
