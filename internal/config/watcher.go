package config

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch reloads the configuration whenever its file changes on disk, so
// operators can rotate the flag while a game is running. It blocks until
// the context is cancelled; run it in its own goroutine. Returns an
// error only when the watch cannot be established, which includes a
// configuration running on defaults with no file to watch.
func (c *Config) Watch(ctx context.Context, onChange func()) error {
	source := c.Source()
	if source == "" {
		return fmt.Errorf("no configuration file to watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(source); err != nil {
		return fmt.Errorf("failed to watch %s: %w", source, err)
	}
	c.log.Info("watching configuration for changes", zap.String("file", source))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				c.log.Info("configuration changed on disk, reloading", zap.String("file", source))
				c.Reload()
				if onChange != nil {
					onChange()
				}
			}
			// Editors that replace the file break the watch; re-add.
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				_ = watcher.Add(source)
				c.Reload()
				if onChange != nil {
					onChange()
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			c.log.Warn("configuration watcher error", zap.Error(err))
		}
	}
}
