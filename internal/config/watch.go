package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/metaball"
)

// Watch reloads the file at path whenever it is written or replaced and
// passes every valid result to fn. Files that fail to load are logged and
// skipped. Watch blocks until ctx is done and then returns ctx.Err().
func Watch(ctx context.Context, path string, fn func(Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: watch: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	// Editors often save by renaming a temp file over the original, which
	// drops a watch on the file itself, so watch its directory.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("config: watch %s: %w", path, err)
	}
	name := filepath.Clean(path)

	log := metaball.Logger()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != name || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := Load(path)
			if err != nil {
				log.Warn("config: reload skipped", "path", path, "err", err)
				continue
			}
			log.Info("config: reloaded", "path", path)
			fn(cfg)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("config: watcher error", "err", err)
		}
	}
}
