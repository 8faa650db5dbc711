package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Rako024/transcript-archive/internal/logger"
)

// OnReload receives the freshly loaded config after the file changed on disk.
type OnReload func(cfg *Config)

// Watch monitors the config file and invokes onReload with the re-parsed
// config on every write. Only tunables should be consumed from reloads;
// connection targets are fixed at process start. Blocks until ctx is done.
func Watch(ctx context.Context, path string, onReload OnReload, log logger.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	// Watch the directory: editors replace the file, which drops a watch
	// placed on the file itself.
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("add watch path: %w", err)
	}

	target := filepath.Clean(path)
	log.Info(ctx, "Config watcher started: %s", target)

	for {
		select {
		case <-ctx.Done():
			log.Info(ctx, "Config watcher stopped")
			return ctx.Err()

		case event, ok := <-w.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			// Small delay so the writer finishes before we re-read.
			time.Sleep(100 * time.Millisecond)

			cfg, err := Load(target)
			if err != nil {
				log.Warn(ctx, "Config reload skipped: %v", err)
				continue
			}
			log.Info(ctx, "Config reloaded: %s", target)
			onReload(cfg)

		case err, ok := <-w.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			log.Error(ctx, "Config watcher error: %v", err)
		}
	}
}
