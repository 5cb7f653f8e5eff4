package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/newton-rings/config"
	"github.com/AnkushinDaniil/newton-rings/entity/parameters"
)

// Watch plots the config at path and re-plots it every time the file is
// written, until ctx is done. A refused plot keeps the previous output.
func Watch(ctx context.Context, path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	a, err := FromConfig(cfg)
	if err != nil {
		return err
	}
	if err := a.Run(ctx); err != nil {
		if !errors.Is(err, parameters.ErrInvalidParameters) {
			return err
		}
		log.Warn(a.Locale.Labels().Warning)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file, so the directory is watched.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch config: %w", err)
	}
	log.WithField("config", path).Info("Watching config")

	target := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("Watcher error")
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			a.reload(ctx, path)
		}
	}
}

func (a *App) reload(ctx context.Context, path string) {
	// A truncating write reports an empty file first.
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		return
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.WithError(err).Warn("Config not reloaded")
		return
	}
	next, err := FromConfig(cfg)
	if err != nil {
		log.WithError(err).Warn("Config not reloaded")
		return
	}
	a.Output, a.Format, a.Locale, a.Params = next.Output, next.Format, next.Locale, next.Params

	if err := a.Run(ctx); err != nil {
		if errors.Is(err, parameters.ErrInvalidParameters) {
			log.Warn(a.Locale.Labels().Warning)
			return
		}
		log.WithError(err).Error("Plot failed")
	}
}
