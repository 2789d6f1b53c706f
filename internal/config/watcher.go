package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/docforge/docforge/internal/defs"
)

// watchDebounce coalesces rapid editor write events into one reload.
const watchDebounce = 500 * time.Millisecond

// SectionWatcher watches the section directory for changes and triggers
// manager reloads. Reload failures keep the previous configuration.
type SectionWatcher struct {
	manager *ConfigManager
	watcher *fsnotify.Watcher
}

// NewSectionWatcher creates a watcher bound to an initialized manager.
// Returns ErrNotInitialized if the manager has not loaded a configuration.
func NewSectionWatcher(manager *ConfigManager) (*SectionWatcher, error) {
	if manager.Get() == nil {
		return nil, ErrNotInitialized
	}
	return &SectionWatcher{manager: manager}, nil
}

// Start begins watching the section directory until ctx is cancelled.
func (w *SectionWatcher) Start(ctx context.Context) error {
	sectionsDir := w.sectionsDir()
	if _, err := os.Stat(sectionsDir); err != nil {
		return fmt.Errorf("watch sections dir: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	w.watcher = watcher

	if err := watcher.Add(sectionsDir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch %s: %w", sectionsDir, err)
	}

	slog.Info("watching section files for changes", "path", sectionsDir)

	go w.watchLoop(ctx)
	return nil
}

// watchLoop is the main file watcher loop.
func (w *SectionWatcher) watchLoop(ctx context.Context) {
	// Debounce timer to avoid multiple reloads for rapid file changes
	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			slog.Info("section watcher stopped")
			if w.watcher != nil {
				_ = w.watcher.Close()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Write, Create, and Rename cover vim, nano, and atomic
			// temp-file + rename saves
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				if filepath.Ext(event.Name) != ".yaml" {
					continue
				}
				slog.Debug("section file changed", "op", event.Op.String(), "file", filepath.Base(event.Name))

				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(watchDebounce, func() {
					if err := w.manager.Reload(); err != nil {
						slog.Error("automatic config reload failed", "error", err)
					} else {
						slog.Info("configuration reloaded")
					}
				})
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("section watcher error", "error", err)
		}
	}
}

// Stop stops the watcher (if running).
func (w *SectionWatcher) Stop() {
	if w.watcher != nil {
		_ = w.watcher.Close()
	}
}

// sectionsDir returns the directory the watcher observes, honoring the
// DOCFORGE_CONFIG_DIR override like the manager does.
func (w *SectionWatcher) sectionsDir() string {
	configDir := filepath.Join(filepath.Clean(w.manager.root), defs.DocforgeDir)
	if envDir := os.Getenv(defs.EnvConfigDir); envDir != "" {
		configDir = filepath.Clean(envDir)
	}
	return filepath.Join(configDir, defs.SectionsSubdir)
}
