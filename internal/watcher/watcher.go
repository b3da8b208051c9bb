// Package watcher reloads the vendor catalog when its backing file changes.
// Each reload builds a fresh immutable catalog and swaps it into the store,
// so in-flight lookups keep their snapshot and never block.
package watcher

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/fabworks-cad/fastener-resolver/internal/mcmaster"
)

const debounceWindow = 500 * time.Millisecond

// CatalogWatcher watches one catalog file and reloads it after changes
// settle. Editors often produce bursts of writes and renames, so events are
// debounced before triggering a load.
type CatalogWatcher struct {
	path  string
	store *mcmaster.Store

	fsWatcher *fsnotify.Watcher

	mu    sync.Mutex
	timer *time.Timer
}

func New(path string, store *mcmaster.Store) (*CatalogWatcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory, not the file: renames replace the inode.
	if err := fsWatcher.Add(filepath.Dir(path)); err != nil {
		fsWatcher.Close()
		return nil, err
	}
	return &CatalogWatcher{
		path:      path,
		store:     store,
		fsWatcher: fsWatcher,
	}, nil
}

// Run processes events until the context is cancelled.
func (w *CatalogWatcher) Run(ctx context.Context) {
	defer w.fsWatcher.Close()
	slog.Info("watching vendor catalog for changes", "path", w.path)

	for {
		select {
		case <-ctx.Done():
			w.cancelPending()
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload()
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			slog.Warn("catalog watcher error", "err", err)
		}
	}
}

func (w *CatalogWatcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(debounceWindow, w.reload)
}

func (w *CatalogWatcher) cancelPending() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

func (w *CatalogWatcher) reload() {
	catalog, err := mcmaster.Load(w.path)
	if err != nil {
		slog.Error("failed to reload vendor catalog, keeping previous snapshot", "path", w.path, "err", err)
		return
	}
	w.store.Replace(catalog)
	slog.Info("vendor catalog reloaded", "path", w.path, "parts", catalog.Len())
}
