package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads the store when the catalog file changes on disk.
// Events are debounced so editors and sync tools that write in bursts
// trigger a single reload per burst.
type Watcher struct {
	store    *Store
	logger   *zap.Logger
	debounce time.Duration
	fsw      *fsnotify.Watcher
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewWatcher creates a watcher for the store's catalog file. The parent
// directory is watched rather than the file itself: atomic writers
// replace the file, which would silently drop a direct watch.
func NewWatcher(store *Store, debounce time.Duration, logger *zap.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("catalog: create watcher: %w", err)
	}
	dir := filepath.Dir(store.Path())
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("catalog: watch %s: %w", dir, err)
	}
	return &Watcher{
		store:    store,
		logger:   logger,
		debounce: debounce,
		fsw:      fsw,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start(ctx context.Context) {
	w.logger.Info("watching catalog file",
		zap.String("path", w.store.Path()),
		zap.Duration("debounce", w.debounce),
	)
	go w.run(ctx)
}

// Stop terminates the watch loop and waits for it to exit.
func (w *Watcher) Stop() {
	close(w.stopCh)
	<-w.doneCh
	if err := w.fsw.Close(); err != nil {
		w.logger.Warn("close watcher", zap.Error(err))
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	debounce := time.NewTimer(w.debounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			if !debounce.Stop() {
				select {
				case <-debounce.C:
				default:
				}
			}
			debounce.Reset(w.debounce)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("catalog watch error", zap.Error(err))
		case <-debounce.C:
			w.logger.Info("catalog file changed, reloading")
			if _, err := w.store.Reload(ctx); err != nil {
				w.logger.Warn("reload after file change failed", zap.Error(err))
			}
		}
	}
}

// relevant filters directory events down to writes of the catalog file.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Base(ev.Name) != filepath.Base(w.store.Path()) {
		return false
	}
	return ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}
