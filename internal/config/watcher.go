// ABOUTME: Polling-based file watcher for hot-reloading the sequence file
// ABOUTME: Monitors file mtime and size at a configurable interval until its context ends

package config

import (
	"context"
	"os"
	"sync"
	"time"
)

// DefaultWatchInterval is the polling interval used by NewWatcher.
const DefaultWatchInterval = 2 * time.Second

type fileStamp struct {
	mtime time.Time
	size  int64
}

// Watcher monitors files for changes by polling their mtime and size.
type Watcher struct {
	paths    []string
	onChange func(changed []string)

	mu       sync.Mutex
	interval time.Duration
	stamps   map[string]fileStamp
}

// NewWatcher creates a watcher that calls onChange with the paths that were
// modified, created or removed since the previous check.
func NewWatcher(paths []string, onChange func(changed []string)) *Watcher {
	w := &Watcher{
		paths:    paths,
		onChange: onChange,
		interval: DefaultWatchInterval,
		stamps:   make(map[string]fileStamp),
	}
	w.snapshotLocked()
	return w
}

// SetInterval overrides the polling interval. Call before Run.
func (w *Watcher) SetInterval(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.interval = d
}

// Run polls until ctx is done.
func (w *Watcher) Run(ctx context.Context) {
	w.mu.Lock()
	interval := w.interval
	w.mu.Unlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Check()
		}
	}
}

// Check compares the files against the last snapshot, calls onChange
// synchronously if any differ and returns the changed paths.
func (w *Watcher) Check() []string {
	w.mu.Lock()
	changed := w.changedLocked()
	if len(changed) > 0 {
		w.snapshotLocked()
	}
	w.mu.Unlock()

	if len(changed) > 0 {
		w.onChange(changed)
	}
	return changed
}

// changedLocked lists paths whose stamp differs from the snapshot. Must hold mu.
func (w *Watcher) changedLocked() []string {
	var changed []string
	for _, path := range w.paths {
		prev, existed := w.stamps[path]
		info, err := os.Stat(path)
		if err != nil {
			if existed {
				changed = append(changed, path)
			}
			continue
		}
		cur := fileStamp{mtime: info.ModTime(), size: info.Size()}
		if !existed || cur != prev {
			changed = append(changed, path)
		}
	}
	return changed
}

// snapshotLocked records current stamps. Must hold mu.
func (w *Watcher) snapshotLocked() {
	for _, path := range w.paths {
		info, err := os.Stat(path)
		if err != nil {
			delete(w.stamps, path)
			continue
		}
		w.stamps[path] = fileStamp{mtime: info.ModTime(), size: info.Size()}
	}
}
