package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// reloadDebounce bounds how often filesystem bursts turn into reload
// signals. Events inside the window re-arm a trailing check so the last
// write of a burst is never lost.
const reloadDebounce = 200 * time.Millisecond

// Watcher monitors the config file for external edits and signals reloads.
// Editors save through temp-file renames, so the parent directory is watched
// and rapid event bursts are coalesced through a rate limiter.
type Watcher struct {
	watcher    *fsnotify.Watcher
	configPath string
	reloadCh   chan struct{}
	closeCh    chan struct{}
	closeOnce  sync.Once
	limiter    *rate.Limiter

	modMu        sync.Mutex
	lastModified time.Time
}

// NewWatcher creates a watcher for the config file at path. The file's
// directory must exist; the file itself may not yet.
func NewWatcher(path string) (*Watcher, error) {
	resolved := path
	if abs, err := filepath.Abs(path); err == nil {
		resolved = abs
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	var lastMod time.Time
	if info, err := os.Stat(resolved); err == nil {
		lastMod = info.ModTime()
	}

	return &Watcher{
		watcher:      w,
		configPath:   resolved,
		lastModified: lastMod,
		reloadCh:     make(chan struct{}, 1),
		closeCh:      make(chan struct{}),
		limiter:      rate.NewLimiter(rate.Every(reloadDebounce), 1),
	}, nil
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start() {
	go w.loop()
}

func (w *Watcher) loop() {
	trailing := time.NewTimer(reloadDebounce)
	if !trailing.Stop() {
		<-trailing.C
	}
	defer trailing.Stop()

	for {
		select {
		case <-w.closeCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			eventPath := event.Name
			if abs, err := filepath.Abs(event.Name); err == nil {
				eventPath = abs
			}
			if eventPath != w.configPath {
				continue
			}
			if event.Op&fsnotify.Remove == fsnotify.Remove {
				// Likely the first half of an atomic rename.
				continue
			}
			if w.limiter.Allow() {
				w.checkAndNotify()
				continue
			}
			// Inside the rate window; re-arm the trailing check so the
			// final write of a burst still lands once the window passes.
			if !trailing.Stop() {
				select {
				case <-trailing.C:
				default:
				}
			}
			trailing.Reset(reloadDebounce)

		case <-trailing.C:
			w.checkAndNotify()

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) checkAndNotify() {
	info, err := os.Stat(w.configPath)
	if err != nil {
		return
	}
	w.modMu.Lock()
	changed := info.ModTime().After(w.lastModified)
	if changed {
		w.lastModified = info.ModTime()
	}
	w.modMu.Unlock()
	if !changed {
		return
	}
	select {
	case w.reloadCh <- struct{}{}:
	default:
	}
}

// ReloadChannel signals each detected config change. The channel is
// buffered; unconsumed signals coalesce.
func (w *Watcher) ReloadChannel() <-chan struct{} {
	return w.reloadCh
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		close(w.closeCh)
	})
	return w.watcher.Close()
}
