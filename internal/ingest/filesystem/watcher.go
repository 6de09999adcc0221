package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/regcheck-cli/internal/logger"
)

// DefaultDebounce is how long the watcher waits after the last event before
// firing. Editors and office suites save in bursts of partial writes.
const DefaultDebounce = 500 * time.Millisecond

// Watcher monitors a directory tree for document changes and invokes a
// callback once per settled burst of events.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
}

// NewWatcher creates a directory watcher.
func NewWatcher() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	return &Watcher{fsw: fsw, debounce: DefaultDebounce}, nil
}

// Watch blocks watching dir and its subdirectories until ctx is cancelled.
// onChange is called with the path of the last changed document after each
// debounced burst of create, write, remove, or rename events on supported
// files. New subdirectories are watched as they appear.
func (w *Watcher) Watch(ctx context.Context, dir string, onChange func(path string)) error {
	if err := w.addRecursive(dir); err != nil {
		return err
	}

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending string
	)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if w.handleEvent(event) {
				pending = event.Name
				if timer == nil {
					timer = time.NewTimer(w.debounce)
					timerC = timer.C
				} else {
					timer.Reset(w.debounce)
				}
			}

		case <-timerC:
			timer = nil
			timerC = nil
			onChange(pending)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// handleEvent reports whether the event should trigger a change callback.
// Directory creations extend the watch instead.
func (w *Watcher) handleEvent(event fsnotify.Event) bool {
	if isHidden(event.Name) {
		return false
	}
	if event.Op.Has(fsnotify.Create) {
		// A created path may be a new subdirectory that needs watching.
		if err := w.addRecursive(event.Name); err != nil {
			logger.Debug("watch %s: %v", event.Name, err)
		}
	}
	if !Supported(event.Name) {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}

// addRecursive watches path and every subdirectory if path is a directory.
// Non-directories are ignored.
func (w *Watcher) addRecursive(path string) error {
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != path && isHidden(p) {
			return filepath.SkipDir
		}
		return w.fsw.Add(p)
	})
}

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
