// Package watch reports the changes of a file, debounced.
package watch

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Watcher monitors one file. The directory holding the file is watched so the file
// can be replaced, as editors do, without losing track of it.
type Watcher struct {
	Path    string
	Changes <-chan struct{} // Read-only external channel

	changes  chan struct{}
	done     chan struct{}
	debounce time.Duration
	watcher  *fsnotify.Watcher
	started  bool
}

// NewWatcher creates a watcher reporting the changes of path once no event was seen
// for debounce.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to resolve %s", path)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "unable to create file watcher")
	}

	ch := make(chan struct{}, 1)

	return &Watcher{
		Path:     abs,
		Changes:  ch,
		changes:  ch,
		done:     make(chan struct{}),
		debounce: debounce,
		watcher:  fw,
	}, nil
}

// Start begins watching the file.
func (w *Watcher) Start() error {
	err := w.watcher.Add(filepath.Dir(w.Path))
	if err != nil {
		w.watcher.Close()

		return errors.Wrapf(err, "unable to watch %s", w.Path)
	}

	w.started = true
	go w.loop()

	return nil
}

// Stop closes the watcher and the Changes channel. It must be called once, whether
// Start succeeded or not.
func (w *Watcher) Stop() {
	w.watcher.Close()

	if w.started {
		<-w.done // Wait for loop to exit
	}

	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	var last time.Time

	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != w.Path {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				last = time.Now()
			}

		case <-ticker.C:
			if !last.IsZero() && time.Since(last) >= w.debounce {
				last = time.Time{}
				w.emit()
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Ignore watch errors; they're non-fatal.
		}
	}
}

// emit never blocks: a change already pending covers this one.
func (w *Watcher) emit() {
	select {
	case w.changes <- struct{}{}:
	default:
	}
}
