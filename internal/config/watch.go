package config

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors the config file for edits so a running session can pick up
// a newly supplied capability key without a restart. Edits are debounced:
// editors tend to fire several write events per save.
type Watcher struct {
	Path    string
	Changes <-chan Config // Read-only external channel

	changes chan Config
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the given config file path.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan Config, 4)
	w := &Watcher{
		Path:    path,
		Changes: ch,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}
	return w, nil
}

// Start begins watching the config file's directory for changes. Watching the
// directory rather than the file survives rename-based atomic saves.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		return err
	}

	go w.loop()
	return nil
}

// Stop closes the watcher and channels.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done // Wait for loop to exit
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	const debounce = 250 * time.Millisecond
	var pending bool
	var last time.Time
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.Path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = true
			last = time.Now()

		case <-ticker.C:
			if !pending || time.Since(last) < debounce {
				continue
			}
			pending = false
			w.emit()

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are not actionable here; the next edit retries.
		}
	}
}

// emit re-reads the config and pushes it to the channel, dropping the update
// if the consumer is behind.
func (w *Watcher) emit() {
	cfg := Reload()
	select {
	case w.changes <- cfg:
	default:
	}
}
