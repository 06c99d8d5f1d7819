// Package watch notices external changes to the directory being browsed so
// the view can reload without user action.
package watch

import (
	"fmt"
	"sync"
	"time"

	"skim/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Event is one filesystem change inside the watched directory.
type Event struct {
	Path      string
	Op        fsnotify.Op
	Timestamp time.Time
}

// Watcher follows exactly one directory at a time; navigating rebases it
// with SetDirectory.
type Watcher struct {
	fsWatcher *fsnotify.Watcher

	// Channel delivering change events to the UI
	events chan Event

	// Channel to signal stop
	stopChan chan struct{}

	// Lock for running state and the watched directory
	mutex sync.Mutex

	dir     string
	running bool
}

// New creates a directory watcher using fsnotify.
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		fsWatcher: fsWatcher,
		events:    make(chan Event, 16),
		stopChan:  make(chan struct{}),
	}, nil
}

// SetDirectory rebases the watcher onto dir, dropping the previous watch.
func (w *Watcher) SetDirectory(dir string) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.dir == dir {
		return nil
	}
	if w.dir != "" {
		// Removing a vanished directory fails; that's fine, it's gone.
		_ = w.fsWatcher.Remove(w.dir)
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		w.dir = ""
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.dir = dir
	log.LogWithFields(log.F("directory", dir)).Debug("watching directory")
	return nil
}

// Events returns the channel delivering change events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Start begins forwarding fsnotify events.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.stopChan = make(chan struct{})
	w.mutex.Unlock()

	go func() {
		// The forwarder owns the events channel; closing it here rules out
		// a send racing a close from Stop.
		defer close(w.events)
		for {
			select {
			case event, ok := <-w.fsWatcher.Events:
				if !ok {
					return
				}
				ev := Event{Path: event.Name, Op: event.Op, Timestamp: time.Now()}

				// Non-blocking send; a full channel means the UI is already
				// going to reload, dropping extra events loses nothing.
				select {
				case w.events <- ev:
				default:
				}

			case err, ok := <-w.fsWatcher.Errors:
				if !ok {
					return
				}
				log.LogWithFields(log.F("error", err)).Error("fsnotify watcher error")

			case <-w.stopChan:
				return
			}
		}
	}()

	return nil
}

// Stop halts event forwarding and closes the watcher.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return
	}
	close(w.stopChan)
	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("error closing fsnotify watcher")
	}
	w.running = false
}

// IsRunning reports whether the watcher is active.
func (w *Watcher) IsRunning() bool {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.running
}
