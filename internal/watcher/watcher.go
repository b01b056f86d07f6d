// Package watcher monitors directories for changes and broadcasts events
// via callbacks.
package watcher

import (
	"log/slog"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType represents the type of file system event
type EventType int

// File system event types.
const (
	EventCreate EventType = iota
	EventWrite
	EventRemove
	EventRename
)

// String returns the wire name of the event type
func (e EventType) String() string {
	switch e {
	case EventCreate:
		return "create"
	case EventWrite:
		return "write"
	case EventRemove:
		return "remove"
	case EventRename:
		return "rename"
	default:
		return "unknown"
	}
}

// Event represents a file system change event
type Event struct {
	Type      EventType
	Path      string
	Timestamp time.Time
}

// Callback is a function called when file changes occur
type Callback func(Event)

// Watcher monitors registered directories and delivers debounced change
// events. Rapid successive events on the same path collapse into one.
type Watcher struct {
	watcher   *fsnotify.Watcher
	logger    *slog.Logger
	debounce  time.Duration
	callbacks []Callback
	watched   map[string]bool
	pending   map[string]*time.Timer
	mu        sync.Mutex
	done      chan struct{}
	closeOnce sync.Once
}

// New creates a new directory watcher. Events are held for the debounce
// window before delivery; zero disables debouncing.
func New(logger *slog.Logger, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		watcher:  fsw,
		logger:   logger,
		debounce: debounce,
		watched:  make(map[string]bool),
		pending:  make(map[string]*time.Timer),
		done:     make(chan struct{}),
	}, nil
}

// OnChange registers a callback for file change events
func (w *Watcher) OnChange(cb Callback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, cb)
}

// Add registers a directory for watching. Adding the same directory twice
// is a no-op.
func (w *Watcher) Add(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.watched[dir] {
		return nil
	}
	if err := w.watcher.Add(dir); err != nil {
		return err
	}
	w.watched[dir] = true
	w.logger.Debug("Watching directory", "dir", dir)
	return nil
}

// Start begins delivering events
func (w *Watcher) Start() {
	go w.eventLoop()
}

// Stop stops the watcher and cancels pending deliveries
func (w *Watcher) Stop() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()

		w.mu.Lock()
		for _, t := range w.pending {
			t.Stop()
		}
		w.pending = make(map[string]*time.Timer)
		w.mu.Unlock()
	})
	return err
}

func (w *Watcher) eventLoop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Watcher error", "error", err.Error())
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	var eventType EventType
	switch {
	case event.Op.Has(fsnotify.Create):
		eventType = EventCreate
	case event.Op.Has(fsnotify.Write):
		eventType = EventWrite
	case event.Op.Has(fsnotify.Remove):
		eventType = EventRemove
	case event.Op.Has(fsnotify.Rename):
		eventType = EventRename
	default:
		return
	}

	e := Event{
		Type:      eventType,
		Path:      event.Name,
		Timestamp: time.Now(),
	}

	if w.debounce <= 0 {
		w.deliver(e)
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	// Later events on the same path within the window supersede earlier
	// ones; only the last is delivered.
	if t, ok := w.pending[e.Path]; ok {
		t.Stop()
	}
	w.pending[e.Path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.pending, e.Path)
		w.mu.Unlock()

		select {
		case <-w.done:
		default:
			w.deliver(e)
		}
	})
}

func (w *Watcher) deliver(e Event) {
	w.mu.Lock()
	callbacks := make([]Callback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.Unlock()

	for _, cb := range callbacks {
		cb(e)
	}
}
