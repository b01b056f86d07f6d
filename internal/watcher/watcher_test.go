package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"filesavant/internal/slogutil"
)

func newTestWatcher(t *testing.T, debounce time.Duration) *Watcher {
	t.Helper()

	w, err := New(slogutil.NewDiscardLogger(), debounce)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { _ = w.Stop() })

	return w
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		et   EventType
		want string
	}{
		{EventCreate, "create"},
		{EventWrite, "write"},
		{EventRemove, "remove"},
		{EventRename, "rename"},
		{EventType(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.et.String(); got != tt.want {
			t.Errorf("EventType(%d).String() = %q, want %q", tt.et, got, tt.want)
		}
	}
}

func TestWatcherDeliversCreateEvent(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t, 0)

	var mu sync.Mutex
	var events []Event
	w.OnChange(func(e Event) {
		mu.Lock()
		events = append(events, e)
		mu.Unlock()
	})

	if err := w.Add(dir); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	w.Start()

	if err := os.WriteFile(filepath.Join(dir, "new.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		mu.Lock()
		n := len(events)
		mu.Unlock()
		if n > 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("No event delivered within deadline")
}

func TestWatcherDebounceCoalesces(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t, 200*time.Millisecond)

	var mu sync.Mutex
	count := 0
	w.OnChange(func(e Event) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	if err := w.Add(dir); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	w.Start()

	// Burst of writes to one file inside the debounce window.
	path := filepath.Join(dir, "burst.txt")
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte{byte(i)}, 0644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(500 * time.Millisecond)

	mu.Lock()
	got := count
	mu.Unlock()
	if got == 0 {
		t.Fatal("Expected at least one debounced event")
	}
	if got >= 5 {
		t.Errorf("Expected coalescing, got %d events for 5 writes", got)
	}
}

func TestAddIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t, 0)

	if err := w.Add(dir); err != nil {
		t.Fatalf("First Add failed: %v", err)
	}
	if err := w.Add(dir); err != nil {
		t.Fatalf("Second Add failed: %v", err)
	}
}

func TestAddMissingDirectory(t *testing.T) {
	w := newTestWatcher(t, 0)

	if err := w.Add(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Expected error adding nonexistent directory")
	}
}

func TestStopTwice(t *testing.T) {
	w := newTestWatcher(t, 0)
	if err := w.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if err := w.Stop(); err != nil {
		t.Fatalf("Second Stop failed: %v", err)
	}
}
