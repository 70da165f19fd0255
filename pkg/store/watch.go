package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"tableflip.dev/life/pkg/collection"
)

// EventType describes the nature of a storage change notification.
type EventType int

const (
	// EventCollectionChanged indicates the document for Kind was rewritten.
	EventCollectionChanged EventType = iota

	// EventInvalidated signals a change that cannot be tied to one kind;
	// callers should reload everything.
	EventInvalidated
)

func (t EventType) String() string {
	if t == EventInvalidated {
		return "invalidated"
	}
	return "changed"
}

// Event is emitted by Storage.Watch when underlying storage changes.
type Event struct {
	Type EventType
	Kind collection.Kind
}

// Watch streams change events for <base>/<kind>.json files.
func (s *Diskv) Watch(ctx context.Context) (<-chan Event, error) {
	return watchDir(ctx, s.basePath, func(name string) (Event, bool) {
		base := filepath.Base(name)
		if !strings.HasSuffix(base, documentExt) {
			return Event{}, false
		}
		key := strings.TrimSuffix(base, documentExt)
		for _, k := range collection.AllKinds() {
			if string(k) == key {
				return Event{Type: EventCollectionChanged, Kind: k}, true
			}
		}
		return Event{}, false
	})
}

// Watch reports any write to the database file as EventInvalidated.
func (s *SQLite) Watch(ctx context.Context) (<-chan Event, error) {
	dbFile := filepath.Base(s.path)
	return watchDir(ctx, filepath.Dir(s.path), func(name string) (Event, bool) {
		if strings.HasPrefix(filepath.Base(name), dbFile) {
			return Event{Type: EventInvalidated}, true
		}
		return Event{}, false
	})
}

// watchDir streams classified events for dir until ctx is cancelled. The
// channel is closed once ctx is done or the watcher fails.
func watchDir(ctx context.Context, dir string, classify func(name string) (Event, bool)) (<-chan Event, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	if err := watcher.Add(dir); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", dir, err)
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop events if the consumer is not ready; the next event
				// triggers a fresh read anyway.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				throttle.Enqueue(Event{Type: EventInvalidated}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				if ev, ok := classify(evt.Name); ok {
					throttle.Enqueue(ev, send)
				}
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces rapid change notifications so a renderer reloads
// once per burst of filesystem activity instead of on every single write.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[Event]struct{}
	delay   time.Duration
	stopped bool
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[Event]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	t.pending[ev] = struct{}{}
	if t.timer == nil && !t.stopped {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

// flush sends under the lock so nothing is sent once Stop has returned.
func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	pending := t.pending
	t.pending = make(map[Event]struct{})
	t.timer = nil
	if t.stopped {
		return
	}
	for ev := range pending {
		send(ev)
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
