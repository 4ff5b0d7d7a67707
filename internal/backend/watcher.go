package backend

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultInterval is the quiet period applied to bursts of changes.
const DefaultInterval = 200 * time.Millisecond

// Event reports that the listing of Dir changed, or carries a watcher error.
type Event struct {
	Dir string
	Op  string
	Err error
}

// Watcher observes the root directory and every directory the browser has
// expanded, and publishes one debounced event per changed directory.
type Watcher struct {
	root     string
	interval time.Duration
	fsw      *fsnotify.Watcher

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup

	mu      sync.Mutex
	watched map[string]struct{}
}

// NewWatcher starts watching root. Expanded directories are added with Sync.
func NewWatcher(root string, interval time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	root = filepath.Clean(root)
	if err := fsw.Add(root); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", root, err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		root:     root,
		interval: interval,
		fsw:      fsw,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
		watched:  map[string]struct{}{root: {}},
	}

	w.wg.Add(1)
	go w.run()

	go func() {
		w.wg.Wait()
		fsw.Close()
		close(w.events)
	}()

	return w, nil
}

// Events returns a channel of debounced change events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Root reports the directory the watcher was started with.
func (w *Watcher) Root() string {
	return w.root
}

// Sync makes the watched set equal to dirs plus the root. Directories that
// can no longer be watched are skipped and reported in the returned error.
func (w *Watcher) Sync(dirs []string) error {
	want := map[string]struct{}{w.root: {}}
	for _, dir := range dirs {
		want[filepath.Clean(dir)] = struct{}{}
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	var firstErr error
	for dir := range w.watched {
		if _, ok := want[dir]; ok {
			continue
		}
		// The directory may already be gone, which removes the watch for us.
		_ = w.fsw.Remove(dir)
		delete(w.watched, dir)
	}
	for dir := range want {
		if _, ok := w.watched[dir]; ok {
			continue
		}
		if err := w.fsw.Add(dir); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("watch %s: %w", dir, err)
			}
			continue
		}
		w.watched[dir] = struct{}{}
	}
	return firstErr
}

// Watched returns the number of directories currently being watched.
func (w *Watcher) Watched() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.watched)
}

// Stop cancels the watcher. Use Wait if a clean drain is required.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the watcher goroutine has exited and the events channel
// is closed. Call after Stop.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) run() {
	defer w.wg.Done()

	debounce := newDebouncer(w.interval)
	defer debounce.stop()

	emit := func(evt Event) bool {
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	for {
		select {
		case <-w.ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op == fsnotify.Chmod {
				continue
			}
			debounce.add(filepath.Dir(ev.Name), ev.Op.String())
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			if !emit(Event{Err: err}) {
				return
			}
		case <-debounce.C():
			for _, evt := range debounce.drain() {
				if !emit(evt) {
					return
				}
			}
		}
	}
}
