package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a directory tree for C# source changes and fires a
// debounced callback with the set of changed paths. Events arriving
// during the quiet period are coalesced into one callback.
type Watcher struct {
	fsw      *fsnotify.Watcher
	root     string
	debounce time.Duration

	mu      sync.Mutex
	pending map[string]bool
	timer   *time.Timer

	stopOnce sync.Once
	done     chan struct{}
}

// NewWatcher creates a watcher rooted at root. Directories are added
// recursively; directories created later are picked up from their
// create events.
func NewWatcher(root string, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		root:     root,
		debounce: debounce,
		pending:  make(map[string]bool),
		done:     make(chan struct{}),
	}

	if err := w.addRecursive(root); err != nil {
		fsw.Close()
		return nil, err
	}
	return w, nil
}

// Start blocks, delivering debounced change sets to callback until the
// context is cancelled.
func (w *Watcher) Start(ctx context.Context, callback func(paths []string)) error {
	defer close(w.done)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event, callback)
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			// Watch errors are transient (e.g. a directory vanished
			// mid-walk); keep watching.
		}
	}
}

// Stop closes the underlying watcher. Idempotent.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		err = w.fsw.Close()
		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
	})
	return err
}

func (w *Watcher) handleEvent(event fsnotify.Event, callback func(paths []string)) {
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			// Best effort: a directory we cannot add stays unwatched.
			_ = w.addRecursive(event.Name)
			return
		}
	}

	if !strings.HasSuffix(event.Name, ".cs") {
		return
	}
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending[event.Name] = true

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		paths := make([]string, 0, len(w.pending))
		for p := range w.pending {
			paths = append(paths, p)
		}
		w.pending = make(map[string]bool)
		w.mu.Unlock()

		if len(paths) > 0 {
			callback(paths)
		}
	})
}

func (w *Watcher) addRecursive(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		name := info.Name()
		if name == ".git" || name == "bin" || name == "obj" || name == ".csmap" {
			return filepath.SkipDir
		}
		return w.fsw.Add(path)
	})
}
