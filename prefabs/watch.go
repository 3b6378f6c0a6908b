package prefabs

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Change reports that an on-disk prefab was written, replaced or removed.
type Change struct {
	// Name is the prefab file name, e.g. MenuFile.
	Name string
	// Removed is set when the override is gone and the embedded copy
	// applies again.
	Removed bool
}

const debounce = 100 * time.Millisecond

// Watcher follows the override directory and reports changes to the files
// named when it was created.
type Watcher struct {
	watcher *fsnotify.Watcher
	names   map[string]bool
	Events  chan Change
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
	done    sync.WaitGroup
}

func NewWatcher(dir string, names ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		names:   make(map[string]bool, len(names)),
		Events:  make(chan Change, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	for _, name := range names {
		watcher.names[cleanPrefabPath(name)] = true
	}
	watcher.done.Add(1)
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		w.done.Wait()
		close(w.Events)
		close(w.Errors)
	})
	return err
}

// Poll drains pending changes without blocking. A name appears at most
// once per call.
func (w *Watcher) Poll() []Change {
	var out []Change
	seen := map[string]int{}
	for {
		select {
		case c, ok := <-w.Events:
			if !ok {
				return out
			}
			if i, dup := seen[c.Name]; dup {
				out[i] = c
				continue
			}
			seen[c.Name] = len(out)
			out = append(out, c)
		default:
			return out
		}
	}
}

func (w *Watcher) run() {
	defer w.done.Done()
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			name := filepath.Base(event.Name)
			if !w.names[name] {
				continue
			}
			removed := event.Op&(fsnotify.Remove|fsnotify.Rename) != 0
			now := time.Now()
			if t, ok := last[name]; ok && now.Sub(t) < debounce && !removed {
				continue
			}
			last[name] = now
			select {
			case w.Events <- Change{Name: name, Removed: removed}:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
