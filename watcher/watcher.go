// Package watcher drives a surface from the local filesystem during
// development: it watches a built chunk tree and converts file changes into
// ServerMessages, one batch per refresh.
package watcher

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	stats "github.com/lyft/gostats"

	logger "github.com/sirupsen/logrus"

	"github.com/bundlekit/devsurface/chunk"
)

type watcherStats struct {
	refreshAttempts stats.Counter
	refreshFailures stats.Counter
	messagesEmitted stats.Counter
	watchedChunks   stats.Gauge
}

func newWatcherStats(scope stats.Scope) watcherStats {
	ret := watcherStats{}
	ret.refreshAttempts = scope.NewCounter("refresh_attempts")
	ret.refreshFailures = scope.NewCounter("refresh_failures")
	ret.messagesEmitted = scope.NewCounter("messages_emitted")
	ret.watchedChunks = scope.NewGauge("watched_chunks")
	return ret
}

type callbacks struct {
	mu  sync.Mutex
	cbs []chan<- struct{}
}

func notifyCallback(notify <-chan struct{}, callback chan<- int) {
	for range notify {
		callback <- 1 // potentially blocking send
	}
}

func (c *callbacks) Add(callback chan<- int) {
	// A blocking user channel must not stall the watch loop, so each
	// callback gets its own buffered relay and goroutine. A slow receiver
	// may coalesce several batches into one signal, but always sees at
	// least one.
	notify := make(chan struct{}, 1)
	c.mu.Lock()
	c.cbs = append(c.cbs, notify)
	c.mu.Unlock()
	go notifyCallback(notify, callback)
}

// Signal all callback channels without blocking.
func (c *callbacks) Signal() {
	c.mu.Lock()
	for _, ch := range c.cbs {
		select {
		case ch <- struct{}{}:
		default:
			// Previous signal still pending, drop this one.
		}
	}
	c.mu.Unlock()
}

type fileState struct {
	content []byte
	modTime time.Time
}

// Watcher reads chunk files under rootPath/chunkDir and reports changes to
// a Notifier as ServerMessages.
type Watcher struct {
	watcher        *fsnotify.Watcher
	rootPath       string
	chunkDir       string
	notifier       Notifier
	callbacks      callbacks
	mu             sync.Mutex
	seen           map[chunk.Path]fileState
	stats          watcherStats
	ignoreDotfiles bool
}

func (w *Watcher) AddRefreshCallback(callback chan<- int) {
	if callback == nil {
		panic("devsurface/watcher: nil callback")
	}
	w.callbacks.Add(callback)
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// onChunksChanged rescans the chunk tree and diffs it against the previous
// scan. emit is false only for the baseline scan at construction, which must
// not produce messages for chunks the generated code already registered.
func (w *Watcher) onChunksChanged(emit bool) {
	targetDir := filepath.Join(w.rootPath, w.chunkDir)

	w.stats.refreshAttempts.Inc()

	next := make(map[chunk.Path]fileState)
	filepath.Walk(targetDir, w.scanCallback(targetDir, next))

	w.mu.Lock()
	prev := w.seen
	w.seen = next
	w.mu.Unlock()

	w.stats.watchedChunks.Set(uint64(len(next)))

	if !emit {
		return
	}

	paths := make([]chunk.Path, 0, len(next))
	for p := range next {
		paths = append(paths, p)
	}
	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	emitted := uint64(0)
	for _, p := range paths {
		st := next[p]
		old, ok := prev[p]
		if ok && st.modTime.Equal(old.modTime) && bytes.Equal(st.content, old.content) {
			continue
		}
		w.notifier.NotifyUpdate(p, chunk.ServerMessage{
			Path:     p,
			Kind:     chunk.Written,
			Payload:  st.content,
			Modified: st.modTime,
		})
		emitted++
	}

	removed := make([]chunk.Path, 0)
	for p := range prev {
		if _, ok := next[p]; !ok {
			removed = append(removed, p)
		}
	}
	sort.Slice(removed, func(i, j int) bool { return removed[i] < removed[j] })
	for _, p := range removed {
		w.notifier.NotifyUpdate(p, chunk.ServerMessage{
			Path: p,
			Kind: chunk.Removed,
		})
		emitted++
	}

	w.stats.messagesEmitted.Add(emitted)
	w.notifier.NotifyUpdateComplete()
	w.callbacks.Signal()
}

func (w *Watcher) scanCallback(targetDir string, next map[chunk.Path]fileState) filepath.WalkFunc {
	return func(path string, info os.FileInfo, err error) error {
		if err != nil {
			w.stats.refreshFailures.Inc()
			logger.Warnf("watcher: error processing %s: %s", path, err)

			return nil
		}

		if w.ignoreDotfiles && info.IsDir() && strings.HasPrefix(info.Name(), ".") {
			return filepath.SkipDir
		}

		if info.IsDir() {
			return nil
		}

		if w.ignoreDotfiles && strings.HasPrefix(info.Name(), ".") {
			return nil
		}

		contents, err := os.ReadFile(path)
		if err != nil {
			w.stats.refreshFailures.Inc()
			logger.Warnf("watcher: error reading %s: %s", path, err)

			return nil
		}

		rel, err := filepath.Rel(targetDir, path)
		if err != nil {
			w.stats.refreshFailures.Inc()
			logger.Warnf("watcher: error parsing path %s: %s", path, err)

			return nil
		}

		next[chunk.Path(filepath.ToSlash(rel))] = fileState{
			content: contents,
			modTime: info.ModTime(),
		}

		return nil
	}
}

func getFileSystemOp(ev fsnotify.Event) FileSystemOp {
	switch ev.Op {
	case ev.Op & fsnotify.Write:
		return Write
	case ev.Op & fsnotify.Create:
		return Create
	case ev.Op & fsnotify.Chmod:
		return Chmod
	case ev.Op & fsnotify.Remove:
		return Remove
	case ev.Op & fsnotify.Rename:
		return Rename
	}
	return -1
}

type Option func(w *Watcher)

func AllowDotFiles(w *Watcher)  { w.ignoreDotfiles = false }
func IgnoreDotFiles(w *Watcher) { w.ignoreDotfiles = true }

func New2(rootPath, chunkDir string, scope stats.Scope, refresher Refresher, notifier Notifier, opts ...Option) (IFace, error) {
	if rootPath == "" || chunkDir == "" {
		logger.Warn("no chunk directory to watch. using nil watcher.")
		return NewNil(), nil
	}
	if notifier == nil {
		panic("devsurface/watcher: nil notifier")
	}
	watchedPath := refresher.WatchDirectory(rootPath, chunkDir)

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		// If this fails with EMFILE (0x18) it is likely due to
		// inotify_init1() and fs.inotify.max_user_instances.
		return nil, fmt.Errorf("unable to create chunk watcher: %[1]s (%[1]T %#[1]v)", err)
	}

	err = fsWatcher.Add(watchedPath)
	if err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("unable to watch directory (%[1]s): %[2]s (%[2]T %#[2]v)", watchedPath, err)
	}

	newWatcher := Watcher{
		watcher:  fsWatcher,
		rootPath: rootPath,
		chunkDir: chunkDir,
		notifier: notifier,
		stats:    newWatcherStats(scope),
	}

	for _, opt := range opts {
		opt(&newWatcher)
	}

	// Baseline scan so the first refresh only reports real changes.
	newWatcher.onChunksChanged(false)

	go func() {
		for {
			select {
			case ev, ok := <-fsWatcher.Events:
				if !ok {
					return
				}
				if refresher.ShouldRefresh(ev.Name, getFileSystemOp(ev)) {
					newWatcher.onChunksChanged(true)
				}
			case err, ok := <-fsWatcher.Errors:
				if !ok {
					return
				}
				logger.Warnf("chunk watch error: %s", err)
			}
		}
	}()

	return &newWatcher, nil
}

// Deprecated: use New2 instead
func New(rootPath, chunkDir string, scope stats.Scope, refresher Refresher, notifier Notifier, opts ...Option) IFace {
	w, err := New2(rootPath, chunkDir, scope, refresher, notifier, opts...)
	if err != nil {
		logger.Panic(err)
	}
	return w
}
