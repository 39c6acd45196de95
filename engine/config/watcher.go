package config

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/glengine/engine/core"
)

// DefaultSettleDelay is how long a file must stay quiet before it is reloaded.
const DefaultSettleDelay = 100 * time.Millisecond

// Watcher reloads a configuration file whenever it changes on disk.
type Watcher struct {
	path     string
	onChange func(*Config)
	settle   time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool

	fsnotify  *fsnotify.Watcher
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// Watch starts watching path. A burst of writes is reloaded once, after the
// file has been quiet for DefaultSettleDelay. onChange receives every
// configuration that parses and validates; empty or broken files are logged
// and skipped.
func Watch(path string, onChange func(*Config)) (*Watcher, error) {
	return WatchWithDelay(path, DefaultSettleDelay, onChange)
}

func WatchWithDelay(path string, settle time.Duration, onChange func(*Config)) (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fsWatch.Close()
		return nil, err
	}
	// watch the directory: editors replace files instead of writing them in place
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		onChange: onChange,
		settle:   settle,
		fsnotify: fsWatch,
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.start()
	return w, nil
}

func (w *Watcher) start() {
	defer w.wg.Done()
	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				w.schedule()
			}

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("config watcher: %s", err)

		case <-w.done:
			return
		}
	}
}

// schedule (re)arms the settle timer.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	if w.timer == nil {
		w.timer = time.AfterFunc(w.settle, w.reload)
		return
	}
	w.timer.Reset(w.settle)
}

func (w *Watcher) reload() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}

	data, err := os.ReadFile(w.path)
	if err != nil {
		core.LogWarn("ignoring config change: %s", err)
		return
	}
	// a truncating save shows up as an empty file before the new content
	if len(data) == 0 {
		core.LogDebug("config %s is empty, waiting for content", w.path)
		return
	}
	cfg, err := Parse(data)
	if err != nil {
		core.LogWarn("ignoring config change: %s", err)
		return
	}
	core.LogDebug("config %s reloaded", w.path)
	w.onChange(cfg)
}

func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsnotify.Close()
		w.wg.Wait()

		w.mu.Lock()
		w.stopped = true
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
	})
	if errors.Is(err, fsnotify.ErrClosed) {
		return nil
	}
	return err
}
