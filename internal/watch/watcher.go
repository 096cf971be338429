// Package watch re-runs glob patterns whenever files beneath a root change.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/singleflight"

	"github.com/andyballingall/pathy"
)

// DefaultDebounce is the quiet period used when none is configured.
const DefaultDebounce = 100 * time.Millisecond

// Event carries the result of a rescan.
type Event struct {
	Trigger pathy.ChainablePath   // The last changed path before the rescan
	Files   []pathy.ChainablePath // Every file currently matching the patterns
}

// Globber runs glob patterns beneath a root. *pathy.Locator satisfies it.
type Globber interface {
	GlobFiles(root pathy.ChainablePath, patterns ...string) ([]pathy.ChainablePath, error)
}

type eventWatcher interface {
	Add(name string) error
	Close() error
	Events() chan fsnotify.Event
	Errors() chan error
}

type eventWatcherWrapper struct {
	*fsnotify.Watcher
}

func (w *eventWatcherWrapper) Events() chan fsnotify.Event { return w.Watcher.Events }
func (w *eventWatcherWrapper) Errors() chan error          { return w.Watcher.Errors }

func createWatcher(factory func() (*fsnotify.Watcher, error)) (eventWatcher, error) {
	fw, err := factory()
	if err != nil {
		return nil, err
	}
	return &eventWatcherWrapper{fw}, nil
}

func defaultWatcherFactory() (eventWatcher, error) {
	return createWatcher(fsnotify.NewWatcher)
}

// Watcher monitors a directory tree and re-runs glob patterns after changes.
type Watcher struct {
	globber  Globber
	root     pathy.ChainablePath
	patterns []string
	debounce time.Duration
	logger   *slog.Logger
	Ready    chan struct{}

	newWatcher func() (eventWatcher, error)
	group      singleflight.Group
}

// New creates a Watcher for the rooted directory root. A non-positive
// debounce selects DefaultDebounce.
func New(g Globber, root pathy.ChainablePath, patterns []string, debounce time.Duration, logger *slog.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		globber:    g,
		root:       root,
		patterns:   patterns,
		debounce:   debounce,
		logger:     logger.With("component", "watcher"),
		Ready:      make(chan struct{}),
		newWatcher: defaultWatcherFactory,
	}
}

// Watch monitors the root until ctx is cancelled, calling callback with the
// fresh glob results once changes have settled for the debounce period.
// Callbacks run one at a time on the calling goroutine. Hidden files and
// directories are ignored.
func (w *Watcher) Watch(ctx context.Context, callback func(Event)) error {
	if !w.root.IsRooted() {
		return fmt.Errorf("watch root must be absolute: '%s'", w.root)
	}

	watcher, err := w.newWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err = w.addRecursive(watcher, w.root.String()); err != nil {
		return err
	}

	w.logger.Info("Watching for changes", "root", w.root, "patterns", w.patterns)
	if w.Ready != nil {
		close(w.Ready)
	}

	// The rescan runs on this goroutine so callbacks never overlap and none
	// runs after Watch returns.
	var (
		pending pathy.ChainablePath
		settled <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-watcher.Errors():
			w.logger.Error("Watcher error", "error", err)
		case <-settled:
			settled = nil
			w.rescan(pending, callback)
		case event, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			trigger, relevant := w.handleEvent(watcher, event)
			if !relevant {
				continue
			}
			pending = trigger
			settled = time.After(w.debounce)
		}
	}
}

// handleEvent starts watching new directories and reports whether event
// should cause a rescan.
func (w *Watcher) handleEvent(watcher eventWatcher, event fsnotify.Event) (pathy.ChainablePath, bool) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return pathy.Empty, false
	}
	if isHidden(event.Name) {
		return pathy.Empty, false
	}

	if event.Has(fsnotify.Create) {
		info, err := os.Stat(event.Name)
		if err == nil && info.IsDir() {
			if err := w.addRecursive(watcher, event.Name); err != nil {
				w.logger.Error("Failed to watch new directory", "path", event.Name, "error", err)
			}
		}
	}

	p, err := pathy.From(event.Name)
	if err != nil {
		return pathy.Empty, false
	}
	w.logger.Debug("Change detected", "path", p, "op", event.Op.String())
	return p, true
}

func (w *Watcher) rescan(trigger pathy.ChainablePath, callback func(Event)) {
	v, err, _ := w.group.Do(w.root.String(), func() (any, error) {
		return w.globber.GlobFiles(w.root, w.patterns...)
	})
	if err != nil {
		w.logger.Error("Rescan failed", "root", w.root, "error", err)
		return
	}
	files, _ := v.([]pathy.ChainablePath)
	callback(Event{Trigger: trigger, Files: files})
}

// addRecursive adds root and all its non-hidden subdirectories to the watcher.
func (w *Watcher) addRecursive(watcher eventWatcher, root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != root && isHidden(path) {
				return filepath.SkipDir
			}
			return watcher.Add(path)
		}
		return nil
	})
}

func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
