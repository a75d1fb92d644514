// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package watch reports edits to chart documents so they can be
// re-analysed. Writes are debounced per file.
package watch

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/petar-djukic/go-jyotish/internal/chart"
)

// DefaultDebounce is the quiet period a file must see before a change is
// emitted.
const DefaultDebounce = 100 * time.Millisecond

// ChangeKind describes what happened to a chart file.
type ChangeKind int

const (
	ChangeModified ChangeKind = iota // Written or created
	ChangeRemoved                    // Deleted or renamed away
)

func (k ChangeKind) String() string {
	if k == ChangeRemoved {
		return "removed"
	}
	return "modified"
}

// Change is one debounced chart file event.
type Change struct {
	Kind ChangeKind
	File string
}

// Watcher monitors directories and individual chart files.
type Watcher struct {
	Changes <-chan Change

	debounce time.Duration
	dirs     map[string]bool // Every chart inside is followed
	files    map[string]bool // Followed individually
	watched  map[string]bool // Directories registered with fsnotify

	changes chan Change
	quit    chan struct{}
	done    chan struct{}
	stop    sync.Once
	started bool
	watcher *fsnotify.Watcher
}

// New creates a watcher over paths. A directory path selects every chart
// document inside it; a file path selects that file only. A debounce of
// zero uses DefaultDebounce.
func New(paths []string, debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w := &Watcher{
		debounce: debounce,
		dirs:     make(map[string]bool),
		files:    make(map[string]bool),
		watched:  make(map[string]bool),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, err
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			w.dirs[abs] = true
			w.watched[abs] = true
			continue
		}
		// Editors replace files on save, so the parent directory is watched.
		w.files[abs] = true
		w.watched[filepath.Dir(abs)] = true
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w.watcher = fw
	ch := make(chan Change, 16)
	w.changes = ch
	w.Changes = ch
	return w, nil
}

// Start begins watching.
func (w *Watcher) Start() error {
	for dir := range w.watched {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
	}
	w.started = true
	go w.loop()
	return nil
}

// Stop closes the watcher and the Changes channel. It is safe to call more
// than once.
func (w *Watcher) Stop() {
	w.stop.Do(func() {
		close(w.quit)
		w.watcher.Close()
		if w.started {
			<-w.done
		}
		close(w.changes)
	})
}

// Matches reports whether name is a chart file this watcher follows.
func (w *Watcher) Matches(name string) bool {
	if _, err := chart.FormatFromPath(name); err != nil {
		return false
	}
	return w.files[name] || w.dirs[filepath.Dir(name)]
}

func (w *Watcher) loop() {
	defer close(w.done)

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-w.quit:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.Matches(event.Name) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending[event.Name] = time.Now()
			}

		case now := <-ticker.C:
			for file, t := range pending {
				if now.Sub(t) < w.debounce {
					continue
				}
				delete(pending, file)
				if !w.emit(file) {
					return
				}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal.
		}
	}
}

func (w *Watcher) emit(file string) bool {
	c := Change{Kind: ChangeModified, File: file}
	if _, err := os.Stat(file); err != nil {
		c.Kind = ChangeRemoved
	}
	select {
	case w.changes <- c:
		return true
	case <-w.quit:
		return false
	}
}
