// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package theme

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// THEME FILE WATCHER
// =============================================================================

// Watcher hot-reloads a theme file, delivering each successfully parsed
// revision to a callback. Parse failures keep the previous theme; editors
// that write via rename are handled by watching the directory.
type Watcher struct {
	path     string
	onChange func(*Theme)
	watcher  *fsnotify.Watcher
	debounce time.Duration

	mu      sync.Mutex
	pending *time.Timer
	closed  bool
}

// Watch starts watching path and invokes onChange with each new valid
// theme. onChange is called from the watcher goroutine; hosts typically
// forward into their frame loop.
func Watch(path string, onChange func(*Theme)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory, not the file: most editors replace the file by
	// rename, which drops a direct file watch.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     path,
		onChange: onChange,
		watcher:  fw,
		debounce: 100 * time.Millisecond,
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	target := filepath.Clean(w.path)
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload()
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// scheduleReload coalesces the burst of events editors emit per save.
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(w.debounce, func() {
		th, err := LoadFile(w.path)
		if err != nil {
			// Keep the old theme; the file may be mid-save.
			return
		}
		w.mu.Lock()
		closed := w.closed
		w.mu.Unlock()
		if !closed {
			w.onChange(th)
		}
	})
}

// Close stops watching. Pending reloads are cancelled.
func (w *Watcher) Close() error {
	w.mu.Lock()
	w.closed = true
	if w.pending != nil {
		w.pending.Stop()
	}
	w.mu.Unlock()
	return w.watcher.Close()
}
