// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package watcher

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/heyalice/alicelink/internal/registry"
)

// DefaultDebounce coalesces the burst of events an editor produces on save.
const DefaultDebounce = 250 * time.Millisecond

// Reloader replaces the live registry from a file. *registry.Store implements it.
type Reloader interface {
	ReloadFile(path string) (*registry.Registry, error)
}

// Event reports one reload.
type Event struct {
	Path     string
	Registry *registry.Registry
	Err      error
}

// Watcher reloads a registry file whenever it changes on disk.
//
// The parent directory is watched rather than the file itself, so
// rename-over-save editors and files that do not exist yet are both handled.
type Watcher struct {
	path     string
	target   Reloader
	watcher  *fsnotify.Watcher
	debounce time.Duration

	mu       sync.Mutex
	pending  time.Time
	onReload func(Event)

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
}

// New creates a watcher for path. Call Start to begin watching.
func New(path string, target Reloader, debounce time.Duration) (*Watcher, error) {
	if path == "" {
		return nil, errors.New("watch path cannot be empty")
	}
	if target == nil {
		return nil, errors.New("reload target cannot be nil")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &Watcher{
		path:     filepath.Clean(abs),
		target:   target,
		watcher:  fw,
		debounce: debounce,
	}, nil
}

// OnReload registers fn to be called after every reload attempt. It must be
// set before Start and is called from the watcher goroutine.
func (w *Watcher) OnReload(fn func(Event)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onReload = fn
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Start begins watching. It stops when ctx is cancelled or Close is called.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}

	w.ctx, w.cancel = context.WithCancel(ctx)

	w.wg.Add(2)
	go w.processEvents()
	go w.processPending()

	log.Printf("[watcher] watching %s", w.path)
	return nil
}

// Close stops the watcher and releases the fsnotify handle.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		if w.cancel != nil {
			w.cancel()
		}
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}

// processEvents marks the file dirty on any event that can change its content.
func (w *Watcher) processEvents() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				w.mu.Lock()
				w.pending = time.Now()
				w.mu.Unlock()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[watcher] %v", err)
		}
	}
}

// processPending reloads once the file has been quiet for the debounce period.
func (w *Watcher) processPending() {
	defer w.wg.Done()

	tick := w.debounce / 4
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return

		case now := <-ticker.C:
			w.mu.Lock()
			due := !w.pending.IsZero() && now.Sub(w.pending) >= w.debounce
			if due {
				w.pending = time.Time{}
			}
			w.mu.Unlock()

			if due {
				w.reload()
			}
		}
	}
}

func (w *Watcher) reload() {
	reg, err := w.target.ReloadFile(w.path)
	if err != nil {
		// Unreadable; the previous registry stays live.
		log.Printf("[watcher] reload %s: %v (keeping current registry)", w.path, err)
	} else {
		log.Printf("[watcher] reloaded %s: %d assistants, %d skills",
			w.path, len(reg.Assistants()), len(reg.Skills()))
	}

	w.mu.Lock()
	fn := w.onReload
	w.mu.Unlock()
	if fn != nil {
		fn(Event{Path: w.path, Registry: reg, Err: err})
	}
}
