// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"golang.org/x/time/rate"

	"github.com/heyalice/alicelink/internal/commands"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrThrottled is returned when launches arrive faster than the limiter allows.
	ErrThrottled = errors.New("launch throttled")

	// ErrUnsupportedPlatform is returned when no URI handler is known for the OS.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrEmptyURI is returned when asked to open nothing.
	ErrEmptyURI = errors.New("empty uri")
)

// LaunchError records which URI failed to open.
type LaunchError struct {
	URI string
	Err error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to open %s: %v", e.URI, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// =============================================================================
// LAUNCHERS
// =============================================================================

// Launcher hands a URI to whatever handles it.
type Launcher interface {
	Open(ctx context.Context, uri string) error
}

// Func adapts a function to the Launcher interface.
type Func func(ctx context.Context, uri string) error

// Open calls f.
func (f Func) Open(ctx context.Context, uri string) error {
	return f(ctx, uri)
}

// DryRun writes URIs to a writer instead of opening them.
type DryRun struct {
	mu sync.Mutex
	w  io.Writer
}

// NewDryRun returns a DryRun launcher writing one URI per line to w.
func NewDryRun(w io.Writer) *DryRun {
	return &DryRun{w: w}
}

// Open prints uri.
func (d *DryRun) Open(ctx context.Context, uri string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if uri == "" {
		return ErrEmptyURI
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	_, err := fmt.Fprintln(d.w, uri)
	return err
}

// Throttled wraps a Launcher with a token bucket. It rejects rather than
// waits, so a held-down Enter key does not queue up a burst of new chats.
type Throttled struct {
	next    Launcher
	limiter *rate.Limiter
}

// NewThrottled allows ratePerSec sustained launches with the given burst.
// A non-positive rate disables throttling.
func NewThrottled(next Launcher, ratePerSec float64, burst int) *Throttled {
	limit := rate.Limit(ratePerSec)
	if ratePerSec <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	return &Throttled{
		next:    next,
		limiter: rate.NewLimiter(limit, burst),
	}
}

// Open forwards to the wrapped launcher when a token is available.
func (t *Throttled) Open(ctx context.Context, uri string) error {
	if !t.limiter.Allow() {
		return ErrThrottled
	}
	return t.next.Open(ctx, uri)
}

// =============================================================================
// EXECUTION
// =============================================================================

// Execute performs a candidate's action. No-op candidates return (false, nil).
// Otherwise the URI is opened and launched reports whether that succeeded;
// failures come back as *LaunchError.
func Execute(ctx context.Context, l Launcher, c commands.Candidate) (launched bool, err error) {
	if c.IsNoOp() {
		return false, nil
	}

	uri := c.Action.URI
	if err := l.Open(ctx, uri); err != nil {
		log.Printf("[launcher] open %s failed: %v", uri, err)
		return false, &LaunchError{URI: uri, Err: err}
	}

	log.Printf("[launcher] opened %s", uri)
	return true, nil
}
