// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package launcher

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heyalice/alicelink/internal/commands"
	"github.com/heyalice/alicelink/internal/registry"
)

// recorder collects opened URIs.
type recorder struct {
	mu   sync.Mutex
	uris []string
	err  error
}

func (r *recorder) Open(ctx context.Context, uri string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.uris = append(r.uris, uri)
	return nil
}

func TestExecute_OpensURI(t *testing.T) {
	rec := &recorder{}
	candidates := commands.Interpret("a al hello world", registry.Default())
	require.Len(t, candidates, 1)

	launched, err := Execute(context.Background(), rec, candidates[0])
	require.NoError(t, err)
	assert.True(t, launched)
	assert.Equal(t, []string{"alice://newchat?assistant=alice&prompt=hello%20world"}, rec.uris)
}

func TestExecute_NoOpCandidate(t *testing.T) {
	rec := &recorder{}
	candidates := commands.Interpret("s", registry.Default())
	require.Len(t, candidates, 1)

	launched, err := Execute(context.Background(), rec, candidates[0])
	assert.NoError(t, err)
	assert.False(t, launched)
	assert.Empty(t, rec.uris)
}

func TestExecute_WrapsFailure(t *testing.T) {
	boom := errors.New("no handler for alice://")
	rec := &recorder{err: boom}
	candidates := commands.Interpret("h", registry.Default())

	launched, err := Execute(context.Background(), rec, candidates[0])
	assert.False(t, launched)
	require.Error(t, err)

	var launchErr *LaunchError
	require.ErrorAs(t, err, &launchErr)
	assert.Equal(t, "alice://chat/history", launchErr.URI)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "alice://chat/history")
}

func TestDryRun(t *testing.T) {
	var buf bytes.Buffer
	d := NewDryRun(&buf)

	require.NoError(t, d.Open(context.Background(), "alice://chat/new"))
	require.NoError(t, d.Open(context.Background(), "alice://snippet/abc"))
	assert.Equal(t, "alice://chat/new\nalice://snippet/abc\n", buf.String())

	assert.ErrorIs(t, d.Open(context.Background(), ""), ErrEmptyURI)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, d.Open(ctx, "alice://chat/new"), context.Canceled)
}

func TestThrottled(t *testing.T) {
	rec := &recorder{}
	// A tiny rate means no token is refilled during the test.
	th := NewThrottled(rec, 0.001, 2)
	ctx := context.Background()

	assert.NoError(t, th.Open(ctx, "alice://chat/new"))
	assert.NoError(t, th.Open(ctx, "alice://chat/new"))
	assert.ErrorIs(t, th.Open(ctx, "alice://chat/new"), ErrThrottled)
	assert.Len(t, rec.uris, 2)
}

func TestThrottled_Unlimited(t *testing.T) {
	rec := &recorder{}
	th := NewThrottled(rec, 0, 0)

	for i := 0; i < 20; i++ {
		require.NoError(t, th.Open(context.Background(), "alice://chat/new"))
	}
	assert.Len(t, rec.uris, 20)
}

func TestExecute_ThrottledIsLaunchError(t *testing.T) {
	th := NewThrottled(&recorder{}, 0.001, 1)
	c := commands.Interpret("", nil)[0]

	_, err := Execute(context.Background(), th, c)
	require.NoError(t, err)
	_, err = Execute(context.Background(), th, c)
	assert.ErrorIs(t, err, ErrThrottled)
}

func TestFunc(t *testing.T) {
	var got string
	l := Func(func(ctx context.Context, uri string) error {
		got = uri
		return nil
	})
	require.NoError(t, l.Open(context.Background(), "alice://chat/new"))
	assert.Equal(t, "alice://chat/new", got)
}

func TestOSLauncher_RejectsEmptyAndCancelled(t *testing.T) {
	o := NewOSLauncher()
	assert.ErrorIs(t, o.Open(context.Background(), ""), ErrEmptyURI)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, o.Open(ctx, "alice://chat/new"), context.Canceled)
}
