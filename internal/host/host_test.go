// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package host

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heyalice/alicelink/internal/ui/styles"
)

func TestTerminal_ShowMessagePlain(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminalWriter(&buf, styles.ModeLight)
	term.SetPlain(true)

	term.ShowMessage("Hey Alice", "failed to open alice://chat/new")

	assert.Equal(t, "Hey Alice: failed to open alice://chat/new\n", buf.String())
	assert.Equal(t, styles.ModeLight, term.Theme())
}

func TestTerminal_ShowMessageStyled(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminalWriter(&buf, styles.ModeDark)

	term.ShowMessage("Hey Alice", "alice://chat/history")

	assert.Contains(t, buf.String(), "Hey Alice")
	assert.Contains(t, buf.String(), "alice://chat/history")
}

func TestRecorder(t *testing.T) {
	r := &Recorder{Mode: styles.ModeDark}

	_, ok := r.Last()
	assert.False(t, ok)

	r.ShowMessage("one", "1")
	r.ShowMessage("two", "2")

	last, ok := r.Last()
	assert.True(t, ok)
	assert.Equal(t, Message{Title: "two", Body: "2"}, last)
	assert.Len(t, r.Messages, 2)
	assert.Equal(t, styles.ModeDark, r.Theme())
}
