// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package host

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/heyalice/alicelink/internal/ui/styles"
)

// Context is what the launcher needs from whatever hosts it: a way to tell
// the user something and the current theme.
type Context interface {
	ShowMessage(title, body string)
	Theme() styles.Mode
}

// Terminal is a Context that prints boxed messages to a writer.
type Terminal struct {
	mu    sync.Mutex
	out   io.Writer
	mode  styles.Mode
	theme *styles.Theme
	plain bool
}

// NewTerminal returns a Terminal writing to os.Stderr.
func NewTerminal(mode styles.Mode) *Terminal {
	return NewTerminalWriter(os.Stderr, mode)
}

// NewTerminalWriter returns a Terminal writing to w.
func NewTerminalWriter(w io.Writer, mode styles.Mode) *Terminal {
	return &Terminal{
		out:   w,
		mode:  mode,
		theme: styles.NewTheme(mode),
	}
}

// SetPlain disables styling, for --json runs and non-TTY output.
func (t *Terminal) SetPlain(plain bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.plain = plain
}

// ShowMessage prints title and body.
func (t *Terminal) ShowMessage(title, body string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.plain {
		fmt.Fprintf(t.out, "%s: %s\n", title, body)
		return
	}

	content := t.theme.MessageTitle.Render(title)
	if strings.TrimSpace(body) != "" {
		content += "\n" + t.theme.MessageBody.Render(body)
	}
	fmt.Fprintln(t.out, t.theme.MessageBox.Render(content))
}

// Theme returns the mode the terminal was created with.
func (t *Terminal) Theme() styles.Mode {
	return t.mode
}

// Recorder is a Context that keeps messages in memory.
type Recorder struct {
	mu       sync.Mutex
	Mode     styles.Mode
	Messages []Message
}

// Message is one ShowMessage call captured by a Recorder.
type Message struct {
	Title string
	Body  string
}

// ShowMessage appends the message.
func (r *Recorder) ShowMessage(title, body string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Messages = append(r.Messages, Message{Title: title, Body: body})
}

// Theme returns r.Mode.
func (r *Recorder) Theme() styles.Mode {
	return r.Mode
}

// Last returns the most recent message, if any.
func (r *Recorder) Last() (Message, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Messages) == 0 {
		return Message{}, false
	}
	return r.Messages[len(r.Messages)-1], true
}

var (
	_ Context = (*Terminal)(nil)
	_ Context = (*Recorder)(nil)
)
