// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package launcher

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/heyalice/alicelink/internal/ui/styles"
)

// ProgramHost is a host.Context that routes messages into the running
// program's status line instead of printing over the UI.
type ProgramHost struct {
	mu      sync.Mutex
	mode    styles.Mode
	program *tea.Program
}

// NewProgramHost returns a host for the given theme mode. Messages sent
// before Attach are dropped.
func NewProgramHost(mode styles.Mode) *ProgramHost {
	return &ProgramHost{mode: mode}
}

// Attach connects the host to a program.
func (h *ProgramHost) Attach(p *tea.Program) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.program = p
}

// ShowMessage sends a HostMessageMsg to the program.
func (h *ProgramHost) ShowMessage(title, body string) {
	h.mu.Lock()
	p := h.program
	h.mu.Unlock()
	if p != nil {
		p.Send(HostMessageMsg{Title: title, Body: body})
	}
}

// Theme returns the mode the host was created with.
func (h *ProgramHost) Theme() styles.Mode {
	return h.mode
}
