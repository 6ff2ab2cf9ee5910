// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package launcher

import (
	"github.com/heyalice/alicelink/internal/commands"
)

// RegistryReloadedMsg tells the model the registry changed underneath it.
// Err is set when the reload failed and the old registry was kept.
type RegistryReloadedMsg struct {
	Err error
}

// HostMessageMsg carries a host notification into the status line.
type HostMessageMsg struct {
	Title string
	Body  string
}

// launchResultMsg reports the outcome of a launch started by enter.
type launchResultMsg struct {
	candidate commands.Candidate
	launched  bool
	err       error
}
