// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package host abstracts the application hosting the launcher.
//
// The interpreter and registry never see it; only the CLI and TUI use a
// Context to report launch failures and to pick themed assets.
//
// # Key Types
//
//   - Context: ShowMessage and Theme
//   - Terminal: prints lipgloss-styled message boxes to stderr
//   - Recorder: keeps messages in memory, used by the TUI status line
package host
