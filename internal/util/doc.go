// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared across alicelink.
//
// # Key Functions
//
// String Utilities:
//   - TruncateWidth, PadRight, StringWidth: column-aware layout via go-runewidth
//   - SingleLine: collapse multi-line prompts for one-row display
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync and rename
//
// # Usage
//
//	row := util.PadRight(candidate.Title, 40)
//	err := util.AtomicWriteFile(path, data, 0600)
package util
