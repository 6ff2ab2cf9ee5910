// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/muesli/termenv"
)

// Mode is the host theme: light or dark.
type Mode int

const (
	ModeDark Mode = iota
	ModeLight
)

// String returns "light" or "dark".
func (m Mode) String() string {
	if m == ModeLight {
		return "light"
	}
	return "dark"
}

// hasDarkBackground is swapped in tests; querying the terminal needs a TTY.
var hasDarkBackground = termenv.HasDarkBackground

// Detect turns a ui.theme setting into a Mode. "light" and "dark" force the
// mode; anything else asks the terminal for its background color.
func Detect(setting string) Mode {
	switch strings.ToLower(strings.TrimSpace(setting)) {
	case "light":
		return ModeLight
	case "dark":
		return ModeDark
	}
	if hasDarkBackground() {
		return ModeDark
	}
	return ModeLight
}

// Result icons shipped with the Hey Alice launcher plugin, one per theme.
const (
	IconLight = "Images/HeyAlice.light.png"
	IconDark  = "Images/HeyAlice.dark.png"
)

// IconPath returns the result icon matching the host theme.
func IconPath(mode Mode) string {
	if mode == ModeLight {
		return IconLight
	}
	return IconDark
}
