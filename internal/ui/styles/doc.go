// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling for the alicelink launcher and CLI.

# Mode

The host theme is either light or dark. Detect maps the ui.theme setting to a
Mode: "light" and "dark" force it, "auto" asks the terminal through termenv.
IconPath picks the matching result icon:

	light -> Images/HeyAlice.light.png
	dark  -> Images/HeyAlice.dark.png

# Colors (colors.go)

Every palette entry is a lipgloss.AdaptiveColor. Pick resolves one against a
Mode, so a forced theme never depends on what the terminal reports.

# Theme (theme.go)

NewTheme builds all lipgloss styles for a Mode: the query prompt, candidate
rows (normal, selected, placeholder), the status line and message boxes.
Status text always carries an ASCII indicator ([OK], [X], [!], [i]) so it is
readable without color.

# Usage

	theme := styles.NewTheme(styles.Detect(cfg.UI.Theme))
	fmt.Println(theme.RenderError("launch failed"))
*/
package styles
