// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Shared lipgloss styles for command output.
//
// Colours are dropped automatically for non-TTY output and when NO_COLOR is
// set; see terminal.go.
package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/heyalice/alicelink/internal/ui/styles"
)

func init() {
	lipgloss.SetColorProfile(GetColorProfile())
}

// =============================================================================
// SHARED STYLES
// =============================================================================

var (
	// TitleStyle is used for command titles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Purple).
			MarginBottom(1)

	// SectionStyle is used for section headers within a listing
	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.TextPrimary)

	// LabelStyle is used for left-aligned field labels
	LabelStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary).
			Width(16)

	ValueStyle = lipgloss.NewStyle().
			Foreground(styles.TextPrimary)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(styles.Amber)

	// DimStyle is used for hints and secondary text
	DimStyle = lipgloss.NewStyle().
			Foreground(styles.TextMuted)

	// URIStyle renders deep links
	URIStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan)

	SeparatorStyle = lipgloss.NewStyle().
			Foreground(styles.Overlay)
)

// =============================================================================
// HELPERS
// =============================================================================

// RenderSeparator renders a horizontal rule width columns wide.
func RenderSeparator(width int) string {
	if width <= 0 {
		width = DefaultTerminalWidth
	}
	return SeparatorStyle.Render(strings.Repeat("-", width))
}

// RenderLabel renders "label:" padded to the label column.
func RenderLabel(label string) string {
	return LabelStyle.Render(label + ":")
}

// RenderStatus renders an ok/failed marker.
func RenderStatus(ok bool) string {
	if ok {
		return SuccessStyle.Render(styles.StatusIndicators.Success)
	}
	return ErrorStyle.Render(styles.StatusIndicators.Error)
}
