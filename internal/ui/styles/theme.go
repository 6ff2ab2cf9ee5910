// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds the styled components for the launcher and CLI output.
type Theme struct {
	Mode         Mode
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// HEADER
	// ==========================================================================

	Header      lipgloss.Style
	HeaderBrand lipgloss.Style
	HeaderHint  lipgloss.Style

	// ==========================================================================
	// QUERY INPUT
	// ==========================================================================

	InputPrompt      lipgloss.Style
	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style

	// ==========================================================================
	// CANDIDATE LIST
	// ==========================================================================

	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	ItemTitle    lipgloss.Style
	ItemSubtitle lipgloss.Style
	ItemURI      lipgloss.Style
	ItemNoOp     lipgloss.Style
	Cursor       lipgloss.Style

	// ==========================================================================
	// STATUS LINE
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
	DryRunBadge  lipgloss.Style

	// ==========================================================================
	// MESSAGE BOX (host notifications)
	// ==========================================================================

	MessageBox   lipgloss.Style
	MessageTitle lipgloss.Style
	MessageBody  lipgloss.Style

	// Status text, always paired with StatusIndicators
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	InfoStyle    lipgloss.Style
}

// NewTheme creates a theme for the given mode.
func NewTheme(mode Mode) *Theme {
	t := &Theme{
		Mode:         mode,
		ColorProfile: termenv.ColorProfile(),
	}
	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	c := func(ac lipgloss.AdaptiveColor) lipgloss.Color { return Pick(ac, t.Mode) }

	t.Header = lipgloss.NewStyle().
		Padding(0, 1).
		MarginBottom(1)

	t.HeaderBrand = lipgloss.NewStyle().
		Bold(true).
		Foreground(c(Purple))

	t.HeaderHint = lipgloss.NewStyle().
		Foreground(c(TextMuted)).
		Italic(true)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(c(Cyan)).
		Bold(true)

	t.InputText = lipgloss.NewStyle().
		Foreground(c(TextPrimary))

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(c(TextMuted)).
		Italic(true)

	t.Item = lipgloss.NewStyle().
		PaddingLeft(2)

	t.ItemSelected = lipgloss.NewStyle().
		Background(c(SelectionBg)).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(c(Purple)).
		PaddingLeft(1)

	t.ItemTitle = lipgloss.NewStyle().
		Foreground(c(TextPrimary)).
		Bold(true)

	t.ItemSubtitle = lipgloss.NewStyle().
		Foreground(c(TextSecondary))

	t.ItemURI = lipgloss.NewStyle().
		Foreground(c(TextMuted))

	t.ItemNoOp = lipgloss.NewStyle().
		Foreground(c(Amber)).
		Italic(true)

	t.Cursor = lipgloss.NewStyle().
		Foreground(c(Purple)).
		Bold(true)

	t.StatusBar = lipgloss.NewStyle().
		Background(c(SurfaceDim)).
		Foreground(c(TextSecondary)).
		Padding(0, 1).
		MarginTop(1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(c(Cyan)).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(c(TextMuted))

	t.DryRunBadge = lipgloss.NewStyle().
		Foreground(c(Amber)).
		Bold(true)

	t.MessageBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(c(Rose)).
		Padding(0, 1)

	t.MessageTitle = lipgloss.NewStyle().
		Foreground(c(Rose)).
		Bold(true)

	t.MessageBody = lipgloss.NewStyle().
		Foreground(c(TextPrimary))

	t.SuccessStyle = lipgloss.NewStyle().Foreground(c(Emerald)).Bold(true)
	t.ErrorStyle = lipgloss.NewStyle().Foreground(c(Rose)).Bold(true)
	t.WarningStyle = lipgloss.NewStyle().Foreground(c(Amber)).Bold(true)
	t.InfoStyle = lipgloss.NewStyle().Foreground(c(Cyan))
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns, subtitles hidden
	LayoutWide
)

// =============================================================================
// STATUS RENDERING
// =============================================================================

// RenderSuccess renders a success message with its indicator.
func (t *Theme) RenderSuccess(message string) string {
	return t.SuccessStyle.Render(StatusIndicators.Success + " " + message)
}

// RenderError renders an error message with its indicator.
func (t *Theme) RenderError(message string) string {
	return t.ErrorStyle.Render(StatusIndicators.Error + " " + message)
}

// RenderWarning renders a warning message with its indicator.
func (t *Theme) RenderWarning(message string) string {
	return t.WarningStyle.Render(StatusIndicators.Warning + " " + message)
}

// RenderInfo renders an informational message with its indicator.
func (t *Theme) RenderInfo(message string) string {
	return t.InfoStyle.Render(StatusIndicators.Info + " " + message)
}
