// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestDetect(t *testing.T) {
	orig := hasDarkBackground
	defer func() { hasDarkBackground = orig }()

	tests := []struct {
		setting  string
		termDark bool
		want     Mode
	}{
		{"light", true, ModeLight},
		{"DARK", false, ModeDark},
		{" Light ", true, ModeLight},
		{"auto", true, ModeDark},
		{"auto", false, ModeLight},
		{"", false, ModeLight},
		{"something", true, ModeDark},
	}

	for _, tt := range tests {
		termDark := tt.termDark
		hasDarkBackground = func() bool { return termDark }
		if got := Detect(tt.setting); got != tt.want {
			t.Errorf("Detect(%q) with dark=%v = %v, want %v", tt.setting, tt.termDark, got, tt.want)
		}
	}
}

func TestIconPath(t *testing.T) {
	if got := IconPath(ModeLight); got != "Images/HeyAlice.light.png" {
		t.Errorf("IconPath(light) = %q", got)
	}
	if got := IconPath(ModeDark); got != "Images/HeyAlice.dark.png" {
		t.Errorf("IconPath(dark) = %q", got)
	}
}

func TestModeString(t *testing.T) {
	if ModeLight.String() != "light" || ModeDark.String() != "dark" {
		t.Errorf("unexpected mode strings %q %q", ModeLight, ModeDark)
	}
}

func TestPick(t *testing.T) {
	ac := lipgloss.AdaptiveColor{Light: "#111111", Dark: "#EEEEEE"}
	if Pick(ac, ModeLight) != lipgloss.Color("#111111") {
		t.Error("light mode should pick the light variant")
	}
	if Pick(ac, ModeDark) != lipgloss.Color("#EEEEEE") {
		t.Error("dark mode should pick the dark variant")
	}
}

func TestNewTheme(t *testing.T) {
	for _, mode := range []Mode{ModeLight, ModeDark} {
		theme := NewTheme(mode)
		if theme == nil {
			t.Fatal("NewTheme returned nil")
		}
		if theme.Mode != mode {
			t.Errorf("theme mode = %v, want %v", theme.Mode, mode)
		}
		if theme.ItemTitle.GetForeground() != Pick(TextPrimary, mode) {
			t.Errorf("%v: item title color not resolved for mode", mode)
		}
	}
}

func TestThemeLayoutMode(t *testing.T) {
	theme := NewTheme(ModeDark)

	theme.SetSize(40, 20)
	if theme.GetLayoutMode() != LayoutNarrow {
		t.Error("40 columns should be narrow")
	}
	theme.SetSize(120, 40)
	if theme.GetLayoutMode() != LayoutWide {
		t.Error("120 columns should be wide")
	}
}

func TestRenderStatusIncludesIndicator(t *testing.T) {
	theme := NewTheme(ModeDark)

	tests := []struct {
		got       string
		indicator string
	}{
		{theme.RenderSuccess("opened"), StatusIndicators.Success},
		{theme.RenderError("failed"), StatusIndicators.Error},
		{theme.RenderWarning("duplicate"), StatusIndicators.Warning},
		{theme.RenderInfo("dry run"), StatusIndicators.Info},
	}
	for _, tt := range tests {
		if !strings.Contains(tt.got, tt.indicator) {
			t.Errorf("%q does not contain %q", tt.got, tt.indicator)
		}
	}
}
