// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package launcher

import (
	"strings"

	"github.com/heyalice/alicelink/internal/commands"
	"github.com/heyalice/alicelink/internal/ui/styles"
	"github.com/heyalice/alicelink/internal/util"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.launched != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	for i, c := range m.candidates {
		b.WriteString(m.renderCandidate(c, i == m.selected))
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatus())
	return b.String()
}

func (m Model) renderHeader() string {
	header := m.theme.HeaderBrand.Render("Hey Alice")
	if m.dryRun {
		header += " " + m.theme.DryRunBadge.Render("[dry run]")
	}
	if m.theme.GetLayoutMode() == styles.LayoutWide {
		header += "  " + m.theme.HeaderHint.Render("type a query, enter to open")
	}
	return m.theme.Header.Render(header)
}

// contentWidth is the space left for candidate text after the item padding.
func (m Model) contentWidth() int {
	w := m.width - 4
	if w < 10 {
		w = 10
	}
	return w
}

func (m Model) renderCandidate(c commands.Candidate, selected bool) string {
	width := m.contentWidth()

	lines := []string{m.theme.ItemTitle.Render(util.TruncateWidth(c.Title, width))}

	if m.theme.GetLayoutMode() == styles.LayoutWide && c.Subtitle != "" {
		lines = append(lines, m.theme.ItemSubtitle.Render(util.TruncateWidth(c.Subtitle, width)))
	}
	if c.IsNoOp() {
		lines = append(lines, m.theme.ItemNoOp.Render(util.TruncateWidth("enter to type "+commands.StripActionKeyword(c.QueryText), width)))
	} else {
		lines = append(lines, m.theme.ItemURI.Render(util.TruncateWidth(c.Action.URI, width)))
	}

	content := strings.Join(lines, "\n")
	if selected {
		return m.theme.ItemSelected.Render(content)
	}
	return m.theme.Item.Render(content)
}

func (m Model) renderStatus() string {
	if m.status != "" {
		text := util.TruncateWidth(util.SingleLine(m.status), m.contentWidth())
		if m.statusErr {
			return m.theme.StatusBar.Render(m.theme.RenderError(text))
		}
		return m.theme.StatusBar.Render(m.theme.RenderInfo(text))
	}

	var parts []string
	for _, binding := range m.keys.ShortHelp() {
		h := binding.Help()
		parts = append(parts, m.theme.ShortcutKey.Render(h.Key)+" "+m.theme.ShortcutDesc.Render(h.Desc))
	}
	return m.theme.StatusBar.Render(strings.Join(parts, "  "))
}
