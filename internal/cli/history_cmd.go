// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// history_cmd.go - The history command.
//
// Command: history [list|clear]
// Short:   Show or clear the local record of launched deep links
//
// Flags:
//   --limit N           Number of entries to list (default: 20)
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/heyalice/alicelink/internal/util"
)

// DefaultHistoryLimit is how many entries history list shows.
const DefaultHistoryLimit = 20

var historySubcommands = []string{"list", "clear"}

// HandleHistory dispatches history subcommands.
func HandleHistory(ctx context.Context, app *App) error {
	sub := strings.ToLower(app.Args.Subcommand)
	if sub != "" && sub != "list" && sub != "clear" {
		return ErrUnknownSubcommand("history", app.Args.Subcommand, historySubcommands)
	}
	if app.History == nil {
		return NewCommandError("history", orDefault(sub, "list"), "history is disabled",
			fmt.Errorf("set history.enabled = true in the config file"))
	}

	if sub == "clear" {
		return handleHistoryClear(ctx, app)
	}
	return handleHistoryList(ctx, app)
}

func handleHistoryList(ctx context.Context, app *App) error {
	p := NewArgParser(app.Args.Raw)
	limit := DefaultHistoryLimit
	if value := p.Flag("limit"); value != "" {
		n, err := ParseIntWithValidation(value, "limit")
		if err != nil {
			return &ValidationError{Field: "limit", Value: value, Reason: err.Error(), Example: "alicelink history list --limit 50"}
		}
		limit = n
	}

	entries, err := app.History.Recent(ctx, limit)
	if err != nil {
		return NewCommandError("history", "list", "cannot read history", err)
	}
	total, err := app.History.Count(ctx)
	if err != nil {
		return NewCommandError("history", "list", "cannot count history", err)
	}

	if app.Args.JSON {
		return NewJSONResponse("history", HistoryData{Total: total, Entries: entries}).Write(app.Out)
	}

	if len(entries) == 0 {
		fmt.Fprintln(app.Out, DimStyle.Render("No launches recorded yet."))
		return nil
	}

	width := listingWidth(app.Config.UI.Width)
	for _, e := range entries {
		fmt.Fprintf(app.Out, "%s %s  %s\n",
			RenderStatus(e.OK),
			DimStyle.Render(e.CreatedAt.Local().Format("2006-01-02 15:04")),
			util.TruncateWidth(util.SingleLine(e.Title), width))
		fmt.Fprintf(app.Out, "     %s\n", URIStyle.Render(e.URI))
		if !e.OK && e.Error != "" {
			fmt.Fprintf(app.Out, "     %s\n", ErrorStyle.Render(util.TruncateWidth(e.Error, width)))
		}
	}
	if total > len(entries) {
		fmt.Fprintln(app.Out, DimStyle.Render(fmt.Sprintf("(%d of %d shown)", len(entries), total)))
	}
	return nil
}

func handleHistoryClear(ctx context.Context, app *App) error {
	removed, err := app.History.Clear(ctx)
	if err != nil {
		return NewCommandError("history", "clear", "cannot clear history", err)
	}

	if app.Args.JSON {
		return NewJSONResponse("history", HistoryData{Removed: removed}).Write(app.Out)
	}
	if !app.Args.Quiet {
		fmt.Fprintf(app.Out, "%s removed %d entries\n", RenderStatus(true), removed)
	}
	return nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
