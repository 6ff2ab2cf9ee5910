// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// query_cmd.go - The query and open commands.
//
// Command: query, q
// Short:   Show what a query resolves to without opening anything
//
// Command: open, o
// Short:   Resolve a query and open the first result in Hey Alice
//
// Examples:
//   alicelink q a al hello world
//   alicelink open s exs
//   alicelink --dry-run o buy milk
package cli

import (
	"context"
	"fmt"

	"github.com/heyalice/alicelink/internal/commands"
	"github.com/heyalice/alicelink/internal/ui/styles"
	"github.com/heyalice/alicelink/internal/util"
)

// HandleQuery prints the candidates for app.Args.Query.
func HandleQuery(app *App) error {
	query := app.Args.Query
	candidates := app.Interpreter.Interpret(query)

	if app.Args.JSON {
		data := QueryData{
			Query:      query,
			Registry:   app.Origin,
			Icon:       styles.IconPath(app.Host.Theme()),
			Candidates: make([]CandidateData, 0, len(candidates)),
		}
		for _, c := range candidates {
			data.Candidates = append(data.Candidates, NewCandidateData(c))
		}
		return NewJSONResponse("query", data).Write(app.Out)
	}

	width := listingWidth(app.Config.UI.Width)
	for i, c := range candidates {
		fmt.Fprintf(app.Out, "%d. %s\n", i+1, ValueStyle.Render(util.TruncateWidth(c.Title, width)))
		if c.Subtitle != "" {
			fmt.Fprintf(app.Out, "   %s\n", DimStyle.Render(util.TruncateWidth(c.Subtitle, width)))
		}
		if c.IsNoOp() {
			fmt.Fprintf(app.Out, "   %s\n", WarningStyle.Render("type: "+commands.StripActionKeyword(c.QueryText)))
		} else {
			fmt.Fprintf(app.Out, "   %s\n", URIStyle.Render(c.Action.URI))
		}
	}
	return nil
}

// HandleOpen executes the first candidate for app.Args.Query.
// A placeholder candidate has nothing to open and is reported as a usage error.
func HandleOpen(ctx context.Context, app *App) error {
	query := app.Args.Query
	candidates := app.Interpreter.Interpret(query)
	if len(candidates) == 0 {
		return &NotFoundError{Resource: "candidate", ID: query}
	}
	c := candidates[0]

	if c.IsNoOp() {
		return &ValidationError{
			Field:   "query",
			Value:   query,
			Reason:  c.Subtitle,
			Example: "alicelink open s <skill>",
		}
	}

	launched, err := app.Launch(ctx, query, c)
	if err != nil {
		return err
	}

	if app.Args.JSON {
		return NewJSONResponse("open", OpenData{
			Query:    query,
			Title:    c.Title,
			URI:      c.Action.URI,
			Launched: launched,
			DryRun:   app.DryRun,
		}).Write(app.Out)
	}

	if !app.Args.Quiet && !app.DryRun {
		fmt.Fprintf(app.Out, "%s %s\n", RenderStatus(true), c.Title)
	}
	return nil
}
