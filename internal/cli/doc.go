// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and command handlers for alicelink.
//
// # Key Types
//
//   - Command: Enumeration of the available commands
//   - Args: Parsed global flags and command arguments
//   - App: Config, registry store, launcher and history shared by handlers
//   - JSONResponse: Envelope for --json output
//
// # Usage
//
//	cmd, args := cli.Parse()
//	app, err := cli.NewApp(args)
//	if err != nil {
//	    cli.HandleErrorAndExit(cmd.String(), err, args.JSON)
//	}
//	switch cmd {
//	case cli.CmdQuery:
//	    err = cli.HandleQuery(app)
//	case cli.CmdOpen:
//	    err = cli.HandleOpen(ctx, app)
//	// ... other commands
//	}
//
// # Commands Overview
//
//   - query, q: Show candidates for a query
//   - open, o: Open the first candidate
//   - repl: Line-edited prompt with tab completion
//   - config: show, path, init, validate, get, set
//   - history: list, clear
//   - syntax: Query syntax reference
//
// Unknown command words are treated as query text for open, so
// "alicelink buy milk" starts a new chat with that prompt.
//
// All commands support --json.
package cli
