// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands interprets a launcher query and turns it into candidate
// actions that open alice:// deep links.
//
// # Query Syntax
//
//	(empty)            new chat
//	h, history         chat history
//	a                  new chat
//	a <id> [prompt]    chat with an assistant, optionally pre-filled
//	s                  placeholder asking for a skill
//	s <id>             open a skill (the whole remainder is the id)
//	anything else      new chat pre-filled with the query
//
// Command words are matched case-insensitively. The "a " and "s " forms need
// exactly one literal space after the letter; "h x" or "a\tx" are prompts.
//
// # Key Types
//
//   - ParseResult: classified query with its intent and argument
//   - Candidate: one selectable result with a title and an Action
//   - Interpreter: runs Interpret against the live registry of a Source
//   - Completer: tab completion of command words and registry keys
//
// # Usage
//
//	candidates := commands.Interpret("a al hello", reg)
//	// candidates[0].Action.URI == "alice://newchat?assistant=alice&prompt=hello"
package commands
