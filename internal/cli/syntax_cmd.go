// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// syntax_cmd.go - The syntax command: query syntax reference.
package cli

import (
	"fmt"
)

// SyntaxMarkdown documents the query language.
const SyntaxMarkdown = "# alicelink query syntax\n" +
	"\n" +
	"| query | opens |\n" +
	"|---|---|\n" +
	"| *(empty)* | `alice://chat/new` |\n" +
	"| `h`, `history` | `alice://chat/history` |\n" +
	"| `a` | `alice://chat/new` |\n" +
	"| `a <assistant>` | `alice://newchat?assistant=<uuid>` |\n" +
	"| `a <assistant> <prompt>` | `alice://newchat?assistant=<uuid>&prompt=<prompt>` |\n" +
	"| `s <skill>` | `alice://snippet/<uuid>` |\n" +
	"| anything else | `alice://newchat?prompt=<query>` |\n" +
	"\n" +
	"## Identifiers\n" +
	"\n" +
	"Assistants and skills are matched by **shortcut**, **name** or **uuid**, ignoring case. " +
	"The first match in registry order wins. An assistant that is not in the registry is " +
	"passed through as typed, so `a 3f1c... hello` works without configuration.\n" +
	"\n" +
	"Skills take no prompt: everything after `s ` is the identifier, spaces included.\n" +
	"\n" +
	"## Registry\n" +
	"\n" +
	"The registry lives in `~/.alicelink/registry.json` (TOML and YAML also work). " +
	"Run `alicelink config init` to write a sample and `alicelink config validate` to check it.\n"

// HandleSyntax prints the query syntax reference, rendered when stdout is a
// terminal.
func HandleSyntax(app *App) error {
	if app.Args.JSON {
		return NewJSONResponse("syntax", SyntaxData{Markdown: SyntaxMarkdown}).Write(app.Out)
	}
	if IsStdoutTTY() {
		fmt.Fprint(app.Out, renderMarkdown(SyntaxMarkdown, app.Config.UI.Width))
		return nil
	}
	fmt.Fprint(app.Out, SyntaxMarkdown)
	return nil
}
