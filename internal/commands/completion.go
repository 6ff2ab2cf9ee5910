// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/heyalice/alicelink/internal/registry"
)

// =============================================================================
// COMPLETER
// =============================================================================

// Completion is one suggested replacement for the whole query.
type Completion struct {
	// Value is the full query text to substitute
	Value string

	// Description is shown next to the value
	Description string
}

// commandForms are the command words in suggestion order.
var commandForms = []Completion{
	{Value: "a ", Description: "Chat with an assistant"},
	{Value: "s ", Description: "Open a skill"},
	{Value: "h", Description: "Chat history"},
	{Value: "history", Description: "Chat history"},
}

// Completer suggests command words and registry keys.
type Completer struct {
	source Source
}

// NewCompleter creates a completer reading the registry from source.
func NewCompleter(source Source) *Completer {
	return &Completer{source: source}
}

// Complete returns completions for input, in registry order.
//
//	"hi"     -> "history"
//	"a e"    -> "a exa "
//	"s ex"   -> "s exs", "s Example Skill"
func (c *Completer) Complete(input string) []Completion {
	input = strings.TrimLeftFunc(input, unicode.IsSpace)

	var reg *registry.Registry
	if c.source != nil {
		reg = c.source.Current()
	}

	switch {
	case hasPrefixFold(input, "a "):
		partial := strings.TrimLeftFunc(input[2:], unicode.IsSpace)
		// Once a space follows the identifier the user is typing a prompt.
		if strings.IndexFunc(partial, unicode.IsSpace) != -1 {
			return nil
		}
		return completeEntities(reg.Assistants(), "a ", " ", partial, false)

	case hasPrefixFold(input, "s "):
		partial := strings.TrimLeftFunc(input[2:], unicode.IsSpace)
		return completeEntities(reg.Skills(), "s ", "", partial, true)

	default:
		return completeCommandWords(input)
	}
}

// Strings returns completion values only, the shape line editors expect.
func (c *Completer) Strings(input string) []string {
	completions := c.Complete(input)
	if len(completions) == 0 {
		return nil
	}
	values := make([]string, len(completions))
	for i, comp := range completions {
		values[i] = comp.Value
	}
	return values
}

func completeCommandWords(input string) []Completion {
	if strings.ContainsFunc(input, unicode.IsSpace) {
		return nil
	}

	var completions []Completion
	for _, form := range commandForms {
		if hasPrefixFold(form.Value, input) && !strings.EqualFold(form.Value, input) {
			completions = append(completions, form)
		}
	}
	return completions
}

// completeEntities matches partial against shortcuts and names. Keys that
// contain whitespace are skipped unless allowSpaces is set, because an
// assistant identifier ends at the first space.
func completeEntities(entities []registry.Entity, prefix, suffix, partial string, allowSpaces bool) []Completion {
	fold := cases.Fold()
	want := fold.String(partial)

	seen := make(map[string]bool)
	var completions []Completion
	for _, e := range entities {
		for _, key := range []string{e.Shortcut, e.Name} {
			if key == "" || (!allowSpaces && strings.ContainsFunc(key, unicode.IsSpace)) {
				continue
			}
			folded := fold.String(key)
			if !strings.HasPrefix(folded, want) || seen[folded] {
				continue
			}
			seen[folded] = true
			completions = append(completions, Completion{
				Value:       prefix + key + suffix,
				Description: e.Name,
			})
		}
	}
	return completions
}
