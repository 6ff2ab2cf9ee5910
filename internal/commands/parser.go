// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"strings"
	"unicode"
)

// =============================================================================
// INTENTS
// =============================================================================

// Intent is the classification of a query.
type Intent int

const (
	IntentNewChat       Intent = iota // empty query
	IntentHistory                     // "h" or "history"
	IntentAssistantBare               // "a" with nothing after it
	IntentAssistant                   // "a <argument>"
	IntentSkillBare                   // "s" with nothing after it
	IntentSkill                       // "s <argument>"
	IntentPrompt                      // anything else
)

var intentNames = map[Intent]string{
	IntentNewChat:       "new_chat",
	IntentHistory:       "history",
	IntentAssistantBare: "assistant_bare",
	IntentAssistant:     "assistant",
	IntentSkillBare:     "skill_bare",
	IntentSkill:         "skill",
	IntentPrompt:        "prompt",
}

// String returns the snake_case intent name.
func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "unknown"
}

// MarshalText lets intents appear by name in JSON output.
func (i Intent) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// =============================================================================
// PARSE RESULT
// =============================================================================

// ParseResult contains the result of classifying a query.
type ParseResult struct {
	// Intent is the matched rule
	Intent Intent

	// Query is the trimmed input
	Query string

	// Argument is the trimmed text after "a " or "s ", empty otherwise
	Argument string
}

// Parse classifies input. The first matching rule wins, in this order:
// empty, "h"/"history", "a", "a <arg>", "s", "s <arg>", prompt.
func Parse(input string) ParseResult {
	query := strings.TrimSpace(input)
	result := ParseResult{Query: query}

	switch {
	case query == "":
		result.Intent = IntentNewChat

	case equalFoldASCII(query, "h") || equalFoldASCII(query, "history"):
		result.Intent = IntentHistory

	case equalFoldASCII(query, "a"):
		result.Intent = IntentAssistantBare

	case hasPrefixFold(query, "a "):
		result.Intent = IntentAssistant
		result.Argument = strings.TrimSpace(query[2:])

	case equalFoldASCII(query, "s"):
		result.Intent = IntentSkillBare

	case hasPrefixFold(query, "s "):
		result.Intent = IntentSkill
		result.Argument = strings.TrimSpace(query[2:])

	default:
		result.Intent = IntentPrompt
	}

	return result
}

// SplitIdentifier splits an assistant argument at the first whitespace run.
// e.g., "al hello  world" -> ("al", "hello  world")
func SplitIdentifier(argument string) (identifier, prompt string) {
	argument = strings.TrimSpace(argument)
	end := strings.IndexFunc(argument, unicode.IsSpace)
	if end == -1 {
		return argument, ""
	}
	return argument[:end], strings.TrimSpace(argument[end:])
}

// equalFoldASCII compares s to an ASCII command word, folding ASCII letters
// only, so "ſ" (U+017F) is never the command "s".
func equalFoldASCII(s, word string) bool {
	if len(s) != len(word) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if lowerASCII(s[i]) != lowerASCII(word[i]) {
			return false
		}
	}
	return true
}

// hasPrefixFold is a case-insensitive strings.HasPrefix for an ASCII prefix.
func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && equalFoldASCII(s[:len(prefix)], prefix)
}

func lowerASCII(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
