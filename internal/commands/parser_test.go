// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"testing"
)

// =============================================================================
// PARSER TESTS
// =============================================================================

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		intent   Intent
		argument string
	}{
		{"", IntentNewChat, ""},
		{"   \t\n", IntentNewChat, ""},
		{"h", IntentHistory, ""},
		{"H", IntentHistory, ""},
		{"history", IntentHistory, ""},
		{"HISTORY", IntentHistory, ""},
		{"  History  ", IntentHistory, ""},
		{"a", IntentAssistantBare, ""},
		{"A", IntentAssistantBare, ""},
		{"a  ", IntentAssistantBare, ""}, // trimmed before matching
		{"a al", IntentAssistant, "al"},
		{"A al", IntentAssistant, "al"},
		{"a   al  hello ", IntentAssistant, "al  hello"},
		{"s", IntentSkillBare, ""},
		{"S", IntentSkillBare, ""},
		{"s exs", IntentSkill, "exs"},
		{"S Example Skill", IntentSkill, "Example Skill"},
		{"h x", IntentPrompt, ""},
		{"hist", IntentPrompt, ""},
		{"al", IntentPrompt, ""},
		{"a\tal", IntentPrompt, ""}, // only a literal space separates the command
		{"x", IntentPrompt, ""},
		{"buy milk", IntentPrompt, ""},
		{"as well", IntentPrompt, ""},
	}

	for _, tc := range tests {
		got := Parse(tc.input)
		if got.Intent != tc.intent {
			t.Errorf("Parse(%q).Intent = %v, want %v", tc.input, got.Intent, tc.intent)
		}
		if got.Argument != tc.argument {
			t.Errorf("Parse(%q).Argument = %q, want %q", tc.input, got.Argument, tc.argument)
		}
	}
}

func TestParse_QueryIsTrimmed(t *testing.T) {
	got := Parse("  buy milk  ")
	if got.Query != "buy milk" {
		t.Errorf("Query = %q, want %q", got.Query, "buy milk")
	}
}

func TestParse_CommandLettersAreASCII(t *testing.T) {
	tests := []struct {
		input  string
		intent Intent
	}{
		{"ſ", IntentPrompt},
		{"ſ exs", IntentPrompt},
		{"\u212a", IntentPrompt},
		{"ſ\u212a", IntentPrompt},
		{"S", IntentSkillBare},
		{"S exs", IntentSkill},
		{"HiStOrY", IntentHistory},
		{"A al", IntentAssistant},
	}

	for _, tt := range tests {
		got := Parse(tt.input)
		if got.Intent != tt.intent {
			t.Errorf("Parse(%q).Intent = %v, want %v", tt.input, got.Intent, tt.intent)
		}
	}

	c := Interpret("ſ", nil)[0]
	if c.IsNoOp() {
		t.Errorf("Interpret(%q) should be a prompt, got placeholder", "ſ")
	}
	if c.Action.URI != "alice://newchat?prompt=%C5%BF" {
		t.Errorf("Interpret(%q) URI = %q", "ſ", c.Action.URI)
	}
}

func TestSplitIdentifier(t *testing.T) {
	tests := []struct {
		input      string
		identifier string
		prompt     string
	}{
		{"al", "al", ""},
		{"al hello world", "al", "hello world"},
		{"al   hello   world  ", "al", "hello   world"},
		{"al\thello", "al", "hello"},
		{"", "", ""},
	}

	for _, tc := range tests {
		id, prompt := SplitIdentifier(tc.input)
		if id != tc.identifier || prompt != tc.prompt {
			t.Errorf("SplitIdentifier(%q) = (%q, %q), want (%q, %q)",
				tc.input, id, prompt, tc.identifier, tc.prompt)
		}
	}
}

func TestIntentString(t *testing.T) {
	if got := IntentAssistant.String(); got != "assistant" {
		t.Errorf("IntentAssistant.String() = %q", got)
	}
	if got := Intent(99).String(); got != "unknown" {
		t.Errorf("Intent(99).String() = %q", got)
	}
}
