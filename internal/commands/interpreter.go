// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"strings"

	"github.com/heyalice/alicelink/internal/deeplink"
	"github.com/heyalice/alicelink/internal/registry"
)

// =============================================================================
// CANDIDATES
// =============================================================================

// ActionKind says what executing a candidate does.
type ActionKind int

const (
	// ActionNone does nothing; the candidate only suggests QueryText.
	ActionNone ActionKind = iota
	// ActionOpenURI hands URI to the launcher.
	ActionOpenURI
)

// MarshalText lets action kinds appear by name in JSON output.
func (k ActionKind) MarshalText() ([]byte, error) {
	if k == ActionOpenURI {
		return []byte("open_uri"), nil
	}
	return []byte("none"), nil
}

// Action is a pure description of what to do when a candidate is chosen.
type Action struct {
	Kind ActionKind `json:"kind"`
	URI  string     `json:"uri,omitempty"`
}

// Candidate is one selectable result for a query.
type Candidate struct {
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	QueryText string `json:"query_text"`
	Intent    Intent `json:"intent"`
	Action    Action `json:"action"`

	// Entity is the registry entry the query resolved to, nil on a miss
	Entity *registry.Entity `json:"entity,omitempty"`
}

// IsNoOp reports whether executing the candidate does nothing.
func (c Candidate) IsNoOp() bool {
	return c.Action.Kind == ActionNone
}

// ActionKeyword prefixes suggested query text. Hosts that route queries by
// keyword need it to keep the follow-up query with alicelink.
const ActionKeyword = "al"

// StripActionKeyword removes a leading ActionKeyword from suggested query
// text, for query boxes that belong to alicelink alone.
func StripActionKeyword(queryText string) string {
	if strings.HasPrefix(queryText, ActionKeyword) {
		return queryText[len(ActionKeyword):]
	}
	return queryText
}

func openURI(uri string) Action {
	return Action{Kind: ActionOpenURI, URI: uri}
}

// =============================================================================
// INTERPRETER
// =============================================================================

// Source provides the registry snapshot to interpret against.
// *registry.Store implements it.
type Source interface {
	Current() *registry.Registry
}

type staticSource struct{ reg *registry.Registry }

func (s staticSource) Current() *registry.Registry { return s.reg }

// StaticSource wraps a fixed registry as a Source.
func StaticSource(reg *registry.Registry) Source {
	return staticSource{reg: reg}
}

// Interpreter interprets queries against whatever registry its source holds
// at call time.
type Interpreter struct {
	source Source
}

// NewInterpreter creates an interpreter reading from source.
func NewInterpreter(source Source) *Interpreter {
	return &Interpreter{source: source}
}

// Interpret interprets query against the current registry snapshot.
func (in *Interpreter) Interpret(query string) []Candidate {
	var reg *registry.Registry
	if in.source != nil {
		reg = in.source.Current()
	}
	return Interpret(query, reg)
}

// Interpret turns a raw query into candidates. It never fails; a nil
// registry resolves nothing.
func Interpret(query string, reg *registry.Registry) []Candidate {
	parsed := Parse(query)

	switch parsed.Intent {
	case IntentNewChat:
		return []Candidate{newChatCandidate(IntentNewChat, "")}

	case IntentHistory:
		return []Candidate{{
			Title:     "Chat history",
			Subtitle:  "Open chat history panel",
			QueryText: parsed.Query,
			Intent:    IntentHistory,
			Action:    openURI(deeplink.History),
		}}

	case IntentAssistantBare:
		return []Candidate{newChatCandidate(IntentAssistantBare, parsed.Query)}

	case IntentAssistant:
		return interpretAssistant(parsed.Argument, reg)

	case IntentSkillBare:
		return []Candidate{skillPlaceholder(IntentSkillBare)}

	case IntentSkill:
		return interpretSkill(parsed.Argument, reg)

	default:
		return []Candidate{{
			Title:     fmt.Sprintf("New chat: %s", parsed.Query),
			Subtitle:  "New chat with prompt",
			QueryText: parsed.Query,
			Intent:    IntentPrompt,
			Action:    openURI(deeplink.Prompt(parsed.Query)),
		}}
	}
}

func newChatCandidate(intent Intent, queryText string) Candidate {
	return Candidate{
		Title:     "New chat",
		Subtitle:  "Open a new chat in Hey Alice",
		QueryText: queryText,
		Intent:    intent,
		Action:    openURI(deeplink.NewChat),
	}
}

func skillPlaceholder(intent Intent) Candidate {
	return Candidate{
		Title:     "Open skill",
		Subtitle:  "Enter skill shortcut, name, or UUID",
		QueryText: ActionKeyword + "s ",
		Intent:    intent,
		Action:    Action{Kind: ActionNone},
	}
}

// interpretAssistant handles "a <identifier> [prompt]". An identifier that
// is not in the registry is used verbatim as the assistant id.
func interpretAssistant(argument string, reg *registry.Registry) []Candidate {
	if argument == "" {
		return []Candidate{newChatCandidate(IntentAssistant, ActionKeyword+"a ")}
	}

	identifier, prompt := SplitIdentifier(argument)

	id, label := identifier, identifier
	var entity *registry.Entity
	if found, ok := reg.ResolveAssistant(identifier); ok {
		id, label = found.UUID, found.Name
		entity = &found
	}

	c := Candidate{
		QueryText: argument,
		Intent:    IntentAssistant,
		Action:    openURI(deeplink.Assistant(id, prompt)),
		Entity:    entity,
	}
	if prompt != "" {
		c.Title = fmt.Sprintf("New chat with %s: %s", label, prompt)
		c.Subtitle = "Assistant: " + label
	} else {
		c.Title = fmt.Sprintf("Open assistant %s", label)
		c.Subtitle = "Open assistant"
	}
	return []Candidate{c}
}

// interpretSkill handles "s <identifier>". Skills take no prompt, so the
// whole argument, spaces included, is the identifier.
func interpretSkill(argument string, reg *registry.Registry) []Candidate {
	if argument == "" {
		return []Candidate{skillPlaceholder(IntentSkill)}
	}

	id, label := argument, argument
	var entity *registry.Entity
	if found, ok := reg.ResolveSkill(argument); ok {
		id, label = found.UUID, found.Name
		entity = &found
	}

	return []Candidate{{
		Title:     fmt.Sprintf("Open skill %s", label),
		Subtitle:  "Open skill",
		QueryText: argument,
		Intent:    IntentSkill,
		Action:    openURI(deeplink.Snippet(id)),
		Entity:    entity,
	}}
}
