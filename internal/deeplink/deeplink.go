// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package deeplink

import (
	"net/url"
	"strings"
)

// Scheme is the URI scheme registered by the desktop application.
const Scheme = "alice"

const (
	// NewChat opens an empty chat.
	NewChat = Scheme + "://chat/new"

	// History opens the chat history panel.
	History = Scheme + "://chat/history"

	newChatBase = Scheme + "://newchat"
	snippetBase = Scheme + "://snippet/"
)

// Prompt returns a new-chat URI pre-filled with prompt.
func Prompt(prompt string) string {
	return newChatBase + "?prompt=" + EscapePrompt(prompt)
}

// Assistant returns a new-chat URI for the assistant id, with an optional
// prompt. The id is not escaped.
func Assistant(id, prompt string) string {
	uri := newChatBase + "?assistant=" + id
	if prompt != "" {
		uri += "&prompt=" + EscapePrompt(prompt)
	}
	return uri
}

// Snippet returns the URI that opens the skill id. The id is not escaped.
func Snippet(id string) string {
	return snippetBase + id
}

// EscapePrompt percent-encodes s as a URI data component: every byte outside
// A-Z a-z 0-9 and "-._~" becomes %XX over its UTF-8 encoding, so a space is
// "%20" rather than "+".
func EscapePrompt(s string) string {
	// QueryEscape leaves only the unreserved set untouched and turns spaces
	// into '+'. A literal '+' is always emitted as %2B, so every remaining
	// '+' stands for a space.
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
