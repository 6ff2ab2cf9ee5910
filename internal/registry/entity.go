// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package registry

import (
	"github.com/google/uuid"
)

// Kind distinguishes the two entity variants.
type Kind int

const (
	KindAssistant Kind = iota
	KindSkill
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindAssistant:
		return "assistant"
	case KindSkill:
		return "skill"
	default:
		return "unknown"
	}
}

// Entity is a named assistant or skill. Any field may be empty.
type Entity struct {
	Name     string `json:"name" toml:"name" yaml:"name"`
	UUID     string `json:"uuid" toml:"uuid" yaml:"uuid"`
	Shortcut string `json:"shortcut" toml:"shortcut" yaml:"shortcut"`

	// Kind is set by the registry and never serialized.
	Kind Kind `json:"-" toml:"-" yaml:"-"`
}

// HasCanonicalUUID reports whether UUID parses as an RFC 4122 UUID.
// Non-canonical ids are legal, the receiving application decides what they mean.
func (e Entity) HasCanonicalUUID() bool {
	if e.UUID == "" {
		return false
	}
	_, err := uuid.Parse(e.UUID)
	return err == nil
}

// Config is the serialized form of a registry.
type Config struct {
	Assistants []Entity `json:"assistants" toml:"assistants" yaml:"assistants"`
	Skills     []Entity `json:"skills" toml:"skills" yaml:"skills"`
}
