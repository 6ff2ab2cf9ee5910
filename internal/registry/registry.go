// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package registry

import (
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// FORMATS
// =============================================================================

// Format identifies the encoding of registry configuration text.
type Format int

const (
	FormatJSON Format = iota
	FormatTOML
	FormatYAML
)

// String returns the conventional file extension for the format, without the dot.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "json"
	}
}

// FormatFromPath picks a format from a file extension. Unknown extensions are JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// =============================================================================
// REGISTRY
// =============================================================================

// Registry is an immutable, ordered collection of assistants and skills.
// A nil *Registry behaves like an empty one.
type Registry struct {
	assistants []Entity
	skills     []Entity
}

// New builds a registry from cfg. The slices are copied and Kind is stamped
// on every entity, so later changes to cfg do not leak in.
func New(cfg Config) *Registry {
	r := &Registry{
		assistants: make([]Entity, len(cfg.Assistants)),
		skills:     make([]Entity, len(cfg.Skills)),
	}
	for i, e := range cfg.Assistants {
		e.Kind = KindAssistant
		r.assistants[i] = e
	}
	for i, e := range cfg.Skills {
		e.Kind = KindSkill
		r.skills[i] = e
	}
	return r
}

// Empty returns a registry with no assistants and no skills.
func Empty() *Registry {
	return &Registry{}
}

// Assistants returns a copy of the configured assistants in order.
func (r *Registry) Assistants() []Entity {
	if r == nil {
		return nil
	}
	return append([]Entity(nil), r.assistants...)
}

// Skills returns a copy of the configured skills in order.
func (r *Registry) Skills() []Entity {
	if r == nil {
		return nil
	}
	return append([]Entity(nil), r.skills...)
}

// Entities returns the entities of the given kind in order.
func (r *Registry) Entities(kind Kind) []Entity {
	if kind == KindSkill {
		return r.Skills()
	}
	return r.Assistants()
}

// IsEmpty reports whether the registry holds no entities at all.
func (r *Registry) IsEmpty() bool {
	return r == nil || (len(r.assistants) == 0 && len(r.skills) == 0)
}

// Config returns the serializable form of the registry.
func (r *Registry) Config() Config {
	return Config{Assistants: r.Assistants(), Skills: r.Skills()}
}

// =============================================================================
// RESOLUTION
// =============================================================================

// ResolveAssistant finds an assistant by shortcut, name or uuid.
func (r *Registry) ResolveAssistant(identifier string) (Entity, bool) {
	if r == nil {
		return Entity{}, false
	}
	return resolve(r.assistants, identifier)
}

// ResolveSkill finds a skill by shortcut, name or uuid.
func (r *Registry) ResolveSkill(identifier string) (Entity, bool) {
	if r == nil {
		return Entity{}, false
	}
	return resolve(r.skills, identifier)
}

// Resolve dispatches to ResolveAssistant or ResolveSkill.
func (r *Registry) Resolve(kind Kind, identifier string) (Entity, bool) {
	if kind == KindSkill {
		return r.ResolveSkill(identifier)
	}
	return r.ResolveAssistant(identifier)
}

// resolve returns the first entity, in list order, whose shortcut, name or
// uuid equals identifier under Unicode case folding. Duplicate keys across
// entities are not an error; the earlier entity wins.
func resolve(entities []Entity, identifier string) (Entity, bool) {
	if identifier == "" {
		return Entity{}, false
	}

	fold := cases.Fold()
	want := fold.String(identifier)
	for _, e := range entities {
		if matches(fold, want, e.Shortcut) || matches(fold, want, e.Name) || matches(fold, want, e.UUID) {
			return e, true
		}
	}
	return Entity{}, false
}

func matches(fold cases.Caser, want, field string) bool {
	if field == "" {
		return false
	}
	return fold.String(field) == want
}

// =============================================================================
// PARSING
// =============================================================================

// Parse decodes JSON registry text. Blank text is an empty registry, not an error.
func Parse(text string) (*Registry, error) {
	return ParseFormat(text, FormatJSON)
}

// ParseFormat decodes registry text in the given format.
func ParseFormat(text string, format Format) (*Registry, error) {
	if strings.TrimSpace(text) == "" {
		return Empty(), nil
	}

	var cfg Config
	var err error
	switch format {
	case FormatTOML:
		_, err = toml.Decode(text, &cfg)
	case FormatYAML:
		err = yaml.Unmarshal([]byte(text), &cfg)
	default:
		err = json.Unmarshal([]byte(text), &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s registry: %w", format, err)
	}
	return New(cfg), nil
}

// Load decodes JSON registry text. Malformed text is logged and yields an
// empty registry; Load never fails.
func Load(text string) *Registry {
	return LoadFormat(text, FormatJSON)
}

// LoadFormat is Load for an explicit format.
func LoadFormat(text string, format Format) *Registry {
	reg, err := ParseFormat(text, format)
	if err != nil {
		log.Printf("[registry] %v (using empty registry)", err)
		return Empty()
	}
	return reg
}
