// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package registry

import (
	"bytes"
	"encoding/json"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultConfig returns the sample registry shown to new users.
func DefaultConfig() Config {
	return Config{
		Assistants: []Entity{
			{Name: "Alice", UUID: "alice", Shortcut: "al"},
			{Name: "Example Assistant", UUID: "your-assistant-uuid-here", Shortcut: "exa"},
		},
		Skills: []Entity{
			{Name: "Example Skill", UUID: "your-skill-uuid-here", Shortcut: "exs"},
		},
	}
}

// Default returns the sample registry.
func Default() *Registry {
	return New(DefaultConfig())
}

// DefaultJSON returns the sample registry as indented JSON.
func DefaultJSON() string {
	data, _ := Marshal(DefaultConfig(), FormatJSON)
	return string(data)
}

// Marshal encodes cfg in the given format.
func Marshal(cfg Config, format Format) ([]byte, error) {
	if cfg.Assistants == nil {
		cfg.Assistants = []Entity{}
	}
	if cfg.Skills == nil {
		cfg.Skills = []Entity{}
	}

	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatYAML:
		return yaml.Marshal(cfg)
	default:
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
}
