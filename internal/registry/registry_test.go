// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// RESOLUTION TESTS
// =============================================================================

func TestResolveAssistant_AllKeys(t *testing.T) {
	reg := Default()

	tests := []struct {
		identifier string
		wantUUID   string
		wantFound  bool
	}{
		{"al", "alice", true},
		{"AL", "alice", true},
		{"Alice", "alice", true},
		{"alice", "alice", true},
		{"ALICE", "alice", true},
		{"exa", "your-assistant-uuid-here", true},
		{"example assistant", "your-assistant-uuid-here", true},
		{"YOUR-ASSISTANT-UUID-HERE", "your-assistant-uuid-here", true},
		{"", "", false},
		{"unknownxyz", "", false},
		{"exs", "", false}, // skill shortcut, not an assistant
		{" al", "", false}, // no trimming inside the registry
	}

	for _, tc := range tests {
		got, ok := reg.ResolveAssistant(tc.identifier)
		assert.Equal(t, tc.wantFound, ok, "ResolveAssistant(%q) found", tc.identifier)
		assert.Equal(t, tc.wantUUID, got.UUID, "ResolveAssistant(%q) uuid", tc.identifier)
		if ok {
			assert.Equal(t, KindAssistant, got.Kind)
		}
	}
}

func TestResolveSkill_AllKeys(t *testing.T) {
	reg := Default()

	for _, id := range []string{"exs", "EXS", "Example Skill", "example skill", "your-skill-uuid-here"} {
		got, ok := reg.ResolveSkill(id)
		require.True(t, ok, "ResolveSkill(%q)", id)
		assert.Equal(t, "your-skill-uuid-here", got.UUID)
		assert.Equal(t, KindSkill, got.Kind)
	}

	_, ok := reg.ResolveSkill("al")
	assert.False(t, ok, "assistant shortcut must not resolve as a skill")
}

func TestResolve_FirstMatchInListOrderWins(t *testing.T) {
	reg := New(Config{
		Assistants: []Entity{
			{Name: "First", UUID: "uuid-1", Shortcut: "dup"},
			{Name: "dup", UUID: "uuid-2", Shortcut: "second"},
			{Name: "Third", UUID: "dup", Shortcut: "dup"},
		},
	})

	got, ok := reg.ResolveAssistant("DUP")
	require.True(t, ok)
	assert.Equal(t, "uuid-1", got.UUID)

	// A later entity's shortcut does not beat an earlier entity's name.
	reg = New(Config{
		Assistants: []Entity{
			{Name: "key", UUID: "by-name"},
			{Name: "Other", UUID: "by-shortcut", Shortcut: "key"},
		},
	})
	got, ok = reg.ResolveAssistant("key")
	require.True(t, ok)
	assert.Equal(t, "by-name", got.UUID)
}

func TestResolve_EmptyFieldsNeverMatch(t *testing.T) {
	reg := New(Config{Skills: []Entity{{}}})

	_, ok := reg.ResolveSkill("")
	assert.False(t, ok)
	_, ok = reg.ResolveSkill("x")
	assert.False(t, ok)
}

func TestResolve_UnicodeCaseFolding(t *testing.T) {
	reg := New(Config{Assistants: []Entity{{Name: "Élan Vital", UUID: "elan", Shortcut: "ÄÖ"}}})

	got, ok := reg.ResolveAssistant("ÉLAN VITAL")
	require.True(t, ok)
	assert.Equal(t, "elan", got.UUID)

	_, ok = reg.ResolveAssistant("äö")
	assert.True(t, ok)
}

func TestNilRegistryIsEmpty(t *testing.T) {
	var reg *Registry

	assert.True(t, reg.IsEmpty())
	assert.Empty(t, reg.Assistants())
	assert.Empty(t, reg.Skills())
	_, ok := reg.ResolveAssistant("al")
	assert.False(t, ok)
	_, ok = reg.ResolveSkill("exs")
	assert.False(t, ok)
}

func TestNew_CopiesInput(t *testing.T) {
	cfg := Config{Assistants: []Entity{{Name: "A", UUID: "a", Shortcut: "a"}}}
	reg := New(cfg)
	cfg.Assistants[0].UUID = "changed"

	got, ok := reg.ResolveAssistant("a")
	require.True(t, ok)
	assert.Equal(t, "a", got.UUID)

	list := reg.Assistants()
	list[0].UUID = "changed again"
	got, _ = reg.ResolveAssistant("a")
	assert.Equal(t, "a", got.UUID)
}

// =============================================================================
// LOAD TESTS
// =============================================================================

func TestLoad_JSON(t *testing.T) {
	reg := Load(`{
		"assistants": [{"name": "Alice", "uuid": "alice", "shortcut": "al"}],
		"skills": [{"name": "Example Skill", "uuid": "your-skill-uuid-here", "shortcut": "exs"}]
	}`)

	require.Len(t, reg.Assistants(), 1)
	require.Len(t, reg.Skills(), 1)
	assert.Equal(t, "Alice", reg.Assistants()[0].Name)
}

func TestLoad_PascalCaseKeys(t *testing.T) {
	reg := Load(`{"Assistants": [{"Name": "Alice", "Uuid": "alice", "Shortcut": "al"}], "Skills": []}`)

	got, ok := reg.ResolveAssistant("al")
	require.True(t, ok)
	assert.Equal(t, "alice", got.UUID)
}

func TestLoad_MissingFieldsDefaultToEmpty(t *testing.T) {
	reg := Load(`{"assistants": [{"name": "Only Name"}]}`)

	list := reg.Assistants()
	require.Len(t, list, 1)
	assert.Equal(t, "Only Name", list[0].Name)
	assert.Equal(t, "", list[0].UUID)
	assert.Equal(t, "", list[0].Shortcut)
	assert.Empty(t, reg.Skills())
}

func TestLoad_MalformedYieldsEmpty(t *testing.T) {
	inputs := []string{
		"{",
		"not json at all",
		`{"assistants": 5}`,
		`{"assistants": [{"name": 7}]}`,
		`[]`,
	}

	for _, in := range inputs {
		var reg *Registry
		require.NotPanics(t, func() { reg = Load(in) }, "Load(%q)", in)
		require.NotNil(t, reg)
		assert.True(t, reg.IsEmpty(), "Load(%q) should be empty", in)
	}
}

func TestLoad_BlankAndNull(t *testing.T) {
	for _, in := range []string{"", "   \n\t", "null", "{}"} {
		reg := Load(in)
		require.NotNil(t, reg)
		assert.True(t, reg.IsEmpty(), "Load(%q)", in)
	}
}

func TestParse_ReportsError(t *testing.T) {
	_, err := Parse("{")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json")
}

func TestParseFormat_TOML(t *testing.T) {
	text := `
[[assistants]]
name = "Alice"
uuid = "alice"
shortcut = "al"

[[skills]]
name = "Example Skill"
uuid = "your-skill-uuid-here"
shortcut = "exs"
`
	reg, err := ParseFormat(text, FormatTOML)
	require.NoError(t, err)

	got, ok := reg.ResolveSkill("exs")
	require.True(t, ok)
	assert.Equal(t, "your-skill-uuid-here", got.UUID)
}

func TestParseFormat_YAML(t *testing.T) {
	text := `
assistants:
  - name: Alice
    uuid: alice
    shortcut: al
skills: []
`
	reg, err := ParseFormat(text, FormatYAML)
	require.NoError(t, err)

	got, ok := reg.ResolveAssistant("Alice")
	require.True(t, ok)
	assert.Equal(t, "alice", got.UUID)
}

func TestLoadFormat_MalformedTOMLYieldsEmpty(t *testing.T) {
	reg := LoadFormat("[[assistants]\nname=", FormatTOML)
	assert.True(t, reg.IsEmpty())
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"registry.json", FormatJSON},
		{"registry.TOML", FormatTOML},
		{"registry.yaml", FormatYAML},
		{"registry.yml", FormatYAML},
		{"registry", FormatJSON},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatFromPath(tc.path), tc.path)
	}
}

func TestMarshal_RoundTripsEveryFormat(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatTOML, FormatYAML} {
		data, err := Marshal(DefaultConfig(), f)
		require.NoError(t, err, f.String())

		reg, err := ParseFormat(string(data), f)
		require.NoError(t, err, f.String())
		assert.Equal(t, Default().Config(), reg.Config(), f.String())
	}
}

func TestDefaultJSON_LoadsSampleRegistry(t *testing.T) {
	reg := Load(DefaultJSON())

	assert.Len(t, reg.Assistants(), 2)
	assert.Len(t, reg.Skills(), 1)
	_, ok := reg.ResolveAssistant("exa")
	assert.True(t, ok)
}

// =============================================================================
// LINT TESTS
// =============================================================================

func TestLint(t *testing.T) {
	reg := New(Config{
		Assistants: []Entity{
			{Name: "Alice", UUID: "alice", Shortcut: "al"},
			{Name: "Bob", UUID: "4f1c2b9e-8d2a-4a4e-9f3b-2c1d0e9f8a7b", Shortcut: "AL"},
		},
		Skills: []Entity{
			{Name: "No Shortcut", UUID: "4f1c2b9e-8d2a-4a4e-9f3b-2c1d0e9f8a7c"},
		},
	})

	issues := reg.Lint()

	var shadowed, empty, info int
	for _, is := range issues {
		switch {
		case is.Severity == SeverityInfo:
			info++
		case is.Message == "empty":
			empty++
			assert.Equal(t, "skill", is.Kind)
			assert.Equal(t, "shortcut", is.Field)
		default:
			shadowed++
			assert.Equal(t, 1, is.Index)
			assert.Contains(t, is.Message, "assistant[0]")
		}
	}

	assert.Equal(t, 1, shadowed)
	assert.Equal(t, 1, empty)
	assert.Equal(t, 1, info, "only \"alice\" is a non-canonical uuid")
}

func TestLint_SameEntityReusingKeyIsFine(t *testing.T) {
	reg := New(Config{Assistants: []Entity{{Name: "al", UUID: "al", Shortcut: "al"}}})

	for _, is := range reg.Lint() {
		assert.NotContains(t, is.Message, "shadowed")
	}
}

func TestEntity_HasCanonicalUUID(t *testing.T) {
	assert.True(t, Entity{UUID: "4f1c2b9e-8d2a-4a4e-9f3b-2c1d0e9f8a7b"}.HasCanonicalUUID())
	assert.False(t, Entity{UUID: "alice"}.HasCanonicalUUID())
	assert.False(t, Entity{}.HasCanonicalUUID())
}
