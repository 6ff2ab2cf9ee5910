// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package registry holds the configured assistants and skills that queries
// resolve against.
//
// A Registry is immutable once built. Reconfiguration builds a new Registry
// and publishes it through a Store, so readers always see one complete
// snapshot.
//
// # Key Types
//
//   - Entity: an assistant or skill with name, uuid and shortcut keys
//   - Registry: ordered assistants and skills with case-insensitive lookup
//   - Store: atomically swappable registry reference
//   - Issue: a lint finding reported by Registry.Lint
//
// # Usage
//
// Load configuration text (never fails, malformed text yields an empty registry):
//
//	reg := registry.Load(settingsJSON)
//	if a, ok := reg.ResolveAssistant("al"); ok {
//	    fmt.Println(a.UUID)
//	}
//
// Publish a new snapshot:
//
//	store := registry.NewStore(reg)
//	store.Replace(newText)
//	current := store.Current()
package registry
