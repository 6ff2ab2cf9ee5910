// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// Store publishes the current registry. Readers never observe a partially
// built registry; every swap replaces the whole reference.
type Store struct {
	current atomic.Pointer[Registry]
}

// NewStore creates a store holding initial, or an empty registry if nil.
func NewStore(initial *Registry) *Store {
	s := &Store{}
	s.Set(initial)
	return s
}

// Current returns the registry snapshot in effect right now.
func (s *Store) Current() *Registry {
	if r := s.current.Load(); r != nil {
		return r
	}
	return Empty()
}

// Set publishes reg. A nil reg publishes an empty registry.
func (s *Store) Set(reg *Registry) {
	if reg == nil {
		reg = Empty()
	}
	s.current.Store(reg)
}

// Replace parses JSON text and publishes the result. Malformed text
// publishes an empty registry.
func (s *Store) Replace(text string) *Registry {
	reg := Load(text)
	s.Set(reg)
	return reg
}

// ReloadFile reads path and publishes its contents, choosing the format from
// the extension. A missing file or a parse failure publishes an empty
// registry. Other read failures leave the current registry in place and are
// returned.
func (s *Store) ReloadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("[registry] %s no longer exists (using empty registry)", path)
		reg := Empty()
		s.Set(reg)
		return reg, nil
	case err != nil:
		return s.Current(), fmt.Errorf("failed to read registry file: %w", err)
	}
	reg := LoadFormat(string(data), FormatFromPath(path))
	s.Set(reg)
	return reg, nil
}

// =============================================================================
// SETTINGS RESOLUTION
// =============================================================================

// Origin describes where a registry came from.
type Origin string

const (
	OriginInline  Origin = "inline"
	OriginFile    Origin = "file"
	OriginDefault Origin = "default"
)

// LoadSettings builds the startup registry. Non-empty inline JSON wins; an
// existing file is loaded next; with neither, the registry is empty. The
// sample registry is only ever written by config init. Only I/O errors other
// than a missing file are returned.
func LoadSettings(inline, path string) (*Registry, Origin, error) {
	if strings.TrimSpace(inline) != "" {
		return Load(inline), OriginInline, nil
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			return LoadFormat(string(data), FormatFromPath(path)), OriginFile, nil
		case errors.Is(err, fs.ErrNotExist):
			// not configured yet
		default:
			log.Printf("[registry] cannot read %s: %v", path, err)
			return Empty(), OriginFile, fmt.Errorf("failed to read registry file: %w", err)
		}
	}

	return Empty(), OriginDefault, nil
}
