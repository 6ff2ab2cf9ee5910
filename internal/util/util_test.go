// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"os"
	"path/filepath"
	"testing"
)

// =============================================================================
// ATOMIC WRITE TESTS
// =============================================================================

func TestAtomicWriteFile(t *testing.T) {
	tests := []struct {
		name string
		rel  string
		data []byte
	}{
		{"basic", "registry.json", []byte(`{"assistants":[]}`)},
		{"creates parent dirs", filepath.Join("a", "b", "registry.toml"), []byte("assistants = []\n")},
		{"empty data", "empty.json", []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.rel)
			if err := AtomicWriteFile(path, tt.data, 0600); err != nil {
				t.Fatalf("AtomicWriteFile failed: %v", err)
			}
			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("Failed to read file: %v", err)
			}
			if string(got) != string(tt.data) {
				t.Errorf("content = %q, want %q", got, tt.data)
			}
		})
	}
}

func TestAtomicWriteFile_OverwritesWithoutTempLeftovers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := AtomicWriteFile(path, []byte("first"), 0600); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if err := AtomicWriteFile(path, []byte("second"), 0600); err != nil {
		t.Fatalf("second write failed: %v", err)
	}

	got, _ := os.ReadFile(path)
	if string(got) != "second" {
		t.Errorf("content = %q, want %q", got, "second")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the target file, found %d entries", len(entries))
	}
}

func TestAtomicWriteFileWithDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "newdir", "history.db")

	if err := AtomicWriteFileWithDir(path, []byte("x"), 0600, 0700); err != nil {
		t.Fatalf("AtomicWriteFileWithDir failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("file not created: %v", err)
	}
}

// =============================================================================
// STRING TESTS
// =============================================================================

func TestTruncateWidth(t *testing.T) {
	tests := []struct {
		input    string
		max      int
		expected string
	}{
		{"New chat", 20, "New chat"},
		{"Open assistant Alice", 10, "Open as..."},
		{"abc", 0, ""},
		{"abcdef", 3, "abc"},
		{"日本語日本語", 8, "日本..."},
	}

	for _, tt := range tests {
		got := TruncateWidth(tt.input, tt.max)
		if got != tt.expected {
			t.Errorf("TruncateWidth(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.expected)
		}
		if StringWidth(got) > tt.max && tt.max > 0 {
			t.Errorf("TruncateWidth(%q, %d) is %d columns wide", tt.input, tt.max, StringWidth(got))
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("al", 5); got != "al   " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadRight("日本", 6); StringWidth(got) != 6 {
		t.Errorf("PadRight width = %d, want 6", StringWidth(got))
	}
}

func TestStringWidth(t *testing.T) {
	if StringWidth("abc") != 3 {
		t.Error("ASCII width should be 3")
	}
	if StringWidth("日本") != 4 {
		t.Error("CJK width should be 4")
	}
}

func TestSingleLine(t *testing.T) {
	if got := SingleLine("  draft\n an   email\t"); got != "draft an email" {
		t.Errorf("SingleLine = %q", got)
	}
}
