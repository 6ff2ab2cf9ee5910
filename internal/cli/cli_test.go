// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heyalice/alicelink/internal/config"
	"github.com/heyalice/alicelink/internal/launcher"
)

// =============================================================================
// PARSE TESTS (cli.go)
// =============================================================================

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name     string
		argv     []string
		wantCmd  Command
		validate func(*testing.T, Args)
	}{
		{
			name:    "no args starts the launcher",
			argv:    nil,
			wantCmd: CmdTUI,
			validate: func(t *testing.T, a Args) {
				assert.True(t, a.Implicit)
			},
		},
		{
			name:    "explicit tui",
			argv:    []string{"tui"},
			wantCmd: CmdTUI,
			validate: func(t *testing.T, a Args) {
				assert.False(t, a.Implicit)
			},
		},
		{
			name:    "query joins words",
			argv:    []string{"q", "a", "al", "hello", "world"},
			wantCmd: CmdQuery,
			validate: func(t *testing.T, a Args) {
				assert.Equal(t, "a al hello world", a.Query)
			},
		},
		{
			name:    "open with global flag after the command",
			argv:    []string{"open", "h", "--json"},
			wantCmd: CmdOpen,
			validate: func(t *testing.T, a Args) {
				assert.Equal(t, "h", a.Query)
				assert.True(t, a.JSON)
			},
		},
		{
			name:    "unknown word opens the whole line",
			argv:    []string{"buy", "milk"},
			wantCmd: CmdOpen,
			validate: func(t *testing.T, a Args) {
				assert.Equal(t, "buy milk", a.Query)
			},
		},
		{
			name:    "double dash stops flag parsing",
			argv:    []string{"--", "-v", "text"},
			wantCmd: CmdOpen,
			validate: func(t *testing.T, a Args) {
				assert.False(t, a.Verbose)
				assert.Equal(t, "-v text", a.Query)
			},
		},
		{
			name:    "dry run short flag",
			argv:    []string{"-n", "o", "x"},
			wantCmd: CmdOpen,
			validate: func(t *testing.T, a Args) {
				assert.True(t, a.DryRun)
			},
		},
		{
			name:    "config set joins the value",
			argv:    []string{"config", "set", "registry.file", "~/my", "registry.json"},
			wantCmd: CmdConfig,
			validate: func(t *testing.T, a Args) {
				assert.Equal(t, "set", a.Subcommand)
				assert.Equal(t, "registry.file", a.ConfigKey)
				assert.Equal(t, "~/my registry.json", a.ConfigVal)
			},
		},
		{
			name:    "config init keeps flags in raw",
			argv:    []string{"config", "init", "--format", "yaml"},
			wantCmd: CmdConfig,
			validate: func(t *testing.T, a Args) {
				assert.Equal(t, "init", a.Subcommand)
				assert.Empty(t, a.ConfigKey)
				assert.Equal(t, "yaml", NewArgParser(a.Raw).Flag("format"))
			},
		},
		{
			name:    "history subcommand",
			argv:    []string{"history", "list", "--limit", "5"},
			wantCmd: CmdHistory,
			validate: func(t *testing.T, a Args) {
				assert.Equal(t, "list", a.Subcommand)
				assert.Equal(t, 5, NewArgParser(a.Raw).FlagIntOrDefault("limit", 20))
			},
		},
		{
			name:    "history flags only",
			argv:    []string{"history", "--limit", "3"},
			wantCmd: CmdHistory,
			validate: func(t *testing.T, a Args) {
				assert.Empty(t, a.Subcommand)
			},
		},
		{
			name:    "config path with equals",
			argv:    []string{"--config=/tmp/alt.toml", "version"},
			wantCmd: CmdVersion,
			validate: func(t *testing.T, a Args) {
				assert.Equal(t, "/tmp/alt.toml", a.ConfigPath)
			},
		},
		{
			name:    "config path with separate value",
			argv:    []string{"-c", "/tmp/alt.json", "syntax"},
			wantCmd: CmdSyntax,
			validate: func(t *testing.T, a Args) {
				assert.Equal(t, "/tmp/alt.json", a.ConfigPath)
			},
		},
		{
			name:    "command words are case insensitive",
			argv:    []string{"HELP"},
			wantCmd: CmdHelp,
		},
		{
			name:    "repl",
			argv:    []string{"-q", "repl"},
			wantCmd: CmdRepl,
			validate: func(t *testing.T, a Args) {
				assert.True(t, a.Quiet)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args := ParseArgs(tt.argv)
			assert.Equal(t, tt.wantCmd, cmd, "command %s", cmd)
			if tt.validate != nil {
				tt.validate(t, args)
			}
		})
	}
}

func TestParse_UsesOSArgs(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	os.Args = []string{"alicelink", "q", "h"}
	cmd, args := Parse()
	assert.Equal(t, CmdQuery, cmd)
	assert.Equal(t, "h", args.Query)
}

func TestCommand_String(t *testing.T) {
	assert.Equal(t, "query", CmdQuery.String())
	assert.Equal(t, "history", CmdHistory.String())
	assert.Equal(t, "tui", CmdTUI.String())
}

// =============================================================================
// ARG PARSER TESTS (args.go)
// =============================================================================

func TestArgParser_BasicParsing(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantSub  string
		validate func(*testing.T, *ArgParser)
	}{
		{
			name:    "simple subcommand",
			args:    []string{"list"},
			wantSub: "list",
		},
		{
			name:    "subcommand with flag",
			args:    []string{"list", "--limit", "50"},
			wantSub: "list",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Flag("limit") != "50" {
					t.Errorf("Flag(limit) = %q, want %q", p.Flag("limit"), "50")
				}
			},
		},
		{
			name:    "flag with equals",
			args:    []string{"init", "--format=toml"},
			wantSub: "init",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Flag("format") != "toml" {
					t.Errorf("Flag(format) = %q, want %q", p.Flag("format"), "toml")
				}
			},
		},
		{
			name:    "boolean flag",
			args:    []string{"init", "--force"},
			wantSub: "init",
			validate: func(t *testing.T, p *ArgParser) {
				if !p.BoolFlag("force") {
					t.Error("BoolFlag(force) should be true")
				}
			},
		},
		{
			name:    "boolean flag with equals",
			args:    []string{"init", "--force=false"},
			wantSub: "init",
			validate: func(t *testing.T, p *ArgParser) {
				if p.BoolFlag("force") {
					t.Error("BoolFlag(force) should be false")
				}
				if !p.HasFlag("force") {
					t.Error("HasFlag(force) should be true")
				}
			},
		},
		{
			name:    "multiple positional args",
			args:    []string{"set", "ui.theme", "dark"},
			wantSub: "set",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Positional(1) != "ui.theme" {
					t.Errorf("Positional(1) = %q", p.Positional(1))
				}
				if got := JoinPositionalArgs(p, 2); got != "dark" {
					t.Errorf("JoinPositionalArgs = %q, want %q", got, "dark")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewArgParser(tt.args)
			if p.Subcommand() != tt.wantSub {
				t.Errorf("Subcommand() = %q, want %q", p.Subcommand(), tt.wantSub)
			}
			if tt.validate != nil {
				tt.validate(t, p)
			}
		})
	}
}

func TestArgParser_FlagIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		defaultVal int
		want       int
	}{
		{"flag present", []string{"list", "--limit", "10"}, 20, 10},
		{"flag missing uses default", []string{"list"}, 20, 20},
		{"invalid int uses default", []string{"list", "--limit", "abc"}, 20, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewArgParser(tt.args).FlagIntOrDefault("limit", tt.defaultVal)
			if got != tt.want {
				t.Errorf("FlagIntOrDefault = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestArgParser_EdgeCases(t *testing.T) {
	p := NewArgParser([]string{})
	if p.Subcommand() != "" || p.Positional(0) != "" || len(p.PositionalFrom(1)) != 0 {
		t.Error("empty parser should have no positionals")
	}

	p = NewArgParser([]string{"--verbose", "--json"})
	if p.Subcommand() != "" {
		t.Errorf("Subcommand() = %q, want empty", p.Subcommand())
	}
	if !p.BoolFlag("verbose") || !p.BoolFlag("--json") {
		t.Error("both boolean flags should be set")
	}
	if p.FlagOrDefault("format", "json") != "json" {
		t.Error("FlagOrDefault should return default when missing")
	}
}

func TestParseIntWithValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"valid positive", "42", 42, false},
		{"valid one", "1", 1, false},
		{"zero is invalid", "0", 0, true},
		{"negative is invalid", "-5", 0, true},
		{"empty is invalid", "", 0, true},
		{"non-numeric is invalid", "abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIntWithValidation(tt.input, "limit")
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseIntWithValidation(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseIntWithValidation(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

// =============================================================================
// ERROR TESTS (errors.go)
// =============================================================================

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"validation", &ValidationError{Field: "query", Reason: "bad"}, ExitUsageError},
		{"missing argument", ErrMissingArgument("key", "alicelink config get ui.theme"), ExitUsageError},
		{"not found", &NotFoundError{Resource: "registry file", ID: "/x"}, ExitNotFoundError},
		{"launch", &launcher.LaunchError{URI: "alice://chat/new", Err: errors.New("boom")}, ExitLaunchError},
		{"wrapped launch", fmt.Errorf("open: %w", &launcher.LaunchError{URI: "alice://chat/new", Err: launcher.ErrThrottled}), ExitLaunchError},
		{"config validation", config.ValidateErrors{{Field: "ui.width", Message: "too small"}}, ExitConfigError},
		{"config command", NewCommandError("config", "validate", "registry.json", errors.New("bad json")), ExitConfigError},
		{"generic", errors.New("something"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetExitCode(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	err := NewCommandError("history", "clear", "cannot clear history", errors.New("locked"))
	assert.Equal(t, "history clear failed: cannot clear history: locked", err.Error())
	assert.Equal(t, "locked", errors.Unwrap(err).Error())

	verr := ErrUnknownSubcommand("history", "purge", historySubcommands)
	assert.Contains(t, verr.Error(), "purge")
	assert.Contains(t, verr.Error(), "alicelink history list|clear")
}

func TestJSONErrorResponseCarriesDetails(t *testing.T) {
	resp := NewJSONErrorResponse("open", &ValidationError{Field: "query", Value: "s", Reason: "no skill"})
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Contains(t, *resp.Error, "no skill")

	details, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "validation_error", details["error_type"])
	assert.Equal(t, "query", details["field"])
}

func TestDisplayErrorDetails(t *testing.T) {
	details := DisplayErrorDetails(&launcher.LaunchError{URI: "alice://chat/history", Err: errors.New("no handler")})
	assert.Equal(t, "launch_error", details["error_type"])
	assert.Equal(t, "alice://chat/history", details["uri"])

	details = DisplayErrorDetails(errors.New("plain"))
	assert.Equal(t, "generic_error", details["error_type"])
}

// =============================================================================
// TERMINAL TESTS (terminal.go)
// =============================================================================

func TestWrapText(t *testing.T) {
	got := WrapText("open the weekly update draft", 10)
	for _, line := range strings.Split(got, "\n") {
		assert.LessOrEqual(t, len(line), 10, line)
	}
	assert.Equal(t, "open the weekly update draft", strings.Join(strings.Fields(got), " "))

	assert.Equal(t, "a\nb", WrapText("a\nb", 10))
}

func TestIndentWrapped(t *testing.T) {
	text := `warning: assistant[1].shortcut: "al" is shadowed by assistant[0]`
	got := indentWrapped(text, "  ", 40)

	lines := strings.Split(got, "\n")
	require.Greater(t, len(lines), 1)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "  "), line)
		assert.LessOrEqual(t, len(line), 40, line)
	}
	assert.Equal(t, text, strings.Join(strings.Fields(got), " "))
}

func TestListingWidth_NotATerminal(t *testing.T) {
	if IsStdoutTTY() {
		t.Skip("stdout is a terminal")
	}
	assert.Equal(t, 72, listingWidth(72))
	assert.Equal(t, 30, listingWidth(30))
}

func TestRenderSeparator(t *testing.T) {
	assert.Contains(t, RenderSeparator(12), strings.Repeat("-", 12))
	assert.Contains(t, RenderSeparator(0), strings.Repeat("-", DefaultTerminalWidth))
}

func TestForceColorsEnabled(t *testing.T) {
	ForceColorsEnabled(true)
	assert.True(t, ColorsEnabled())
	ForceColorsEnabled(false)
	assert.False(t, ColorsEnabled())
}
