// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing for alicelink.
package cli

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdQuery
	CmdOpen
	CmdRepl
	CmdConfig
	CmdHistory
	CmdSyntax
	CmdVersion
	CmdHelp
)

// String returns the command name used in JSON responses.
func (c Command) String() string {
	switch c {
	case CmdQuery:
		return "query"
	case CmdOpen:
		return "open"
	case CmdRepl:
		return "repl"
	case CmdConfig:
		return "config"
	case CmdHistory:
		return "history"
	case CmdSyntax:
		return "syntax"
	case CmdVersion:
		return "version"
	case CmdHelp:
		return "help"
	default:
		return "tui"
	}
}

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet      bool
	Verbose    bool
	JSON       bool
	DryRun     bool
	ConfigPath string

	// Implicit is set when no command was given, so the caller can fall back
	// to usage when there is no terminal for the TUI.
	Implicit bool

	// Command-specific
	Query      string
	Subcommand string
	ConfigKey  string
	ConfigVal  string

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `alicelink - keyboard launcher for Hey Alice deep links

Type a short query, get an alice:// link, open it in Hey Alice.

Usage:
  alicelink                      Start the interactive launcher (TUI)
  alicelink tui                  Start the interactive launcher
  alicelink query, q <text...>   Show what a query resolves to
  alicelink open, o <text...>    Resolve a query and open the first result
  alicelink repl                 Line-edited prompt with tab completion
  alicelink config [subcommand]  Configuration
  alicelink history [list|clear] Launch history
  alicelink syntax               Query syntax reference
  alicelink version              Show version
  alicelink help                 Show this help

Query Syntax:
  (empty)                        New chat
  h, history                     Chat history
  a <assistant> [prompt]         Chat with an assistant (shortcut, name or UUID)
  s <skill>                      Open a skill (shortcut, name or UUID)
  anything else                  New chat with that text as the prompt

Config Commands:
  alicelink config show          Show configuration and registry
  alicelink config path          Show config and registry file locations
  alicelink config init          Write default config and sample registry
    --force                      Overwrite existing files
    --format json|toml|yaml      Registry file format (default: from registry.file)
  alicelink config validate      Check the registry for problems
  alicelink config get <key>     Get a value (e.g. ui.theme)
  alicelink config set <key> <v> Set a value (e.g. launcher.dry_run true)

History Commands:
  alicelink history list         Show recent launches
    --limit N                    Number of entries (default: 20)
  alicelink history clear        Delete all history

Global Flags:
  --config PATH   Use this config file instead of ~/.alicelink/config.toml
  --dry-run       Print deep links instead of opening them
  --json          Output in JSON format
  -q, --quiet     Minimal output
  -v, --verbose   Debug output
  --              Stop flag parsing; the rest is query text

Examples:
  alicelink q a al draft the weekly update
  alicelink open s exs
  alicelink --dry-run o buy milk
  alicelink q h --json
  alicelink config set registry.file ~/.alicelink/registry.yaml

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("alicelink version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// HandleVersion prints version information, as JSON with --json.
func HandleVersion(args Args) error {
	if args.JSON {
		return NewJSONResponse("version", VersionData{
			Version:   Version,
			GitCommit: GitCommit,
			BuildDate: BuildDate,
			GoVersion: runtime.Version(),
		}).Print()
	}
	PrintVersion()
	return nil
}

// Parse parses os.Args and returns the command and args.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses an argument list (without the program name).
func ParseArgs(argv []string) (Command, Args) {
	remaining, parsedArgs := parseGlobalFlags(argv)

	// If no remaining args, default to TUI
	if len(remaining) == 0 {
		parsedArgs.Implicit = true
		return CmdTUI, parsedArgs
	}

	word := remaining[0]
	cmd := strings.ToLower(word)
	remaining = remaining[1:]
	parsedArgs.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, parsedArgs

	case "query", "q":
		parsedArgs.Query = strings.Join(remaining, " ")
		return CmdQuery, parsedArgs

	case "open", "o":
		parsedArgs.Query = strings.Join(remaining, " ")
		return CmdOpen, parsedArgs

	case "repl":
		return CmdRepl, parsedArgs

	case "config":
		parseConfigArgs(&parsedArgs, remaining)
		return CmdConfig, parsedArgs

	case "history":
		if len(remaining) > 0 && !strings.HasPrefix(remaining[0], "-") {
			parsedArgs.Subcommand = remaining[0]
		}
		return CmdHistory, parsedArgs

	case "syntax":
		return CmdSyntax, parsedArgs

	case "version", "--version":
		return CmdVersion, parsedArgs

	case "help", "-h", "--help":
		return CmdHelp, parsedArgs

	default:
		// Unknown command: treat the whole line as a query to open, the way
		// the launcher treats free text as a prompt.
		parsedArgs.Raw = append([]string{word}, remaining...)
		parsedArgs.Query = strings.Join(parsedArgs.Raw, " ")
		return CmdOpen, parsedArgs
	}
}

// parseGlobalFlags extracts global flags from args and returns remaining args.
// Everything after "--" is passed through untouched.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsedArgs Args

	i := 0
	for i < len(args) {
		arg := args[i]

		switch arg {
		case "--":
			remaining = append(remaining, args[i+1:]...)
			return remaining, parsedArgs
		case "-q", "--quiet":
			parsedArgs.Quiet = true
		case "-v", "--verbose":
			parsedArgs.Verbose = true
		case "--json":
			parsedArgs.JSON = true
		case "--dry-run", "-n":
			parsedArgs.DryRun = true
		case "--config", "-c":
			if i+1 < len(args) {
				i++
				parsedArgs.ConfigPath = args[i]
			}
		default:
			if strings.HasPrefix(arg, "--config=") {
				parsedArgs.ConfigPath = strings.TrimPrefix(arg, "--config=")
			} else {
				remaining = append(remaining, arg)
			}
		}
		i++
	}

	return remaining, parsedArgs
}

// parseConfigArgs parses config command specific arguments.
// Flags such as --format are read later from Raw.
func parseConfigArgs(args *Args, remaining []string) {
	p := NewArgParser(remaining)
	args.Subcommand = p.Subcommand()
	args.ConfigKey = p.Positional(1)
	args.ConfigVal = JoinPositionalArgs(p, 2)
}
