// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// repl.go - Line-edited launcher prompt.
//
// Command: repl
// Short:   Type queries at a prompt, tab to complete, enter to open
//
// Interactive Commands:
//   :help, :h           Show query syntax
//   :list <query>       Show candidates without opening
//   :quit, :q           Exit
//   Ctrl+C, Ctrl+D      Exit
package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/heyalice/alicelink/internal/config"
	"github.com/heyalice/alicelink/internal/ui/styles"
)

var promptStyle = lipgloss.NewStyle().
	Foreground(styles.Purple).
	Bold(true)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// LineReader provides input history and line editing for the REPL.
type LineReader struct {
	line        *liner.State
	historyFile string
}

// NewLineReader creates a LineReader with tab completion from complete.
func NewLineReader(complete func(string) []string) *LineReader {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	line.SetTabCompletionStyle(liner.TabPrints)
	line.SetCompleter(complete)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}

	r := &LineReader{
		line:        line,
		historyFile: filepath.Join(configDir, "repl_history"),
	}
	r.LoadHistory()
	return r
}

// LoadHistory loads input history from file.
func (r *LineReader) LoadHistory() {
	if f, err := os.Open(r.historyFile); err == nil {
		r.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads one line. Non-empty lines are added to history.
func (r *LineReader) ReadInput(prompt string) (string, error) {
	input, err := r.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		r.line.AppendHistory(input)
	}
	return input, nil
}

// SaveHistory writes input history with 0600 permissions.
func (r *LineReader) SaveHistory() {
	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	f, err := os.OpenFile(r.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	r.line.WriteHistory(f)
}

// Close saves history and restores the terminal.
func (r *LineReader) Close() {
	r.SaveHistory()
	r.line.Close()
}

// =============================================================================
// REPL
// =============================================================================

// HandleRepl runs the interactive prompt until the user quits.
func HandleRepl(ctx context.Context, app *App) error {
	if !CanRunInteractive() {
		return &ValidationError{
			Field:   "terminal",
			Reason:  "repl needs an interactive terminal",
			Example: "alicelink open <query>",
		}
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if w, err := app.StartWatcher(ctx, nil); err != nil {
		log.Printf("[watcher] registry reload disabled: %v", err)
	} else if w != nil {
		defer w.Close()
	}

	reader := NewLineReader(app.Completer.Strings)
	defer reader.Close()

	if !app.Args.Quiet {
		fmt.Fprintln(app.Out, TitleStyle.Render("alicelink"))
		fmt.Fprintln(app.Out, DimStyle.Render("Tab completes, :help for syntax, :quit to exit"))
	}

	for {
		input, err := reader.ReadInput(promptStyle.Render("alice> "))
		if err != nil {
			// ErrPromptAborted (Ctrl+C) and io.EOF (Ctrl+D) both end the session.
			fmt.Fprintln(app.Out)
			return nil
		}
		if !replLine(ctx, app, input) {
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

// replLine handles one line of input and reports whether to keep going.
func replLine(ctx context.Context, app *App, input string) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return true
	}

	if strings.HasPrefix(input, ":") {
		return replCommand(app, input)
	}

	candidates := app.Interpreter.Interpret(input)
	if len(candidates) == 0 {
		return true
	}
	c := candidates[0]
	if c.IsNoOp() {
		fmt.Fprintf(app.Out, "%s %s\n", styles.StatusIndicators.Info, c.Subtitle)
		return true
	}

	// Launch reports failures through the host.
	if launched, _ := app.Launch(ctx, input, c); launched && !app.DryRun {
		fmt.Fprintf(app.Out, "%s %s\n", RenderStatus(true), c.Title)
	}
	return true
}

func replCommand(app *App, input string) bool {
	name, rest, _ := strings.Cut(input, " ")
	switch strings.ToLower(name) {
	case ":quit", ":q", ":exit":
		return false
	case ":help", ":h":
		printReplHelp(app.Out)
	case ":list", ":l":
		for _, c := range app.Interpreter.Interpret(rest) {
			target := c.Action.URI
			if c.IsNoOp() {
				target = "(" + c.Subtitle + ")"
			}
			fmt.Fprintf(app.Out, "  %s  %s\n", c.Title, URIStyle.Render(target))
		}
	default:
		fmt.Fprintf(app.Out, "%s unknown command %s (try :help)\n", ErrorStyle.Render("[ERROR]"), name)
	}
	return true
}

func printReplHelp(w io.Writer) {
	fmt.Fprintln(w, SectionStyle.Render("Queries"))
	fmt.Fprintln(w, "  a                       new chat")
	fmt.Fprintln(w, "  a <assistant> [prompt]  chat with an assistant")
	fmt.Fprintln(w, "  s <skill>               open a skill")
	fmt.Fprintln(w, "  h, history              chat history")
	fmt.Fprintln(w, "  anything else           new chat with that prompt")
	fmt.Fprintln(w, SectionStyle.Render("Commands"))
	fmt.Fprintln(w, "  :list <query>           show candidates without opening")
	fmt.Fprintln(w, "  :help                   this help")
	fmt.Fprintln(w, "  :quit                   exit")
}
