// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package launcher

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/heyalice/alicelink/internal/commands"
	"github.com/heyalice/alicelink/internal/ui/styles"
)

// LaunchFunc executes a candidate chosen for query.
type LaunchFunc func(ctx context.Context, query string, c commands.Candidate) (bool, error)

// Options configures a Model.
type Options struct {
	Interpreter *commands.Interpreter
	Completer   *commands.Completer
	Launch      LaunchFunc
	Theme       *styles.Theme

	// DryRun shows a badge; the launcher itself decides what opening means.
	DryRun bool

	// Query pre-fills the input.
	Query string

	// Context bounds launches. Defaults to context.Background().
	Context context.Context
}

// Model is the bubbletea model for the launcher.
type Model struct {
	interpreter *commands.Interpreter
	completer   *commands.Completer
	launch      LaunchFunc
	theme       *styles.Theme
	keys        KeyMap
	ctx         context.Context
	dryRun      bool

	input      textinput.Model
	candidates []commands.Candidate
	selected   int

	// Tab cycling state: the completions offered for the last tab and which
	// one is in the input now.
	completions   []commands.Completion
	completionIdx int

	status    string
	statusErr bool
	launching bool
	launched  *commands.Candidate

	width  int
	height int
}

// New creates a launcher model and interprets the initial query.
func New(opts Options) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "a <assistant> [prompt], s <skill>, h, or just type a prompt"
	ti.CharLimit = 2048
	ti.SetValue(opts.Query)
	ti.CursorEnd()
	ti.Focus()

	theme := opts.Theme
	if theme == nil {
		theme = styles.NewTheme(styles.ModeDark)
	}
	ti.PromptStyle = theme.InputPrompt
	ti.TextStyle = theme.InputText
	ti.PlaceholderStyle = theme.InputPlaceholder

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	m := Model{
		interpreter: opts.Interpreter,
		completer:   opts.Completer,
		launch:      opts.Launch,
		theme:       theme,
		keys:        DefaultKeyMap(),
		ctx:         ctx,
		dryRun:      opts.DryRun,
		input:       ti,
		width:       80,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Candidates returns the candidates currently listed.
func (m Model) Candidates() []commands.Candidate {
	return m.candidates
}

// Selected returns the index of the highlighted candidate.
func (m Model) Selected() int {
	return m.selected
}

// Query returns the current input text.
func (m Model) Query() string {
	return m.input.Value()
}

// Status returns the status line text and whether it reports an error.
func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

// Launched returns the candidate that was opened, if the launcher quit
// after a successful launch.
func (m Model) Launched() (commands.Candidate, bool) {
	if m.launched == nil {
		return commands.Candidate{}, false
	}
	return *m.launched, true
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.theme.SetSize(msg.Width, msg.Height)
		m.input.Width = msg.Width - 4
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case RegistryReloadedMsg:
		m.refresh()
		if msg.Err != nil {
			m.setStatus(fmt.Sprintf("registry reload failed: %v", msg.Err), true)
		} else {
			m.setStatus("registry reloaded", false)
		}
		return m, nil

	case HostMessageMsg:
		text := msg.Title
		if msg.Body != "" {
			text += ": " + msg.Body
		}
		m.setStatus(text, true)
		return m, nil

	case launchResultMsg:
		m.launching = false
		if msg.err != nil {
			m.setStatus(msg.err.Error(), true)
			return m, nil
		}
		if msg.launched {
			c := msg.candidate
			m.launched = &c
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.candidates)-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.Complete):
		m.complete()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.completions = nil
		m.setStatus("", false)
		m.refresh()
	}
	return m, cmd
}

// submit opens the selected candidate. A placeholder candidate replaces the
// input with its suggested text instead.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.launching || len(m.candidates) == 0 {
		return m, nil
	}
	c := m.candidates[m.selected]

	if c.IsNoOp() {
		m.setInput(commands.StripActionKeyword(c.QueryText))
		m.setStatus(c.Subtitle, false)
		return m, nil
	}
	if m.launch == nil {
		m.setStatus("no launcher configured", true)
		return m, nil
	}

	m.launching = true
	query := m.input.Value()
	launch, ctx := m.launch, m.ctx
	return m, func() tea.Msg {
		launched, err := launch(ctx, query, c)
		return launchResultMsg{candidate: c, launched: launched, err: err}
	}
}

// complete replaces the input with the next completion. Pressing tab again
// while the input still holds the last completion cycles to the next one.
func (m *Model) complete() {
	if m.completer == nil {
		return
	}

	value := m.input.Value()
	if len(m.completions) > 0 && value == m.completions[m.completionIdx].Value {
		m.completionIdx = (m.completionIdx + 1) % len(m.completions)
	} else {
		m.completions = m.completer.Complete(value)
		m.completionIdx = 0
	}
	if len(m.completions) == 0 {
		return
	}

	next := m.completions[m.completionIdx]
	m.input.SetValue(next.Value)
	m.input.CursorEnd()
	m.setStatus(next.Description, false)
	m.refresh()
}

func (m *Model) setInput(value string) {
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.completions = nil
	m.refresh()
}

// refresh re-interprets the input and keeps the selection in range.
func (m *Model) refresh() {
	if m.interpreter == nil {
		m.candidates = commands.Interpret(m.input.Value(), nil)
	} else {
		m.candidates = m.interpreter.Interpret(m.input.Value())
	}
	if m.selected >= len(m.candidates) {
		m.selected = len(m.candidates) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}
