// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// app.go - Shared wiring for every alicelink command.
//
// App loads the config, builds the registry store, chooses a launcher and
// opens launch history. Handlers take an *App so they can be tested with an
// in-memory setup.
package cli

import (
	"context"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/heyalice/alicelink/internal/commands"
	"github.com/heyalice/alicelink/internal/config"
	"github.com/heyalice/alicelink/internal/history"
	"github.com/heyalice/alicelink/internal/host"
	"github.com/heyalice/alicelink/internal/launcher"
	"github.com/heyalice/alicelink/internal/registry"
	"github.com/heyalice/alicelink/internal/ui/styles"
	"github.com/heyalice/alicelink/internal/watcher"
)

// App holds the runtime state shared by command handlers.
type App struct {
	Args   Args
	Config *config.Config

	Store       *registry.Store
	Origin      registry.Origin
	Interpreter *commands.Interpreter
	Completer   *commands.Completer

	Launcher launcher.Launcher
	DryRun   bool
	History  *history.Store
	Host     host.Context

	// Out receives command output; human messages in --json mode go to
	// stderr through Host.
	Out io.Writer
}

// NewApp loads configuration and builds an App for args.
// A config file named with --config must load; the default config file
// falls back to defaults with a warning.
func NewApp(args Args) (*App, error) {
	configureLogging(args)

	var cfg *config.Config
	var err error
	if args.ConfigPath != "" {
		cfg, err = config.LoadFromPath(args.ConfigPath)
		if err != nil {
			return nil, NewCommandError("config", "load", args.ConfigPath, err)
		}
	} else {
		cfg, err = config.Load()
		if err != nil {
			log.Printf("[config] %v (using defaults)", err)
		}
	}
	app := newApp(args, cfg, os.Stdout)

	if cfg.History.Enabled {
		store, err := history.Open(cfg.HistoryPath())
		if err != nil {
			log.Printf("[history] disabled: %v", err)
		} else {
			app.History = store
		}
	}

	return app, nil
}

// newApp wires everything except history, which needs a database path.
func newApp(args Args, cfg *config.Config, out io.Writer) *App {
	reg, origin, err := registry.LoadSettings(cfg.Registry.Inline, cfg.RegistryPath())
	if err != nil {
		log.Printf("[registry] %v", err)
	}
	store := registry.NewStore(reg)

	mode := styles.Detect(cfg.UI.Theme)
	term := host.NewTerminal(mode)
	term.SetPlain(args.JSON || !ColorsEnabled())

	dryRun := args.DryRun || cfg.Launcher.DryRun
	var base launcher.Launcher = launcher.NewOSLauncher()
	if dryRun {
		dryOut := out
		if args.JSON {
			dryOut = os.Stderr
		}
		base = launcher.NewDryRun(dryOut)
	}

	return &App{
		Args:        args,
		Config:      cfg,
		Store:       store,
		Origin:      origin,
		Interpreter: commands.NewInterpreter(store),
		Completer:   commands.NewCompleter(store),
		Launcher:    launcher.NewThrottled(base, cfg.Launcher.RatePerSec, cfg.Launcher.Burst),
		DryRun:      dryRun,
		Host:        term,
		Out:         out,
	}
}

// configureLogging routes the standard logger the way the global flags ask.
func configureLogging(args Args) {
	switch {
	case args.Quiet:
		log.SetOutput(io.Discard)
	case args.Verbose:
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	default:
		log.SetFlags(log.LstdFlags)
	}
}

// =============================================================================
// LAUNCHING
// =============================================================================

// Launch executes c, records the attempt in history and reports failures
// through the host. No-op candidates are neither launched nor recorded.
func (a *App) Launch(ctx context.Context, query string, c commands.Candidate) (bool, error) {
	launched, err := launcher.Execute(ctx, a.Launcher, c)
	if !launched && err == nil {
		return false, nil
	}

	a.record(ctx, query, c, err)

	if err != nil {
		a.Host.ShowMessage("Could not open Hey Alice", err.Error())
	}
	return launched, err
}

// record stores a launch attempt. Failures are logged and never returned.
func (a *App) record(ctx context.Context, query string, c commands.Candidate, launchErr error) {
	if a.History == nil {
		return
	}

	entry := history.Entry{
		Query: query,
		Title: c.Title,
		URI:   c.Action.URI,
		OK:    launchErr == nil,
	}
	if launchErr != nil {
		entry.Error = launchErr.Error()
	}

	if _, err := a.History.Record(ctx, entry); err != nil {
		log.Printf("[history] record failed: %v", err)
		return
	}
	if keep := a.Config.History.MaxEntries; keep > 0 {
		if _, err := a.History.Prune(ctx, keep); err != nil {
			log.Printf("[history] prune failed: %v", err)
		}
	}
}

// =============================================================================
// REGISTRY WATCHING
// =============================================================================

// StartWatcher reloads the registry file into the store whenever it changes,
// for long-running commands. It returns nil when watching is off, the
// registry is inline, or no file is configured. onReload may be nil.
func (a *App) StartWatcher(ctx context.Context, onReload func(watcher.Event)) (*watcher.Watcher, error) {
	path := a.Config.RegistryPath()
	if !a.Config.Registry.Watch || path == "" || strings.TrimSpace(a.Config.Registry.Inline) != "" {
		return nil, nil
	}

	debounce := time.Duration(a.Config.Registry.WatchDebounceMs) * time.Millisecond
	w, err := watcher.New(path, a.Store, debounce)
	if err != nil {
		return nil, err
	}
	if onReload != nil {
		w.OnReload(onReload)
	}
	if err := w.Start(ctx); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}

// Close releases the history database.
func (a *App) Close() error {
	if a.History == nil {
		return nil
	}
	return a.History.Close()
}
