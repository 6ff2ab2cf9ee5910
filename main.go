// alicelink - keyboard launcher for Hey Alice deep links.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/heyalice/alicelink/internal/cli"
	"github.com/heyalice/alicelink/internal/config"
	"github.com/heyalice/alicelink/internal/launcher"
	launcherui "github.com/heyalice/alicelink/internal/ui/launcher"
	"github.com/heyalice/alicelink/internal/ui/styles"
	"github.com/heyalice/alicelink/internal/watcher"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdVersion:
		cli.HandleErrorAndExit(cmd.String(), cli.HandleVersion(args), args.JSON)
		return
	case cli.CmdHelp:
		cli.PrintUsage()
		return
	case cli.CmdTUI:
		// Bare "alicelink" in a pipe or script prints usage instead of
		// failing on the missing terminal.
		if args.Implicit && !cli.CanRunInteractive() {
			cli.PrintUsage()
			return
		}
	}

	app, err := cli.NewApp(args)
	if err != nil {
		cli.HandleErrorAndExit(cmd.String(), err, args.JSON)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cmd, app)
	stop()
	if cerr := app.Close(); cerr != nil {
		log.Printf("[history] close: %v", cerr)
	}
	cli.HandleErrorAndExit(cmd.String(), err, args.JSON)
}

// run routes cmd to its handler.
func run(ctx context.Context, cmd cli.Command, app *cli.App) error {
	switch cmd {
	case cli.CmdQuery:
		return cli.HandleQuery(app)
	case cli.CmdOpen:
		return cli.HandleOpen(ctx, app)
	case cli.CmdRepl:
		return cli.HandleRepl(ctx, app)
	case cli.CmdConfig:
		return cli.HandleConfig(app)
	case cli.CmdHistory:
		return cli.HandleHistory(ctx, app)
	case cli.CmdSyntax:
		return cli.HandleSyntax(app)
	default:
		return runTUI(ctx, app)
	}
}

// runTUI starts the interactive launcher.
func runTUI(ctx context.Context, app *cli.App) error {
	if !cli.CanRunInteractive() {
		return &cli.ValidationError{
			Field:   "terminal",
			Reason:  "the launcher needs an interactive terminal",
			Example: "alicelink open <query>",
		}
	}

	// Log to a file while the UI owns the screen.
	if !app.Args.Quiet {
		if dir, err := config.ConfigDir(); err == nil && config.EnsureConfigDir() == nil {
			f, err := tea.LogToFile(filepath.Join(dir, "alicelink.log"), "alicelink ")
			if err == nil {
				defer f.Close()
				defer log.SetOutput(os.Stderr)
			}
		}
	}

	// Dry-run URIs are printed after the UI exits.
	var dryRunOut bytes.Buffer
	if app.DryRun {
		app.Launcher = launcher.NewThrottled(launcher.NewDryRun(&dryRunOut),
			app.Config.Launcher.RatePerSec, app.Config.Launcher.Burst)
	}

	mode := app.Host.Theme()
	progHost := launcherui.NewProgramHost(mode)
	app.Host = progHost

	theme := styles.NewTheme(mode)
	m := launcherui.New(launcherui.Options{
		Interpreter: app.Interpreter,
		Completer:   app.Completer,
		Launch:      app.Launch,
		Theme:       theme,
		DryRun:      app.DryRun,
		Query:       app.Args.Query,
		Context:     ctx,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	progHost.Attach(p)

	w, err := app.StartWatcher(ctx, func(ev watcher.Event) {
		p.Send(launcherui.RegistryReloadedMsg{Err: ev.Err})
	})
	if err != nil {
		log.Printf("[watcher] registry reload disabled: %v", err)
	}
	if w != nil {
		defer w.Close()
	}

	final, err := p.Run()
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("launcher UI failed: %w", err)
	}

	fmt.Print(dryRunOut.String())
	if fm, ok := final.(launcherui.Model); ok && !app.Args.Quiet && !app.DryRun {
		if c, launched := fm.Launched(); launched {
			fmt.Println(theme.RenderSuccess(c.Title))
		}
	}
	return nil
}
