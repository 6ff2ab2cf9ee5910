// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package launcher provides the interactive query box for the TUI.
//
// Every keystroke re-interprets the query against the live registry and
// lists the candidates below the input. Enter opens the selected candidate
// and quits; placeholder candidates instead put their suggested text back
// into the input.
//
// # Key Bindings
//
//	enter        open the selected candidate
//	tab          complete command words and registry keys (repeat to cycle)
//	up, ctrl+p   previous candidate
//	down, ctrl+n next candidate
//	esc, ctrl+c  quit
//
// # Usage
//
//	m := launcher.New(launcher.Options{
//	    Interpreter: commands.NewInterpreter(store),
//	    Completer:   commands.NewCompleter(store),
//	    Launch:      app.Launch,
//	    Theme:       styles.NewTheme(mode),
//	})
//	p := tea.NewProgram(m)
//	w.OnReload(func(ev watcher.Event) { p.Send(launcher.RegistryReloadedMsg{Err: ev.Err}) })
//	_, err := p.Run()
package launcher
