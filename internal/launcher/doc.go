// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package launcher opens alice:// deep links.
//
// Candidates produced by the commands package are pure descriptions; this
// package is where they take effect.
//
// # Key Types
//
//   - Launcher: Open(ctx, uri) error
//   - OSLauncher: ShellExecute on Windows, open on macOS, xdg-open elsewhere
//   - DryRun: prints URIs instead of opening them
//   - Throttled: rejects launches beyond a rate.Limiter budget with ErrThrottled
//   - LaunchError: wraps a failure together with the URI that failed
//
// # Usage
//
//	l := launcher.NewThrottled(launcher.NewOSLauncher(), 2, 3)
//	launched, err := launcher.Execute(ctx, l, candidates[0])
//	if err != nil {
//	    host.ShowMessage("Hey Alice", err.Error())
//	}
package launcher
