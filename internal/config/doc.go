// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for alicelink.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - RegistryConfig: Where assistants and skills come from, and whether to watch it
//   - LauncherConfig: Dry-run mode and launch rate limiting
//   - HistoryConfig: SQLite launch history location and retention
//   - UIConfig: Theme and width of the terminal launcher
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (ALICELINK_*)
//   - ~/.alicelink/config.toml
//   - ~/.alicelink/config.json
//   - Built-in defaults
//
// ALICELINK_HOME moves the whole ~/.alicelink directory.
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Access settings:
//
//	path := cfg.RegistryPath()
//	dryRun := cfg.Launcher.DryRun
package config
