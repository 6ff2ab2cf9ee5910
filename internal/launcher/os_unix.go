// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build !windows
// +build !windows

package launcher

import (
	"fmt"
	"os/exec"
	"runtime"
)

// startCommand is replaced in tests.
var startCommand = func(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the handler so it does not linger as a zombie.
	go func() { _ = cmd.Wait() }()
	return nil
}

// handlerCommand returns the URI handler for goos.
func handlerCommand(goos string) (string, error) {
	switch goos {
	case "darwin":
		return "open", nil
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return "xdg-open", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}
}

func openURI(uri string) error {
	name, err := handlerCommand(runtime.GOOS)
	if err != nil {
		return err
	}
	if err := startCommand(name, uri); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
