// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build windows
// +build windows

package launcher

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// openURI uses ShellExecute with the "open" verb. Going through cmd /c start
// would need quoting for every '&' in a query string.
func openURI(uri string) error {
	verb, err := windows.UTF16PtrFromString("open")
	if err != nil {
		return err
	}
	file, err := windows.UTF16PtrFromString(uri)
	if err != nil {
		return fmt.Errorf("invalid uri: %w", err)
	}

	if err := windows.ShellExecute(0, verb, file, nil, nil, windows.SW_SHOWNORMAL); err != nil {
		return fmt.Errorf("ShellExecute: %w", err)
	}
	return nil
}
