// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package watcher keeps the live registry in sync with its file on disk.
//
// Changes are debounced and then handed to registry.Store.ReloadFile, which
// swaps the whole registry atomically. Text that fails to parse yields an
// empty registry; a file that cannot be read leaves the current one in place.
//
// # Usage
//
//	w, err := watcher.New(cfg.RegistryPath(), store, watcher.DefaultDebounce)
//	if err != nil {
//	    return err
//	}
//	if err := w.Start(ctx); err != nil {
//	    return err
//	}
//	defer w.Close()
package watcher
