// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history records launched deep links in a local SQLite database.
//
// Uses modernc.org/sqlite, so no cgo is needed. Each launch attempt is one
// row keyed by a random UUID; failed launches are kept with their error so
// `alicelink history` shows what went wrong.
//
// # Usage
//
//	store, err := history.Open(cfg.HistoryPath())
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	store.Record(ctx, history.Entry{Query: q, Title: c.Title, URI: c.Action.URI, OK: true})
//	store.Prune(ctx, cfg.History.MaxEntries)
package history
