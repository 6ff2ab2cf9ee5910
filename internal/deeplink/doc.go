// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package deeplink builds the alice:// URIs understood by the Hey Alice
// desktop application.
//
// Only prompt text is percent-encoded. Assistant and skill identifiers are
// inserted verbatim, whether they came from the registry or straight from
// the user.
//
// # URIs
//
//	alice://chat/new
//	alice://chat/history
//	alice://newchat?prompt=<encoded>
//	alice://newchat?assistant=<id>
//	alice://newchat?assistant=<id>&prompt=<encoded>
//	alice://snippet/<id>
package deeplink
