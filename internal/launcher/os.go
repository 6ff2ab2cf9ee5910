// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package launcher

import "context"

// OSLauncher opens URIs with the operating system's registered handler, the
// same way a browser follows a custom-scheme link. The handler process is
// started and not waited on.
type OSLauncher struct{}

// NewOSLauncher returns the platform launcher.
func NewOSLauncher() *OSLauncher {
	return &OSLauncher{}
}

// Open hands uri to the OS.
func (o *OSLauncher) Open(ctx context.Context, uri string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if uri == "" {
		return ErrEmptyURI
	}
	return openURI(uri)
}
