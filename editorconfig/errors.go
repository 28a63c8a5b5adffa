// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/autoindent

package editorconfig

import "errors"

// Sentinel errors for editorconfig operations.
var (
	// ErrInvalidConfigFileName indicates invalid resolver config file name.
	ErrInvalidConfigFileName = errors.New("invalid config file name")
	// ErrConfigTooLarge indicates config file exceeded the resolver size limit.
	ErrConfigTooLarge = errors.New("config file is too large")
	// ErrInvalidPattern indicates a section glob that cannot be compiled.
	ErrInvalidPattern = errors.New("invalid section pattern")
	// ErrNilResolver indicates a nil Resolver receiver.
	ErrNilResolver = errors.New("resolver is nil")
)
