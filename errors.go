// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/autoindent

package autoindent

import "errors"

// Sentinel errors for autoindent operations.
var (
	// ErrInvalidIndentation indicates malformed indentation setting input.
	ErrInvalidIndentation = errors.New("invalid indentation")
	// ErrInvalidSampleLength indicates a non-positive sample length limit.
	ErrInvalidSampleLength = errors.New("invalid sample length")
)
