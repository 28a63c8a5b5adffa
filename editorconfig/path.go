// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/autoindent

package editorconfig

import (
	"path/filepath"
	"strings"
)

// relativeTo returns slash-separated target path relative to dir.
//
// It reports false when target is dir itself or lies outside dir.
func relativeTo(dir string, target string) (string, bool) {
	rel, err := filepath.Rel(dir, target)
	if err != nil {
		return "", false
	}

	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}

	return filepath.ToSlash(rel), true
}
