// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/autoindent

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// extensionPatterns converts an extension list to "*.ext" glob patterns.
//
// Accepted extension forms:
//   - "txt"
//   - ".txt"
//   - "*.txt"
//
// Empty values and duplicates are skipped. Patterns are lower-case and
// preserve input order.
func extensionPatterns(exts []string) []string {
	patterns := make([]string, 0, len(exts))
	seen := make(map[string]struct{}, len(exts))

	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		ext = strings.TrimPrefix(ext, "*.")
		ext = strings.TrimLeft(ext, ".")
		ext = strings.ToLower(ext)
		if ext == "" {
			continue
		}

		pattern := "*." + ext
		if _, ok := seen[pattern]; ok {
			continue
		}

		seen[pattern] = struct{}{}
		patterns = append(patterns, pattern)
	}

	return patterns
}

// matchesExtension reports whether base name matches any pattern.
//
// Empty pattern list matches everything.
func matchesExtension(patterns []string, name string) bool {
	if len(patterns) == 0 {
		return true
	}

	name = strings.ToLower(name)
	for _, pattern := range patterns {
		if doublestar.MatchUnvalidated(pattern, name) {
			return true
		}
	}

	return false
}

// expandPaths turns arguments into the list of files to inspect.
//
// File arguments are kept as given, in order. Directory arguments expand to
// regular files below them that match the extension filter, sorted,
// skipping hidden files and directories.
func expandPaths(fsys afero.Fs, args []string, exts []string) ([]string, error) {
	patterns := extensionPatterns(exts)
	out := make([]string, 0, len(args))

	for _, arg := range args {
		// Unreadable arguments stay in the list and fail per file.
		info, err := fsys.Stat(arg)
		if err != nil || !info.IsDir() {
			out = append(out, arg)
			continue
		}

		found, err := walkDir(fsys, arg, patterns)
		if err != nil {
			return nil, err
		}

		out = append(out, found...)
	}

	return out, nil
}

// walkDir collects matching regular files below root.
func walkDir(fsys afero.Fs, root string, patterns []string) ([]string, error) {
	var found []string

	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if path != root && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}

			return nil
		}

		if strings.HasPrefix(info.Name(), ".") {
			return nil
		}

		if info.Mode().IsRegular() && matchesExtension(patterns, info.Name()) {
			found = append(found, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	sort.Strings(found)
	return found, nil
}
