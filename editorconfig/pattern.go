// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/autoindent

package editorconfig

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// maxRangeValues bounds numeric range expansion of one "{n1..n2}" group.
const maxRangeValues = 1024

// sectionMatcher is the compiled representation of one section glob.
type sectionMatcher struct {
	// glob is doublestar pattern matched against the config-relative path.
	glob string
	// err is set when the section can never match.
	err error
	// exact matches literal patterns without glob meta.
	exact string
}

// compileSections compiles section globs preserving order.
func compileSections(sections []Section) []sectionMatcher {
	out := make([]sectionMatcher, len(sections))
	for i := range sections {
		out[i] = compileSection(sections[i].Name)
	}

	return out
}

// compileSection turns an editorconfig glob into a doublestar pattern.
//
// Globs without "/" match the basename at any depth. Globs containing "/"
// are anchored to the config directory; a leading "/" is dropped.
func compileSection(name string) sectionMatcher {
	pattern := strings.TrimSpace(name)
	if pattern == "" {
		return sectionMatcher{err: fmt.Errorf("%w: empty", ErrInvalidPattern)}
	}

	hasSlash := strings.Contains(pattern, "/")
	pattern = strings.TrimPrefix(pattern, "/")
	if pattern == "" {
		return sectionMatcher{err: fmt.Errorf("%w: empty after normalization (%q)", ErrInvalidPattern, name)}
	}

	expanded, err := expandNumericRanges(pattern)
	if err != nil {
		return sectionMatcher{err: fmt.Errorf("%w: %q: %v", ErrInvalidPattern, name, err)}
	}

	if !hasSlash {
		expanded = "**/" + expanded
	}

	if !doublestar.ValidatePattern(expanded) {
		return sectionMatcher{err: fmt.Errorf("%w: %q", ErrInvalidPattern, name)}
	}

	if !strings.ContainsAny(expanded, `*?[{\`) {
		return sectionMatcher{exact: expanded}
	}

	return sectionMatcher{glob: expanded}
}

// matches reports whether compiled section applies to a slash-separated relative path.
func (m sectionMatcher) matches(relPath string) bool {
	if m.err != nil || relPath == "" {
		return false
	}

	if m.exact != "" {
		return relPath == m.exact
	}

	return doublestar.MatchUnvalidated(m.glob, relPath)
}

// expandNumericRanges rewrites "{n1..n2}" groups into "{n1,...,n2}" alternatives.
func expandNumericRanges(pattern string) (string, error) {
	if !strings.Contains(pattern, "..") {
		return pattern, nil
	}

	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c == '\\' && i+1 < len(pattern) {
			b.WriteByte(c)
			b.WriteByte(pattern[i+1])
			i++
			continue
		}

		if c != '{' {
			b.WriteByte(c)
			continue
		}

		end := strings.IndexByte(pattern[i:], '}')
		if end < 0 {
			b.WriteByte(c)
			continue
		}

		body := pattern[i+1 : i+end]
		lo, hi, ok := parseNumericRange(body)
		if !ok {
			b.WriteByte(c)
			continue
		}

		// Unsigned difference cannot overflow for any lo <= hi.
		if hi < lo || uint64(hi)-uint64(lo) >= maxRangeValues {
			return "", fmt.Errorf("unsupported numeric range {%s}", body)
		}

		// Counting offsets keeps lo+k <= hi, so ranges ending at the int
		// maximum terminate.
		b.WriteByte('{')
		for k := 0; k <= hi-lo; k++ {
			if k > 0 {
				b.WriteByte(',')
			}

			b.WriteString(strconv.Itoa(lo + k))
		}
		b.WriteByte('}')
		i += end
	}

	return b.String(), nil
}

// parseNumericRange parses "n1..n2" with optional leading minus signs.
func parseNumericRange(body string) (int, int, bool) {
	loRaw, hiRaw, ok := strings.Cut(body, "..")
	if !ok || loRaw == "" || hiRaw == "" {
		return 0, 0, false
	}

	lo, err := strconv.Atoi(loRaw)
	if err != nil {
		return 0, 0, false
	}

	hi, err := strconv.Atoi(hiRaw)
	if err != nil {
		return 0, 0, false
	}

	return lo, hi, true
}
