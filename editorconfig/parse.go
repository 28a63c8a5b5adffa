// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/autoindent

package editorconfig

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/go-ini/ini"
)

// maxLineLength bounds one scanned line.
const maxLineLength = 64 * 1024

// malformedSection replaces unusable section headers before INI parsing.
// The NUL byte cannot appear in a header read from a text config.
const malformedSection = "\x00malformed"

// iniOptions maps editorconfig syntax onto the INI reader.
var iniOptions = ini.LoadOptions{
	InsensitiveKeys:          true,
	IgnoreContinuation:       true,
	SkipUnrecognizableLines:  true,
	SpaceBeforeInlineComment: true,
	PreserveSurroundedQuote:  true,
	AllowNonUniqueSections:   true,
	KeyValueDelimiters:       "=:",
}

// Parse parses editorconfig content from reader.
//
// Semantics:
//   - blank lines and lines starting with "#" or ";" are ignored
//   - "[glob]" opens a section; repeated globs stay separate sections
//   - "key = value" or "key : value" adds a property to the current section
//   - " #" and " ;" start an inline comment
//   - "root = true" before the first section marks the file as root
//   - malformed section headers drop properties until the next valid header
//   - any other line, and keys containing whitespace, are ignored
//
// Errors are returned for reader failures and lines longer than 64 KiB.
func Parse(r io.Reader) (*File, error) {
	src, err := normalizeLines(r)
	if err != nil {
		return nil, err
	}

	cfg, err := ini.LoadSources(iniOptions, src)
	if err != nil {
		return nil, fmt.Errorf("parse editorconfig: %w", err)
	}

	file := &File{}
	for _, sec := range cfg.Sections() {
		name := sec.Name()
		if name == ini.DefaultSection {
			if sec.HasKey(KeyRoot) {
				file.Root = strings.EqualFold(sec.Key(KeyRoot).String(), "true")
			}

			continue
		}

		if name == malformedSection {
			continue
		}

		file.Sections = append(file.Sections, Section{
			Name:       name,
			Properties: sectionProperties(sec),
		})
	}

	file.compiled = compileSections(file.Sections)
	return file, nil
}

// ParseString parses editorconfig content from string input.
func ParseString(src string) (*File, error) {
	return Parse(strings.NewReader(src))
}

// normalizeLines bounds line length and rewrites section headers.
//
// Valid headers are trimmed to "[glob]"; headers the INI reader would
// reject or misread become the malformedSection placeholder. Properties
// with an empty key are dropped.
func normalizeLines(r io.Reader) ([]byte, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), maxLineLength)

	var out bytes.Buffer
	for s.Scan() {
		line := strings.TrimSpace(strings.TrimRight(s.Text(), "\r"))
		if strings.HasPrefix(line, "[") {
			name, ok := parseSectionHeader(line)
			if !ok {
				name = malformedSection
			}

			line = "[" + name + "]"
		} else if strings.HasPrefix(line, "=") || strings.HasPrefix(line, ":") {
			continue
		}

		out.WriteString(line)
		out.WriteByte('\n')
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan editorconfig: %w", err)
	}

	return out.Bytes(), nil
}

// parseSectionHeader returns section glob from "[glob]" line.
func parseSectionHeader(line string) (string, bool) {
	if len(line) < 2 || line[len(line)-1] != ']' {
		return "", false
	}

	name := strings.TrimSpace(line[1 : len(line)-1])
	if name == "" || name == ini.DefaultSection || strings.ContainsRune(name, 0) {
		return "", false
	}

	return name, true
}

// sectionProperties converts INI keys preserving file order.
func sectionProperties(sec *ini.Section) []Property {
	keys := sec.Keys()
	props := make([]Property, 0, len(keys))

	for _, k := range keys {
		key := k.Name()
		if key == "" || strings.ContainsAny(key, " \t") {
			continue
		}

		value := k.String()
		if _, ok := lowerValueKeys[key]; ok {
			value = strings.ToLower(value)
		}

		props = append(props, Property{Key: key, Value: value})
	}

	return props
}
