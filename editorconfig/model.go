// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/autoindent

package editorconfig

import (
	"strconv"
	"strings"
)

// Style is a resolved indent_style value.
type Style uint8

const (
	// StyleUnset means indent_style is missing or has an unsupported value.
	StyleUnset Style = iota
	// StyleTab means indent_style = tab.
	StyleTab
	// StyleSpace means indent_style = space.
	StyleSpace
)

// Property keys used by the resolver.
const (
	KeyRoot        = "root"
	KeyIndentStyle = "indent_style"
	KeyIndentSize  = "indent_size"
	KeyTabWidth    = "tab_width"

	valueTab   = "tab"
	valueSpace = "space"
	valueUnset = "unset"
)

// String returns the editorconfig spelling of the style.
func (s Style) String() string {
	switch s {
	case StyleTab:
		return valueTab
	case StyleSpace:
		return valueSpace
	default:
		return valueUnset
	}
}

// Directive is an exact indentation choice read from editorconfig files.
//
// Style and Size are independent; either may be unknown.
type Directive struct {
	// Style is the indent style, StyleUnset when unknown.
	Style Style `json:"style" yaml:"style"`
	// Size is the indent width, 0 when unknown.
	Size int `json:"size,omitempty" yaml:"size,omitempty"`
}

// Known reports whether at least one directive field is set.
func (d Directive) Known() bool {
	return d.Style != StyleUnset || d.Size > 0
}

// Complete reports whether both directive fields are set.
func (d Directive) Complete() bool {
	return d.Style != StyleUnset && d.Size > 0
}

// Property is one key/value pair of a section in file order.
type Property struct {
	// Key is the lower-cased property name.
	Key string `json:"key" yaml:"key"`
	// Value is the raw property value.
	Value string `json:"value" yaml:"value"`
}

// Section is one glob-headed block of an editorconfig file.
type Section struct {
	// Name is the raw glob between brackets.
	Name string `json:"name" yaml:"name"`
	// Properties keep file order; a repeated key overrides the earlier one.
	Properties []Property `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// File is one parsed editorconfig file.
type File struct {
	// Path is the file location, empty for in-memory sources.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
	// Root reports whether the preamble declares root = true.
	Root bool `json:"root,omitempty" yaml:"root,omitempty"`
	// Sections keep file order.
	Sections []Section `json:"sections,omitempty" yaml:"sections,omitempty"`

	// compiled holds section matchers in Sections order.
	compiled []sectionMatcher
}

// Properties is a merged set of properties that apply to one file.
type Properties map[string]string

// Directive extracts the indentation directive from merged properties.
func (p Properties) Directive() Directive {
	var d Directive

	switch p[KeyIndentStyle] {
	case valueTab:
		d.Style = StyleTab
	case valueSpace:
		d.Style = StyleSpace
	}

	d.Size = parseSize(p[KeyIndentSize])
	return d
}

// applyCoreDefaults fills derived indent properties the way editorconfig cores do.
func (p Properties) applyCoreDefaults() {
	style, hasStyle := p[KeyIndentStyle]
	size, hasSize := p[KeyIndentSize]
	tabWidth, hasTabWidth := p[KeyTabWidth]

	if hasStyle && style == valueTab && !hasSize {
		p[KeyIndentSize] = valueTab
		size, hasSize = valueTab, true
	}

	if hasSize && size == valueTab && hasTabWidth {
		p[KeyIndentSize] = tabWidth
	}

	if hasSize && size != valueTab && !hasTabWidth {
		p[KeyTabWidth] = size
	}
}

// parseSize returns a positive integer size or 0.
func parseSize(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0
	}

	return n
}

// lowerValueKeys lists keys whose values are case-insensitive.
var lowerValueKeys = map[string]struct{}{
	KeyIndentStyle:             {},
	KeyIndentSize:              {},
	KeyTabWidth:                {},
	"end_of_line":              {},
	"charset":                  {},
	"insert_final_newline":     {},
	"trim_trailing_whitespace": {},
}
