// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/autoindent

package autoindent

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the structural leading-whitespace character used for nesting.
type Kind uint8

const (
	// KindUnknown means indentation could not be determined.
	KindUnknown Kind = iota
	// KindTab means lines are indented with tabs.
	KindTab
	// KindSpace means lines are indented with spaces.
	KindSpace
	// KindMixed means both tab-indented and space-stepped lines were seen.
	KindMixed
)

// UnknownWidth is the width carried by unknown indentation.
const UnknownWidth = -1

// String returns lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindTab:
		return "tab"
	case KindSpace:
		return "space"
	case KindMixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// Indentation is an immutable indentation decision.
//
// Width is the tab width for KindTab and KindMixed, the space width for
// KindSpace and UnknownWidth for KindUnknown. SpaceWidth is set only for
// KindMixed. Use the constructors to build values. Text encoding uses
// String and ParseIndentation, so only tab and space values round-trip.
type Indentation struct {
	// Kind is the indentation kind.
	Kind Kind
	// Width is the indentation width of Kind.
	Width int
	// SpaceWidth is the space step of mixed indentation.
	SpaceWidth int
}

// Unknown returns unknown indentation.
func Unknown() Indentation {
	return Indentation{Kind: KindUnknown, Width: UnknownWidth}
}

// Tab returns tab indentation, Unknown when width is not positive.
func Tab(width int) Indentation {
	if width <= 0 {
		return Unknown()
	}

	return Indentation{Kind: KindTab, Width: width}
}

// Space returns space indentation, Unknown when width is not positive.
func Space(width int) Indentation {
	if width <= 0 {
		return Unknown()
	}

	return Indentation{Kind: KindSpace, Width: width}
}

// Mixed returns tab indentation with space alignment steps.
// Unknown is returned when either width is not positive.
func Mixed(tabWidth int, spaceWidth int) Indentation {
	if tabWidth <= 0 || spaceWidth <= 0 {
		return Unknown()
	}

	return Indentation{Kind: KindMixed, Width: tabWidth, SpaceWidth: spaceWidth}
}

// Known reports whether indentation kind is determined.
func (i Indentation) Known() bool {
	return i.Kind != KindUnknown
}

// Valid reports whether indentation satisfies width invariants of its kind.
func (i Indentation) Valid() bool {
	switch i.Kind {
	case KindTab, KindSpace:
		return i.Width > 0
	case KindMixed:
		return i.Width > 0 && i.SpaceWidth > 0
	case KindUnknown:
		return true
	default:
		return false
	}
}

// UseSpaces reports whether an editor should insert spaces for this indentation.
func (i Indentation) UseSpaces() bool {
	return i.Kind == KindSpace
}

// String renders indentation as "tab/4", "space/2", "mixed tab/4 space/2" or "unknown".
func (i Indentation) String() string {
	switch i.Kind {
	case KindTab, KindSpace:
		return i.Kind.String() + "/" + strconv.Itoa(i.Width)
	case KindMixed:
		return fmt.Sprintf("mixed tab/%d space/%d", i.Width, i.SpaceWidth)
	default:
		return KindUnknown.String()
	}
}

// ParseIndentation parses a settings value like "space/4", "tab 8", "spaces:2",
// "tab4" or "tab".
//
// The kind is matched by prefix, case-insensitively, so "tabs" and "spaces"
// are accepted. A missing tab width
// defaults to DefaultTabWidth; a missing space width is an error.
func ParseIndentation(raw string) (Indentation, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return Unknown(), fmt.Errorf("%w: empty", ErrInvalidIndentation)
	}

	kindRaw, widthRaw := s, ""
	if idx := strings.IndexAny(s, "/: \t"); idx >= 0 {
		kindRaw = s[:idx]
		widthRaw = strings.TrimLeft(s[idx:], "/: \t")
	}

	// "tab4" and "spaces2" carry the width without a separator.
	if widthRaw == "" {
		if idx := strings.IndexAny(kindRaw, "0123456789"); idx >= 0 {
			kindRaw, widthRaw = kindRaw[:idx], kindRaw[idx:]
		}
	}

	width := 0
	if widthRaw != "" {
		n, err := strconv.Atoi(widthRaw)
		if err != nil || n <= 0 {
			return Unknown(), fmt.Errorf("%w: width %q", ErrInvalidIndentation, widthRaw)
		}

		width = n
	}

	switch {
	case strings.HasPrefix(kindRaw, "tab"):
		if width == 0 {
			width = DefaultTabWidth
		}

		return Tab(width), nil
	case strings.HasPrefix(kindRaw, "space"):
		if width == 0 {
			return Unknown(), fmt.Errorf("%w: space width is required (%q)", ErrInvalidIndentation, raw)
		}

		return Space(width), nil
	default:
		return Unknown(), fmt.Errorf("%w: kind %q", ErrInvalidIndentation, kindRaw)
	}
}

// MarshalText implements encoding.TextMarshaler using String.
func (i Indentation) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseIndentation.
func (i *Indentation) UnmarshalText(text []byte) error {
	parsed, err := ParseIndentation(string(text))
	if err != nil {
		return err
	}

	*i = parsed
	return nil
}
