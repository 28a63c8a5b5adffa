// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/autoindent

package autoindent

import (
	"strings"

	"github.com/woozymasta/autoindent/editorconfig"
)

// Source tags one contributor of a Result.
type Source string

const (
	// SourceConfig is an editorconfig directive.
	SourceConfig Source = "config"
	// SourceHeuristic is the content guess.
	SourceHeuristic Source = "heuristic"
	// SourceDefault is the configured fallback.
	SourceDefault Source = "default"
)

// builtinFallback replaces invalid caller fallbacks.
var builtinFallback = Indentation{Kind: KindSpace, Width: 4}

// Result is a final indentation decision with provenance.
type Result struct {
	// Indentation is always tab or space with positive width.
	Indentation Indentation `json:"indentation"`
	// Sources lists contributors in resolution priority order.
	Sources []Source `json:"sources"`
}

// String renders result as "space/4 (by config, heuristic)" or "space/4 (default)".
func (r Result) String() string {
	if len(r.Sources) == 1 && r.Sources[0] == SourceDefault {
		return r.Indentation.String() + " (default)"
	}

	return r.Indentation.String() + " (by " + strings.Join(sourceNames(r.Sources), ", ") + ")"
}

// Merge combines a config directive and a heuristic guess field by field.
//
// Decision policy:
//   - kind: config style, else guess kind (mixed counts as tab)
//   - width: config size, else guess width when the guess kind equals the
//     merged kind; a guess of another kind never lends its width
//   - any field still unknown comes from fallback
//
// An invalid fallback is replaced by space/4. Merge never fails and never
// returns unknown indentation.
func Merge(config editorconfig.Directive, guess Indentation, fallback Indentation) Result {
	fallback = normalizeFallback(fallback)
	guess = collapseMixed(guess)
	if !guess.Valid() {
		guess = Unknown()
	}

	kind, width := KindUnknown, UnknownWidth
	fromConfig, fromGuess, fromDefault := false, false, false

	switch config.Style {
	case editorconfig.StyleTab:
		kind, fromConfig = KindTab, true
	case editorconfig.StyleSpace:
		kind, fromConfig = KindSpace, true
	default:
		if guess.Known() {
			kind, fromGuess = guess.Kind, true
		}
	}

	switch {
	case config.Size > 0:
		width, fromConfig = config.Size, true
	case guess.Known() && guess.Kind == kind:
		width, fromGuess = guess.Width, true
	}

	if kind == KindUnknown {
		kind, fromDefault = fallback.Kind, true
	}

	if width <= 0 {
		width, fromDefault = fallback.Width, true
	}

	sources := make([]Source, 0, 3)
	if fromConfig {
		sources = append(sources, SourceConfig)
	}

	if fromGuess {
		sources = append(sources, SourceHeuristic)
	}

	if fromDefault {
		sources = append(sources, SourceDefault)
	}

	return Result{
		Indentation: Indentation{Kind: kind, Width: width},
		Sources:     sources,
	}
}

// normalizeFallback returns a concrete tab or space fallback.
func normalizeFallback(fallback Indentation) Indentation {
	fallback = collapseMixed(fallback)
	if (fallback.Kind == KindTab || fallback.Kind == KindSpace) && fallback.Width > 0 {
		return fallback
	}

	return builtinFallback
}

// collapseMixed turns mixed indentation into tab indentation.
func collapseMixed(ind Indentation) Indentation {
	if ind.Kind != KindMixed {
		return ind
	}

	return Tab(ind.Width)
}
