// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/autoindent

package autoindent

import "strings"

const (
	// DefaultTabWidth is the width reported for tab indentation, which
	// leading tabs alone cannot reveal.
	DefaultTabWidth = 4
	// DefaultMaxSampleLength is the default sample cap in bytes.
	//
	// 64 KiB holds a few thousand lines of typical source, enough for the
	// step statistics to settle while bounding cost on huge files.
	DefaultMaxSampleLength = 1 << 16
	// DefaultMaxSpaceWidth is the widest space step taken as an indent level.
	DefaultMaxSpaceWidth = 8
	// DefaultMinLines is the minimum count of non-blank lines needed for a guess.
	DefaultMinLines = 2
)

// GuessOptions controls heuristic behavior.
type GuessOptions struct {
	// DefaultTabWidth is reported for tab indentation, DefaultTabWidth when <= 0.
	DefaultTabWidth int `json:"default_tab_width,omitempty" yaml:"default_tab_width,omitempty"`
	// MaxSampleLength caps analyzed bytes, DefaultMaxSampleLength when <= 0.
	MaxSampleLength int `json:"max_sample_length,omitempty" yaml:"max_sample_length,omitempty"`
	// MaxSpaceWidth drops wider space steps, DefaultMaxSpaceWidth when <= 0.
	MaxSpaceWidth int `json:"max_space_width,omitempty" yaml:"max_space_width,omitempty"`
	// MinLines is the minimum non-blank line count, DefaultMinLines when <= 0.
	MinLines int `json:"min_lines,omitempty" yaml:"min_lines,omitempty"`
}

// applyDefaults fills zero-valued options with defaults.
func (opts *GuessOptions) applyDefaults() {
	if opts.DefaultTabWidth <= 0 {
		opts.DefaultTabWidth = DefaultTabWidth
	}

	if opts.MaxSampleLength <= 0 {
		opts.MaxSampleLength = DefaultMaxSampleLength
	}

	if opts.MaxSpaceWidth <= 0 {
		opts.MaxSpaceWidth = DefaultMaxSpaceWidth
	}

	if opts.MinLines <= 0 {
		opts.MinLines = DefaultMinLines
	}
}

// LineClass classifies the leading whitespace of one line.
type LineClass uint8

const (
	// LineFlat has no leading whitespace.
	LineFlat LineClass = iota
	// LineTab is indented with tabs only.
	LineTab
	// LineSpace is indented with spaces only.
	LineSpace
	// LineMixed is indented with both tabs and spaces, usually tab-then-align.
	LineMixed
)

// Analysis is the structured result of scanning one sample.
type Analysis struct {
	// Lines is the count of non-blank lines.
	Lines int `json:"lines"`
	// FlatLines is the count of lines without leading whitespace.
	FlatLines int `json:"flat_lines"`
	// TabLines is the count of tab-only indented lines.
	TabLines int `json:"tab_lines"`
	// SpaceLines is the count of space-only indented lines.
	SpaceLines int `json:"space_lines"`
	// MixedLines is the count of lines indented with both tabs and spaces.
	MixedLines int `json:"mixed_lines"`
	// Steps counts observed space steps by width; index 0 is unused.
	Steps []int `json:"steps"`
	// Truncated reports whether the sample was cut to the length limit.
	Truncated bool `json:"truncated,omitempty"`

	// tabWidth is the width reported for tab results.
	tabWidth int
	// minLines is the evidence threshold.
	minLines int
}

// TabEvidence returns the count of lines indented by a leading tab.
func (a Analysis) TabEvidence() int {
	return a.TabLines + a.MixedLines
}

// SpaceStep returns the most frequent space step and its count.
//
// Equally frequent steps resolve to the smallest width. Zero width means
// no step was observed.
func (a Analysis) SpaceStep() (int, int) {
	width, count := 0, 0
	for w := 1; w < len(a.Steps); w++ {
		if a.Steps[w] > count {
			width, count = w, a.Steps[w]
		}
	}

	return width, count
}

// Indentation returns the raw reading of the sample.
//
// Both tab and space evidence produce KindMixed.
func (a Analysis) Indentation() Indentation {
	if a.Lines < a.minLines {
		return Unknown()
	}

	step, stepCount := a.SpaceStep()
	tabs := a.TabEvidence()

	switch {
	case tabs > 0 && stepCount > 0:
		return Mixed(a.tabWidth, step)
	case tabs > 0:
		return Tab(a.tabWidth)
	case stepCount > 0:
		return Space(step)
	default:
		return Unknown()
	}
}

// Decide returns the final guess.
//
// Mixed readings resolve to tab indentation: files that mix both almost
// always indent with tabs and align with spaces.
func (a Analysis) Decide() Indentation {
	ind := a.Indentation()
	if ind.Kind == KindMixed {
		return Tab(ind.Width)
	}

	return ind
}

// Guesser infers indentation from text samples.
//
// Guesser holds only immutable settings and is safe for concurrent use.
type Guesser struct {
	opts GuessOptions
}

// NewGuesser creates a guesser with options.
func NewGuesser(opts GuessOptions) Guesser {
	opts.applyDefaults()
	return Guesser{opts: opts}
}

// Options returns effective guesser options.
func (g Guesser) Options() GuessOptions {
	opts := g.opts
	opts.applyDefaults()
	return opts
}

// Guess returns the indentation guessed from sample with default options.
func Guess(sample string) Indentation {
	return NewGuesser(GuessOptions{}).Guess(sample)
}

// Guess returns the indentation guessed from sample.
//
// Result kind is KindTab, KindSpace or KindUnknown.
func (g Guesser) Guess(sample string) Indentation {
	return g.Analyze(sample).Decide()
}

// Analyze scans sample line by line and collects leading-whitespace statistics.
//
// Whitespace-only lines are skipped. Each space-indented line adds one step
// observation: the difference to the nearest shallower preceding line, with
// the document start counted as depth 0. Unindented lines reset depth
// tracking; tab and mixed lines leave it untouched.
func (g Guesser) Analyze(sample string) Analysis {
	opts := g.Options()

	a := Analysis{
		Steps:    make([]int, opts.MaxSpaceWidth+1),
		tabWidth: opts.DefaultTabWidth,
		minLines: opts.MinLines,
	}

	if len(sample) > opts.MaxSampleLength {
		sample = sample[:opts.MaxSampleLength]
		if idx := strings.LastIndexByte(sample, '\n'); idx >= 0 {
			// Drop the partial last line, its indentation may be cut.
			sample = sample[:idx]
		}

		a.Truncated = true
	}

	// depths is a strictly increasing stack of space depths seen so far.
	depths := make([]int, 1, 16)

	for len(sample) > 0 {
		line := sample
		if idx := strings.IndexByte(sample, '\n'); idx >= 0 {
			line, sample = sample[:idx], sample[idx+1:]
		} else {
			sample = ""
		}

		class, depth, blank := classifyLine(line)
		if blank {
			continue
		}

		a.Lines++

		switch class {
		case LineFlat:
			a.FlatLines++
			depths = depths[:1]
		case LineTab:
			a.TabLines++
		case LineMixed:
			a.MixedLines++
		case LineSpace:
			a.SpaceLines++

			for len(depths) > 1 && depths[len(depths)-1] >= depth {
				depths = depths[:len(depths)-1]
			}

			step := depth - depths[len(depths)-1]
			if step > 0 && step <= opts.MaxSpaceWidth {
				a.Steps[step]++
			}

			depths = append(depths, depth)
		}
	}

	return a
}

// classifyLine returns leading-whitespace class, space depth and blank flag of one line.
func classifyLine(line string) (LineClass, int, bool) {
	tabs, spaces := 0, 0

	i := 0
	for ; i < len(line); i++ {
		switch line[i] {
		case '\t':
			tabs++
			continue
		case ' ':
			spaces++
			continue
		}

		break
	}

	rest := line[i:]
	if strings.TrimSpace(rest) == "" {
		return LineFlat, 0, true
	}

	switch {
	case tabs > 0 && spaces > 0:
		return LineMixed, 0, false
	case tabs > 0:
		return LineTab, 0, false
	case spaces > 0:
		return LineSpace, spaces, false
	default:
		return LineFlat, 0, false
	}
}
