// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/autoindent

package autoindent

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/woozymasta/autoindent/editorconfig"
)

// DirectiveResolver resolves an exact indentation directive for a file path.
//
// *editorconfig.Resolver implements it.
type DirectiveResolver interface {
	Resolve(path string) editorconfig.Directive
}

// DirectiveResolverFunc adapts a function to DirectiveResolver.
type DirectiveResolverFunc func(path string) editorconfig.Directive

// Resolve calls f(path).
func (f DirectiveResolverFunc) Resolve(path string) editorconfig.Directive {
	return f(path)
}

// DetectorOptions configures a Detector.
type DetectorOptions struct {
	// Fallback is used for fields no source could resolve.
	// Zero value defaults to space/4.
	Fallback Indentation `json:"fallback" yaml:"fallback"`
	// Guess controls the content heuristic.
	Guess GuessOptions `json:"guess" yaml:"guess"`

	// Resolver supplies config directives; nil disables config resolution.
	Resolver DirectiveResolver `json:"-" yaml:"-"`
	// Logger receives one debug record per detection.
	Logger *zerolog.Logger `json:"-" yaml:"-"`
}

// Detector runs the resolve-config, guess, merge pipeline.
//
// Detector holds only immutable settings and is safe for concurrent use
// as long as its Resolver is.
type Detector struct {
	resolver DirectiveResolver
	guesser  Guesser
	fallback Indentation
	log      zerolog.Logger
}

// NewDetector creates a detector.
func NewDetector(opts DetectorOptions) *Detector {
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	return &Detector{
		resolver: opts.Resolver,
		guesser:  NewGuesser(opts.Guess),
		fallback: normalizeFallback(opts.Fallback),
		log:      log,
	}
}

// Fallback returns effective fallback indentation.
func (d *Detector) Fallback() Indentation {
	return d.fallback
}

// MaxSampleLength returns the sample cap used by the heuristic.
func (d *Detector) MaxSampleLength() int {
	return d.guesser.Options().MaxSampleLength
}

// Detect returns the indentation decision for a document.
//
// path may be empty for unsaved buffers. The heuristic is skipped when the
// directive already resolves both style and size.
func (d *Detector) Detect(path string, sample string) Result {
	directive := editorconfig.Directive{}
	if d.resolver != nil && path != "" {
		directive = d.resolver.Resolve(path)
	}

	guess := Unknown()
	if !directive.Complete() {
		guess = d.guesser.Guess(sample)
	}

	res := Merge(directive, guess, d.fallback)

	d.log.Debug().
		Str("path", path).
		Str("style", directive.Style.String()).
		Int("size", directive.Size).
		Stringer("guess", guess).
		Stringer("result", res.Indentation).
		Strs("sources", sourceNames(res.Sources)).
		Msg("indentation detected")

	return res
}

// DetectReader reads a bounded sample from r and detects its indentation.
func (d *Detector) DetectReader(path string, r io.Reader) (Result, error) {
	// One extra byte lets the guesser see the cut and drop the partial line.
	sample, err := ReadSample(r, d.MaxSampleLength()+1)
	if err != nil {
		return Result{}, err
	}

	return d.Detect(path, sample), nil
}

// ReadSample reads at most limit bytes from r.
func ReadSample(r io.Reader, limit int) (string, error) {
	if limit <= 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidSampleLength, limit)
	}

	data, err := io.ReadAll(io.LimitReader(r, int64(limit)))
	if err != nil {
		return "", fmt.Errorf("read sample: %w", err)
	}

	return string(data), nil
}

// sourceNames converts sources to strings.
func sourceNames(sources []Source) []string {
	out := make([]string, len(sources))
	for i := range sources {
		out[i] = string(sources[i])
	}

	return out
}
