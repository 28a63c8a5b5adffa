// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/autoindent

// Package logging builds the diagnostic logger of the autoindent CLI.
//
// Detection results are the CLI's stdout; the logger only ever writes
// diagnostics to stderr so that "detect --json" output stays parseable.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Level is a zerolog level.
type Level = zerolog.Level

// Levels accepted by ParseLevel.
const (
	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel
	ErrorLevel = zerolog.ErrorLevel
	Disabled   = zerolog.Disabled
)

// Config describes one CLI logger.
type Config struct {
	// Level filters records. Degraded editorconfig lookups and per-detection
	// traces are debug records, so they stay hidden unless asked for.
	Level Level
	// Output receives records, os.Stderr when nil.
	Output io.Writer
	// Pretty switches from JSON lines to zerolog's console format.
	Pretty bool
	// TimeFormat formats console timestamps, time.RFC3339 when empty.
	TimeFormat string
}

// DefaultConfig returns the CLI logger setup: warnings and errors only, in
// console format on stderr.
//
// A batch "detect" run over a tree should print nothing but results unless
// something is actually wrong, hence WARN.
func DefaultConfig() Config {
	return Config{
		Level:      WarnLevel,
		Output:     os.Stderr,
		Pretty:     true,
		TimeFormat: time.RFC3339,
	}
}

// New returns a logger for cfg.
//
// The logger is returned rather than installed globally; the library
// packages receive it through their options.
func New(cfg Config) zerolog.Logger {
	return zerolog.New(writer(cfg)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// writer picks the record sink for cfg.
//
// Console output is never colored: --no-color governs only the result
// colors, and escape codes in stderr would end up in redirected logs.
func writer(cfg Config) io.Writer {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	if !cfg.Pretty {
		return out
	}

	format := cfg.TimeFormat
	if format == "" {
		format = time.RFC3339
	}

	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: format,
		NoColor:    true,
	}
}

// ParseLevel maps a --log-level or AUTOINDENT_LOG_LEVEL value to a level.
//
// Names are case-insensitive: DEBUG, INFO, WARN (or WARNING), ERROR and
// OFF (or NONE, DISABLED). Anything else falls back to WARN, the CLI
// default, instead of failing the run.
func ParseLevel(name string) Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return DebugLevel
	case "INFO":
		return InfoLevel
	case "ERROR":
		return ErrorLevel
	case "OFF", "NONE", "DISABLED":
		return Disabled
	default:
		return WarnLevel
	}
}
