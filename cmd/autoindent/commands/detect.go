// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/autoindent

package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/woozymasta/autoindent"
)

// errFilesFailed reports that some inputs could not be read.
var errFilesFailed = errors.New("some files failed")

// detectRecord is one JSON output line.
type detectRecord struct {
	Path        string              `json:"path"`
	Indentation string              `json:"indentation,omitempty"`
	UseSpaces   bool                `json:"use_spaces"`
	Sources     []autoindent.Source `json:"sources,omitempty"`
	Error       string              `json:"error,omitempty"`
}

// detectFlags holds detect command flags.
type detectFlags struct {
	stdinPath      string
	json           bool
	noEditorconfig bool
}

func newDetectCommand(a *app) *cobra.Command {
	f := &detectFlags{}

	cmd := &cobra.Command{
		Use:   "detect [files or directories...]",
		Short: "Print indentation of files",
		Long: `Print the indentation decision for each file together with the sources
that produced it, e.g. "main.go: tab/4 (by config)".

Directories are walked recursively; use --ext to filter by extension.
Use --stdin-path to read one document from stdin under a virtual path.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, a, f, args)
		},
	}

	cmd.Flags().StringVar(&f.stdinPath, "stdin-path", "", "read the sample from stdin; the path is used for editorconfig lookup only")
	cmd.Flags().BoolVar(&f.json, "json", false, "print one JSON object per file")
	cmd.Flags().BoolVar(&f.noEditorconfig, "no-editorconfig", false, "ignore .editorconfig files")

	return cmd
}

func runDetect(cmd *cobra.Command, a *app, f *detectFlags, args []string) error {
	useStdin := cmd.Flags().Changed("stdin-path")
	if useStdin && len(args) > 0 {
		return errors.New("--stdin-path cannot be combined with file arguments")
	}

	if !useStdin && len(args) == 0 {
		return errors.New("no input: pass files, directories or --stdin-path")
	}

	s, err := a.settings(cmd)
	if err != nil {
		return err
	}

	if f.noEditorconfig {
		s.UseEditorconfig = false
	}

	log := a.logger(cmd, s)
	detector, err := a.detector(s, &log)
	if err != nil {
		return err
	}

	p := &detectPrinter{
		out:     cmd.OutOrStdout(),
		errOut:  cmd.ErrOrStderr(),
		json:    f.json,
		path:    a.colorer(color.Bold),
		config:  a.colorer(color.FgGreen),
		guessed: a.colorer(color.FgCyan),
		deflt:   a.colorer(color.FgYellow),
		failed:  a.colorer(color.FgRed),
	}

	if useStdin {
		res, err := detector.DetectReader(f.stdinPath, cmd.InOrStdin())
		if err != nil {
			p.failure(f.stdinPath, err)
			return fmt.Errorf("%w: 1 of 1", errFilesFailed)
		}

		return p.result(f.stdinPath, res)
	}

	paths, err := expandPaths(a.fs, args, s.Extensions)
	if err != nil {
		return err
	}

	failed := 0
	for _, path := range paths {
		res, err := detectFile(a, detector, path)
		if err != nil {
			log.Debug().Err(err).Str("path", path).Msg("detect failed")
			p.failure(path, err)
			failed++
			continue
		}

		if err := p.result(path, res); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errFilesFailed, failed, len(paths))
	}

	return nil
}

// detectFile opens path and runs detection over its sample.
func detectFile(a *app, detector *autoindent.Detector, path string) (autoindent.Result, error) {
	file, err := a.fs.Open(path)
	if err != nil {
		return autoindent.Result{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	return detector.DetectReader(path, file)
}

// detectPrinter renders detection results as text or JSON lines.
type detectPrinter struct {
	out    io.Writer
	errOut io.Writer
	json   bool

	path    *color.Color
	config  *color.Color
	guessed *color.Color
	deflt   *color.Color
	failed  *color.Color
}

// result prints one decision.
func (p *detectPrinter) result(path string, res autoindent.Result) error {
	if p.json {
		return p.record(detectRecord{
			Path:        path,
			Indentation: res.Indentation.String(),
			UseSpaces:   res.Indentation.UseSpaces(),
			Sources:     res.Sources,
		}, p.out)
	}

	_, err := fmt.Fprintf(p.out, "%s: %s\n", p.path.Sprint(path), p.sourceColor(res).Sprint(res.String()))
	return err
}

// failure prints one unreadable input.
func (p *detectPrinter) failure(path string, err error) {
	if p.json {
		_ = p.record(detectRecord{Path: path, Error: err.Error()}, p.out)
		return
	}

	_, _ = fmt.Fprintf(p.errOut, "%s: %s\n", p.path.Sprint(path), p.failed.Sprint(err.Error()))
}

// record writes one JSON line.
func (p *detectPrinter) record(rec detectRecord, w io.Writer) error {
	return json.NewEncoder(w).Encode(rec)
}

// sourceColor picks color by the strongest contributing source.
func (p *detectPrinter) sourceColor(res autoindent.Result) *color.Color {
	if len(res.Sources) == 0 {
		return p.deflt
	}

	switch res.Sources[0] {
	case autoindent.SourceConfig:
		return p.config
	case autoindent.SourceHeuristic:
		return p.guessed
	default:
		return p.deflt
	}
}
