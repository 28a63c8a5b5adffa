// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/autoindent

// Package commands provides the CLI commands for autoindent.
package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/woozymasta/autoindent"
	"github.com/woozymasta/autoindent/editorconfig"
	"github.com/woozymasta/autoindent/internal/logging"
)

// Version is set at build time.
var Version = "dev"

// app holds global flag values and injected environment of one command tree.
type app struct {
	fs     afero.Fs
	getenv func(string) string

	settingsPath  string
	defaultIndent string
	configName    string
	ceiling       string
	logLevel      string
	exts          []string
	sampleLength  int
	noColor       bool
}

// Execute runs the root command over the OS filesystem and environment.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree over the OS filesystem and environment.
func NewRootCommand() *cobra.Command {
	return newRootCommand(afero.NewOsFs(), os.Getenv)
}

// newRootCommand builds the command tree over fsys and getenv.
func newRootCommand(fsys afero.Fs, getenv func(string) string) *cobra.Command {
	a := &app{fs: fsys, getenv: getenv}

	root := &cobra.Command{
		Use:   "autoindent",
		Short: "Detect indentation style of files",
		Long: `autoindent reports whether files are indented with tabs or spaces and
how wide one level is.

Exact settings come from .editorconfig files; otherwise the style is guessed
from file content and the configured default fills what is left.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.settingsPath, "settings", "", "YAML settings file (env "+envSettings+")")
	flags.StringVar(&a.defaultIndent, "default", "", `default indentation, e.g. "space/4" or "tab"`)
	flags.IntVar(&a.sampleLength, "sample-length", 0, "maximum bytes read from each file")
	flags.StringVar(&a.configName, "config-name", "", "editorconfig file name")
	flags.StringVar(&a.ceiling, "ceiling", "", "directory where the editorconfig lookup stops")
	flags.StringSliceVar(&a.exts, "ext", nil, "file extensions taken from directories, e.g. go,py")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (DEBUG|INFO|WARN|ERROR|OFF)")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.SetVersionTemplate(fmt.Sprintf("autoindent %s\n", Version))

	root.AddCommand(newDetectCommand(a))
	root.AddCommand(newPropsCommand(a))

	return root
}

// settings merges defaults, settings file, environment and changed flags.
func (a *app) settings(cmd *cobra.Command) (Settings, error) {
	path := a.settingsPath
	if path == "" {
		path = strings.TrimSpace(a.getenv(envSettings))
	}

	s, err := LoadSettings(a.fs, path)
	if err != nil {
		return Settings{}, err
	}

	if err := s.applyEnv(a.getenv); err != nil {
		return Settings{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("default") {
		ind, err := autoindent.ParseIndentation(a.defaultIndent)
		if err != nil {
			return Settings{}, fmt.Errorf("--default: %w", err)
		}

		s.DefaultIndentation = ind
	}

	if flags.Changed("sample-length") {
		s.SampleLength = a.sampleLength
	}

	if flags.Changed("config-name") {
		s.ConfigFileName = a.configName
	}

	if flags.Changed("ceiling") {
		s.Ceiling = a.ceiling
	}

	if flags.Changed("ext") {
		s.Extensions = a.exts
	}

	if flags.Changed("log-level") {
		s.LogLevel = a.logLevel
	}

	return s, s.validate()
}

// logger builds the stderr logger of one command run.
func (a *app) logger(cmd *cobra.Command, s Settings) zerolog.Logger {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(s.LogLevel)
	cfg.Output = cmd.ErrOrStderr()
	return logging.New(cfg)
}

// resolver builds a cached editorconfig resolver, nil when disabled.
func (a *app) resolver(s Settings, log *zerolog.Logger) (*editorconfig.Resolver, error) {
	if !s.UseEditorconfig {
		return nil, nil
	}

	loader, err := newCachedLoader(editorconfig.NewFsLoader(a.fs, 0), s.CacheSize)
	if err != nil {
		return nil, err
	}

	return editorconfig.NewResolver(editorconfig.Options{
		FileName: s.ConfigFileName,
		Ceiling:  s.Ceiling,
		Loader:   loader,
		Logger:   log,
	})
}

// detector builds the detection pipeline from settings.
func (a *app) detector(s Settings, log *zerolog.Logger) (*autoindent.Detector, error) {
	opts := autoindent.DetectorOptions{
		Fallback: s.DefaultIndentation,
		Guess: autoindent.GuessOptions{
			DefaultTabWidth: s.DefaultTabWidth,
			MaxSampleLength: s.SampleLength,
		},
		Logger: log,
	}

	resolver, err := a.resolver(s, log)
	if err != nil {
		return nil, err
	}

	// A typed nil would make the detector call a nil resolver.
	if resolver != nil {
		opts.Resolver = resolver
	}

	return autoindent.NewDetector(opts), nil
}

// colorer returns a color printer honoring --no-color.
func (a *app) colorer(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if a.noColor {
		c.DisableColor()
	}

	return c
}
