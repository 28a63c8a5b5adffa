// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/autoindent

package commands

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/autoindent"
	"github.com/woozymasta/autoindent/editorconfig"
)

// Environment variables overriding settings file values.
const (
	envSettings           = "AUTOINDENT_SETTINGS"
	envDefaultIndentation = "AUTOINDENT_DEFAULT_INDENTATION"
	envSampleLength       = "AUTOINDENT_SAMPLE_LENGTH"
	envConfigFileName     = "AUTOINDENT_CONFIG_FILE_NAME"
	envLogLevel           = "AUTOINDENT_LOG_LEVEL"
)

// defaultCacheSize is the parsed config file cache capacity.
const defaultCacheSize = 256

// Settings is the command line configuration loaded from YAML.
type Settings struct {
	// DefaultIndentation is used when nothing else resolves, e.g. "space/4".
	DefaultIndentation autoindent.Indentation `yaml:"default_indentation"`
	// SampleLength caps bytes read from each file.
	SampleLength int `yaml:"sample_length"`
	// DefaultTabWidth is reported for guessed tab indentation.
	DefaultTabWidth int `yaml:"default_tab_width"`
	// ConfigFileName is the per-directory editorconfig file name.
	ConfigFileName string `yaml:"config_file_name"`
	// Ceiling stops the editorconfig upward walk.
	Ceiling string `yaml:"ceiling,omitempty"`
	// UseEditorconfig enables exact resolution from config files.
	UseEditorconfig bool `yaml:"use_editorconfig"`
	// Extensions filters files found when walking directories.
	Extensions []string `yaml:"extensions,omitempty"`
	// CacheSize is the parsed config file cache capacity.
	CacheSize int `yaml:"cache_size"`
	// LogLevel is one of DEBUG, INFO, WARN, ERROR, OFF.
	LogLevel string `yaml:"log_level"`
}

// DefaultSettings returns built-in settings.
func DefaultSettings() Settings {
	return Settings{
		DefaultIndentation: autoindent.Space(4),
		SampleLength:       autoindent.DefaultMaxSampleLength,
		DefaultTabWidth:    autoindent.DefaultTabWidth,
		ConfigFileName:     editorconfig.DefaultFileName,
		UseEditorconfig:    true,
		CacheSize:          defaultCacheSize,
		LogLevel:           "WARN",
	}
}

// LoadSettings reads settings from a YAML file in fsys over defaults.
//
// Empty path returns defaults.
func LoadSettings(fsys afero.Fs, path string) (Settings, error) {
	s := DefaultSettings()
	if strings.TrimSpace(path) == "" {
		return s, nil
	}

	content, err := afero.ReadFile(fsys, path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
	}

	if err := decodeSettings(content, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings %s: %w", path, err)
	}

	return s, s.validate()
}

// decodeSettings decodes YAML rejecting unknown keys.
func decodeSettings(content []byte, s *Settings) error {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	return dec.Decode(s)
}

// applyEnv overrides settings from AUTOINDENT_* variables.
func (s *Settings) applyEnv(getenv func(string) string) error {
	if v := strings.TrimSpace(getenv(envDefaultIndentation)); v != "" {
		ind, err := autoindent.ParseIndentation(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envDefaultIndentation, err)
		}

		s.DefaultIndentation = ind
	}

	if v := strings.TrimSpace(getenv(envSampleLength)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envSampleLength, err)
		}

		s.SampleLength = n
	}

	if v := strings.TrimSpace(getenv(envConfigFileName)); v != "" {
		s.ConfigFileName = v
	}

	if v := strings.TrimSpace(getenv(envLogLevel)); v != "" {
		s.LogLevel = v
	}

	return s.validate()
}

// validate checks settings invariants.
func (s *Settings) validate() error {
	if s.SampleLength <= 0 {
		return fmt.Errorf("%w: %d", autoindent.ErrInvalidSampleLength, s.SampleLength)
	}

	if k := s.DefaultIndentation.Kind; (k != autoindent.KindTab && k != autoindent.KindSpace) || s.DefaultIndentation.Width <= 0 {
		return fmt.Errorf("%w: default_indentation %q", autoindent.ErrInvalidIndentation, s.DefaultIndentation)
	}

	if s.CacheSize <= 0 {
		s.CacheSize = defaultCacheSize
	}

	return nil
}
