// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/autoindent

package commands

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/autoindent"
)

func TestLoadSettingsDefaults(t *testing.T) {
	t.Parallel()

	s, err := LoadSettings(afero.NewMemMapFs(), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
	assert.Equal(t, autoindent.Space(4), s.DefaultIndentation)
	assert.True(t, s.UseEditorconfig)
}

func TestLoadSettingsFile(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/cfg.yaml", []byte(`
default_indentation: tab 8
sample_length: 1024
config_file_name: .ec
use_editorconfig: false
extensions: [go, .py]
log_level: debug
`), 0o644))

	s, err := LoadSettings(fsys, "/cfg.yaml")
	require.NoError(t, err)
	assert.Equal(t, autoindent.Tab(8), s.DefaultIndentation)
	assert.Equal(t, 1024, s.SampleLength)
	assert.Equal(t, ".ec", s.ConfigFileName)
	assert.False(t, s.UseEditorconfig)
	assert.Equal(t, []string{"go", ".py"}, s.Extensions)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, autoindent.DefaultTabWidth, s.DefaultTabWidth)
	assert.Equal(t, defaultCacheSize, s.CacheSize)
}

func TestLoadSettingsErrors(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/unknown.yaml", []byte("indent: 4\n"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/bad.yaml", []byte("default_indentation: spaces\n"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/zero.yaml", []byte("sample_length: 0\n"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/empty.yaml", []byte("\n"), 0o644))

	_, err := LoadSettings(fsys, "/missing.yaml")
	require.Error(t, err)

	_, err = LoadSettings(fsys, "/unknown.yaml")
	require.Error(t, err)

	_, err = LoadSettings(fsys, "/bad.yaml")
	require.ErrorIs(t, err, autoindent.ErrInvalidIndentation)

	_, err = LoadSettings(fsys, "/zero.yaml")
	require.ErrorIs(t, err, autoindent.ErrInvalidSampleLength)

	s, err := LoadSettings(fsys, "/empty.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestSettingsApplyEnv(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		envDefaultIndentation: "tab",
		envSampleLength:       "2048",
		envConfigFileName:     ".indentrc",
		envLogLevel:           "INFO",
	}

	s := DefaultSettings()
	require.NoError(t, s.applyEnv(func(key string) string { return env[key] }))
	assert.Equal(t, autoindent.Tab(autoindent.DefaultTabWidth), s.DefaultIndentation)
	assert.Equal(t, 2048, s.SampleLength)
	assert.Equal(t, ".indentrc", s.ConfigFileName)
	assert.Equal(t, "INFO", s.LogLevel)

	s = DefaultSettings()
	err := s.applyEnv(func(key string) string {
		if key == envSampleLength {
			return "many"
		}

		return ""
	})
	require.Error(t, err)
}
