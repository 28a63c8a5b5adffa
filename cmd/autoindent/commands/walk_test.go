// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/autoindent

package commands

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtensionPatterns(t *testing.T) {
	t.Parallel()

	got := extensionPatterns([]string{"txt", ".MD", " *.go ", "", "...", "go", "tar.gz"})
	assert.Equal(t, []string{"*.txt", "*.md", "*.go", "*.tar.gz"}, got)
	assert.Empty(t, extensionPatterns(nil))
}

func TestMatchesExtension(t *testing.T) {
	t.Parallel()

	patterns := extensionPatterns([]string{"go", "py"})

	assert.True(t, matchesExtension(patterns, "main.go"))
	assert.True(t, matchesExtension(patterns, "SETUP.PY"))
	assert.False(t, matchesExtension(patterns, "main.gox"))
	assert.False(t, matchesExtension(patterns, "Makefile"))
	assert.True(t, matchesExtension(nil, "Makefile"))
}

func TestExpandPaths(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	for _, path := range []string{
		"/src/b.go",
		"/src/a.go",
		"/src/readme.md",
		"/src/.hidden.go",
		"/src/.cache/c.go",
		"/src/sub/d.go",
		"/other/e.txt",
	} {
		require.NoError(t, afero.WriteFile(fsys, path, []byte("x\n"), 0o644))
	}

	got, err := expandPaths(fsys, []string{"/other/e.txt", "/src", "/nope.go"}, []string{"go"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/other/e.txt",
		"/src/a.go",
		"/src/b.go",
		"/src/sub/d.go",
		"/nope.go",
	}, got)

	got, err = expandPaths(fsys, []string{"/src"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"/src/a.go", "/src/b.go", "/src/readme.md", "/src/sub/d.go"}, got)
}
