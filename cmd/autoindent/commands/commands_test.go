// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/autoindent

package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/autoindent"
)

const goSample = "package main\n\nfunc main() {\n\tprintln()\n}\n"

// runCLI executes the command tree and returns stdout, stderr and error.
func runCLI(t *testing.T, fsys afero.Fs, env map[string]string, stdin string, args ...string) (string, string, error) {
	t.Helper()

	getenv := func(key string) string { return env[key] }
	root := newRootCommand(fsys, getenv)

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--no-color", "--log-level", "OFF"}, args...))

	err := root.Execute()
	return out.String(), errOut.String(), err
}

// newRepoFs returns an in-memory tree with one editorconfig and a few sources.
func newRepoFs(t *testing.T) afero.Fs {
	t.Helper()

	fsys := afero.NewMemMapFs()
	files := map[string]string{
		"/repo/.editorconfig": "root = true\n\n[*.go]\nindent_style = tab\nindent_size = 8\n",
		"/repo/main.go":       goSample,
		"/repo/app.py":        "def f():\n  x = 1\n  if x:\n    return x\n",
		"/repo/notes.txt":     "flat\ntext\n",
		"/repo/.git/config":   "[core]\n\tbare = false\n",
		"/repo/pkg/util.go":   goSample,
	}

	for path, content := range files {
		require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644))
	}

	return fsys
}

func TestDetectTextOutput(t *testing.T) {
	t.Parallel()

	out, errOut, err := runCLI(t, newRepoFs(t), nil, "", "detect", "/repo/main.go", "/repo/app.py", "/repo/notes.txt")
	require.NoError(t, err)
	assert.Empty(t, errOut)

	assert.Equal(t, strings.Join([]string{
		"/repo/main.go: tab/8 (by config)",
		"/repo/app.py: space/2 (by heuristic)",
		"/repo/notes.txt: space/4 (default)",
		"",
	}, "\n"), out)
}

func TestDetectJSONOutput(t *testing.T) {
	t.Parallel()

	out, _, err := runCLI(t, newRepoFs(t), nil, "", "detect", "--json", "/repo/app.py")
	require.NoError(t, err)

	var rec detectRecord
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, detectRecord{
		Path:        "/repo/app.py",
		Indentation: "space/2",
		UseSpaces:   true,
		Sources:     []autoindent.Source{autoindent.SourceHeuristic},
	}, rec)
}

func TestDetectStdin(t *testing.T) {
	t.Parallel()

	out, _, err := runCLI(t, newRepoFs(t), nil, "{\n    a\n    b\n}\n", "detect", "--stdin-path", "/repo/unsaved.go")
	require.NoError(t, err)
	assert.Equal(t, "/repo/unsaved.go: tab/8 (by config)\n", out)

	out, _, err = runCLI(t, newRepoFs(t), nil, "{\n    a\n    b\n}\n", "detect", "--stdin-path", "")
	require.NoError(t, err)
	assert.Equal(t, ": space/4 (by heuristic)\n", out)
}

func TestDetectNoEditorconfig(t *testing.T) {
	t.Parallel()

	out, _, err := runCLI(t, newRepoFs(t), nil, "", "detect", "--no-editorconfig", "/repo/main.go")
	require.NoError(t, err)
	assert.Equal(t, "/repo/main.go: tab/4 (by heuristic)\n", out)
}

func TestDetectWalksDirectories(t *testing.T) {
	t.Parallel()

	out, _, err := runCLI(t, newRepoFs(t), nil, "", "--ext", "go", "detect", "/repo")
	require.NoError(t, err)
	assert.Equal(t, "/repo/main.go: tab/8 (by config)\n/repo/pkg/util.go: tab/8 (by config)\n", out)
}

func TestDetectReportsFailedFiles(t *testing.T) {
	t.Parallel()

	out, errOut, err := runCLI(t, newRepoFs(t), nil, "", "detect", "/repo/missing.go", "/repo/main.go")
	require.ErrorIs(t, err, errFilesFailed)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, errOut, "/repo/missing.go: open /repo/missing.go")
	assert.Equal(t, "/repo/main.go: tab/8 (by config)\n", out)

	out, _, err = runCLI(t, newRepoFs(t), nil, "", "detect", "--json", "/repo/missing.go")
	require.ErrorIs(t, err, errFilesFailed)

	var rec detectRecord
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "/repo/missing.go", rec.Path)
	assert.NotEmpty(t, rec.Error)
	assert.Empty(t, rec.Indentation)
}

func TestDetectArgumentErrors(t *testing.T) {
	t.Parallel()

	_, _, err := runCLI(t, newRepoFs(t), nil, "", "detect")
	require.Error(t, err)

	_, _, err = runCLI(t, newRepoFs(t), nil, "", "detect", "--stdin-path", "/x.go", "/repo/main.go")
	require.Error(t, err)

	_, _, err = runCLI(t, newRepoFs(t), nil, "", "--default", "spaces", "detect", "/repo/main.go")
	require.ErrorIs(t, err, autoindent.ErrInvalidIndentation)

	_, _, err = runCLI(t, newRepoFs(t), nil, "", "--sample-length", "-1", "detect", "/repo/main.go")
	require.ErrorIs(t, err, autoindent.ErrInvalidSampleLength)
}

func TestDetectSettingsPrecedence(t *testing.T) {
	t.Parallel()

	fsys := newRepoFs(t)
	require.NoError(t, afero.WriteFile(fsys, "/etc/autoindent.yaml", []byte("default_indentation: tab/2\n"), 0o644))

	out, _, err := runCLI(t, fsys, nil, "", "--settings", "/etc/autoindent.yaml", "detect", "/repo/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "/repo/notes.txt: tab/2 (default)\n", out)

	env := map[string]string{
		envSettings:           "/etc/autoindent.yaml",
		envDefaultIndentation: "space/3",
	}

	out, _, err = runCLI(t, fsys, env, "", "detect", "/repo/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "/repo/notes.txt: space/3 (default)\n", out)

	out, _, err = runCLI(t, fsys, env, "", "--default", "tab/6", "detect", "/repo/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "/repo/notes.txt: tab/6 (default)\n", out)
}

func TestDetectCustomConfigName(t *testing.T) {
	t.Parallel()

	fsys := newRepoFs(t)
	require.NoError(t, afero.WriteFile(fsys, "/repo/pkg/.indentrc", []byte("[*]\nindent_style = space\nindent_size = 3\n"), 0o644))

	out, _, err := runCLI(t, fsys, nil, "", "--config-name", ".indentrc", "detect", "/repo/pkg/util.go")
	require.NoError(t, err)
	assert.Equal(t, "/repo/pkg/util.go: space/3 (by config)\n", out)
}

func TestDetectCeiling(t *testing.T) {
	t.Parallel()

	out, _, err := runCLI(t, newRepoFs(t), nil, "", "--ceiling", "/repo/pkg", "detect", "/repo/pkg/util.go")
	require.NoError(t, err)
	assert.Equal(t, "/repo/pkg/util.go: tab/4 (by heuristic)\n", out)
}

func TestPropsCommand(t *testing.T) {
	t.Parallel()

	out, _, err := runCLI(t, newRepoFs(t), nil, "", "props", "/repo/main.go")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"indent_size = 8",
		"indent_style = tab",
		"tab_width = 8",
		"directive: style=tab size=8",
		"",
	}, "\n"), out)

	out, _, err = runCLI(t, newRepoFs(t), nil, "", "props", "/repo/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "directive: style=unset size=0\n", out)

	_, _, err = runCLI(t, newRepoFs(t), nil, "", "props")
	require.Error(t, err)
}
