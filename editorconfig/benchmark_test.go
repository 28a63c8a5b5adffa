// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/autoindent

package editorconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	benchSectionCount = 96
	benchPathCount    = 512
)

var (
	benchDirectiveSink Directive
	benchMatchSink     bool
)

func BenchmarkParse(b *testing.B) {
	src := buildBenchmarkConfigSource(benchSectionCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		file, err := ParseString(src)
		if err != nil {
			b.Fatal(err)
		}

		if len(file.Sections) == 0 {
			b.Fatal("empty sections")
		}
	}
}

func BenchmarkSectionMatch(b *testing.B) {
	file, err := ParseString(buildBenchmarkConfigSource(benchSectionCount))
	if err != nil {
		b.Fatal(err)
	}

	paths := benchmarkPaths(benchPathCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := file.compiled[i%len(file.compiled)]
		benchMatchSink = m.matches(paths[i%len(paths)])
	}
}

func BenchmarkResolve(b *testing.B) {
	root := b.TempDir()
	prepareResolverBenchTree(b, root)

	r, err := NewResolver(Options{Ceiling: root})
	if err != nil {
		b.Fatal(err)
	}

	paths := benchmarkPaths(benchPathCount)
	for i := range paths {
		paths[i] = filepath.Join(root, filepath.FromSlash(paths[i]))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchDirectiveSink = r.Resolve(paths[i%len(paths)])
	}
}

func buildBenchmarkConfigSource(sectionCount int) string {
	var sb strings.Builder
	sb.Grow(sectionCount * 48)

	sb.WriteString("# bench config\nroot = true\n\n[*]\nindent_style = space\nindent_size = 4\n")

	for i := 0; i < sectionCount; i++ {
		switch i % 5 {
		case 0:
			_, _ = fmt.Fprintf(&sb, "\n[*.ext%03d]\nindent_size = 2\n", i)
		case 1:
			_, _ = fmt.Fprintf(&sb, "\n[src/module_%03d/**]\nindent_style = tab\n", i%71)
		case 2:
			_, _ = fmt.Fprintf(&sb, "\n[*.{c%03d,h%03d}]\nindent_size = 8\ntab_width = 8\n", i, i)
		case 3:
			_, _ = fmt.Fprintf(&sb, "\n[data/file_{0..9}_%03d.txt]\nindent_size = unset\n", i%53)
		default:
			_, _ = fmt.Fprintf(&sb, "\n[docs/**/*.md]\nindent_size = %d\n", i%8+1)
		}
	}

	return sb.String()
}

func benchmarkPaths(pathCount int) []string {
	paths := make([]string, 0, pathCount)
	for i := 0; i < pathCount; i++ {
		switch i % 5 {
		case 0:
			paths = append(paths, fmt.Sprintf("src/module_%03d/main_%02d.c", i%71, i%19))
		case 1:
			paths = append(paths, fmt.Sprintf("lib/file_%05d.ext%03d", i, i%96))
		case 2:
			paths = append(paths, fmt.Sprintf("data/file_%d_%03d.txt", i%10, i%53))
		case 3:
			paths = append(paths, fmt.Sprintf("docs/section_%03d/chapter_%02d/readme.md", i%41, i%17))
		default:
			paths = append(paths, fmt.Sprintf("misc/file_%05d.txt", i))
		}
	}

	return paths
}

func prepareResolverBenchTree(b *testing.B, root string) {
	b.Helper()

	if err := os.MkdirAll(filepath.Join(root, "src"), 0o755); err != nil {
		b.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, "docs"), 0o755); err != nil {
		b.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(root, DefaultFileName), []byte(buildBenchmarkConfigSource(benchSectionCount)), 0o600); err != nil {
		b.Fatal(err)
	}

	srcConfig := "[*.c]\nindent_style = tab\n"
	if err := os.WriteFile(filepath.Join(root, "src", DefaultFileName), []byte(srcConfig), 0o600); err != nil {
		b.Fatal(err)
	}

	docsConfig := "[*.md]\nindent_style = space\nindent_size = 2\n"
	if err := os.WriteFile(filepath.Join(root, "docs", DefaultFileName), []byte(docsConfig), 0o600); err != nil {
		b.Fatal(err)
	}
}
