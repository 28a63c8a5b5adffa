// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/autoindent

package editorconfig

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

const (
	// DefaultFileName is the per-directory config file name.
	DefaultFileName = ".editorconfig"
	// DefaultMaxDepth bounds the number of directories walked upward.
	DefaultMaxDepth = 128
)

// Options configures Resolver behavior.
type Options struct {
	// FileName is the config file looked up in each ancestor directory.
	// Empty value defaults to ".editorconfig".
	FileName string `json:"file_name,omitempty" yaml:"file_name,omitempty"`
	// Ceiling stops the upward walk after this directory when set.
	Ceiling string `json:"ceiling,omitempty" yaml:"ceiling,omitempty"`
	// MaxDepth limits walked directories, DefaultMaxDepth when <= 0.
	MaxDepth int `json:"max_depth,omitempty" yaml:"max_depth,omitempty"`
	// MaxFileSize limits one config file, DefaultMaxFileSize when <= 0.
	// Ignored when Loader is set.
	MaxFileSize int64 `json:"max_file_size,omitempty" yaml:"max_file_size,omitempty"`

	// Fs is the filesystem read by the default loader, OS filesystem when nil.
	Fs afero.Fs `json:"-" yaml:"-"`
	// Loader overrides file loading, an FsLoader over Fs when nil.
	Loader Loader `json:"-" yaml:"-"`
	// Logger receives debug records for degraded resolutions.
	Logger *zerolog.Logger `json:"-" yaml:"-"`
}

// Resolver resolves indentation directives from editorconfig files along a path hierarchy.
//
// Resolver holds only immutable settings and is safe for concurrent use
// as long as its Loader is.
type Resolver struct {
	// loader reads one config file.
	loader Loader
	// log receives degraded resolution records.
	log zerolog.Logger
	// fileName is per-directory config file name.
	fileName string
	// ceiling is absolute stop directory, empty for filesystem root.
	ceiling string
	// maxDepth bounds upward walk.
	maxDepth int
}

// NewResolver creates a resolver.
func NewResolver(opts Options) (*Resolver, error) {
	fileName, err := cleanFileName(opts.FileName)
	if err != nil {
		return nil, err
	}

	ceiling := ""
	if strings.TrimSpace(opts.Ceiling) != "" {
		ceiling, err = filepath.Abs(opts.Ceiling)
		if err != nil {
			return nil, fmt.Errorf("abs ceiling: %w", err)
		}
	}

	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	loader := opts.Loader
	if loader == nil {
		loader = NewFsLoader(opts.Fs, opts.MaxFileSize)
	}

	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	return &Resolver{
		loader:   loader,
		log:      log,
		fileName: fileName,
		ceiling:  ceiling,
		maxDepth: maxDepth,
	}, nil
}

// Resolve returns the indentation directive for path.
//
// Empty path, unreadable config files and invalid paths all produce the
// zero Directive. Resolve never fails.
func (r *Resolver) Resolve(path string) Directive {
	if r == nil || strings.TrimSpace(path) == "" {
		return Directive{}
	}

	props, err := r.Properties(path)
	if err != nil {
		r.log.Debug().Err(err).Str("path", path).Msg("editorconfig resolution degraded to unknown")
		return Directive{}
	}

	return props.Directive()
}

// Properties returns merged editorconfig properties for path.
//
// Decision order:
// 1. Config files from the farthest ancestor to the file directory.
// 2. Sections in file order.
// Last matched section wins per key.
func (r *Resolver) Properties(path string) (Properties, error) {
	if r == nil {
		return nil, ErrNilResolver
	}

	if strings.TrimSpace(path) == "" {
		return Properties{}, nil
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}

	chain, err := r.loadChain(filepath.Dir(target))
	if err != nil {
		return nil, err
	}

	props := make(Properties)
	for i := len(chain) - 1; i >= 0; i-- {
		r.applyFile(chain[i], target, props)
	}

	props.applyCoreDefaults()
	return props, nil
}

// chainEntry is one loaded config file with its directory.
type chainEntry struct {
	file *File
	dir  string
}

// loadChain loads config files from dir upward, nearest first.
func (r *Resolver) loadChain(dir string) ([]chainEntry, error) {
	chain := make([]chainEntry, 0, 4)

	for depth := 0; depth < r.maxDepth; depth++ {
		file, err := r.loader.Load(filepath.Join(dir, r.fileName))
		if err != nil {
			return nil, err
		}

		if file != nil {
			chain = append(chain, chainEntry{file: file, dir: dir})
			if file.Root {
				break
			}
		}

		if r.ceiling != "" && dir == r.ceiling {
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	return chain, nil
}

// applyFile merges matching section properties of one file into props.
//
// Sections whose glob cannot compile never match and are logged at debug.
func (r *Resolver) applyFile(entry chainEntry, target string, props Properties) {
	rel, ok := relativeTo(entry.dir, target)
	if !ok {
		return
	}

	// Files built outside Parse carry no compiled matchers.
	matchers := entry.file.compiled
	if len(matchers) != len(entry.file.Sections) {
		matchers = compileSections(entry.file.Sections)
	}

	for i := range entry.file.Sections {
		if err := matchers[i].err; err != nil {
			r.log.Debug().
				Err(err).
				Str("config", filepath.Join(entry.dir, r.fileName)).
				Str("section", entry.file.Sections[i].Name).
				Msg("editorconfig section never matches")
			continue
		}

		if !matchers[i].matches(rel) {
			continue
		}

		for _, prop := range entry.file.Sections[i].Properties {
			if prop.Value == valueUnset {
				delete(props, prop.Key)
				continue
			}

			props[prop.Key] = prop.Value
		}
	}
}

// cleanFileName validates and normalizes resolver config file name.
func cleanFileName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		name = DefaultFileName
	}

	if filepath.IsAbs(name) {
		return "", ErrInvalidConfigFileName
	}

	name = filepath.ToSlash(name)
	if strings.Contains(name, "/") || name == "." || name == ".." {
		return "", ErrInvalidConfigFileName
	}

	return name, nil
}
