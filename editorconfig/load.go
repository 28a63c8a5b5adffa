// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/autoindent

package editorconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/afero"
)

// DefaultMaxFileSize is the default size limit of one editorconfig file.
const DefaultMaxFileSize int64 = 1 << 20

// Loader loads one parsed editorconfig file.
//
// Load returns nil file and nil error when the file does not exist.
type Loader interface {
	Load(path string) (*File, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(path string) (*File, error)

// Load calls f(path).
func (f LoaderFunc) Load(path string) (*File, error) {
	return f(path)
}

// FsLoader reads editorconfig files from an afero filesystem.
type FsLoader struct {
	// Fs is the source filesystem, OS filesystem when nil.
	Fs afero.Fs
	// MaxFileSize limits bytes read per file, DefaultMaxFileSize when <= 0.
	MaxFileSize int64
}

// NewFsLoader creates a loader over fsys.
func NewFsLoader(fsys afero.Fs, maxFileSize int64) *FsLoader {
	return &FsLoader{
		Fs:          fsys,
		MaxFileSize: maxFileSize,
	}
}

// Load reads and parses one editorconfig file.
func (l *FsLoader) Load(path string) (*File, error) {
	fsys := l.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	limit := l.MaxFileSize
	if limit <= 0 {
		limit = DefaultMaxFileSize
	}

	f, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	content, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if int64(len(content)) > limit {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrConfigTooLarge, path, limit)
	}

	file, err := Parse(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	file.Path = path
	return file, nil
}

// LoadFile reads and parses one editorconfig file from the OS filesystem.
func LoadFile(path string) (*File, error) {
	file, err := (&FsLoader{}).Load(path)
	if err != nil {
		return nil, err
	}

	if file == nil {
		return nil, fmt.Errorf("open %s: %w", path, fs.ErrNotExist)
	}

	return file, nil
}
