// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/autoindent

package commands

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/woozymasta/autoindent/editorconfig"
)

// cachedFile is one memoized load outcome, missing files included.
type cachedFile struct {
	file *editorconfig.File
	err  error
}

// cachedLoader memoizes parsed editorconfig files by path.
//
// Files sharing a directory tree walk the same ancestor configs, so a batch
// run parses each one once. Cached files are never mutated by the resolver.
type cachedLoader struct {
	next  editorconfig.Loader
	cache *lru.Cache[string, cachedFile]
}

// newCachedLoader wraps next with an LRU cache of size entries.
func newCachedLoader(next editorconfig.Loader, size int) (*cachedLoader, error) {
	cache, err := lru.New[string, cachedFile](size)
	if err != nil {
		return nil, fmt.Errorf("config cache: %w", err)
	}

	return &cachedLoader{next: next, cache: cache}, nil
}

// Load returns the cached outcome for path or loads it.
func (l *cachedLoader) Load(path string) (*editorconfig.File, error) {
	if hit, ok := l.cache.Get(path); ok {
		return hit.file, hit.err
	}

	file, err := l.next.Load(path)
	l.cache.Add(path, cachedFile{file: file, err: err})
	return file, err
}
