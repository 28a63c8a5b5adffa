// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/autoindent

/*
Package editorconfig resolves indentation directives from .editorconfig files.

Basic flow:
  - parse one file from text (`Parse`) or load it (`LoadFile`, `FsLoader`)
  - create a resolver (`NewResolver`) over a filesystem or a custom `Loader`
  - ask for a directive (`Resolve`) or for merged raw properties (`Properties`)

Resolver walks ancestor directories of the target file, stops at
`root = true`, the configured ceiling or the depth limit, and merges matching
sections farthest first so that closer and later sections win.

Resolve never fails: unreadable config files degrade to the zero Directive.
*/
package editorconfig
