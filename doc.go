// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/autoindent

/*
Package autoindent infers the indentation style of source text.

The package is a pure call-in API for editors and tools that want to match
the indentation of a document they open.

Basic flow:
  - resolve an exact directive from .editorconfig files (`editorconfig.Resolver`)
  - guess indentation from a text sample (`Guess` / `Guesser`)
  - merge both with a fallback (`Merge`)
  - or run all three stages at once (`NewDetector` / `Detect`)

The final `Result` carries a concrete indentation and the list of sources
that contributed to it ("config", "heuristic", "default"), ready to be
shown as "space/4 (by config, heuristic)".

Nothing here keeps state between calls; caching is left to the caller.
*/
package autoindent
