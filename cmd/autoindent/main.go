// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/autoindent

// Command autoindent reports the indentation style of files.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/woozymasta/autoindent/cmd/autoindent/commands"
)

func main() {
	// A missing .env file is fine; it only carries AUTOINDENT_* overrides.
	_ = godotenv.Load()

	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
