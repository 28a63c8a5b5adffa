// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/autoindent

package commands

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newPropsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "props <file>",
		Short: "Print merged editorconfig properties of a file",
		Long: `Print every editorconfig property that applies to the file, sorted by key,
followed by the indentation directive derived from them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProps(cmd, a, args[0])
		},
	}
}

func runProps(cmd *cobra.Command, a *app, path string) error {
	s, err := a.settings(cmd)
	if err != nil {
		return err
	}

	// props always reads editorconfig, whatever the settings say.
	s.UseEditorconfig = true

	log := a.logger(cmd, s)
	resolver, err := a.resolver(s, &log)
	if err != nil {
		return err
	}

	props, err := resolver.Properties(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	key := a.colorer(color.FgBlue)
	out := cmd.OutOrStdout()
	for _, k := range keys {
		if _, err := fmt.Fprintf(out, "%s = %s\n", key.Sprint(k), props[k]); err != nil {
			return err
		}
	}

	d := props.Directive()
	_, err = fmt.Fprintf(out, "directive: style=%s size=%d\n", d.Style, d.Size)
	return err
}
