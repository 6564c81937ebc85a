// Copyright (c) 2026 The symspell-go Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

// Command symspell is a thin command-line harness around the
// github.com/symspell-go/symspell package: building an index from a
// dictionary file, looking up suggestions against it, linting a
// dictionary for homoglyph collisions, and segmenting concatenated
// text. It contains no lookup/ranking logic of its own — see
// SPEC_FULL.md §6.6.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "symspell",
		Short: "SymSpell-style approximate string lookup",
		Long:  `Build, query, lint and segment against a symmetric-delete spelling index.`,
	}

	rootCmd.AddCommand(createBuildCmd())
	rootCmd.AddCommand(createLookupCmd())
	rootCmd.AddCommand(createLintCmd())
	rootCmd.AddCommand(createSegmentCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
