// Copyright (c) 2026 The symspell-go Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/symspell-go/symspell"
)

// createLintCmd creates the lint subcommand: read a dictionary file and
// report any homoglyph collisions found by symspell.LintDictionary.
func createLintCmd() *cobra.Command {
	var dictPath string

	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Report Unicode confusable collisions in a dictionary file",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := symspell.NewConfig(0)
			if err != nil {
				log.Fatalf("invalid config: %v", err)
			}
			idx := symspell.NewRuntimeIndex(cfg)

			if _, err := symspell.LoadDictionary(idx, dictPath); err != nil {
				log.Printf("warning: dictionary had malformed lines: %v", err)
			}

			frozen := idx.Freeze()
			terms := make([]symspell.Term, frozen.Size())
			for i := range terms {
				t, _ := frozen.TermAt(symspell.TermId(i))
				terms[i] = t
			}

			warnings := symspell.LintDictionary(terms)
			if len(warnings) == 0 {
				fmt.Println("no confusable collisions found")
				return
			}
			for _, w := range warnings {
				fmt.Printf("%s: %v\n", w.Reason, w.Surfaces)
			}
		},
	}

	cmd.Flags().StringVar(&dictPath, "dict", "", "path to the dictionary file")
	cmd.MarkFlagRequired("dict")

	return cmd
}
