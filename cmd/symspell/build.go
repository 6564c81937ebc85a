// Copyright (c) 2026 The symspell-go Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/symspell-go/symspell"
)

// createBuildCmd creates the build subcommand: read a dictionary file,
// build a RuntimeIndex, freeze it, and persist it to disk.
func createBuildCmd() *cobra.Command {
	var dictPath string
	var outPath string
	var maxDistance uint32
	var lowercase bool
	var prefixLength uint32
	var hasPrefixLength bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a frozen index from a dictionary file",
		Run: func(cmd *cobra.Command, args []string) {
			var opts []symspell.ConfigOption
			if lowercase {
				opts = append(opts, symspell.WithLowercase(true))
			}
			if hasPrefixLength {
				opts = append(opts, symspell.WithPrefixLength(prefixLength))
			}

			cfg, err := symspell.NewConfig(maxDistance, opts...)
			if err != nil {
				log.Fatalf("invalid config: %v", err)
			}

			idx := symspell.NewRuntimeIndex(cfg)

			inserted, err := symspell.LoadDictionary(idx, dictPath)
			if err != nil {
				log.Printf("warning: dictionary had malformed lines: %v", err)
			}
			log.Printf("inserted %d terms from %s", inserted, dictPath)

			frozen := idx.Freeze()
			if err := symspell.Save(frozen, outPath); err != nil {
				log.Fatalf("failed to save index: %v", err)
			}
			log.Printf("wrote frozen index to %s", outPath)
		},
	}

	cmd.Flags().StringVar(&dictPath, "dict", "", "path to the dictionary file")
	cmd.Flags().StringVar(&outPath, "out", "index.symspell", "path to write the frozen index to")
	cmd.Flags().Uint32Var(&maxDistance, "max-distance", 2, "maximum edit distance to index")
	cmd.Flags().BoolVar(&lowercase, "lowercase", false, "fold terms and queries to lowercase")
	cmd.Flags().Uint32Var(&prefixLength, "prefix-length", 7, "prefix length optimisation")
	cmd.Flags().BoolVar(&hasPrefixLength, "use-prefix-length", false, "enable the prefix length optimisation")
	cmd.MarkFlagRequired("dict")

	return cmd
}
