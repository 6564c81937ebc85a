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

// createLookupCmd creates the lookup subcommand: load a frozen index
// and print ranked suggestions for a query word.
func createLookupCmd() *cobra.Command {
	var indexPath string
	var maxDistance uint32
	var hasMaxDistance bool
	var verbosity string

	cmd := &cobra.Command{
		Use:   "lookup [word]",
		Short: "Look up suggestions for a word against a frozen index",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			idx, err := symspell.Load(indexPath)
			if err != nil {
				log.Fatalf("failed to load index: %v", err)
			}

			var opts []symspell.LookupOption
			if hasMaxDistance {
				opts = append(opts, symspell.MaxEditDistance(maxDistance))
			}

			switch verbosity {
			case "top":
				opts = append(opts, symspell.WithVerbosity(symspell.Top))
			case "closest":
				opts = append(opts, symspell.WithVerbosity(symspell.Closest))
			case "all":
				opts = append(opts, symspell.WithVerbosity(symspell.All))
			default:
				log.Fatalf("unknown verbosity %q, expected top|closest|all", verbosity)
			}

			results, err := symspell.Lookup(idx, args[0], opts...)
			if err != nil {
				log.Fatalf("lookup failed: %v", err)
			}

			if len(results) == 0 {
				fmt.Println("no suggestions")
				return
			}
			for _, r := range results {
				fmt.Printf("%s\tdistance=%d\tfrequency=%d\n", r.Surface, r.Distance, r.Frequency)
			}
		},
	}

	cmd.Flags().StringVar(&indexPath, "index", "", "path to a frozen index file")
	cmd.Flags().Uint32Var(&maxDistance, "max-distance", 0, "maximum edit distance for this lookup")
	cmd.Flags().BoolVar(&hasMaxDistance, "use-max-distance", false, "override the index's default max edit distance")
	cmd.Flags().StringVar(&verbosity, "verbosity", "top", "top|closest|all")
	cmd.MarkFlagRequired("index")

	return cmd
}
