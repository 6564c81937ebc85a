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

// createSegmentCmd creates the segment subcommand: split concatenated
// text into the most probable sequence of dictionary words.
func createSegmentCmd() *cobra.Command {
	var indexPath string

	cmd := &cobra.Command{
		Use:   "segment [text]",
		Short: "Segment concatenated text into dictionary words",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			idx, err := symspell.Load(indexPath)
			if err != nil {
				log.Fatalf("failed to load index: %v", err)
			}

			result, err := symspell.Segment(idx, args[0])
			if err != nil {
				log.Fatalf("segment failed: %v", err)
			}

			fmt.Println(result)
		},
	}

	cmd.Flags().StringVar(&indexPath, "index", "", "path to a frozen index file")
	cmd.MarkFlagRequired("index")

	return cmd
}
