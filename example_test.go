// Copyright (c) 2026 The symspell-go Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symspell_test

import (
	"fmt"

	"github.com/symspell-go/symspell"
)

func ExampleRuntimeIndex_Insert() {
	cfg, _ := symspell.NewConfig(2)
	idx := symspell.NewRuntimeIndex(cfg)

	idx.Insert("example", 10)
	// Reinserting the same surface updates its frequency to the max of
	// the old and new values rather than creating a second entry.
	idx.Insert("example", 100)

	term, _ := idx.TermAt(0)
	fmt.Printf("frequency for %q is %d\n", term.Surface, term.Frequency)
	// Output:
	// frequency for "example" is 100
}

func ExampleLookup() {
	cfg, _ := symspell.NewConfig(2)
	idx := symspell.NewRuntimeIndex(cfg)
	idx.Insert("example", 1)

	suggestions, _ := symspell.Lookup(idx, "eample", symspell.WithVerbosity(symspell.All))
	fmt.Println(suggestions)
	// Output:
	// [example]
}

func ExampleLookup_configureDistanceFunc() {
	cfg, _ := symspell.NewConfig(2)
	idx := symspell.NewRuntimeIndex(cfg)
	idx.Insert("example", 1)

	// Use plain Levenshtein distance rather than the default
	// Damerau-Levenshtein.
	suggestions, _ := symspell.Lookup(idx, "eample",
		symspell.WithVerbosity(symspell.All),
		symspell.WithDistanceFunc(symspell.LevenshteinDistance))
	fmt.Println(suggestions)
	// Output:
	// [example]
}

func ExampleFindTop() {
	cfg, _ := symspell.NewConfig(2)
	idx := symspell.NewRuntimeIndex(cfg)
	idx.Insert("example", 1)

	suggestion, ok := symspell.FindTop(idx, "eample")
	fmt.Printf("found=%v surface=%s distance=%d\n", ok, suggestion.Surface, suggestion.Distance)
	// Output:
	// found=true surface=example distance=1
}

func ExampleSegment() {
	cfg, _ := symspell.NewConfig(2)
	idx := symspell.NewRuntimeIndex(cfg)

	idx.Insert("the", 100000)
	idx.Insert("quick", 1000)
	idx.Insert("brown", 1000)
	idx.Insert("fox", 1000)

	result, _ := symspell.Segment(idx, "thequickbrownfox")
	fmt.Println(result)
	// Output:
	// the quick brown fox
}
