// Copyright (c) 2026 The symspell-go Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symspell

import "github.com/eskriett/strmet"

// DistanceFunc computes the edit distance between a and b, capped at
// maxDistance: implementations return -1 once the true distance is
// known to exceed maxDistance, rather than completing the full
// computation. This is the host distance function contract of spec.md
// §6 — identity, symmetry, and "never under-reports the true
// Damerau-Levenshtein/Levenshtein distance".
type DistanceFunc func(a, b string, maxDistance int) int

// defaultDistanceFunc is Damerau-Levenshtein optimal string alignment,
// the teacher's own default and spec.md §6's default.
func defaultDistanceFunc() DistanceFunc {
	return strmet.DamerauLevenshtein
}

// LevenshteinDistance is an alternate DistanceFunc using plain
// Levenshtein (no transpositions), wired straight from the same
// strmet dependency the default uses.
func LevenshteinDistance(a, b string, maxDistance int) int {
	return strmet.Levenshtein(a, b, maxDistance)
}
