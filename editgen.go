// Copyright (c) 2026 The symspell-go Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symspell

// variants returns the set of distinct strings obtainable by deleting at
// most maxDistance runes from s, including s itself (zero deletions).
//
// The walk proceeds level by level: level 0 is {s}, level d+1 is every
// string reachable by deleting one more rune from a string in level d.
// A dedup set keyed by string is shared across all levels so a variant
// reached by two different deletion orders is only counted once. The
// walk stops at depth maxDistance, or earlier if a level turns up
// nothing new to delete from.
func variants(s string, maxDistance int) map[string]struct{} {
	out := make(map[string]struct{})
	out[s] = struct{}{}

	if maxDistance <= 0 {
		return out
	}

	frontier := []string{s}
	for depth := 0; depth < maxDistance; depth++ {
		var next []string
		for _, cur := range frontier {
			runes := []rune(cur)
			if len(runes) == 0 {
				continue
			}
			for i := range runes {
				del := deleteRune(runes, i)
				if _, seen := out[del]; seen {
					continue
				}
				out[del] = struct{}{}
				next = append(next, del)
			}
		}
		if len(next) == 0 {
			break
		}
		frontier = next
	}

	return out
}

// deleteRune returns the string formed by removing the rune at index i.
func deleteRune(runes []rune, i int) string {
	out := make([]rune, 0, len(runes)-1)
	out = append(out, runes[:i]...)
	out = append(out, runes[i+1:]...)
	return string(out)
}

// prefixOf returns the first n runes of s, or s itself if it has n runes
// or fewer.
func prefixOf(s string, n uint32) string {
	runes := []rune(s)
	if uint32(len(runes)) <= n {
		return s
	}
	return string(runes[:n])
}

func runeLen(s string) uint32 {
	return uint32(len([]rune(s)))
}
