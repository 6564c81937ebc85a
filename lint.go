// Copyright (c) 2026 The symspell-go Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symspell

import "github.com/eskriett/confusables"

// Warning flags a dictionary hygiene issue found by LintDictionary.
type Warning struct {
	Surfaces []string
	Reason   string
}

// LintDictionary is a build-time diagnostic, not a lookup-time
// normalization policy: it computes each surface's Unicode confusable
// skeleton with github.com/eskriett/confusables and reports groups of
// distinct surfaces that collapse to the same skeleton — homoglyph
// collisions a dictionary author would want to know about (e.g. Latin
// "paypal" vs a Cyrillic look-alike) before they silently produce
// duplicate near-matches at query time.
//
// This never changes Config.Lowercase folding or distance verification;
// see SPEC_FULL.md §6.4 for why it doesn't reopen the core's Unicode
// normalization Non-goal.
func LintDictionary(terms []Term) []Warning {
	bySkeleton := make(map[string][]string)
	for _, t := range terms {
		skel := confusables.Skeleton(t.Surface)
		bySkeleton[skel] = append(bySkeleton[skel], t.Surface)
	}

	var warnings []Warning
	for _, surfaces := range bySkeleton {
		if len(surfaces) < 2 {
			continue
		}
		warnings = append(warnings, Warning{
			Surfaces: surfaces,
			Reason:   "surfaces share a Unicode confusable skeleton",
		})
	}
	return warnings
}
