// Copyright (c) 2026 The symspell-go Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symspell

import (
	"sort"
	"strings"
)

// Verbosity controls how many, and which, ranked suggestions Lookup
// returns (spec.md §4.3).
type Verbosity int

const (
	// Top returns at most one suggestion: the one that would sort
	// first under the ranking order (distance asc, frequency desc,
	// surface asc).
	Top Verbosity = iota

	// Closest returns every suggestion tied for the minimum observed
	// distance, ordered by frequency desc then surface asc.
	Closest

	// All returns every suggestion with distance <= max edit distance,
	// in full ranking order.
	All
)

// Suggestion is a single ranked lookup result: a dictionary surface,
// its edit distance from the query, and its frequency.
type Suggestion struct {
	Surface   string
	Distance  int
	Frequency uint64
}

// SuggestionList is a ranked slice of Suggestion.
type SuggestionList []Suggestion

// Words returns the surfaces of every suggestion, in order.
func (s SuggestionList) Words() []string {
	out := make([]string, len(s))
	for i, sug := range s {
		out[i] = sug.Surface
	}
	return out
}

func (s SuggestionList) String() string {
	return "[" + strings.Join(s.Words(), ", ") + "]"
}

type lookupParams struct {
	distanceFunc    DistanceFunc
	maxEditDistance uint32
	maxEditSet      bool
	prefixLength    uint32
	prefixSet       bool
	verbosity       Verbosity
}

// LookupOption configures a single call to Lookup.
type LookupOption func(*lookupParams)

// MaxEditDistance caps the edit distance Lookup will consider. It must
// not exceed the index's build-time max_distance; Lookup reports a
// *ConfigError and returns no results if it does (spec.md §7.1).
func MaxEditDistance(d uint32) LookupOption {
	return func(lp *lookupParams) {
		lp.maxEditDistance = d
		lp.maxEditSet = true
	}
}

// WithVerbosity selects Top, Closest, or All result semantics.
func WithVerbosity(v Verbosity) LookupOption {
	return func(lp *lookupParams) { lp.verbosity = v }
}

// WithDistanceFunc overrides the distance function used for
// verification, e.g. to swap in LevenshteinDistance.
func WithDistanceFunc(f DistanceFunc) LookupOption {
	return func(lp *lookupParams) { lp.distanceFunc = f }
}

// WithPrefix overrides the prefix length used for candidate generation
// for this call only.
func WithPrefix(n uint32) LookupOption {
	return func(lp *lookupParams) {
		lp.prefixLength = n
		lp.prefixSet = true
	}
}

// Lookup returns ranked suggestions for query against idx, which may be
// a *RuntimeIndex or a *FrozenIndex. See spec.md §4.3 for the full
// algorithm: candidate generation via symmetric delete, distance
// verification against the host distance function, ranking, and
// verbosity-controlled result shaping.
func Lookup(idx backing, query string, opts ...LookupOption) (SuggestionList, error) {
	cfg := idx.Config()

	lp := &lookupParams{
		distanceFunc:    defaultDistanceFunc(),
		maxEditDistance: cfg.MaxDistance,
		prefixLength:    0,
		verbosity:       Top,
	}
	for _, opt := range opts {
		opt(lp)
	}

	if lp.maxEditSet && lp.maxEditDistance > cfg.MaxDistance {
		return nil, configErrorf("max edit distance %d exceeds index max_distance %d", lp.maxEditDistance, cfg.MaxDistance)
	}

	if cfg.Lowercase {
		query = strings.ToLower(query)
	}

	prefixLen := cfg.effectivePrefix(runeLen(query))
	if lp.prefixSet {
		prefixLen = lp.prefixLength
	}
	q := prefixOf(query, prefixLen)
	queryLen := runeLen(query)
	maxDist := int(lp.maxEditDistance)

	candidateVariants := variants(q, maxDist)
	seen := make(map[TermId]struct{})
	var candidates []TermId
	for v := range candidateVariants {
		for _, id := range idx.Variant(v) {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			candidates = append(candidates, id)
		}
	}

	results := make(SuggestionList, 0, len(candidates))
	for _, id := range candidates {
		t, ok := idx.TermAt(id)
		if !ok {
			continue
		}

		wLen := runeLen(t.Surface)
		if absInt(int(queryLen)-int(wLen)) > maxDist {
			continue
		}

		d := lp.distanceFunc(query, t.Surface, maxDist)
		if d < 0 || d > maxDist {
			continue
		}

		results = append(results, Suggestion{
			Surface:   t.Surface,
			Distance:  d,
			Frequency: t.Frequency,
		})
	}

	rank(results)

	switch lp.verbosity {
	case Top:
		if len(results) == 0 {
			return results, nil
		}
		return results[:1], nil
	case Closest:
		return filterClosest(results), nil
	default: // All
		return results, nil
	}
}

// rank orders results by (distance ascending, frequency descending,
// surface ascending) — spec.md §4.3's ranking order, the surface
// tiebreak making output deterministic.
func rank(results SuggestionList) {
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		if a.Frequency != b.Frequency {
			return a.Frequency > b.Frequency
		}
		return a.Surface < b.Surface
	})
}

func filterClosest(results SuggestionList) SuggestionList {
	if len(results) == 0 {
		return results
	}
	min := results[0].Distance
	out := results[:0:0]
	for _, r := range results {
		if r.Distance == min {
			out = append(out, r)
		}
	}
	return out
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// FindTop is the convenience operation of spec.md §4.3: equivalent to
// Lookup(idx, query, MaxEditDistance(k), WithVerbosity(Top)) where k is
// the index's build-time max_distance, returning the single element or
// false if there were no matches.
func FindTop(idx backing, query string) (Suggestion, bool) {
	results, err := Lookup(idx, query, MaxEditDistance(idx.Config().MaxDistance), WithVerbosity(Top))
	if err != nil || len(results) == 0 {
		return Suggestion{}, false
	}
	return results[0], true
}
