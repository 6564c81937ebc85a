// Copyright (c) 2026 The symspell-go Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symspell

import "sync"

// TermId is a dense, monotonically assigned identifier for a dictionary
// entry. It is stable for the lifetime of the index that produced it.
type TermId uint32

// Term is a dictionary entry: a surface form and a frequency used to
// rank suggestions at query time. Frequency is an opaque score; higher
// is preferred, zero is permitted.
type Term struct {
	Surface   string
	Frequency uint64
}

// termTable is a dense, append-only array of Terms plus a reverse
// surface lookup, guarded the way the teacher's wordsMap guards its
// map: one embedded RWMutex, lookup/at/insertOrBump accessors, nothing
// fancier.
type termTable struct {
	sync.RWMutex
	terms     []Term
	bySurface map[string]TermId
}

func newTermTable() *termTable {
	return &termTable{
		bySurface: make(map[string]TermId),
	}
}

// lookup returns the TermId for surface, if it has been inserted.
func (t *termTable) lookup(surface string) (TermId, bool) {
	t.RLock()
	defer t.RUnlock()
	id, ok := t.bySurface[surface]
	return id, ok
}

// at returns the Term stored at id.
func (t *termTable) at(id TermId) (Term, bool) {
	t.RLock()
	defer t.RUnlock()
	if int(id) >= len(t.terms) {
		return Term{}, false
	}
	return t.terms[id], true
}

// insertOrBump appends a new Term and returns (id, true), or — if
// surface already exists — updates its frequency to max(old, new) and
// returns (existingId, false). Per spec Invariant 5, a repeated surface
// never creates a new TermId and never regenerates deletion variants.
func (t *termTable) insertOrBump(surface string, frequency uint64) (TermId, bool) {
	t.Lock()
	defer t.Unlock()

	if id, exists := t.bySurface[surface]; exists {
		if frequency > t.terms[id].Frequency {
			t.terms[id].Frequency = frequency
		}
		return id, false
	}

	id := TermId(len(t.terms))
	t.terms = append(t.terms, Term{Surface: surface, Frequency: frequency})
	t.bySurface[surface] = id
	return id, true
}

func (t *termTable) len() int {
	t.RLock()
	defer t.RUnlock()
	return len(t.terms)
}

// snapshot returns a copy of the term table's backing array. Used when
// freezing a RuntimeIndex into a FrozenIndex.
func (t *termTable) snapshot() []Term {
	t.RLock()
	defer t.RUnlock()
	out := make([]Term, len(t.terms))
	copy(out, t.terms)
	return out
}
