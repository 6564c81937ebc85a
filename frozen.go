// Copyright (c) 2026 The symspell-go Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symspell

// span locates a variant's TermId list within a FrozenIndex's
// contiguous payload buffer: spec.md §6's informative on-disk layout
// ("a static perfect hash from variant -> (offset, length) into a
// contiguous TermId payload buffer"), realized here with a plain Go map
// standing in for the perfect hash — no perfect-hash library exists
// anywhere in the corpus, and the spec explicitly allows "any
// equivalent".
type span struct {
	Offset uint32 `json:"offset"`
	Length uint32 `json:"length"`
}

// FrozenIndex is the immutable, embeddable form of the deletion index:
// built once by Freeze or Load, safe for unlimited concurrent readers,
// and never mutated again (spec.md §5).
type FrozenIndex struct {
	cfg     Config
	terms   []Term
	spans   map[string]span
	payload []TermId
}

// Config returns the configuration this index was built with.
func (f *FrozenIndex) Config() Config { return f.cfg }

// Size returns the number of terms held.
func (f *FrozenIndex) Size() int { return len(f.terms) }

// TermAt returns the Term stored at id.
func (f *FrozenIndex) TermAt(id TermId) (Term, bool) {
	if int(id) >= len(f.terms) {
		return Term{}, false
	}
	return f.terms[id], true
}

// Variant returns the TermIds that generate the given deletion variant.
func (f *FrozenIndex) Variant(v string) []TermId {
	sp, ok := f.spans[v]
	if !ok {
		return nil
	}
	return f.payload[sp.Offset : sp.Offset+sp.Length]
}
