// Copyright (c) 2026 The symspell-go Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symspell

import (
	"sort"
	"strings"
	"sync"
)

// backing is the capability set shared by the mutable runtime index and
// the immutable frozen index, per spec.md §9: the lookup engine (and
// Segment, built on it) is parametric over this interface and never
// knows which concrete form it's querying.
type backing interface {
	// Variant returns the (already sorted, already deduplicated) TermIds
	// that generate the given deletion variant, or nil if none do.
	Variant(v string) []TermId

	// TermAt returns the Term stored at id.
	TermAt(id TermId) (Term, bool)

	// Size returns the number of terms held.
	Size() int

	// Config returns the index configuration this backing was built
	// with.
	Config() Config
}

// variantMap is the mutable deletion index: variant string -> sorted
// TermId list. Grounded on the teacher's deletesMap (a RWMutex-guarded
// map[uint32][]string), generalized to store TermIds instead of raw
// surfaces, per spec.md §3's "mapping DeletionVariant -> TermIds".
type variantMap struct {
	sync.RWMutex
	data map[string][]TermId
}

func newVariantMap() *variantMap {
	return &variantMap{data: make(map[string][]TermId)}
}

func (vm *variantMap) load(key string) ([]TermId, bool) {
	vm.RLock()
	defer vm.RUnlock()
	v, ok := vm.data[key]
	return v, ok
}

// add appends id to the list at key, preserving ascending order. IDs
// are assigned monotonically by the term table and a single term is
// only ever inserted once, so a plain append keeps the list sorted
// (spec.md §4.2 step 5).
func (vm *variantMap) add(key string, id TermId) {
	vm.Lock()
	defer vm.Unlock()
	vm.data[key] = append(vm.data[key], id)
}

// RuntimeIndex is the mutable, hash-map-backed deletion index: build
// once (or incrementally), query any number of times. It follows a
// single-writer-or-many-readers discipline — see spec.md §5 — that this
// type does not itself enforce beyond the per-field RWMutex protection
// its two maps already give; cross-field consistency during Insert is
// the caller's responsibility to serialize.
type RuntimeIndex struct {
	cfg      Config
	terms    *termTable
	variants *variantMap
}

// NewRuntimeIndex creates an empty, queryable index for cfg.
func NewRuntimeIndex(cfg Config) *RuntimeIndex {
	return &RuntimeIndex{
		cfg:      cfg,
		terms:    newTermTable(),
		variants: newVariantMap(),
	}
}

// Config returns the configuration this index was built with.
func (idx *RuntimeIndex) Config() Config { return idx.cfg }

// Size returns the number of terms held.
func (idx *RuntimeIndex) Size() int { return idx.terms.len() }

// TermAt returns the Term stored at id.
func (idx *RuntimeIndex) TermAt(id TermId) (Term, bool) {
	return idx.terms.at(id)
}

// Variant returns the TermIds that generate the given deletion variant.
func (idx *RuntimeIndex) Variant(v string) []TermId {
	ids, _ := idx.variants.load(v)
	return ids
}

// Insert adds surface with frequency to the index, returning its
// TermId. If surface already exists, its frequency is updated to
// max(old, new) and its deletion variants are not regenerated — spec.md
// §4.2 and Invariant 5.
func (idx *RuntimeIndex) Insert(surface string, frequency uint64) TermId {
	if idx.cfg.Lowercase {
		surface = strings.ToLower(surface)
	}

	id, isNew := idx.terms.insertOrBump(surface, frequency)
	if !isNew {
		return id
	}

	// variants() always includes the zero-deletion case (the prefix
	// itself), satisfying spec.md §4.2's "rationale for {p} union"
	// without a separate explicit insertion.
	prefix := prefixOf(surface, idx.cfg.effectivePrefix(runeLen(surface)))
	for v := range variants(prefix, int(idx.cfg.MaxDistance)) {
		idx.variants.add(v, id)
	}

	return id
}

// Freeze builds an immutable FrozenIndex from the current contents of
// idx. The runtime index is left untouched and may continue to be used.
func (idx *RuntimeIndex) Freeze() *FrozenIndex {
	terms := idx.terms.snapshot()

	idx.variants.RLock()
	defer idx.variants.RUnlock()

	payload := make([]TermId, 0, len(idx.variants.data)*2)
	spans := make(map[string]span, len(idx.variants.data))

	// Sort keys for deterministic payload layout across Freeze calls.
	keys := make([]string, 0, len(idx.variants.data))
	for k := range idx.variants.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		ids := append([]TermId(nil), idx.variants.data[k]...)
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		ids = dedupSortedTermIds(ids)

		offset := uint32(len(payload))
		payload = append(payload, ids...)
		spans[k] = span{Offset: offset, Length: uint32(len(ids))}
	}

	return &FrozenIndex{
		cfg:     idx.cfg,
		terms:   terms,
		spans:   spans,
		payload: payload,
	}
}

func dedupSortedTermIds(ids []TermId) []TermId {
	if len(ids) < 2 {
		return ids
	}
	out := ids[:1]
	for _, id := range ids[1:] {
		if id != out[len(out)-1] {
			out = append(out, id)
		}
	}
	return out
}
