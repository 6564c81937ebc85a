package symspell

import "testing"

func mustConfig(t *testing.T, maxDistance uint32, opts ...ConfigOption) Config {
	t.Helper()
	cfg, err := NewConfig(maxDistance, opts...)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	return cfg
}

func TestInsertAssignsDenseTermIds(t *testing.T) {
	cfg := mustConfig(t, 2)
	idx := NewRuntimeIndex(cfg)

	id1 := idx.Insert("hello", 3)
	id2 := idx.Insert("world", 5)

	if id1 != 0 || id2 != 1 {
		t.Fatalf("expected ids 0,1 got %d,%d", id1, id2)
	}
	if idx.Size() != 2 {
		t.Fatalf("expected size 2, got %d", idx.Size())
	}
}

func TestInsertDuplicateTakesMaxFrequency(t *testing.T) {
	cfg := mustConfig(t, 2)
	idx := NewRuntimeIndex(cfg)

	id1 := idx.Insert("hello", 3)
	id2 := idx.Insert("hello", 10)
	id3 := idx.Insert("hello", 1)

	if id1 != id2 || id2 != id3 {
		t.Fatalf("expected stable TermId across reinsertion, got %d %d %d", id1, id2, id3)
	}
	term, ok := idx.TermAt(id1)
	if !ok || term.Frequency != 10 {
		t.Fatalf("expected frequency 10 (max), got %+v", term)
	}
	if idx.Size() != 1 {
		t.Fatalf("expected exactly one term, got %d", idx.Size())
	}
}

func TestInsertExactMatchVariant(t *testing.T) {
	// Every inserted surface must be retrievable as its own variant —
	// the spec.md §4.2 "rationale for {p} union".
	cfg := mustConfig(t, 2)
	idx := NewRuntimeIndex(cfg)
	id := idx.Insert("ab", 1)

	ids := idx.Variant("ab")
	if len(ids) != 1 || ids[0] != id {
		t.Fatalf("expected [%d] at variant \"ab\", got %v", id, ids)
	}
}

func TestFreezePreservesLookups(t *testing.T) {
	cfg := mustConfig(t, 2)
	idx := NewRuntimeIndex(cfg)
	idx.Insert("hello", 3)
	idx.Insert("help", 2)

	frozen := idx.Freeze()
	if frozen.Size() != 2 {
		t.Fatalf("expected 2 terms in frozen index, got %d", frozen.Size())
	}

	runtimeResults, err := Lookup(idx, "helo", MaxEditDistance(2), WithVerbosity(All))
	if err != nil {
		t.Fatal(err)
	}
	frozenResults, err := Lookup(frozen, "helo", MaxEditDistance(2), WithVerbosity(All))
	if err != nil {
		t.Fatal(err)
	}

	if len(runtimeResults) != len(frozenResults) {
		t.Fatalf("runtime vs frozen result count mismatch: %v vs %v", runtimeResults, frozenResults)
	}
	for i := range runtimeResults {
		if runtimeResults[i] != frozenResults[i] {
			t.Fatalf("mismatch at %d: %+v vs %+v", i, runtimeResults[i], frozenResults[i])
		}
	}
}

func TestConfigRejectsShortPrefix(t *testing.T) {
	_, err := NewConfig(3, WithPrefixLength(2))
	if err == nil {
		t.Fatal("expected error for prefix_length < max_distance")
	}
	if _, ok := err.(*ConfigError); !ok {
		t.Fatalf("expected *ConfigError, got %T", err)
	}
}
