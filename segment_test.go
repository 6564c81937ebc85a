package symspell

import "testing"

func buildSegmentIndex(t *testing.T) *RuntimeIndex {
	t.Helper()
	cfg := mustConfig(t, 2)
	idx := NewRuntimeIndex(cfg)
	for _, w := range []struct {
		surface string
		freq    uint64
	}{
		{"the", 100000},
		{"quick", 1000},
		{"brown", 1000},
		{"fox", 1000},
	} {
		idx.Insert(w.surface, w.freq)
	}
	return idx
}

func TestSegmentSplitsConcatenatedWords(t *testing.T) {
	idx := buildSegmentIndex(t)
	result, err := Segment(idx, "thequickbrownfox")
	if err != nil {
		t.Fatal(err)
	}
	got := result.String()
	want := "the quick brown fox"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSegmentEmptyDictionaryErrors(t *testing.T) {
	cfg := mustConfig(t, 2)
	idx := NewRuntimeIndex(cfg)
	_, err := Segment(idx, "anything")
	if err == nil {
		t.Fatal("expected error for empty dictionary")
	}
}

func TestSegmentEmptyInputDoesNotPanic(t *testing.T) {
	idx := buildSegmentIndex(t)
	result, err := Segment(idx, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Segments) != 0 {
		t.Fatalf("expected no segments for empty input, got %+v", result.Segments)
	}
	if result.String() != "" {
		t.Fatalf("expected empty string, got %q", result.String())
	}
}

func TestSegmentWordsHelper(t *testing.T) {
	idx := buildSegmentIndex(t)
	result, err := Segment(idx, "thefox")
	if err != nil {
		t.Fatal(err)
	}
	words := result.Words()
	if len(words) == 0 {
		t.Fatal("expected at least one segment")
	}
}
