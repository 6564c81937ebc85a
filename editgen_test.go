package symspell

import "testing"

func TestVariantsZeroDistance(t *testing.T) {
	v := variants("hello", 0)
	if _, ok := v["hello"]; !ok || len(v) != 1 {
		t.Fatalf("expected {hello}, got %v", v)
	}
}

func TestVariantsEmptyInput(t *testing.T) {
	v := variants("", 2)
	if _, ok := v[""]; !ok || len(v) != 1 {
		t.Fatalf("expected {\"\"}, got %v", v)
	}
}

func TestVariantsOneDeletion(t *testing.T) {
	v := variants("ab", 1)
	want := map[string]struct{}{"ab": {}, "a": {}, "b": {}}
	if len(v) != len(want) {
		t.Fatalf("got %v, want %v", v, want)
	}
	for k := range want {
		if _, ok := v[k]; !ok {
			t.Fatalf("missing variant %q in %v", k, v)
		}
	}
}

func TestVariantsShorterThanK(t *testing.T) {
	// A 2-char term under k=2 must generate "" (every char deleted).
	v := variants("ab", 2)
	if _, ok := v[""]; !ok {
		t.Fatalf("expected \"\" to be reachable, got %v", v)
	}
}

func TestVariantsDedup(t *testing.T) {
	// "aa" deleting either position yields "a" just once.
	v := variants("aa", 1)
	if len(v) != 2 {
		t.Fatalf("expected {aa, a}, got %v", v)
	}
}
