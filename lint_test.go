package symspell

import "testing"

func TestLintDictionaryFindsConfusableCollision(t *testing.T) {
	terms := []Term{
		{Surface: "paypal", Frequency: 10},
		// Cyrillic "а" (U+0430) substituted for Latin "a".
		{Surface: "pаypal", Frequency: 1},
		{Surface: "banana", Frequency: 5},
	}

	warnings := LintDictionary(terms)
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d: %+v", len(warnings), warnings)
	}
	if len(warnings[0].Surfaces) != 2 {
		t.Fatalf("expected 2 colliding surfaces, got %+v", warnings[0].Surfaces)
	}
}

func TestLintDictionaryNoCollisions(t *testing.T) {
	terms := []Term{
		{Surface: "hello", Frequency: 1},
		{Surface: "world", Frequency: 1},
	}
	warnings := LintDictionary(terms)
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %+v", warnings)
	}
}

func TestLintDictionaryEmpty(t *testing.T) {
	if warnings := LintDictionary(nil); len(warnings) != 0 {
		t.Fatalf("expected no warnings for empty dictionary, got %+v", warnings)
	}
}
