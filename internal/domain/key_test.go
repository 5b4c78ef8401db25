package domain

import "testing"

func TestKeyCanonicalForm(t *testing.T) {
	if got := NewKey("A").String(); got != "A" {
		t.Fatalf("string key = %q, want %q", got, "A")
	}

	// Integer and string keys with the same digits must canonicalize
	// identically, otherwise the cross-store join silently breaks.
	if NewIntKey(42).String() != NewKey("42").String() {
		t.Fatalf("NewIntKey(42) and NewKey(%q) disagree on canonical form", "42")
	}
}

func TestKeyEquality(t *testing.T) {
	if NewKey("A") != NewKey("A") {
		t.Errorf("equal keys compare unequal")
	}
	if NewKey("A") == NewKey("B") {
		t.Errorf("distinct keys compare equal")
	}
}

func TestKeyZeroValue(t *testing.T) {
	var k Key
	if !k.IsZero() {
		t.Errorf("zero-value key should be zero")
	}
	if NewKey("A").IsZero() {
		t.Errorf("populated key reported zero")
	}
}
