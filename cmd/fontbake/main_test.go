package main

import (
	"testing"
)

func TestParseRange(t *testing.T) {
	rng, err := parseRange("65", "67")
	if err != nil {
		t.Fatal(err)
	}
	if rng.From != 65 || rng.To != 67 {
		t.Errorf("expected range 65..67, have %d..%d", rng.From, rng.To)
	}
}

func TestParseRangeClampsLargeCodes(t *testing.T) {
	// codes above 255 coerce to 0
	rng, err := parseRange("300", "5")
	if err != nil {
		t.Fatal(err)
	}
	if rng.From != 0 || rng.To != 5 {
		t.Errorf("expected range 0..5, have %d..%d", rng.From, rng.To)
	}
}

func TestParseRangeRejectsInvertedRange(t *testing.T) {
	if _, err := parseRange("10", "5"); err == nil {
		t.Errorf("expected range 10..5 to be rejected")
	}
}

func TestParseRangeRejectsNonNumbers(t *testing.T) {
	if _, err := parseRange("abc", "5"); err == nil {
		t.Errorf("expected non-numeric character code to be rejected")
	}
	if _, err := parseRange("5", "-1"); err == nil {
		t.Errorf("expected negative character code to be rejected")
	}
}
