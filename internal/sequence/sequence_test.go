package sequence

import (
	"errors"
	"testing"
)

func TestGenerate_PrimitiveRoot(t *testing.T) {
	// 2 is a primitive root mod 9, so the orbit has full period 6.
	seq, err := Generate(2, 9, 0)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	want := Sequence{2, 4, 8, 7, 5, 1}
	if len(seq) != len(want) {
		t.Fatalf("length = %d, want %d (%v)", len(seq), len(want), seq)
	}
	for i := range want {
		if seq[i] != want[i] {
			t.Errorf("seq[%d] = %d, want %d", i, seq[i], want[i])
		}
	}
}

func TestGenerate_ZeroModulus(t *testing.T) {
	seq, err := Generate(5, 0, 0)
	if !errors.Is(err, ErrZeroModulus) {
		t.Fatalf("expected ErrZeroModulus, got %v", err)
	}
	if seq != nil {
		t.Errorf("expected nil sequence, got %v", seq)
	}
}

func TestGenerate_Properties(t *testing.T) {
	cases := []struct{ base, modulus uint64 }{
		{2, 9},
		{3, 7},
		{10, 17},
		{2, 1},     // modulus 1: single zero term
		{6, 8},     // base shares factors with modulus, degenerate orbit
		{0, 13},    // zero base collapses immediately
		{7, 65537}, // longer orbit
	}
	for _, tc := range cases {
		seq, err := Generate(tc.base, tc.modulus, 0)
		if err != nil {
			t.Fatalf("Generate(%d, %d): %v", tc.base, tc.modulus, err)
		}
		if len(seq) < 1 {
			t.Fatalf("Generate(%d, %d): empty sequence", tc.base, tc.modulus)
		}
		if len(seq) > DefaultMaxLen {
			t.Fatalf("Generate(%d, %d): exceeded cap (%d)", tc.base, tc.modulus, len(seq))
		}
		seen := make(map[uint64]bool, len(seq))
		for i, v := range seq {
			if v >= tc.modulus {
				t.Errorf("Generate(%d, %d): seq[%d] = %d out of range", tc.base, tc.modulus, i, v)
			}
			if seen[v] {
				t.Errorf("Generate(%d, %d): duplicate value %d", tc.base, tc.modulus, v)
			}
			seen[v] = true
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, _ := Generate(5, 23, 0)
	b, _ := Generate(5, 23, 0)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sequences diverge at %d: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestGenerate_RespectsCap(t *testing.T) {
	seq, err := Generate(7, 65537, 10)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(seq) != 10 {
		t.Errorf("expected cap of 10 terms, got %d", len(seq))
	}
}

func TestClone_Independent(t *testing.T) {
	seq, _ := Generate(2, 9, 0)
	c := seq.Clone()
	c[0] = 999
	if seq[0] == 999 {
		t.Error("Clone shares backing array with original")
	}
}
