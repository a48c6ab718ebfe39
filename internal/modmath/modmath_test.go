package modmath

import (
	"math"
	"math/big"
	"testing"
)

func TestMulMod_AgainstBigInt(t *testing.T) {
	cases := []struct{ a, b, m uint64 }{
		{0, 0, 7},
		{3, 4, 5},
		{math.MaxUint64, math.MaxUint64, math.MaxUint64},
		{math.MaxUint64, math.MaxUint64, math.MaxUint64 - 1},
		{math.MaxUint64 - 1, math.MaxUint64 - 2, 1_000_000_007},
		{1 << 63, 1 << 63, (1 << 61) - 1},
		{12345678901234567, 98765432109876543, 4294967291},
	}
	for _, tc := range cases {
		want := new(big.Int).Mul(new(big.Int).SetUint64(tc.a), new(big.Int).SetUint64(tc.b))
		want.Mod(want, new(big.Int).SetUint64(tc.m))
		if got := MulMod(tc.a, tc.b, tc.m); got != want.Uint64() {
			t.Errorf("MulMod(%d, %d, %d) = %d, want %d", tc.a, tc.b, tc.m, got, want.Uint64())
		}
	}
}

func TestMulMod_ZeroModulus(t *testing.T) {
	if got := MulMod(5, 7, 0); got != 0 {
		t.Errorf("MulMod with m=0 should return sentinel 0, got %d", got)
	}
}

func TestModExp_AgainstRepeatedMulMod(t *testing.T) {
	mods := []uint64{2, 9, 97, 1_000_000_007}
	for _, m := range mods {
		for b := uint64(0); b < m && b < 50; b++ {
			ref := uint64(1)
			for e := uint64(0); e <= 200; e++ {
				if got := ModExp(b, e, m); got != ref {
					t.Fatalf("ModExp(%d, %d, %d) = %d, want %d", b, e, m, got, ref)
				}
				ref = MulMod(ref, b, m)
			}
		}
	}
}

func TestModExp_EdgeModuli(t *testing.T) {
	tests := []struct {
		name             string
		base, exp, m, want uint64
	}{
		{"zero modulus", 2, 10, 0, 0},
		{"unit modulus", 2, 10, 1, 0},
		{"unit modulus zero exp", 7, 0, 1, 0},
		{"zero exponent", 12345, 0, 97, 1},
		{"zero base", 0, 5, 97, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ModExp(tt.base, tt.exp, tt.m); got != tt.want {
				t.Errorf("ModExp(%d, %d, %d) = %d, want %d", tt.base, tt.exp, tt.m, got, tt.want)
			}
		})
	}
}

func TestModExp_AgainstBigInt(t *testing.T) {
	cases := []struct{ b, e, m uint64 }{
		{2, 64, math.MaxUint64},
		{math.MaxUint64 - 1, 3, math.MaxUint64 - 58},
		{6364136223846793005, 10000, (1 << 61) - 1},
		{3, 9999, 4294967291},
	}
	for _, tc := range cases {
		want := new(big.Int).Exp(
			new(big.Int).SetUint64(tc.b),
			new(big.Int).SetUint64(tc.e),
			new(big.Int).SetUint64(tc.m),
		)
		if got := ModExp(tc.b, tc.e, tc.m); got != want.Uint64() {
			t.Errorf("ModExp(%d, %d, %d) = %d, want %d", tc.b, tc.e, tc.m, got, want.Uint64())
		}
	}
}
