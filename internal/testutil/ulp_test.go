package testutil

import (
	"testing"

	"github.com/cwbudde/algo-floatconv/extfloat"
)

func TestMaxULPError(t *testing.T) {
	exps := []int{0, 1, 2}
	got := []extfloat.Float{
		{Mant: 1 << 63, Exp: -63},
		{Mant: 0xa000000000000001, Exp: -60},
		{Mant: 0xc800000000000000, Exp: -57},
	}

	worst, err := MaxULPError(10, exps, got)
	if err != nil {
		t.Fatalf("MaxULPError error: %v", err)
	}
	if worst.Cmp(ULPs(1, 1)) != 0 {
		t.Fatalf("MaxULPError = %s, want 1", worst.RatString())
	}
}

func TestMaxULPErrorLengthMismatch(t *testing.T) {
	_, err := MaxULPError(10, []int{0}, nil)
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestMaxULPErrorExact(t *testing.T) {
	worst, err := MaxULPError(10, []int{9}, []extfloat.Float{{Mant: 17179869184000000000, Exp: -34}})
	if err != nil {
		t.Fatalf("MaxULPError error: %v", err)
	}
	if worst.Sign() != 0 {
		t.Fatalf("MaxULPError = %s, want 0 for an exact power", worst.RatString())
	}
}

func TestRequireWithinULPs(t *testing.T) {
	RequireWithinULPs(t, extfloat.Float{Mant: 0xa000000000000000, Exp: -60}, 10, 1, ULPs(0, 1))
	RequireWithinULPs(t, extfloat.Float{Mant: 0xa000000000000001, Exp: -60}, 10, 1, ULPs(1, 1))
}

func TestRequireNormalized(t *testing.T) {
	a := extfloat.NewArray([]uint64{1 << 63, 0xffffffffffffffff}, []int32{-63, 0})
	RequireNormalized(t, "a", a)
}
