package testutil

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/cwbudde/algo-floatconv/extfloat"
	"github.com/cwbudde/algo-floatconv/internal/powgen"
)

// ULPs returns n/scale units in the last place as a rational bound.
func ULPs(n, scale int64) *big.Rat {
	return big.NewRat(n, scale)
}

// RequireWithinULPs fails t if got differs from the exact value of base^e by
// more than bound units in the last place of got.
func RequireWithinULPs(t *testing.T, got extfloat.Float, base, e int, bound *big.Rat) {
	t.Helper()
	if !got.IsNormalized() {
		t.Fatalf("%d^%d: %v is not normalized", base, e, got)
	}
	if err := powgen.ULPError(got, base, e); err.Cmp(bound) > 0 {
		t.Fatalf("%d^%d: %v is %s ULP from the exact value, bound %s ULP",
			base, e, got, err.FloatString(4), bound.FloatString(4))
	}
}

// RequireNormalized fails t if any entry of a has a clear top mantissa bit.
func RequireNormalized(t *testing.T, name string, a extfloat.Array) {
	t.Helper()
	for i := 0; i < a.Len(); i++ {
		if f := a.At(i); !f.IsNormalized() {
			t.Fatalf("%s[%d] = %v is not normalized", name, i, f)
		}
	}
}

// MaxULPError returns the largest ULP error of got[i] against base^exps[i].
// Returns an error if the slices differ in length.
func MaxULPError(base int, exps []int, got []extfloat.Float) (*big.Rat, error) {
	if len(exps) != len(got) {
		return nil, fmt.Errorf("length mismatch: %d vs %d", len(exps), len(got))
	}
	worst := new(big.Rat)
	for i, f := range got {
		if err := powgen.ULPError(f, base, exps[i]); err.Cmp(worst) > 0 {
			worst = err
		}
	}
	return worst, nil
}
