package powgen

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-floatconv/extfloat"
)

// corrupt returns a copy of tab with fn applied to fresh copies of its slices.
func corrupt(t *testing.T, tab *Tables, fn func(smallMant, largeMant []uint64, smallExp, largeExp []int32, ints []uint64)) *Tables {
	t.Helper()
	copyArray := func(a extfloat.Array) ([]uint64, []int32) {
		m := make([]uint64, a.Len())
		e := make([]int32, a.Len())
		for i := range m {
			f := a.At(i)
			m[i], e[i] = f.Mant, f.Exp
		}
		return m, e
	}
	sm, se := copyArray(tab.Small)
	lm, le := copyArray(tab.Large)
	ints := append([]uint64(nil), tab.SmallInt...)
	fn(sm, lm, se, le, ints)

	out := *tab
	out.Small = extfloat.NewArray(sm, se)
	out.Large = extfloat.NewArray(lm, le)
	out.SmallInt = ints
	return &out
}

func TestValidateDetectsCorruption(t *testing.T) {
	tab, err := Generate(10)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	tests := []struct {
		name string
		fn   func(sm, lm []uint64, se, le []int32, ints []uint64)
	}{
		{"truncated large entry", func(sm, lm []uint64, se, le []int32, ints []uint64) { lm[0]-- }},
		{"unnormalized small entry", func(sm, lm []uint64, se, le []int32, ints []uint64) { sm[3] >>= 1; se[3]++ }},
		{"wrong large exponent", func(sm, lm []uint64, se, le []int32, ints []uint64) { le[40]++ }},
		{"wrong small integer", func(sm, lm []uint64, se, le []int32, ints []uint64) { ints[5]++ }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := corrupt(t, tab, tt.fn)
			if err := Validate(bad); !errors.Is(err, ErrInvalidTable) {
				t.Fatalf("Validate error = %v, want ErrInvalidTable", err)
			}
		})
	}
}

func TestValidateStructure(t *testing.T) {
	tab, err := Generate(7)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	shortBias := *tab
	shortBias.Bias = tab.Bias + 1
	if err := Validate(&shortBias); !errors.Is(err, ErrInvalidTable) {
		t.Fatalf("shifted bias: error = %v, want ErrInvalidTable", err)
	}

	wrongStep := *tab
	wrongStep.Step = tab.Step - 1
	if err := Validate(&wrongStep); !errors.Is(err, ErrInvalidTable) {
		t.Fatalf("wrong step: error = %v, want ErrInvalidTable", err)
	}

	negBias := *tab
	negBias.Bias = -1
	if err := Validate(&negBias); !errors.Is(err, ErrInvalidTable) {
		t.Fatalf("negative bias: error = %v, want ErrInvalidTable", err)
	}

	binary := *tab
	binary.Base = 8
	if err := Validate(&binary); !errors.Is(err, ErrUnsupportedBase) {
		t.Fatalf("base 8: error = %v, want ErrUnsupportedBase", err)
	}
}

func TestValidateCoverage(t *testing.T) {
	tab, err := Generate(10)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	lm := make([]uint64, tab.Large.Len()-1)
	le := make([]int32, tab.Large.Len()-1)
	for i := range lm {
		f := tab.Large.At(i)
		lm[i], le[i] = f.Mant, f.Exp
	}
	short := *tab
	short.Large = extfloat.NewArray(lm, le)
	if err := Validate(&short); !errors.Is(err, ErrInvalidTable) {
		t.Fatalf("missing top entry: error = %v, want ErrInvalidTable", err)
	}
}
