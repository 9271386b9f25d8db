package powgen

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/cwbudde/algo-floatconv/extfloat"
)

func TestStep(t *testing.T) {
	tests := []struct {
		base, want int
	}{
		{3, 20},
		{5, 14},
		{7, 11},
		{10, 10},
		{11, 9},
		{13, 8},
		{18, 7},
		{27, 6},
		{36, 6},
		{1, 0},
	}
	for _, tt := range tests {
		if got := Step(tt.base); got != tt.want {
			t.Fatalf("Step(%d) = %d, want %d", tt.base, got, tt.want)
		}
	}
}

func TestSupported(t *testing.T) {
	for _, b := range DefaultBases {
		if !Supported(b) {
			t.Fatalf("Supported(%d) = false", b)
		}
	}
	for _, b := range []int{-1, 0, 1, 2, 4, 8, 16, 32, 64} {
		if Supported(b) {
			t.Fatalf("Supported(%d) = true", b)
		}
	}
}

func TestDoubleRangeBase10(t *testing.T) {
	minExp, maxExp := DoubleRange(10)
	if minExp != -343 || maxExp != 308 {
		t.Fatalf("DoubleRange(10) = (%d, %d), want (-343, 308)", minExp, maxExp)
	}
	lo, hi := Range(10, 10)
	if lo != -350 || hi != 300 {
		t.Fatalf("Range(10, 10) = (%d, %d), want (-350, 300)", lo, hi)
	}
}

func TestDoubleRangeAllBases(t *testing.T) {
	// The float64 bounds are checked against 2^-1074 and MaxFloat64 by
	// exact comparison below, independent of DoubleRange's own loop.
	tests := []struct {
		base, minExp, maxExp, lo, hi int
	}{
		{3, -718, 646, -720, 640},
		{5, -491, 441, -504, 434},
		{6, -441, 396, -444, 396},
		{7, -406, 364, -407, 363},
		{9, -359, 323, -360, 320},
		{10, -343, 308, -350, 300},
		{11, -329, 296, -333, 288},
		{12, -318, 285, -324, 279},
		{13, -308, 276, -312, 272},
		{14, -299, 268, -304, 264},
		{15, -292, 262, -296, 256},
		{17, -279, 250, -280, 248},
		{18, -273, 245, -273, 245},
		{19, -268, 241, -273, 238},
		{20, -264, 236, -266, 231},
		{21, -260, 233, -266, 231},
		{22, -256, 229, -259, 224},
		{23, -252, 226, -252, 224},
		{24, -249, 223, -252, 217},
		{25, -246, 220, -252, 217},
		{26, -243, 217, -245, 217},
		{27, -240, 215, -240, 210},
		{28, -237, 213, -240, 210},
		{29, -235, 210, -240, 210},
		{30, -232, 208, -234, 204},
		{31, -230, 206, -234, 204},
		{33, -226, 202, -228, 198},
		{34, -224, 201, -228, 198},
		{35, -222, 199, -222, 198},
		{36, -221, 198, -222, 198},
	}
	if len(tests) != len(DefaultBases) {
		t.Fatalf("%d cases for %d default bases", len(tests), len(DefaultBases))
	}

	tiny := new(big.Rat).SetFrac(big.NewInt(1), new(big.Int).Lsh(big.NewInt(1), 1074))
	tiny.Quo(tiny, new(big.Rat).SetInt(new(big.Int).SetUint64(math.MaxUint64)))
	huge := new(big.Rat).SetFloat64(math.MaxFloat64)

	for _, tt := range tests {
		minExp, maxExp := DoubleRange(tt.base)
		if minExp != tt.minExp || maxExp != tt.maxExp {
			t.Fatalf("DoubleRange(%d) = (%d, %d), want (%d, %d)", tt.base, minExp, maxExp, tt.minExp, tt.maxExp)
		}
		if lo, hi := Range(tt.base, Step(tt.base)); lo != tt.lo || hi != tt.hi {
			t.Fatalf("Range(%d) = (%d, %d), want (%d, %d)", tt.base, lo, hi, tt.lo, tt.hi)
		}

		// min is the floor: base^min fits under the bound, base^(min+1) does not.
		if Exact(tt.base, tt.minExp).Cmp(tiny) > 0 || Exact(tt.base, tt.minExp+1).Cmp(tiny) <= 0 {
			t.Fatalf("base %d: min %d is not floor(log(2^-1074/(2^64-1)))", tt.base, tt.minExp)
		}
		if Exact(tt.base, tt.maxExp).Cmp(huge) > 0 || Exact(tt.base, tt.maxExp+1).Cmp(huge) <= 0 {
			t.Fatalf("base %d: max %d is not floor(log(MaxFloat64))", tt.base, tt.maxExp)
		}
	}

	if minExp, maxExp := DoubleRange(1); minExp != 0 || maxExp != 0 {
		t.Fatalf("DoubleRange(1) = (%d, %d), want (0, 0)", minExp, maxExp)
	}
}

func TestRounded(t *testing.T) {
	tests := []struct {
		base, e int
		want    extfloat.Float
	}{
		{10, 0, extfloat.Float{Mant: 9223372036854775808, Exp: -63}},
		{10, 9, extfloat.Float{Mant: 17179869184000000000, Exp: -34}},
		{10, 10, extfloat.Float{Mant: 10737418240000000000, Exp: -30}},
		{10, 20, extfloat.Float{Mant: 12500000000000000000, Exp: 3}},
		{10, -350, extfloat.Float{Mant: 11555125961253852698, Exp: -1226}},
		{10, -1, extfloat.Float{Mant: 14757395258967641293, Exp: -67}},
		{10, 300, extfloat.Float{Mant: 0xbf21e44003acdd2d, Exp: 933}},
		{3, 1, extfloat.Float{Mant: 0xc000000000000000, Exp: -62}},
	}
	for _, tt := range tests {
		if got := Rounded(tt.base, tt.e); got != tt.want {
			t.Fatalf("Rounded(%d, %d) = %v, want %v", tt.base, tt.e, got, tt.want)
		}
	}
}

func TestRoundedWithinHalfULP(t *testing.T) {
	half := big.NewRat(1, 2)
	for _, base := range []int{3, 10, 36} {
		for e := -400; e <= 400; e += 7 {
			f := Rounded(base, e)
			if !f.IsNormalized() {
				t.Fatalf("Rounded(%d, %d) = %v not normalized", base, e, f)
			}
			if err := ULPError(f, base, e); err.Cmp(half) > 0 {
				t.Fatalf("Rounded(%d, %d) error %s ULP > 1/2", base, e, err.FloatString(4))
			}
		}
	}
}

func TestGenerateBase10(t *testing.T) {
	tab, err := Generate(10)
	if err != nil {
		t.Fatalf("Generate(10): %v", err)
	}
	if tab.Step != 10 || tab.Bias != 35 {
		t.Fatalf("step=%d bias=%d, want 10 and 35", tab.Step, tab.Bias)
	}
	if tab.Small.Len() != 10 || tab.Large.Len() != 66 {
		t.Fatalf("small=%d large=%d, want 10 and 66", tab.Small.Len(), tab.Large.Len())
	}
	if tab.MinExponent() != -350 || tab.MaxExponent() != 309 {
		t.Fatalf("range [%d, %d], want [-350, 309]", tab.MinExponent(), tab.MaxExponent())
	}
	if got := tab.Large.At(tab.Bias); got != (extfloat.Float{Mant: 1 << 63, Exp: -63}) {
		t.Fatalf("large anchor = %v, want 2^63*2^-63", got)
	}
	if got := tab.SmallInt[9]; got != 1000000000 {
		t.Fatalf("SmallInt[9] = %d, want 1000000000", got)
	}
	if err := Validate(tab); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestGenerateDefaultBases(t *testing.T) {
	for _, base := range DefaultBases {
		tab, err := Generate(base)
		if err != nil {
			t.Fatalf("Generate(%d): %v", base, err)
		}
		if err := Validate(tab); err != nil {
			t.Fatalf("Validate(%d): %v", base, err)
		}
		// base^(step-1) < 1e10 < 2^64, so every small power is exact.
		for i := 0; i < tab.Step; i++ {
			if ULPError(tab.Small.At(i), base, i).Sign() != 0 {
				t.Fatalf("base %d: small[%d] is not exact", base, i)
			}
		}
	}
}

func TestGenerateWithStep(t *testing.T) {
	tab, err := Generate(10, WithStep(19))
	if err != nil {
		t.Fatalf("Generate(10, WithStep(19)): %v", err)
	}
	if tab.Step != 19 || tab.SmallInt[18] != 1e18 {
		t.Fatalf("step=%d last=%d", tab.Step, tab.SmallInt[18])
	}
	if err := Validate(tab); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		base int
		opts []Option
		want error
	}{
		{"power of two", 16, nil, ErrUnsupportedBase},
		{"binary", 2, nil, ErrUnsupportedBase},
		{"zero", 0, nil, ErrUnsupportedBase},
		{"zero step", 10, []Option{WithStep(0)}, ErrUnsupportedBase},
		{"overflow", 10, []Option{WithStep(21)}, ErrStepOverflow},
		{"overflow base 36", 36, []Option{WithStep(14)}, ErrStepOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(tt.base, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Generate(%d) error = %v, want %v", tt.base, err, tt.want)
			}
		})
	}
}

func TestSmallIntsBoundary(t *testing.T) {
	// 10^19 fits in 64 bits, 10^20 does not.
	if _, err := SmallInts(10, 20); err != nil {
		t.Fatalf("SmallInts(10, 20): %v", err)
	}
	if _, err := SmallInts(10, 21); !errors.Is(err, ErrStepOverflow) {
		t.Fatalf("SmallInts(10, 21) error = %v, want ErrStepOverflow", err)
	}
}

func TestExact(t *testing.T) {
	if got := Exact(10, -2); got.Cmp(big.NewRat(1, 100)) != 0 {
		t.Fatalf("Exact(10, -2) = %s", got.RatString())
	}
	if got := Exact(3, 3); got.Cmp(big.NewRat(27, 1)) != 0 {
		t.Fatalf("Exact(3, 3) = %s", got.RatString())
	}
}

func TestULPError(t *testing.T) {
	f := extfloat.Float{Mant: 0xa000000000000003, Exp: -60}
	if got := ULPError(f, 10, 1); got.Cmp(big.NewRat(3, 1)) != 0 {
		t.Fatalf("ULPError = %s, want 3", got.RatString())
	}
}
