package powgen

import (
	"fmt"
	"math/big"

	"github.com/cwbudde/algo-floatconv/extfloat"
)

// Validate checks that t satisfies every table invariant:
//
//   - Small and SmallInt have exactly Step entries;
//   - every mantissa is normalized;
//   - Small[i] is base^i correctly rounded, SmallInt[i] is base^i exactly;
//   - Large[j] is base^((j-Bias)*Step) correctly rounded;
//   - the large range covers DoubleRange(base).
//
// The first violation is returned wrapped in ErrInvalidTable.
func Validate(t *Tables) error {
	if !Supported(t.Base) {
		return fmt.Errorf("%w: %d", ErrUnsupportedBase, t.Base)
	}
	if t.Step < 1 {
		return fmt.Errorf("%w: base %d: step %d", ErrInvalidTable, t.Base, t.Step)
	}
	if t.Bias < 0 || t.Bias >= t.Large.Len() {
		return fmt.Errorf("%w: base %d: bias %d outside large table of %d entries",
			ErrInvalidTable, t.Base, t.Bias, t.Large.Len())
	}
	if t.Small.Len() != t.Step || len(t.SmallInt) != t.Step {
		return fmt.Errorf("%w: base %d: %d small entries and %d small integers, want %d",
			ErrInvalidTable, t.Base, t.Small.Len(), len(t.SmallInt), t.Step)
	}

	want, err := SmallInts(t.Base, t.Step)
	if err != nil {
		return err
	}
	for i, v := range t.SmallInt {
		if v != want[i] {
			return fmt.Errorf("%w: base %d: small integer %d = %d, want %d",
				ErrInvalidTable, t.Base, i, v, want[i])
		}
	}

	if err := checkEntries(t.Base, "small", t.Small, func(i int) int { return i }); err != nil {
		return err
	}
	if err := checkEntries(t.Base, "large", t.Large, func(j int) int { return (j - t.Bias) * t.Step }); err != nil {
		return err
	}

	minExp, maxExp := DoubleRange(t.Base)
	if t.MinExponent() > minExp || t.MaxExponent() < maxExp {
		return fmt.Errorf("%w: base %d: range [%d, %d] does not cover [%d, %d]",
			ErrInvalidTable, t.Base, t.MinExponent(), t.MaxExponent(), minExp, maxExp)
	}
	return nil
}

func checkEntries(base int, name string, a extfloat.Array, exponent func(int) int) error {
	for i := 0; i < a.Len(); i++ {
		got := a.At(i)
		if !got.IsNormalized() {
			return fmt.Errorf("%w: base %d: %s[%d] = %v is not normalized",
				ErrInvalidTable, base, name, i, got)
		}
		if want := Rounded(base, exponent(i)); got != want {
			return fmt.Errorf("%w: base %d: %s[%d] = %v, want %v (%d^%d)",
				ErrInvalidTable, base, name, i, got, want, base, exponent(i))
		}
	}
	return nil
}

// ULPError returns |f - base^e| measured in units of the last place of f,
// that is divided by 2^f.Exp. The result is exact.
func ULPError(f extfloat.Float, base, e int) *big.Rat {
	diff := new(big.Rat).SetInt(new(big.Int).SetUint64(f.Mant))
	diff.Sub(diff, new(big.Rat).Mul(Exact(base, e), pow2(-int(f.Exp))))
	return diff.Abs(diff)
}

// pow2 returns 2^n as a rational.
func pow2(n int) *big.Rat {
	p := new(big.Int).Lsh(big.NewInt(1), uint(abs(n)))
	if n < 0 {
		return new(big.Rat).SetFrac(big.NewInt(1), p)
	}
	return new(big.Rat).SetInt(p)
}
