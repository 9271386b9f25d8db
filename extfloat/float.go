// Package extfloat implements the 64-bit-mantissa extended-precision floats
// used by the moderate conversion path.
//
// A Float represents Mant * 2^Exp. It does not try to save bits and has no
// sign: the conversion engine tracks the sign separately.
package extfloat

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/cwbudde/algo-floatconv/internal/wide"
)

// Float is an extended-precision value Mant * 2^Exp.
//
// A Float is normalized when the top bit of Mant is set.
type Float struct {
	Mant uint64
	Exp  int32
}

// IsNormalized reports whether the most significant bit of the mantissa is set.
func (f Float) IsNormalized() bool {
	return f.Mant>>63 == 1
}

// Normalize returns f shifted so the top bit of the mantissa is set, and the
// number of bits the mantissa was shifted left. Zero is returned unchanged.
func (f Float) Normalize() (Float, uint) {
	if f.Mant == 0 {
		return f, 0
	}
	shift := bits.LeadingZeros64(f.Mant)
	f.Mant <<= uint(shift)
	f.Exp -= int32(shift)
	return f, uint(shift)
}

// Mul returns the product f*g. The full 128-bit product is renormalized and
// rounded to nearest, ties away from zero, so the result carries at most
// half a unit of rounding error in addition to the error of the operands.
// The result is normalized unless the product is zero.
func (f Float) Mul(g Float) Float {
	hi, lo := wide.Mul64(f.Mant, g.Mant)
	exp := f.Exp + g.Exp + 64

	if hi == 0 {
		if lo == 0 {
			return Float{}
		}
		hi, lo = lo, 0
		exp -= 64
	}
	if shift := uint(bits.LeadingZeros64(hi)); shift > 0 {
		hi = hi<<shift | lo>>(64-shift)
		lo <<= shift
		exp -= int32(shift)
	}

	// Round half up on the discarded low word.
	if lo>>63 == 1 {
		hi++
		if hi == 0 {
			hi = 1 << 63
			exp++
		}
	}
	return Float{Mant: hi, Exp: exp}
}

// Float64 returns the nearest float64 to f. It rounds twice and is meant for
// diagnostics, not for correctly rounded conversion.
func (f Float) Float64() float64 {
	return math.Ldexp(float64(f.Mant), int(f.Exp))
}

func (f Float) String() string {
	return fmt.Sprintf("%d*2^%d", f.Mant, f.Exp)
}
