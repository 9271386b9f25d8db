package extfloat

// Array is an immutable indexed sequence of extended floats, stored as two
// parallel slices of mantissas and binary exponents.
//
// The zero Array is empty. Arrays built from package-level tables are never
// written after initialization and are safe for concurrent use.
type Array struct {
	mant []uint64
	exp  []int32
}

// NewArray returns an Array over mant and exp. The slices are retained, not
// copied; the caller must not modify them afterwards.
// Panics if the lengths differ.
func NewArray(mant []uint64, exp []int32) Array {
	if len(mant) != len(exp) {
		panic("extfloat: mantissa and exponent length mismatch")
	}
	return Array{mant: mant, exp: exp}
}

// At returns the i-th entry. An index outside [0, Len()) is a programming
// error and panics.
func (a Array) At(i int) Float {
	return Float{Mant: a.mant[i], Exp: a.exp[i]}
}

// Len returns the number of entries.
func (a Array) Len() int {
	return len(a.mant)
}
