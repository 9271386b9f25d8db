// Package powers provides cached extended-float approximations of base^e
// for the moderate conversion path.
//
// Each supported radix has one immutable table set: a small table with every
// power from 0 to step-1, a large table with every multiple of step across
// the float64 range, and the small powers as exact integers. Any power in
// range is produced from one small and one large entry with a single
// 64x64->128 multiply, so the result carries a known error bound (see
// Power.Error) that callers use to prove correct rounding or fall back to
// exact arithmetic.
//
// The tables are generated offline by cmd/powgen from exact arithmetic and
// compiled in; nothing is computed or mutated at run time, and every
// function in this package is safe for concurrent use.
package powers

//go:generate go run ../cmd/powgen -o tables_gen.go

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-floatconv/extfloat"
)

// ErrorScale is the number of error units per ULP used by Power.Error.
const ErrorScale = 8

var (
	// ErrUnsupportedBase is returned by Lookup for radices without a table.
	ErrUnsupportedBase = errors.New("powers: unsupported base")

	// ErrExponentRange is returned by Lookup when the exponent lies outside
	// the table's range. Callers must switch to exact arithmetic.
	ErrExponentRange = errors.New("powers: exponent not representable")
)

// Table is the cached power table set for one radix.
type Table struct {
	base     int
	step     int
	bias     int
	small    extfloat.Array
	large    extfloat.Array
	smallInt []uint64
}

// Power is a cached approximation of base^e.
type Power struct {
	extfloat.Float

	// Exact reports that Float equals base^e with no rounding.
	Exact bool

	// Error bounds |Float - base^e| in units of 1/ErrorScale of the last
	// place of Float.Mant.
	Error uint
}

// ForBase returns the table set for base, or false if base is unsupported.
func ForBase(base int) (*Table, bool) {
	if base < 0 || base >= len(byBase) || byBase[base] == nil {
		return nil, false
	}
	return byBase[base], true
}

// Bases returns the supported radices in increasing order.
func Bases() []int {
	var out []int
	for b, t := range byBase {
		if t != nil {
			out = append(out, b)
		}
	}
	return out
}

// Lookup returns the cached power base^e. It wraps ErrUnsupportedBase or
// ErrExponentRange when no cached value exists.
func Lookup(base, e int) (Power, error) {
	t, ok := ForBase(base)
	if !ok {
		return Power{}, fmt.Errorf("%w: %d", ErrUnsupportedBase, base)
	}
	p, ok := t.Power(e)
	if !ok {
		return Power{}, fmt.Errorf("%w: %d^%d outside [%d, %d]",
			ErrExponentRange, base, e, t.MinExponent(), t.MaxExponent())
	}
	return p, nil
}

// Power returns the cached approximation of base^e, or false when e lies
// outside [MinExponent, MaxExponent].
//
// Powers in [0, Step) come straight from the small table and are exact.
// Multiples of Step come straight from the large table and are within half
// a ULP. Everything else is the product of one large and one small entry,
// within 1.5 ULP.
func (t *Table) Power(e int) (Power, bool) {
	// Floor division: the remainder must stay in [0, step) for negative e.
	q, r := e/t.step, e%t.step
	if r < 0 {
		q--
		r += t.step
	}
	index := q + t.bias
	if index < 0 || index >= t.large.Len() {
		return Power{}, false
	}

	switch {
	case index == t.bias:
		return Power{Float: t.small.At(r), Exact: true}, true
	case r == 0:
		return Power{Float: t.large.At(index), Error: ErrorScale / 2}, true
	default:
		return Power{
			Float: t.large.At(index).Mul(t.small.At(r)),
			Error: 3 * ErrorScale / 2,
		}, true
	}
}

// SmallInt returns base^e as an exact integer for 0 <= e < Step.
func (t *Table) SmallInt(e int) (uint64, bool) {
	if e < 0 || e >= len(t.smallInt) {
		return 0, false
	}
	return t.smallInt[e], true
}

// Base returns the radix of the table.
func (t *Table) Base() int { return t.base }

// Step returns the exponent spacing of the large table, which is also the
// number of small entries.
func (t *Table) Step() int { return t.step }

// Bias returns the large-table index of base^0.
func (t *Table) Bias() int { return t.bias }

// Small returns base^0 .. base^(Step-1).
func (t *Table) Small() extfloat.Array { return t.small }

// Large returns base^(k*Step) for k from -Bias upwards.
func (t *Table) Large() extfloat.Array { return t.large }

// SmallInts returns the exact small powers. The slice is shared with the
// table and must not be modified.
func (t *Table) SmallInts() []uint64 { return t.smallInt }

// MinExponent returns the smallest e for which Power succeeds.
func (t *Table) MinExponent() int {
	return -t.bias * t.step
}

// MaxExponent returns the largest e for which Power succeeds.
func (t *Table) MaxExponent() int {
	return (t.large.Len()-1-t.bias)*t.step + t.step - 1
}
