// Package powgen generates and validates the cached power tables used by the
// moderate conversion path.
//
// Every entry is derived from exact arbitrary-precision arithmetic and
// rounded once to a normalized 64-bit mantissa, so each cached value carries
// at most half a unit in the last place of error. The package is used
// offline by cmd/powgen to render powers/tables_gen.go and by tests to check
// the compiled tables against a fresh computation.
package powgen

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"math/bits"

	"github.com/cwbudde/algo-floatconv/extfloat"
)

var (
	// ErrUnsupportedBase is returned for radices below 3 or powers of two,
	// whose powers are exact shifts and need no table.
	ErrUnsupportedBase = errors.New("powgen: unsupported base")

	// ErrStepOverflow is returned when base^(step-1) does not fit in 64 bits.
	ErrStepOverflow = errors.New("powgen: small powers overflow uint64")

	// ErrInvalidTable is returned by Validate when a table breaks an invariant.
	ErrInvalidTable = errors.New("powgen: invalid table")
)

// DefaultBases lists every radix from 3 to 36 that is not a power of two.
var DefaultBases = []int{
	3, 5, 6, 7, 9, 10, 11, 12, 13, 14, 15, 17, 18, 19, 20, 21,
	22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 33, 34, 35, 36,
}

// Tables is one generated table set.
//
// Small holds base^0 .. base^(Step-1). Large holds base^((j-Bias)*Step) for
// every index j. SmallInt holds the same small powers as exact integers.
type Tables struct {
	Base     int
	Step     int
	Bias     int
	Small    extfloat.Array
	Large    extfloat.Array
	SmallInt []uint64
}

// MinExponent returns the smallest exponent the tables can compose.
func (t *Tables) MinExponent() int {
	return -t.Bias * t.Step
}

// MaxExponent returns the largest exponent the tables can compose.
func (t *Tables) MaxExponent() int {
	return (t.Large.Len()-1-t.Bias)*t.Step + t.Step - 1
}

type config struct {
	step int
}

// Option configures table generation.
type Option func(*config)

// WithStep overrides the large-table spacing. The default is Step(base).
// Tables generated with a non-default step are valid but no longer match
// the compiled-in tables.
func WithStep(step int) Option {
	return func(c *config) {
		c.step = step
	}
}

// Supported reports whether base can have a cached power table.
func Supported(base int) bool {
	return base >= 3 && base&(base-1) != 0
}

// Step returns floor(log_base(1e10)): the largest s with base^s <= 1e10.
// It is computed in integer arithmetic so no rounding of the logarithm can
// move the result.
func Step(base int) int {
	if base < 2 {
		return 0
	}
	const limit = 10_000_000_000
	s := 0
	for p := uint64(1); p <= limit/uint64(base); p *= uint64(base) {
		s++
	}
	return s
}

// Range returns the first and last exponents of the large table for base
// and step: the multiples of step that bracket DoubleRange(base) once the
// small table fills in the remainders.
func Range(base, step int) (lo, hi int) {
	minExp, maxExp := DoubleRange(base)
	lo = -step
	for lo > minExp {
		lo -= step
	}
	hi = 0
	for hi+step <= maxExp {
		hi += step
	}
	return lo, hi
}

// DoubleRange returns the exponents of base needed to convert any float64
// scaled by a full 64-bit mantissa:
//
//	min = floor(log_base(2^-1074 / (2^64-1)))
//	max = floor(log_base(MaxFloat64))
//
// Both bounds come from comparing exact integer powers; math.Log is not
// accurate for subnormal arguments on every platform. Bases below 2 yield
// (0, 0).
func DoubleRange(base int) (minExp, maxExp int) {
	if base < 2 {
		return 0, 0
	}
	b := big.NewInt(int64(base))

	// base^-k <= 2^-1074/(2^64-1)  <=>  base^k >= (2^64-1)*2^1074
	floor := new(big.Int).Lsh(new(big.Int).SetUint64(math.MaxUint64), 1074)
	p := big.NewInt(1)
	for p.Cmp(floor) < 0 {
		p.Mul(p, b)
		minExp--
	}

	// MaxFloat64 = (2^53-1)*2^971
	top := new(big.Int).Lsh(big.NewInt(1<<53-1), 971)
	p.SetInt64(int64(base))
	for p.Cmp(top) <= 0 {
		p.Mul(p, b)
		maxExp++
	}
	return minExp, maxExp
}

// Generate computes the table set for base.
func Generate(base int, opts ...Option) (*Tables, error) {
	if !Supported(base) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBase, base)
	}
	cfg := config{step: Step(base)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.step < 1 {
		return nil, fmt.Errorf("%w: step %d for base %d", ErrUnsupportedBase, cfg.step, base)
	}

	smallInt, err := SmallInts(base, cfg.step)
	if err != nil {
		return nil, err
	}

	smallMant := make([]uint64, cfg.step)
	smallExp := make([]int32, cfg.step)
	for i := range smallMant {
		f := Rounded(base, i)
		smallMant[i], smallExp[i] = f.Mant, f.Exp
	}

	lo, hi := Range(base, cfg.step)
	n := (hi-lo)/cfg.step + 1
	largeMant := make([]uint64, n)
	largeExp := make([]int32, n)
	for j := range largeMant {
		f := Rounded(base, lo+j*cfg.step)
		largeMant[j], largeExp[j] = f.Mant, f.Exp
	}

	return &Tables{
		Base:     base,
		Step:     cfg.step,
		Bias:     -lo / cfg.step,
		Small:    extfloat.NewArray(smallMant, smallExp),
		Large:    extfloat.NewArray(largeMant, largeExp),
		SmallInt: smallInt,
	}, nil
}

// SmallInts returns base^0 .. base^(step-1) as exact integers.
// It fails rather than truncate if the last power exceeds 64 bits.
func SmallInts(base, step int) ([]uint64, error) {
	out := make([]uint64, step)
	p := uint64(1)
	for i := range out {
		out[i] = p
		if i == step-1 {
			break
		}
		hi, lo := bits.Mul64(p, uint64(base))
		if hi != 0 {
			return nil, fmt.Errorf("%w: %d^%d", ErrStepOverflow, base, i+1)
		}
		p = lo
	}
	return out, nil
}

// Rounded returns base^e correctly rounded (to nearest, ties to even) to a
// normalized 64-bit mantissa.
func Rounded(base, e int) extfloat.Float {
	b := big.NewInt(int64(base))
	if e >= 0 {
		n := new(big.Int).Exp(b, big.NewInt(int64(e)), nil)
		return roundInt(n, 0)
	}

	// 1/d = (2^s/d) * 2^-s with s chosen so that 2^s/d lies in (2^63, 2^64].
	d := new(big.Int).Exp(b, big.NewInt(int64(-e)), nil)
	s := 63 + d.BitLen()
	q, r := new(big.Int).QuoRem(new(big.Int).Lsh(big.NewInt(1), uint(s)), d, new(big.Int))
	if cmp := new(big.Int).Lsh(r, 1).Cmp(d); cmp > 0 || (cmp == 0 && q.Bit(0) == 1) {
		q.Add(q, big.NewInt(1))
	}
	return renormalize(q, -s)
}

// roundInt rounds n * 2^exp to 64 bits, ties to even.
func roundInt(n *big.Int, exp int) extfloat.Float {
	shift := n.BitLen() - 64
	if shift <= 0 {
		f, _ := extfloat.Float{Mant: n.Uint64(), Exp: int32(exp)}.Normalize()
		return f
	}
	q := new(big.Int).Rsh(n, uint(shift))
	rem := new(big.Int).Sub(n, new(big.Int).Lsh(q, uint(shift)))
	half := new(big.Int).Lsh(big.NewInt(1), uint(shift-1))
	if cmp := rem.Cmp(half); cmp > 0 || (cmp == 0 && q.Bit(0) == 1) {
		q.Add(q, big.NewInt(1))
	}
	return renormalize(q, exp+shift)
}

// renormalize folds a rounding carry out of 64 bits back into the exponent.
// q is even whenever it reaches 2^64, so the shift is exact.
func renormalize(q *big.Int, exp int) extfloat.Float {
	if q.BitLen() > 64 {
		q.Rsh(q, 1)
		exp++
	}
	return extfloat.Float{Mant: q.Uint64(), Exp: int32(exp)}
}

// Exact returns base^e as an exact rational.
func Exact(base, e int) *big.Rat {
	n := new(big.Int).Exp(big.NewInt(int64(base)), big.NewInt(int64(abs(e))), nil)
	if e < 0 {
		return new(big.Rat).SetFrac(big.NewInt(1), n)
	}
	return new(big.Rat).SetInt(n)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
