package testutil

import "math/rand"

// ExponentRange returns every exponent in [lo, hi].
func ExponentRange(lo, hi int) []int {
	if hi < lo {
		return nil
	}
	out := make([]int, 0, hi-lo+1)
	for e := lo; e <= hi; e++ {
		out = append(out, e)
	}
	return out
}

// DeterministicExponents draws n exponents uniformly from [lo, hi] with a
// fixed seed for reproducibility.
func DeterministicExponents(seed int64, lo, hi, n int) []int {
	rng := rand.New(rand.NewSource(seed))
	out := make([]int, n)
	for i := range out {
		out[i] = lo + rng.Intn(hi-lo+1)
	}
	return out
}

// DeterministicMantissas draws n normalized 64-bit mantissas with a fixed seed.
func DeterministicMantissas(seed int64, n int) []uint64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]uint64, n)
	for i := range out {
		out[i] = rng.Uint64() | 1<<63
	}
	return out
}
