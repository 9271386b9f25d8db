//go:build !purego

package wide

import (
	"math/bits"

	"github.com/cwbudde/algo-floatconv/internal/cpu"
)

var hardwareKernels = []KernelEntry{
	{
		Name:     "bits",
		Level:    cpu.LevelWideMul,
		Priority: 10,
		Mul64:    bits.Mul64,
	},
}

// useBits is fixed at init from the selected kernel.
var useBits = active.Level == cpu.LevelWideMul

// Mul64 returns the full 128-bit product of x and y using the selected
// kernel. The hardware path calls bits.Mul64 directly so the compiler can
// lower it in place.
func Mul64(x, y uint64) (hi, lo uint64) {
	if useBits {
		return bits.Mul64(x, y)
	}
	return mulPortable(x, y)
}
