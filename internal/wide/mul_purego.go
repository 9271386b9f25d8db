//go:build purego

package wide

var hardwareKernels []KernelEntry

// Mul64 returns the full 128-bit product of x and y.
func Mul64(x, y uint64) (hi, lo uint64) {
	return mulPortable(x, y)
}
