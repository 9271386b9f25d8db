// Package wide provides the 64x64->128 bit unsigned multiply used by the
// extended-float arithmetic.
//
// Several kernels can coexist. The portable kernel splits each operand into
// 32-bit limbs and propagates the carries by hand; the hardware kernel uses
// math/bits.Mul64, which the compiler lowers to a single instruction on
// 64-bit targets. The highest-priority kernel supported by the detected CPU
// features is selected once at package initialization.
//
// Build with the purego tag to compile only the portable kernel.
package wide

import (
	"sort"

	"github.com/cwbudde/algo-floatconv/internal/cpu"
)

// Mul64Fn returns the 128-bit product of x and y as (hi, lo).
type Mul64Fn func(x, y uint64) (hi, lo uint64)

// KernelEntry is one multiply implementation.
type KernelEntry struct {
	// Name is a short identifier ("portable", "bits").
	Name string

	// Level is the CPU capability the kernel requires.
	Level cpu.Level

	// Priority orders compatible kernels; higher wins.
	Priority int

	Mul64 Mul64Fn
}

var portableKernel = KernelEntry{
	Name:     "portable",
	Level:    cpu.LevelPortable,
	Priority: 0,
	Mul64:    mulPortable,
}

// active is resolved during package variable initialization, after
// hardwareKernels (declared in a build-tagged file) is populated.
var active = Select(cpu.DetectFeatures())

// Kernels returns every compiled-in kernel, highest priority first.
func Kernels() []KernelEntry {
	entries := make([]KernelEntry, 0, len(hardwareKernels)+1)
	entries = append(entries, hardwareKernels...)
	entries = append(entries, portableKernel)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Priority > entries[j].Priority
	})
	return entries
}

// Select returns the highest-priority kernel supported by features.
// The portable kernel is always eligible.
func Select(features cpu.Features) KernelEntry {
	for _, e := range Kernels() {
		if cpu.Supports(features, e.Level) {
			return e
		}
	}
	return portableKernel
}

// Kernel returns the name of the kernel used by Mul64.
func Kernel() string {
	return active.Name
}
