//go:build amd64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs CPU feature detection on amd64 systems.
//
// The 64-bit MUL instruction is part of the x86-64 baseline. MULX and the
// ADX carry chains are optional and read through golang.org/x/sys/cpu.
func detectFeaturesImpl() Features {
	return Features{
		HasWideMul:   true,
		HasBMI2:      cpu.X86.HasBMI2,
		HasADX:       cpu.X86.HasADX,
		Architecture: runtime.GOARCH,
	}
}
