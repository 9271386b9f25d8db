//go:build !amd64 && !arm64

package cpu

import "runtime"

// detectFeaturesImpl is the fallback for other architectures.
//
// The compiler lowers math/bits.Mul64 to a single instruction on the 64-bit
// targets listed below; everywhere else only the portable kernel is used.
func detectFeaturesImpl() Features {
	wide := false
	switch runtime.GOARCH {
	case "ppc64", "ppc64le", "s390x", "riscv64", "mips64", "mips64le", "loong64":
		wide = true
	}
	return Features{
		HasWideMul:   wide,
		Architecture: runtime.GOARCH,
	}
}
