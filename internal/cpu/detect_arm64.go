//go:build arm64

package cpu

import "runtime"

// detectFeaturesImpl performs CPU feature detection on arm64 systems.
//
// UMULH is mandatory on ARMv8, so the wide multiply is always present.
func detectFeaturesImpl() Features {
	return Features{
		HasWideMul:   true,
		Architecture: runtime.GOARCH,
	}
}
