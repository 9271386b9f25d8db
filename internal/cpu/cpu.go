// Package cpu provides CPU feature detection for arithmetic kernel selection.
//
// It reports whether the processor has a native 64x64->128 bit multiply and,
// on x86-64, the BMI2 and ADX extensions. The probe runs once and is cached.
//
// Only HasWideMul takes part in kernel selection. BMI2 and ADX come from
// golang.org/x/sys/cpu and are reported for diagnostics (cmd/powinfo); the
// compiler's bits.Mul64 lowering does not depend on them.
package cpu

import "sync/atomic"

// Level represents the multiply capability a kernel requires.
type Level int

const (
	// LevelPortable indicates pure Go arithmetic on 32-bit limbs.
	LevelPortable Level = iota

	// LevelWideMul indicates a native 64x64->128 multiply (MUL on x86-64,
	// UMULH on arm64, MULHDU on ppc64, ...).
	LevelWideMul
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelPortable:
		return "portable"
	case LevelWideMul:
		return "widemul"
	default:
		return "unknown"
	}
}

// Features describes CPU capabilities relevant to multiply kernel selection.
type Features struct {
	HasWideMul bool // native 64x64->128 multiply
	HasBMI2    bool // x86-64 BMI2 (MULX), reported for diagnostics
	HasADX     bool // x86-64 ADX (ADCX/ADOX), reported for diagnostics

	// ForceGeneric disables every non-portable kernel (for testing/debugging).
	ForceGeneric bool

	// Architecture is runtime.GOARCH (e.g., "amd64", "arm64").
	Architecture string
}

var (
	// detected caches the hardware probe; nil until the first call.
	detected atomic.Pointer[Features]

	// forced replaces the probe while set.
	forced atomic.Pointer[Features]
)

// DetectFeatures returns the features of the running CPU, or the override
// installed by SetForcedFeatures. Safe for concurrent use.
func DetectFeatures() Features {
	if f := forced.Load(); f != nil {
		return *f
	}
	if f := detected.Load(); f != nil {
		return *f
	}
	// The probe is deterministic, so a lost race stores an equal value.
	f := detectFeaturesImpl()
	detected.CompareAndSwap(nil, &f)
	return f
}

// HasWideMul reports whether the CPU has a native 64x64->128 multiply.
func HasWideMul() bool {
	return DetectFeatures().HasWideMul
}

// SetForcedFeatures makes DetectFeatures return f until ResetDetection.
// Kernels already selected at init are not re-selected.
func SetForcedFeatures(f Features) {
	forced.Store(&f)
}

// ResetDetection drops the override and the cached probe.
func ResetDetection() {
	forced.Store(nil)
	detected.Store(nil)
}

// Supports reports whether features satisfy the given kernel level.
func Supports(features Features, level Level) bool {
	if features.ForceGeneric {
		return level == LevelPortable
	}

	switch level {
	case LevelPortable:
		return true
	case LevelWideMul:
		return features.HasWideMul
	default:
		return false
	}
}
