//go:build amd64

package cpu

import (
	"testing"

	"golang.org/x/sys/cpu"
)

func TestDetectFeaturesReportsX86Extensions(t *testing.T) {
	ResetDetection()
	t.Cleanup(ResetDetection)

	f := DetectFeatures()
	if f.HasBMI2 != cpu.X86.HasBMI2 || f.HasADX != cpu.X86.HasADX {
		t.Fatalf("BMI2/ADX = %v/%v, x/sys/cpu reports %v/%v",
			f.HasBMI2, f.HasADX, cpu.X86.HasBMI2, cpu.X86.HasADX)
	}
	if !f.HasWideMul {
		t.Fatal("HasWideMul = false on amd64")
	}

	// The extensions do not gate any kernel level.
	if Supports(Features{}, LevelWideMul) != Supports(Features{HasBMI2: true, HasADX: true}, LevelWideMul) {
		t.Fatal("BMI2/ADX changed kernel eligibility")
	}
}
