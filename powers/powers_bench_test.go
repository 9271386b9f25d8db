package powers

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-floatconv/internal/testutil"
)

var sinkPower Power

func BenchmarkPower(b *testing.B) {
	for _, base := range []int{3, 10, 36} {
		tab, _ := ForBase(base)
		exps := testutil.DeterministicExponents(int64(base), tab.MinExponent(), tab.MaxExponent(), 1024)

		b.Run(fmt.Sprintf("base=%d", base), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sinkPower, _ = tab.Power(exps[i&1023])
			}
		})
	}
}

func BenchmarkPowerPaths(b *testing.B) {
	tab, _ := ForBase(10)
	paths := []struct {
		name string
		e    int
	}{
		{"small", 7},
		{"large", 120},
		{"composed", 123},
	}
	for _, p := range paths {
		b.Run(p.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sinkPower, _ = tab.Power(p.e)
			}
		})
	}
}

func BenchmarkLookup(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkPower, _ = Lookup(10, -123)
	}
}
