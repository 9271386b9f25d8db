package wide

import (
	"math"
	"math/big"
	"math/bits"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-floatconv/internal/cpu"
)

var edgeOperands = []uint64{
	0, 1, 2, 3,
	mask32, mask32 + 1, mask32 - 1,
	1 << 63, 1<<63 - 1, 1<<63 + 1,
	math.MaxUint64, math.MaxUint64 - 1,
	0x8000000000000000, 0xa000000000000000,
	11555125961253852698, 17179869184000000000,
}

func referenceProduct(x, y uint64) (hi, lo uint64) {
	p := new(big.Int).Mul(new(big.Int).SetUint64(x), new(big.Int).SetUint64(y))
	lo = new(big.Int).And(p, new(big.Int).SetUint64(math.MaxUint64)).Uint64()
	hi = new(big.Int).Rsh(p, 64).Uint64()
	return hi, lo
}

func TestKernelsMatchReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	operands := append([]uint64(nil), edgeOperands...)
	for i := 0; i < 64; i++ {
		operands = append(operands, rng.Uint64(), rng.Uint64()|1<<63)
	}

	for _, k := range Kernels() {
		t.Run(k.Name, func(t *testing.T) {
			for _, x := range operands {
				for _, y := range operands {
					hi, lo := k.Mul64(x, y)
					wantHi, wantLo := referenceProduct(x, y)
					if hi != wantHi || lo != wantLo {
						t.Fatalf("Mul64(%#x, %#x) = (%#x, %#x), want (%#x, %#x)",
							x, y, hi, lo, wantHi, wantLo)
					}
				}
			}
		})
	}
}

func TestPortableMatchesBits(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10000; i++ {
		x, y := rng.Uint64(), rng.Uint64()
		hi, lo := mulPortable(x, y)
		wantHi, wantLo := bits.Mul64(x, y)
		if hi != wantHi || lo != wantLo {
			t.Fatalf("mulPortable(%#x, %#x) = (%#x, %#x), want (%#x, %#x)", x, y, hi, lo, wantHi, wantLo)
		}
	}
}

func TestKernelsOrderedByPriority(t *testing.T) {
	entries := Kernels()
	if len(entries) == 0 {
		t.Fatal("no kernels compiled in")
	}
	if entries[len(entries)-1].Name != "portable" {
		t.Fatalf("lowest priority kernel = %q, want portable", entries[len(entries)-1].Name)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Priority < entries[i].Priority {
			t.Fatalf("kernels not sorted: %s(%d) before %s(%d)",
				entries[i-1].Name, entries[i-1].Priority, entries[i].Name, entries[i].Priority)
		}
	}
}

func TestSelect(t *testing.T) {
	if got := Select(cpu.Features{ForceGeneric: true, HasWideMul: true}); got.Name != "portable" {
		t.Fatalf("Select(ForceGeneric) = %q, want portable", got.Name)
	}
	if got := Select(cpu.Features{}); got.Name != "portable" {
		t.Fatalf("Select(no features) = %q, want portable", got.Name)
	}

	best := Kernels()[0]
	if got := Select(cpu.Features{HasWideMul: true}); got.Name != best.Name {
		t.Fatalf("Select(HasWideMul) = %q, want %q", got.Name, best.Name)
	}
}

func TestActiveKernel(t *testing.T) {
	want := Select(cpu.DetectFeatures()).Name
	if Kernel() != want {
		t.Fatalf("Kernel() = %q, want %q", Kernel(), want)
	}

	hi, lo := Mul64(1<<63, 1<<63)
	if hi != 1<<62 || lo != 0 {
		t.Fatalf("Mul64(2^63, 2^63) = (%#x, %#x), want (%#x, 0)", hi, lo, uint64(1<<62))
	}
}

func TestMul64FollowsActiveKernel(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	operands := append([]uint64(nil), edgeOperands...)
	for i := 0; i < 32; i++ {
		operands = append(operands, rng.Uint64())
	}
	for _, x := range operands {
		for _, y := range operands {
			hi, lo := Mul64(x, y)
			wantHi, wantLo := active.Mul64(x, y)
			if hi != wantHi || lo != wantLo {
				t.Fatalf("Mul64(%#x, %#x) = (%#x, %#x), %s kernel gives (%#x, %#x)",
					x, y, hi, lo, active.Name, wantHi, wantLo)
			}
		}
	}
}

func BenchmarkMul64Dispatch(b *testing.B) {
	b.ReportAllocs()
	x, y := uint64(0xfa8fd5a0081c0288), uint64(0xbaaee17fa23ebf76)
	var acc uint64
	for i := 0; i < b.N; i++ {
		hi, lo := Mul64(x, y)
		acc += hi ^ lo
		x++
	}
	if acc == 1 {
		b.Log(acc)
	}
}

func BenchmarkMul64(b *testing.B) {
	for _, k := range Kernels() {
		b.Run(k.Name, func(b *testing.B) {
			b.ReportAllocs()
			x, y := uint64(0xfa8fd5a0081c0288), uint64(0xbaaee17fa23ebf76)
			var acc uint64
			for i := 0; i < b.N; i++ {
				hi, lo := k.Mul64(x, y)
				acc += hi ^ lo
				x++
			}
			if acc == 1 {
				b.Log(acc)
			}
		})
	}
}
