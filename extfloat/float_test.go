package extfloat

import (
	"math"
	"math/big"
	"math/rand"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in    Float
		want  Float
		shift uint
	}{
		{Float{}, Float{}, 0},
		{Float{1, 0}, Float{1 << 63, -63}, 63},
		{Float{10, 0}, Float{0xa000000000000000, -60}, 60},
		{Float{1 << 63, -63}, Float{1 << 63, -63}, 0},
		{Float{1000000000, 0}, Float{17179869184000000000, -34}, 34},
		{Float{math.MaxUint64, 5}, Float{math.MaxUint64, 5}, 0},
	}

	for _, tt := range tests {
		got, shift := tt.in.Normalize()
		if got != tt.want || shift != tt.shift {
			t.Fatalf("%v.Normalize() = (%v, %d), want (%v, %d)", tt.in, got, shift, tt.want, tt.shift)
		}
		if tt.in.Mant != 0 && !got.IsNormalized() {
			t.Fatalf("%v.Normalize() not normalized: %v", tt.in, got)
		}
	}
}

func TestIsNormalized(t *testing.T) {
	if (Float{Mant: 1<<63 - 1}).IsNormalized() {
		t.Fatal("2^63-1 reported as normalized")
	}
	if !(Float{Mant: 1 << 63}).IsNormalized() {
		t.Fatal("2^63 reported as not normalized")
	}
}

func TestMulExactPowers(t *testing.T) {
	one := Float{1 << 63, -63}
	ten := Float{0xa000000000000000, -60}

	if got := one.Mul(one); got != one {
		t.Fatalf("1*1 = %v, want %v", got, one)
	}
	if got := one.Mul(ten); got != ten {
		t.Fatalf("1*10 = %v, want %v", got, ten)
	}
	// 10 * 10 = 100 = 0xc8 << 56 * 2^-57
	if got, want := ten.Mul(ten), (Float{0xc800000000000000, -57}); got != want {
		t.Fatalf("10*10 = %v, want %v", got, want)
	}
}

func TestMulZero(t *testing.T) {
	if got := (Float{0, 12}).Mul(Float{1 << 63, -63}); got != (Float{}) {
		t.Fatalf("0*1 = %v, want zero", got)
	}
}

func TestMulRoundingCarry(t *testing.T) {
	// (2^64-2)*(2^63+1) = 0x7fff...ff_ffff...fe: the renormalized high word is
	// all ones and the discarded half rounds it over to 2^64.
	f := Float{math.MaxUint64 - 1, 0}
	g := Float{1<<63 + 1, 0}
	got := f.Mul(g)
	want := Float{1 << 63, 64}
	if got != want {
		t.Fatalf("Mul carry = %v, want %v", got, want)
	}
}

func TestMulSmallOperands(t *testing.T) {
	// Product fits in the low word only.
	got := (Float{3, 0}).Mul(Float{5, 0})
	want := Float{15 << 60, -60}
	if got != want {
		t.Fatalf("3*5 = %v, want %v", got, want)
	}
}

func TestMulWithinHalfULP(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 2000; i++ {
		f := Float{rng.Uint64() | 1<<63, int32(rng.Intn(200) - 100)}
		g := Float{rng.Uint64() | 1<<63, int32(rng.Intn(200) - 100)}
		got := f.Mul(g)
		if !got.IsNormalized() {
			t.Fatalf("%v*%v = %v, not normalized", f, g, got)
		}

		exact := new(big.Int).Mul(new(big.Int).SetUint64(f.Mant), new(big.Int).SetUint64(g.Mant))
		// exact is scaled by 2^(f.Exp+g.Exp); compare in units of the result ULP.
		shift := int(got.Exp) - int(f.Exp) - int(g.Exp)
		approx := new(big.Int).Lsh(new(big.Int).SetUint64(got.Mant), uint(shift))
		diff := new(big.Int).Sub(approx, exact)
		diff.Abs(diff)
		half := new(big.Int).Lsh(big.NewInt(1), uint(shift-1))
		if diff.Cmp(half) > 0 {
			t.Fatalf("%v*%v = %v, error %v exceeds half ULP %v", f, g, got, diff, half)
		}
	}
}

func TestFloat64(t *testing.T) {
	tests := []struct {
		f    Float
		want float64
	}{
		{Float{1 << 63, -63}, 1},
		{Float{17179869184000000000, -34}, 1e9},
		{Float{12500000000000000000, 3}, 1e20},
		{Float{}, 0},
	}
	for _, tt := range tests {
		if got := tt.f.Float64(); got != tt.want {
			t.Fatalf("%v.Float64() = %v, want %v", tt.f, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	if got := (Float{1 << 63, -63}).String(); got != "9223372036854775808*2^-63" {
		t.Fatalf("String() = %q", got)
	}
}

func BenchmarkMul(b *testing.B) {
	f := Float{0xfa8fd5a0081c0288, -1220}
	g := Float{0xbaaee17fa23ebf76, -1193}
	b.ReportAllocs()
	var acc Float
	for i := 0; i < b.N; i++ {
		acc = f.Mul(g)
		f.Mant ^= uint64(i) & 0xff
	}
	_ = acc
}
