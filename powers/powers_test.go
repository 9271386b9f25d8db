package powers

import (
	"errors"
	"math/big"
	"sync"
	"testing"

	"github.com/cwbudde/algo-floatconv/extfloat"
	"github.com/cwbudde/algo-floatconv/internal/powgen"
	"github.com/cwbudde/algo-floatconv/internal/testutil"
)

func mustBase(t *testing.T, base int) *Table {
	t.Helper()
	tab, ok := ForBase(base)
	if !ok {
		t.Fatalf("ForBase(%d) not supported", base)
	}
	return tab
}

func TestBase10Scenarios(t *testing.T) {
	tab := mustBase(t, 10)

	tests := []struct {
		name  string
		e     int
		want  extfloat.Float
		exact bool
		error uint
	}{
		{"zero", 0, extfloat.Float{Mant: 9223372036854775808, Exp: -63}, true, 0},
		{"last small", 9, extfloat.Float{Mant: 17179869184000000000, Exp: -34}, true, 0},
		{"first step", 10, extfloat.Float{Mant: 10737418240000000000, Exp: -30}, false, ErrorScale / 2},
		{"large only", 20, extfloat.Float{Mant: 12500000000000000000, Exp: 3}, false, ErrorScale / 2},
		// Correctly rounded. Truncating the exact quotient gives ...697; the
		// discarded remainder is above one half, so the entry rounds up.
		{"first large", -350, extfloat.Float{Mant: 11555125961253852698, Exp: -1226}, false, ErrorScale / 2},
		{"composed top", 305, extfloat.Float{Mant: 10507614211323843198, Exp: 950}, false, 3 * ErrorScale / 2},
		{"composed negative", -1, extfloat.Float{Mant: 14757395258967641293, Exp: -67}, false, 3 * ErrorScale / 2},
		{"composed bottom", -345, extfloat.Float{Mant: 17631722963339008633, Exp: -1210}, false, 3 * ErrorScale / 2},
		{"max", 309, extfloat.Float{Mant: 12826677504057425779, Exp: 963}, false, 3 * ErrorScale / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := tab.Power(tt.e)
			if !ok {
				t.Fatalf("Power(%d) not representable", tt.e)
			}
			if p.Float != tt.want {
				t.Fatalf("Power(%d) = %v, want %v", tt.e, p.Float, tt.want)
			}
			if p.Exact != tt.exact || p.Error != tt.error {
				t.Fatalf("Power(%d) exact=%v error=%d, want exact=%v error=%d",
					tt.e, p.Exact, p.Error, tt.exact, tt.error)
			}
		})
	}
}

func TestBase10Layout(t *testing.T) {
	tab := mustBase(t, 10)
	if tab.Base() != 10 || tab.Step() != 10 || tab.Bias() != 35 {
		t.Fatalf("base=%d step=%d bias=%d, want 10, 10, 35", tab.Base(), tab.Step(), tab.Bias())
	}
	if tab.MinExponent() != -350 || tab.MaxExponent() != 309 {
		t.Fatalf("range [%d, %d], want [-350, 309]", tab.MinExponent(), tab.MaxExponent())
	}
	if tab.Small().Len() != 10 || tab.Large().Len() != 66 || len(tab.SmallInts()) != 10 {
		t.Fatalf("sizes small=%d large=%d ints=%d", tab.Small().Len(), tab.Large().Len(), len(tab.SmallInts()))
	}

	// 20 = (37-35)*10 + 0: the large entry at bias+2 and the small identity.
	if got := tab.Large().At(tab.Bias() + 2); got != (extfloat.Float{Mant: 12500000000000000000, Exp: 3}) {
		t.Fatalf("large[bias+2] = %v", got)
	}
	if got := tab.Large().At(0); got.Exp != -1226 {
		t.Fatalf("large[0] = %v, want exponent -1226", got)
	}
}

func TestSmallInt(t *testing.T) {
	tab := mustBase(t, 10)
	want := uint64(1)
	for e := 0; e < tab.Step(); e++ {
		got, ok := tab.SmallInt(e)
		if !ok || got != want {
			t.Fatalf("SmallInt(%d) = (%d, %v), want (%d, true)", e, got, ok, want)
		}
		// The exact integer normalized is the small table entry.
		p, _ := tab.Power(e)
		if norm, _ := (extfloat.Float{Mant: got}).Normalize(); norm != p.Float {
			t.Fatalf("SmallInt(%d) normalized = %v, Power = %v", e, norm, p.Float)
		}
		want *= 10
	}
	if got, ok := tab.SmallInt(9); !ok || got != 1000000000 {
		t.Fatalf("SmallInt(9) = (%d, %v)", got, ok)
	}
	for _, e := range []int{-1, 10, 100} {
		if _, ok := tab.SmallInt(e); ok {
			t.Fatalf("SmallInt(%d) succeeded", e)
		}
	}
}

func TestBoundaries(t *testing.T) {
	for _, base := range Bases() {
		tab := mustBase(t, base)
		minExp, maxExp := tab.MinExponent(), tab.MaxExponent()

		if _, ok := tab.Power(minExp); !ok {
			t.Fatalf("base %d: Power(min %d) failed", base, minExp)
		}
		if _, ok := tab.Power(maxExp); !ok {
			t.Fatalf("base %d: Power(max %d) failed", base, maxExp)
		}
		if p, ok := tab.Power(minExp - 1); ok {
			t.Fatalf("base %d: Power(min-1) = %v, want not representable", base, p)
		}
		if p, ok := tab.Power(maxExp + 1); ok {
			t.Fatalf("base %d: Power(max+1) = %v, want not representable", base, p)
		}
	}
}

func TestForBase(t *testing.T) {
	want := powgen.DefaultBases
	got := Bases()
	if len(got) != len(want) {
		t.Fatalf("Bases() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Bases()[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	for _, base := range []int{-10, 0, 1, 2, 4, 8, 16, 32, 37, 1000} {
		if tab, ok := ForBase(base); ok || tab != nil {
			t.Fatalf("ForBase(%d) = (%v, %v), want (nil, false)", base, tab, ok)
		}
	}
}

func TestLookup(t *testing.T) {
	p, err := Lookup(10, 20)
	if err != nil {
		t.Fatalf("Lookup(10, 20): %v", err)
	}
	if p.Mant != 12500000000000000000 || p.Exp != 3 {
		t.Fatalf("Lookup(10, 20) = %v", p.Float)
	}

	if _, err := Lookup(16, 1); !errors.Is(err, ErrUnsupportedBase) {
		t.Fatalf("Lookup(16, 1) error = %v, want ErrUnsupportedBase", err)
	}
	if _, err := Lookup(10, 310); !errors.Is(err, ErrExponentRange) {
		t.Fatalf("Lookup(10, 310) error = %v, want ErrExponentRange", err)
	}
	if _, err := Lookup(10, -351); !errors.Is(err, ErrExponentRange) {
		t.Fatalf("Lookup(10, -351) error = %v, want ErrExponentRange", err)
	}
}

func TestTablesNormalized(t *testing.T) {
	for _, base := range Bases() {
		tab := mustBase(t, base)
		testutil.RequireNormalized(t, "small", tab.Small())
		testutil.RequireNormalized(t, "large", tab.Large())
	}
}

// composableRange pins MinExponent and MaxExponent for every base so that
// coverage does not rest on the generator's own range computation.
var composableRange = []struct {
	base, minExp, maxExp int
}{
	{3, -720, 659},
	{5, -504, 447},
	{6, -444, 407},
	{7, -407, 373},
	{9, -360, 329},
	{10, -350, 309},
	{11, -333, 296},
	{12, -324, 287},
	{13, -312, 279},
	{14, -304, 271},
	{15, -296, 263},
	{17, -280, 255},
	{18, -273, 251},
	{19, -273, 244},
	{20, -266, 237},
	{21, -266, 237},
	{22, -259, 230},
	{23, -252, 230},
	{24, -252, 223},
	{25, -252, 223},
	{26, -245, 223},
	{27, -240, 215},
	{28, -240, 215},
	{29, -240, 215},
	{30, -234, 209},
	{31, -234, 209},
	{33, -228, 203},
	{34, -228, 203},
	{35, -222, 203},
	{36, -222, 203},
}

func TestComposableRangePinned(t *testing.T) {
	if len(composableRange) != len(Bases()) {
		t.Fatalf("%d pinned ranges for %d bases", len(composableRange), len(Bases()))
	}
	for _, tt := range composableRange {
		tab := mustBase(t, tt.base)
		if tab.MinExponent() != tt.minExp || tab.MaxExponent() != tt.maxExp {
			t.Fatalf("base %d: range [%d, %d], want [%d, %d]",
				tt.base, tab.MinExponent(), tab.MaxExponent(), tt.minExp, tt.maxExp)
		}
		gen, err := powgen.Generate(tt.base)
		if err != nil {
			t.Fatalf("Generate(%d): %v", tt.base, err)
		}
		if gen.MinExponent() != tt.minExp || gen.MaxExponent() != tt.maxExp {
			t.Fatalf("base %d: generated range [%d, %d], want [%d, %d]",
				tt.base, gen.MinExponent(), gen.MaxExponent(), tt.minExp, tt.maxExp)
		}
	}
}

func TestLargeCoverage(t *testing.T) {
	for _, base := range Bases() {
		tab := mustBase(t, base)
		large := tab.Large()

		// Consecutive entries differ by exactly base^step, so the binary
		// exponent rises by floor or ceil of step*log2(base).
		for j := 1; j < large.Len(); j++ {
			prev, cur := large.At(j-1), large.At(j)
			if cur.Exp <= prev.Exp {
				t.Fatalf("base %d: large exponents not increasing at %d: %d then %d", base, j, prev.Exp, cur.Exp)
			}
		}
		if got := large.At(tab.Bias()); got != (extfloat.Float{Mant: 1 << 63, Exp: -63}) {
			t.Fatalf("base %d: large[bias] = %v, want 1", base, got)
		}

		minExp, maxExp := powgen.DoubleRange(base)
		if tab.MinExponent() > minExp || tab.MaxExponent() < maxExp {
			t.Fatalf("base %d: range [%d, %d] does not cover [%d, %d]",
				base, tab.MinExponent(), tab.MaxExponent(), minExp, maxExp)
		}
	}
}

func TestMatchesGenerator(t *testing.T) {
	for _, base := range Bases() {
		tab := mustBase(t, base)
		if err := powgen.Validate(tablesOf(tab)); err != nil {
			t.Fatalf("base %d: %v", base, err)
		}
	}
}

func tablesOf(t *Table) *powgen.Tables {
	return &powgen.Tables{
		Base:     t.Base(),
		Step:     t.Step(),
		Bias:     t.Bias(),
		Small:    t.Small(),
		Large:    t.Large(),
		SmallInt: t.SmallInts(),
	}
}

func TestErrorBoundExhaustive(t *testing.T) {
	one := testutil.ULPs(1, 1)
	for _, base := range Bases() {
		tab := mustBase(t, base)
		for e := tab.MinExponent(); e <= tab.MaxExponent(); e++ {
			p, ok := tab.Power(e)
			if !ok {
				t.Fatalf("base %d: Power(%d) not representable", base, e)
			}
			testutil.RequireWithinULPs(t, p.Float, base, e, testutil.ULPs(int64(p.Error), ErrorScale))
			if p.Error <= ErrorScale/2 {
				testutil.RequireWithinULPs(t, p.Float, base, e, one)
			}
			if p.Exact && powgen.ULPError(p.Float, base, e).Sign() != 0 {
				t.Fatalf("base %d: Power(%d) marked exact but is not", base, e)
			}
		}
	}
}

func TestErrorBoundBase10Worst(t *testing.T) {
	tab := mustBase(t, 10)
	var exps []int
	var got []extfloat.Float
	for _, e := range testutil.ExponentRange(tab.MinExponent(), tab.MaxExponent()) {
		p, _ := tab.Power(e)
		exps = append(exps, e)
		got = append(got, p.Float)
	}
	worst, err := testutil.MaxULPError(10, exps, got)
	if err != nil {
		t.Fatalf("MaxULPError: %v", err)
	}
	if worst.Cmp(big.NewRat(3, 2)) >= 0 {
		t.Fatalf("worst base-10 error %s ULP, want < 1.5", worst.FloatString(4))
	}
	t.Logf("worst base-10 error: %s ULP", worst.FloatString(4))
}

func TestPowerNegativeRemainder(t *testing.T) {
	// -1 = -1*10 + 9: floor division keeps the small index non-negative.
	tab := mustBase(t, 10)
	p, ok := tab.Power(-1)
	if !ok {
		t.Fatal("Power(-1) not representable")
	}
	want := tab.Large().At(tab.Bias() - 1).Mul(tab.Small().At(9))
	if p.Float != want {
		t.Fatalf("Power(-1) = %v, want %v", p.Float, want)
	}
}

func TestPowerConcurrent(t *testing.T) {
	tab := mustBase(t, 10)
	want := make(map[int]Power)
	for e := tab.MinExponent(); e <= tab.MaxExponent(); e++ {
		want[e], _ = tab.Power(e)
	}

	var wg sync.WaitGroup
	errs := make(chan int, 8)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			for _, e := range testutil.DeterministicExponents(seed, tab.MinExponent(), tab.MaxExponent(), 500) {
				if p, _ := tab.Power(e); p != want[e] {
					errs <- e
					return
				}
			}
		}(int64(g))
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Fatalf("concurrent Power(%d) disagreed with sequential result", e)
	}
}
