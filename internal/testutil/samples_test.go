package testutil

import "testing"

func TestExponentRange(t *testing.T) {
	got := ExponentRange(-2, 2)
	want := []int{-2, -1, 0, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if ExponentRange(3, 2) != nil {
		t.Fatal("empty range should be nil")
	}
}

func TestDeterministicExponentsReproducible(t *testing.T) {
	a := DeterministicExponents(42, -350, 309, 100)
	b := DeterministicExponents(42, -350, 309, 100)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: %d != %d", i, a[i], b[i])
		}
		if a[i] < -350 || a[i] > 309 {
			t.Fatalf("index %d: %d outside range", i, a[i])
		}
	}
}

func TestDeterministicMantissasNormalized(t *testing.T) {
	for i, m := range DeterministicMantissas(1, 100) {
		if m>>63 != 1 {
			t.Fatalf("index %d: %#x not normalized", i, m)
		}
	}
}
