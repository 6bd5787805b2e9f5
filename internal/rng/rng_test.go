package rng

import "testing"

func TestSameSeedSameStream(t *testing.T) {
	a := New(12345)
	b := New(12345)

	for i := 0; i < 100; i++ {
		if av, bv := a.Next(), b.Next(); av != bv {
			t.Fatalf("streams diverge at draw %d: %d != %d", i, av, bv)
		}
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	a := New(1)
	b := New(2)

	same := true
	for i := 0; i < 10; i++ {
		if a.Next() != b.Next() {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical first 10 draws")
	}
}

func TestReseedRestartsStream(t *testing.T) {
	s := New(99)
	first := s.Next()
	s.Next()
	s.Next()

	s.Reseed(99)
	if got := s.Next(); got != first {
		t.Errorf("after reseed first draw = %d, want %d", got, first)
	}
}

func TestIntnBounds(t *testing.T) {
	s := New(7)
	for i := 0; i < 1000; i++ {
		v := s.Intn(10)
		if v < 0 || v >= 10 {
			t.Fatalf("Intn(10) = %d out of range", v)
		}
	}
	if s.Intn(0) != 0 || s.Intn(-5) != 0 {
		t.Error("Intn with non-positive n should return 0")
	}
}

func TestIntRangeBounds(t *testing.T) {
	s := New(7)
	for i := 0; i < 1000; i++ {
		v := s.IntRange(3, 8)
		if v < 3 || v > 8 {
			t.Fatalf("IntRange(3, 8) = %d out of range", v)
		}
	}
	if s.IntRange(5, 5) != 5 {
		t.Error("degenerate IntRange should return min")
	}
}

func TestFloatRangeBounds(t *testing.T) {
	s := New(7)
	for i := 0; i < 1000; i++ {
		v := s.FloatRange(1.5, 2.5)
		if v < 1.5 || v >= 2.5 {
			t.Fatalf("FloatRange(1.5, 2.5) = %v out of range", v)
		}
	}
}
