package tstep

import "testing"

func boolDomain(pairs ...Pair[float64, bool]) *Domain[float64] {
	d := NewDomain[float64](FloatClock{})
	for _, p := range pairs {
		d.Set(p.T, p.V, true)
	}
	return d
}

func TestDomainIntervalsAndEmpty(t *testing.T) {
	empty := NewDomain[float64](FloatClock{})
	if !empty.IsEmpty() {
		t.Fatal("fresh domain should be empty")
	}

	d := boolDomain(
		Pair[float64, bool]{T: 0, V: false},
		Pair[float64, bool]{T: 10, V: true},
		Pair[float64, bool]{T: 20, V: false},
	)
	var got []Period[float64, bool]
	for p := range d.Intervals() {
		got = append(got, p)
	}
	if len(got) != 1 || got[0].T0 != 10 || got[0].T1 != 20 {
		t.Fatalf("Intervals() = %v, want one run [10,20)", got)
	}
	if d.IsEmpty() {
		t.Fatal("domain with a true run should not be empty")
	}
}

func TestDomainLowerUpper(t *testing.T) {
	d := boolDomain(
		Pair[float64, bool]{T: 0, V: false},
		Pair[float64, bool]{T: 10, V: true},
		Pair[float64, bool]{T: 20, V: false},
		Pair[float64, bool]{T: 30, V: true},
	)
	lo, ok := d.Lower().Value()
	if !ok || lo != 10 {
		t.Fatalf("Lower() = %v,%v, want 10,true", lo, ok)
	}
	hi, ok := d.Upper().Value()
	if !ok {
		t.Fatalf("Upper() should be finite, got %v", hi)
	}

	empty := NewDomain[float64](FloatClock{})
	if empty.Lower().IsFinite() {
		t.Fatal("Lower() of an empty domain should be -inf")
	}
	if empty.Upper().IsFinite() {
		t.Fatal("Upper() of an empty domain should be +inf")
	}
}

func TestDomainAndIntersection(t *testing.T) {
	a := boolDomain(
		Pair[float64, bool]{T: 0, V: true},
		Pair[float64, bool]{T: 10, V: false},
	)
	b := boolDomain(
		Pair[float64, bool]{T: 5, V: true},
		Pair[float64, bool]{T: 15, V: false},
	)
	inter, err := a.And(b)
	if err != nil {
		t.Fatalf("And error: %v", err)
	}
	var got []Period[float64, bool]
	for p := range inter.Intervals() {
		got = append(got, p)
	}
	if len(got) != 1 || got[0].T0 != 5 || got[0].T1 != 10 {
		t.Fatalf("And() = %v, want one run [5,10)", got)
	}
}

func TestDomainAndDisjointIsEmpty(t *testing.T) {
	a := boolDomain(Pair[float64, bool]{T: 0, V: true}, Pair[float64, bool]{T: 10, V: false})
	b := boolDomain(Pair[float64, bool]{T: 20, V: true}, Pair[float64, bool]{T: 30, V: false})
	inter, err := a.And(b)
	if err != nil {
		t.Fatalf("And error: %v", err)
	}
	if !inter.IsEmpty() {
		t.Fatal("disjoint domains should intersect to empty")
	}
}

func TestDomainOr(t *testing.T) {
	a := boolDomain(Pair[float64, bool]{T: 0, V: true}, Pair[float64, bool]{T: 10, V: false})
	b := boolDomain(Pair[float64, bool]{T: 5, V: true}, Pair[float64, bool]{T: 15, V: false})
	union, err := Or[float64](FloatClock{}, a, b)
	if err != nil {
		t.Fatalf("Or error: %v", err)
	}
	v, _ := union.Get(12, Previous)
	if !v {
		t.Fatal("union should be true at t=12 (covered by b)")
	}
	v, _ = union.Get(16, Previous)
	if v {
		t.Fatal("union should be false at t=16 (covered by neither)")
	}
}

func TestDomainXor(t *testing.T) {
	a := boolDomain(Pair[float64, bool]{T: 0, V: true}, Pair[float64, bool]{T: 10, V: false})
	b := boolDomain(Pair[float64, bool]{T: 5, V: true}, Pair[float64, bool]{T: 15, V: false})
	xor, err := Xor[float64](FloatClock{}, a, b)
	if err != nil {
		t.Fatalf("Xor error: %v", err)
	}
	v, _ := xor.Get(2, Previous)
	if !v {
		t.Fatal("xor at t=2 should be true (only a)")
	}
	v, _ = xor.Get(7, Previous)
	if v {
		t.Fatal("xor at t=7 should be false (both true)")
	}
	v, _ = xor.Get(12, Previous)
	if !v {
		t.Fatal("xor at t=12 should be true (only b)")
	}
}

func TestThreshold(t *testing.T) {
	ts := newFloatSeries(
		Pair[float64, float64]{T: 0, V: 1},
		Pair[float64, float64]{T: 10, V: 5},
		Pair[float64, float64]{T: 20, V: 2},
	)
	d := Threshold(ts, 3.0, false)
	v, _ := d.Get(0, Previous)
	if v {
		t.Fatal("Threshold(3, exclusive) at t=0 (value 1) should be false")
	}
	v, _ = d.Get(10, Previous)
	if !v {
		t.Fatal("Threshold(3, exclusive) at t=10 (value 5) should be true")
	}
}

func TestThresholdInclusive(t *testing.T) {
	ts := newFloatSeries(Pair[float64, float64]{T: 0, V: 3})
	d := Threshold(ts, 3.0, true)
	v, _ := d.Get(0, Previous)
	if !v {
		t.Fatal("Threshold(3, inclusive) at value==3 should be true")
	}
	d2 := Threshold(ts, 3.0, false)
	v, _ = d2.Get(0, Previous)
	if v {
		t.Fatal("Threshold(3, exclusive) at value==3 should be false")
	}
}

func TestToBoolInvert(t *testing.T) {
	d := boolDomain(Pair[float64, bool]{T: 0, V: true}, Pair[float64, bool]{T: 10, V: false})
	plain := d.ToBool(false)
	v, _ := plain.Get(5, Previous)
	if !v {
		t.Fatal("ToBool(false) should mirror the domain")
	}
	inverted := d.ToBool(true)
	v, _ = inverted.Get(5, Previous)
	if v {
		t.Fatal("ToBool(true) should invert the domain")
	}
}
