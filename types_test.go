package tstep

import (
	"errors"
	"testing"
)

func TestIsFloatingAndDefault(t *testing.T) {
	floating := New[float64, float64](FloatClock{}, ExtendBack[float64]())
	if !floating.IsFloating() {
		t.Fatal("empty ExtendBack series should be floating")
	}
	if _, err := floating.Default(); !errors.Is(err, ErrEmptyFloating) {
		t.Fatalf("Default() on a floating series = %v, want ErrEmptyFloating", err)
	}

	floating.Set(0, 5, false)
	if floating.IsFloating() {
		t.Fatal("series with a recorded point should not be floating")
	}
	d, err := floating.Default()
	if err != nil || d != 5 {
		t.Fatalf("Default() after first write = %v,%v, want 5,nil", d, err)
	}
}

func TestFromMapSortsByKey(t *testing.T) {
	ts := FromMap[float64, float64](FloatClock{}, ExtendBack[float64](), map[float64]float64{
		3: 30, 1: 10, 2: 20,
	})
	items := ts.Items()
	want := []float64{1, 2, 3}
	for i, w := range want {
		if items[i].T != w {
			t.Fatalf("Items()[%d].T = %v, want %v", i, items[i].T, w)
		}
	}
}

func TestCopyIsIndependent(t *testing.T) {
	ts := newFloatSeries(Pair[float64, float64]{T: 0, V: 1})
	cp := ts.Copy()
	cp.Set(10, 99, false)
	if ts.NPoints() == cp.NPoints() {
		t.Fatal("mutating the copy should not affect the original")
	}
}

func TestEqualIgnoresDefaultAndMetadata(t *testing.T) {
	a := newFloatSeries(Pair[float64, float64]{T: 0, V: 1})
	b := New[float64, float64](FloatClock{}, Explicit(99.0))
	b.Set(0, 1, false)
	b.Name = "different name"
	if !a.Equal(b) {
		t.Fatal("Equal should ignore default and Name/Comment, comparing only ordered pairs")
	}
}

func TestEqualDetectsDifference(t *testing.T) {
	a := newFloatSeries(Pair[float64, float64]{T: 0, V: 1})
	b := newFloatSeries(Pair[float64, float64]{T: 0, V: 2})
	if a.Equal(b) {
		t.Fatal("series with different values should not be equal")
	}
}

func TestFirstLastOnEmptySeries(t *testing.T) {
	ts := New[float64, float64](FloatClock{}, ExtendBack[float64]())
	if _, _, ok := ts.First(); ok {
		t.Fatal("First() on an empty series should report ok=false")
	}
	if _, _, ok := ts.Last(); ok {
		t.Fatal("Last() on an empty series should report ok=false")
	}
}
