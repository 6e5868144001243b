package tstep

import "testing"

func TestOrderedMapFloorCeilNext(t *testing.T) {
	m := newOrderedMap[float64, string](FloatClock{})
	m.Set(1, "a")
	m.Set(3, "b")
	m.Set(5, "c")

	if e, ok := m.Floor(0); ok {
		t.Fatalf("Floor(0) = %v, want not found", e)
	}
	if e, ok := m.Floor(2); !ok || e.v != "a" {
		t.Fatalf("Floor(2) = %v,%v want a,true", e, ok)
	}
	if e, ok := m.Floor(3); !ok || e.v != "b" {
		t.Fatalf("Floor(3) = %v,%v want b,true", e, ok)
	}
	if e, ok := m.Ceil(2); !ok || e.v != "b" {
		t.Fatalf("Ceil(2) = %v,%v want b,true", e, ok)
	}
	if e, ok := m.Next(3); !ok || e.v != "c" {
		t.Fatalf("Next(3) = %v,%v want c,true", e, ok)
	}
	if _, ok := m.Next(5); ok {
		t.Fatal("Next(5) should report nothing past the last key")
	}
}

func TestOrderedMapMinMaxLen(t *testing.T) {
	m := newOrderedMap[float64, int](FloatClock{})
	if m.Len() != 0 {
		t.Fatalf("empty map Len() = %d", m.Len())
	}
	m.Set(2, 20)
	m.Set(1, 10)
	m.Set(3, 30)
	if got, ok := m.Min(); !ok || got.t != 1 {
		t.Fatalf("Min() = %v,%v", got, ok)
	}
	if got, ok := m.Max(); !ok || got.t != 3 {
		t.Fatalf("Max() = %v,%v", got, ok)
	}
	if m.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", m.Len())
	}
}

func TestOrderedMapDeleteAndClone(t *testing.T) {
	m := newOrderedMap[float64, int](FloatClock{})
	m.Set(1, 10)
	m.Set(2, 20)

	clone := m.Clone()
	if !m.Delete(1) {
		t.Fatal("Delete(1) should succeed")
	}
	if m.Delete(1) {
		t.Fatal("second Delete(1) should fail")
	}
	if _, ok := m.Get(1); ok {
		t.Fatal("deleted key should not be found")
	}
	if _, ok := clone.Get(1); !ok {
		t.Fatal("clone should be unaffected by deletion on the original")
	}
}

func TestOrderedMapScanOrder(t *testing.T) {
	m := newOrderedMap[float64, int](FloatClock{})
	for _, t0 := range []float64{5, 1, 3, 2, 4} {
		m.Set(t0, int(t0))
	}
	var seen []float64
	m.Scan(func(e entry[float64, int]) bool {
		seen = append(seen, e.t)
		return true
	})
	want := []float64{1, 2, 3, 4, 5}
	for i, v := range want {
		if seen[i] != v {
			t.Fatalf("Scan order = %v, want %v", seen, want)
		}
	}
}
