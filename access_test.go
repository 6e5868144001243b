package tstep

import (
	"errors"
	"testing"
)

func newFloatSeries(pairs ...Pair[float64, float64]) *TimeSeries[float64, float64] {
	return FromPairs(FloatClock{}, ExtendBack[float64](), pairs)
}

func TestGetPreviousAndDefault(t *testing.T) {
	ts := newFloatSeries(
		Pair[float64, float64]{T: 10, V: 1},
		Pair[float64, float64]{T: 20, V: 2},
	)
	v, err := ts.Get(5, Previous)
	if err != nil || v != 1 {
		t.Fatalf("Get(5) = %v,%v, want 1,nil", v, err)
	}
	v, err = ts.Get(15, Previous)
	if err != nil || v != 1 {
		t.Fatalf("Get(15) = %v,%v, want 1,nil", v, err)
	}
	v, err = ts.Get(25, Previous)
	if err != nil || v != 2 {
		t.Fatalf("Get(25) = %v,%v, want 2,nil", v, err)
	}
}

func TestGetEmptyFloatingErrors(t *testing.T) {
	ts := New[float64, float64](FloatClock{}, ExtendBack[float64]())
	if _, err := ts.Get(1, Previous); !errors.Is(err, ErrEmptyFloating) {
		t.Fatalf("Get on empty floating series: err = %v, want ErrEmptyFloating", err)
	}
}

func TestGetExplicitDefaultOnEmptySeries(t *testing.T) {
	ts := New[float64, float64](FloatClock{}, Explicit(42.0))
	v, err := ts.Get(1, Previous)
	if err != nil || v != 42 {
		t.Fatalf("Get on empty explicit series = %v,%v, want 42,nil", v, err)
	}
}

func TestGetLinearInterpolation(t *testing.T) {
	ts := newFloatSeries(
		Pair[float64, float64]{T: 0, V: 0},
		Pair[float64, float64]{T: 10, V: 10},
	)
	v, err := GetLinear(ts, 5.0)
	if err != nil || !almostEq(v, 5, 1e-9) {
		t.Fatalf("GetLinear(5) = %v,%v, want 5", v, err)
	}
	v, err = GetLinear(ts, 20.0)
	if err != nil || v != 10 {
		t.Fatalf("GetLinear(20) past last key = %v,%v, want 10", v, err)
	}
}

func TestSetCompactSkipsRedundantWrite(t *testing.T) {
	ts := newFloatSeries(Pair[float64, float64]{T: 0, V: 1})
	ts.Set(5, 1, true)
	if ts.NPoints() != 1 {
		t.Fatalf("compact Set of an identical value should be a no-op, NPoints() = %d", ts.NPoints())
	}
	ts.Set(5, 2, true)
	if ts.NPoints() != 2 {
		t.Fatalf("compact Set of a different value should write, NPoints() = %d", ts.NPoints())
	}
}

func TestRemoveNoSuchMeasurement(t *testing.T) {
	ts := newFloatSeries(Pair[float64, float64]{T: 0, V: 1})
	if err := ts.Remove(0); err != nil {
		t.Fatalf("Remove(0) = %v, want nil", err)
	}
	if err := ts.Remove(0); !errors.Is(err, ErrNoSuchMeasurement) {
		t.Fatalf("second Remove(0) = %v, want ErrNoSuchMeasurement", err)
	}
}

func TestSetIntervalRestoresRightEndpoint(t *testing.T) {
	ts := newFloatSeries(
		Pair[float64, float64]{T: 0, V: 1},
		Pair[float64, float64]{T: 10, V: 2},
		Pair[float64, float64]{T: 20, V: 3},
	)
	if err := ts.SetInterval(5, 15, 99, false); err != nil {
		t.Fatalf("SetInterval error: %v", err)
	}
	v, _ := ts.Get(5, Previous)
	if v != 99 {
		t.Fatalf("value inside [5,15) = %v, want 99", v)
	}
	v, _ = ts.Get(15, Previous)
	if v != 2 {
		t.Fatalf("value restored at 15 = %v, want 2 (pre-call value)", v)
	}
	v, _ = ts.Get(20, Previous)
	if v != 3 {
		t.Fatalf("value at 20 outside interval = %v, want 3 (unaffected)", v)
	}
}

func TestSetIntervalBadBoundary(t *testing.T) {
	ts := newFloatSeries(Pair[float64, float64]{T: 0, V: 1})
	if err := ts.SetInterval(10, 5, 0, false); !errors.Is(err, ErrBadBoundary) {
		t.Fatalf("SetInterval with start>=end = %v, want ErrBadBoundary", err)
	}
}

func TestRemovePointsFromIntervalPreservesOutsideSteps(t *testing.T) {
	ts := newFloatSeries(
		Pair[float64, float64]{T: 0, V: 1},
		Pair[float64, float64]{T: 10, V: 2},
		Pair[float64, float64]{T: 20, V: 3},
	)
	if err := ts.RemovePointsFromInterval(5, 20); err != nil {
		t.Fatalf("RemovePointsFromInterval error: %v", err)
	}
	if ts.NPoints() != 2 {
		t.Fatalf("NPoints() = %d, want 2 (0 and 20 survive)", ts.NPoints())
	}
	v, _ := ts.Get(15, Previous)
	if v != 1 {
		t.Fatalf("value at 15 after removal = %v, want 1 (carried from t=0)", v)
	}
	v, _ = ts.Get(20, Previous)
	if v != 3 {
		t.Fatalf("value at 20 = %v, want 3 (untouched, interval is half-open)", v)
	}
}

func TestSliceAlwaysEmitsBothEndpoints(t *testing.T) {
	ts := newFloatSeries(
		Pair[float64, float64]{T: 0, V: 1},
		Pair[float64, float64]{T: 10, V: 2},
	)
	sliced, err := ts.Slice(5, 8)
	if err != nil {
		t.Fatalf("Slice error: %v", err)
	}
	if _, err := sliced.Get(5, Previous); err != nil {
		t.Fatalf("Slice should have a point at start: %v", err)
	}
	v, err := sliced.Get(8, Previous)
	if err != nil || v != 1 {
		t.Fatalf("Slice should have a point at end with value 1, got %v,%v", v, err)
	}
}
