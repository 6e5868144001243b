package tstep

import (
	"fmt"
	"iter"
)

// Period is a maximal half-open [T0, T1) segment over which the step
// function holds a constant Value — the unit the period iterator yields.
type Period[T any, V any] struct {
	T0, T1 T
	V      V
}

// Iter returns every recorded (t, v) pair in ascending time order.
func (ts *TimeSeries[T, V]) Iter() iter.Seq2[T, V] {
	return func(yield func(T, V) bool) {
		ts.points.Scan(func(e entry[T, V]) bool {
			return yield(e.t, e.v)
		})
	}
}

// IterPeriods is the primary traversal primitive: it yields the constant-
// value segments of the step function covering [start, end]. The first
// segment's T0 is start; each subsequent T0 is the next recorded key
// greater than start and < end; each segment's T1 is the following
// recorded key, or end for the final segment. end itself is treated as
// exclusive of any new step: a measurement recorded exactly at end closes
// the final period rather than opening a new one.
//
// pred, if non-nil, filters adjacent periods: a period is only emitted if
// pred accepts it. A nil pred accepts everything.
func (ts *TimeSeries[T, V]) IterPeriods(start, end T, pred func(Period[T, V]) bool) iter.Seq[Period[T, V]] {
	return func(yield func(Period[T, V]) bool) {
		if !ts.clk.Less(start, end) {
			return
		}
		t0 := start
		v0, err := ts.Get(start, Previous)
		if err != nil {
			return
		}
		for {
			next, ok := ts.points.Next(t0)
			var t1 T
			if !ok || !ts.clk.Less(next.t, end) {
				t1 = end
			} else {
				t1 = next.t
			}
			p := Period[T, V]{T0: t0, T1: t1, V: v0}
			if pred == nil || pred(p) {
				if !yield(p) {
					return
				}
			}
			if !ts.clk.Less(t1, end) {
				return
			}
			t0, v0 = next.t, next.v
		}
	}
}

// periodsSlice materializes IterPeriods into a slice, the eager evaluation
// required whenever the caller is about to mutate the same series it is
// traversing (SetInterval, RemovePointsFromInterval, Slice).
func (ts *TimeSeries[T, V]) periodsSlice(start, end T, pred func(Period[T, V]) bool) ([]Period[T, V], error) {
	if ts.IsFloating() {
		return nil, ErrEmptyFloating
	}
	if !ts.clk.Less(start, end) {
		return nil, fmt.Errorf("%w: start must precede end", ErrBadBoundary)
	}
	var out []Period[T, V]
	for p := range ts.IterPeriods(start, end, pred) {
		out = append(out, p)
	}
	return out, nil
}

// IterIntervals yields sliding windows of n consecutive measurements, each
// as a []Pair of length n, in ascending time order. n must be >= 1.
func (ts *TimeSeries[T, V]) IterIntervals(n int) iter.Seq[[]Pair[T, V]] {
	return func(yield func([]Pair[T, V]) bool) {
		if n < 1 {
			return
		}
		items := ts.Items()
		for i := 0; i+n <= len(items); i++ {
			window := make([]Pair[T, V], n)
			copy(window, items[i:i+n])
			if !yield(window) {
				return
			}
		}
	}
}
