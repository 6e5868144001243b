package tstep

import (
	"iter"
)

// Domain is a boolean-valued TimeSeries representing a union of half-open
// true-intervals: the values alternate false/true/false/true... starting
// with false. It is used to mask and restrict other operations (a "Mask").
type Domain[T any] struct {
	*TimeSeries[T, bool]
}

// NewDomain builds an empty Domain (no true intervals) with an explicit
// false default — Domain never extends-back, unlike a general TimeSeries.
func NewDomain[T any](clk Clock[T]) *Domain[T] {
	return &Domain[T]{New(clk, Explicit(false))}
}

// Intervals yields (t0, t1) for every maximal run whose value is true.
func (d *Domain[T]) Intervals() iter.Seq[Period[T, bool]] {
	return func(yield func(Period[T, bool]) bool) {
		items := d.Items()
		for i, it := range items {
			if !it.V {
				continue
			}
			t1 := it.T
			if i+1 < len(items) {
				t1 = items[i+1].T
			}
			if !yield(Period[T, bool]{T0: it.T, T1: t1, V: true}) {
				return
			}
		}
	}
}

// IsEmpty reports whether no true interval exists.
func (d *Domain[T]) IsEmpty() bool {
	for range d.Intervals() {
		return false
	}
	return true
}

// Lower returns the start of the first true interval, or -∞ if empty.
func (d *Domain[T]) Lower() Bound[T] {
	for p := range d.Intervals() {
		return FiniteBound(p.T0)
	}
	return NegInfBound[T]()
}

// Upper returns the end of the last true interval, or +∞ if empty.
func (d *Domain[T]) Upper() Bound[T] {
	var last Bound[T]
	found := false
	for p := range d.Intervals() {
		last = FiniteBound(p.T1)
		found = true
	}
	if !found {
		return PosInfBound[T]()
	}
	return last
}

func maxBound[T any](clk Clock[T], a, b Bound[T]) Bound[T] {
	if boundLess(clk, a, b) {
		return b
	}
	return a
}

func minBound[T any](clk Clock[T], a, b Bound[T]) Bound[T] {
	if boundLess(clk, a, b) {
		return a
	}
	return b
}

// And returns the intersection of d and other: the overlap window
// [max(lower_d, lower_other), min(upper_d, upper_other)], pointwise ANDed
// at every key either side has within that window, then compacted.
func (d *Domain[T]) And(other *Domain[T]) (*Domain[T], error) {
	lo := maxBound(d.clk, d.Lower(), other.Lower())
	hi := minBound(d.clk, d.Upper(), other.Upper())
	out := NewDomain[T](d.clk)
	if !boundLess(d.clk, lo, hi) {
		return out, nil
	}
	loT, _ := lo.Value()
	hiT, _ := hi.Value()

	seen := newOrderedMap[T, struct{}](d.clk)
	collectKeys := func(ts *TimeSeries[T, bool]) {
		ts.points.AscendFrom(loT, func(e entry[T, bool]) bool {
			if d.clk.Less(hiT, e.t) {
				return false
			}
			seen.Set(e.t, struct{}{})
			return true
		})
	}
	collectKeys(d.TimeSeries)
	collectKeys(other.TimeSeries)
	seen.Set(loT, struct{}{})

	seen.Scan(func(e entry[T, struct{}]) bool {
		v1, _ := d.Get(e.t, Previous)
		v2, _ := other.Get(e.t, Previous)
		out.Set(e.t, v1 && v2, true)
		return true
	})
	return out, nil
}

// Or returns the union of series across the full timeline: true wherever
// any input is true.
func Or[T any](clk Clock[T], series ...*Domain[T]) (*Domain[T], error) {
	ts := make([]*TimeSeries[T, bool], len(series))
	for i, s := range series {
		ts[i] = s.TimeSeries
	}
	merged, err := Merge(clk, ts, func(s MergeState[bool]) bool {
		for _, v := range s {
			if v {
				return true
			}
		}
		return false
	}, ptrDefault(Explicit(false)))
	if err != nil {
		return nil, err
	}
	return &Domain[T]{merged}, nil
}

// Xor returns the symmetric difference of a and b: true wherever exactly
// one of them is true.
func Xor[T any](clk Clock[T], a, b *Domain[T]) (*Domain[T], error) {
	merged, err := Merge(clk, []*TimeSeries[T, bool]{a.TimeSeries, b.TimeSeries}, func(s MergeState[bool]) bool {
		return s[0] != s[1]
	}, ptrDefault(Explicit(false)))
	if err != nil {
		return nil, err
	}
	return &Domain[T]{merged}, nil
}

func ptrDefault[V comparable](d Default[V]) *Default[V] { return &d }

// Threshold converts a Number-valued TimeSeries into a Domain: true where
// the value is above v (or >= v when inclusive), false otherwise.
func Threshold[T any, V Number](ts *TimeSeries[T, V], v V, inclusive bool) *Domain[T] {
	d := NewDomain[T](ts.clk)
	for t, val := range ts.Iter() {
		above := val > v
		if inclusive {
			above = val >= v
		}
		d.Set(t, above, true)
	}
	return d
}

// MaskFromTimeSeries is the boundary resolver's "> 0" coercion: when a
// plain TimeSeries is supplied where a mask is expected, it is converted
// to a Domain by thresholding above the zero value.
func MaskFromTimeSeries[T any, V Number](ts *TimeSeries[T, V]) *Domain[T] {
	var zero V
	return Threshold(ts, zero, false)
}

// ToDomainFrom builds a Domain from any bool-valued TimeSeries, optionally
// restricted to [start, end]. It normalizes the input into Domain's
// explicit-false-default, compacted representation.
func ToDomainFrom[T any](ts *TimeSeries[T, bool], start, end *T) (*Domain[T], error) {
	d := NewDomain[T](ts.clk)
	if start != nil {
		v, err := ts.Get(*start, Previous)
		if err != nil {
			return nil, err
		}
		d.Set(*start, v, true)
	}
	for t, v := range ts.Iter() {
		if start != nil && ts.clk.Less(t, *start) {
			continue
		}
		if end != nil && ts.clk.Less(*end, t) {
			continue
		}
		d.Set(t, v, true)
	}
	if end != nil {
		d.Set(*end, false, true)
	}
	if d.IsEmpty() {
		return d, nil
	}
	return d, nil
}

// ToBool returns a plain bool-valued TimeSeries equal to the Domain's
// content, optionally inverted.
func (d *Domain[T]) ToBool(invert bool) *TimeSeries[T, bool] {
	out := New(d.clk, Explicit(false))
	for t, v := range d.Iter() {
		if invert {
			v = !v
		}
		out.Set(t, v, true)
	}
	return out
}
