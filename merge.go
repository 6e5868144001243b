package tstep

import (
	"container/heap"
	"fmt"
	"iter"
)

// MergeState is a snapshot of every input series' current value at a merge
// timestamp, in input order. IterMerge yields a fresh copy at every step, so
// a yielded MergeState may be kept; changing it does not affect the merge.
type MergeState[V any] []V

// cursor walks one series' materialized items. Merge eagerly materializes
// every input into a buffer up front rather than holding live ordered-map
// iterators, which keeps the heap simple and immune to concurrent
// mutation of an input mid-merge.
type cursor[T any, V any] struct {
	items []Pair[T, V]
	pos   int
}

func (c *cursor[T, V]) advance() (Pair[T, V], bool) {
	if c.pos >= len(c.items) {
		return Pair[T, V]{}, false
	}
	p := c.items[c.pos]
	c.pos++
	return p, true
}

type heapItem[T any, V any] struct {
	t   T
	idx int
	v   V
}

type mergeHeap[T any, V any] struct {
	items []heapItem[T, V]
	clk   Clock[T]
}

func (h *mergeHeap[T, V]) Len() int { return len(h.items) }
func (h *mergeHeap[T, V]) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if h.clk.Less(a.t, b.t) {
		return true
	}
	if h.clk.Less(b.t, a.t) {
		return false
	}
	return a.idx < b.idx // deterministic tie-break on ties at equal t
}
func (h *mergeHeap[T, V]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *mergeHeap[T, V]) Push(x any)    { h.items = append(h.items, x.(heapItem[T, V])) }
func (h *mergeHeap[T, V]) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]
	return item
}

// IterMerge synchronously walks series, yielding (t, state) where state
// is the current value of every input at t. Every input must be
// non-floating: either non-empty, or carrying an Explicit default.
func IterMerge[T any, V comparable](clk Clock[T], series []*TimeSeries[T, V]) (iter.Seq2[T, MergeState[V]], error) {
	state := make(MergeState[V], len(series))
	cursors := make([]*cursor[T, V], len(series))
	h := &mergeHeap[T, V]{clk: clk}

	for i, s := range series {
		if s.IsFloating() {
			return nil, fmt.Errorf("%w: series %d is floating", ErrEmptyFloating, i)
		}
		d, err := s.Default()
		if err != nil {
			return nil, err
		}
		state[i] = d
		cursors[i] = &cursor[T, V]{items: s.Items()}
		if first, ok := cursors[i].advance(); ok {
			heap.Push(h, heapItem[T, V]{t: first.T, idx: i, v: first.V})
		}
	}

	return func(yield func(T, MergeState[V]) bool) {
		for h.Len() > 0 {
			top := heap.Pop(h).(heapItem[T, V])
			state[top.idx] = top.v
			snapshot := make(MergeState[V], len(state))
			copy(snapshot, state)
			if !yield(top.t, snapshot) {
				return
			}
			if next, ok := cursors[top.idx].advance(); ok {
				heap.Push(h, heapItem[T, V]{t: next.T, idx: top.idx, v: next.V})
			}
		}
	}, nil
}

// inferMergeDefault chooses the merged series' default when the caller did
// not supply one explicitly: reuse the inputs' common default if they
// agree, else fall back to ExtendBack.
func inferMergeDefault[T any, V comparable](series []*TimeSeries[T, V]) Default[V] {
	if len(series) == 0 {
		return ExtendBack[V]()
	}
	first := series[0].deflt
	for _, s := range series[1:] {
		if s.deflt != first {
			return ExtendBack[V]()
		}
	}
	return first
}

// MergeRaw wraps IterMerge: it collapses successive yields at equal t into
// a single emission keeping the last state per tie, and writes each (t,
// state) into a new TimeSeries[T, MergeState[V]] using
// plain (non-compact) writes. Use Merge instead when you have a fold that reduces the
// per-timestamp state down to a single V.
func MergeRaw[T any, V comparable](clk Clock[T], series []*TimeSeries[T, V], deflt *Default[MergeState[V]]) (*TimeSeries[T, MergeState[V]], error) {
	merged, err := mergeCollapsed(clk, series)
	if err != nil {
		return nil, err
	}
	var d Default[MergeState[V]]
	if deflt != nil {
		d = *deflt
	} else {
		d = ExtendBack[MergeState[V]]()
	}
	out := New(clk, d)
	for _, ts := range merged {
		snapshot := make(MergeState[V], len(ts.state))
		copy(snapshot, ts.state)
		out.Set(ts.t, snapshot, false)
	}
	return out, nil
}

// Merge wraps IterMerge, reducing each timestamp's collapsed state to a
// single V via reduce, and writing the result into a new TimeSeries with
// compact writes. Passing a nil deflt infers one per inferMergeDefault.
func Merge[T any, V comparable](clk Clock[T], series []*TimeSeries[T, V], reduce func(MergeState[V]) V, deflt *Default[V]) (*TimeSeries[T, V], error) {
	merged, err := mergeCollapsed(clk, series)
	if err != nil {
		return nil, err
	}
	d := inferMergeDefault(series)
	if deflt != nil {
		d = *deflt
	}
	out := New(clk, d)
	for _, e := range merged {
		out.Set(e.t, reduce(e.state), true)
	}
	return out, nil
}

type collapsedState[T any, V any] struct {
	t     T
	state MergeState[V]
}

// mergeCollapsed runs IterMerge to completion and buffers successive
// yields at equal t into one entry, keeping the last state observed at
// that t (ties at the same timestamp collapse to the most recent one per
// series, ordered by input index).
func mergeCollapsed[T any, V comparable](clk Clock[T], series []*TimeSeries[T, V]) ([]collapsedState[T, V], error) {
	seq, err := IterMerge(clk, series)
	if err != nil {
		return nil, err
	}
	var out []collapsedState[T, V]
	for t, state := range seq {
		if n := len(out); n > 0 && !clk.Less(out[n-1].t, t) && !clk.Less(t, out[n-1].t) {
			snapshot := make(MergeState[V], len(state))
			copy(snapshot, state)
			out[n-1].state = snapshot
			continue
		}
		snapshot := make(MergeState[V], len(state))
		copy(snapshot, state)
		out = append(out, collapsedState[T, V]{t: t, state: snapshot})
	}
	return out, nil
}

// Sum returns the elementwise sum of series across the union of their
// measurement times. The "0 + series" identity falls out of this when
// series has length 1 — Merge with a single input is itself identity,
// since its only fold input is that input's own value.
func Sum[T any, V Number](clk Clock[T], series ...*TimeSeries[T, V]) (*TimeSeries[T, V], error) {
	return Merge(clk, series, func(s MergeState[V]) V {
		var total V
		for _, v := range s {
			total += v
		}
		return total
	}, nil)
}

// Difference returns a-b across the union of their measurement times.
func Difference[T any, V Number](clk Clock[T], a, b *TimeSeries[T, V]) (*TimeSeries[T, V], error) {
	return Merge(clk, []*TimeSeries[T, V]{a, b}, func(s MergeState[V]) V {
		return s[0] - s[1]
	}, nil)
}

// Multiply returns the elementwise product of series across the union of
// their measurement times.
func Multiply[T any, V Number](clk Clock[T], series ...*TimeSeries[T, V]) (*TimeSeries[T, V], error) {
	return Merge(clk, series, func(s MergeState[V]) V {
		total := V(1)
		for _, v := range s {
			total *= v
		}
		return total
	}, nil)
}

// AddScalar returns a copy of ts with scalar added at every one of ts's
// own measurement times — "scalar at every timestamp of the left operand",
// as distinct from Sum's union-of-times rule for two series. AddScalar(ts,
// 0) is the identity.
func AddScalar[T any, V Number](ts *TimeSeries[T, V], scalar V) *TimeSeries[T, V] {
	out := New(ts.clk, ts.deflt)
	for t, v := range ts.Iter() {
		out.points.Set(t, v+scalar)
	}
	return out
}
