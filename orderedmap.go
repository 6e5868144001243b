package tstep

import "github.com/tidwall/btree"

// entry is the unit tidwall/btree's generic BTreeG stores. Only t
// participates in ordering (see orderedMap.less); v rides along as the
// payload.
type entry[T any, V any] struct {
	t T
	v V
}

// orderedMap is a sorted T->V mapping supporting bisect (floor/ceil/next)
// and ordered iteration, backed by
// github.com/tidwall/btree's generic BTreeG rather than a hand-rolled tree
// (see DESIGN.md).
type orderedMap[T any, V any] struct {
	clk  Clock[T]
	tree *btree.BTreeG[entry[T, V]]
}

func newOrderedMap[T any, V any](clk Clock[T]) *orderedMap[T, V] {
	less := func(a, b entry[T, V]) bool { return clk.Less(a.t, b.t) }
	return &orderedMap[T, V]{clk: clk, tree: btree.NewBTreeG(less)}
}

func (m *orderedMap[T, V]) Len() int { return m.tree.Len() }

func (m *orderedMap[T, V]) Get(t T) (V, bool) {
	e, ok := m.tree.Get(entry[T, V]{t: t})
	return e.v, ok
}

func (m *orderedMap[T, V]) Set(t T, v V) {
	m.tree.Set(entry[T, V]{t: t, v: v})
}

func (m *orderedMap[T, V]) Delete(t T) bool {
	_, ok := m.tree.Delete(entry[T, V]{t: t})
	return ok
}

func (m *orderedMap[T, V]) Min() (entry[T, V], bool) { return m.tree.Min() }
func (m *orderedMap[T, V]) Max() (entry[T, V], bool) { return m.tree.Max() }

// Floor returns the entry with the greatest key <= t, the "previous
// measurement" lookup that the whole point-access model is built on.
func (m *orderedMap[T, V]) Floor(t T) (entry[T, V], bool) {
	var found entry[T, V]
	ok := false
	m.tree.Descend(entry[T, V]{t: t}, func(item entry[T, V]) bool {
		found, ok = item, true
		return false
	})
	return found, ok
}

// Ceil returns the entry with the least key >= t.
func (m *orderedMap[T, V]) Ceil(t T) (entry[T, V], bool) {
	var found entry[T, V]
	ok := false
	m.tree.Ascend(entry[T, V]{t: t}, func(item entry[T, V]) bool {
		found, ok = item, true
		return false
	})
	return found, ok
}

// Next returns the entry with the least key strictly greater than t
// (bisect_right in the original).
func (m *orderedMap[T, V]) Next(t T) (entry[T, V], bool) {
	var found entry[T, V]
	ok := false
	m.tree.Ascend(entry[T, V]{t: t}, func(item entry[T, V]) bool {
		if !m.clk.Less(t, item.t) {
			return true // item.t == t, keep scanning for the real successor
		}
		found, ok = item, true
		return false
	})
	return found, ok
}

// Scan calls fn for every entry in ascending key order until fn returns
// false.
func (m *orderedMap[T, V]) Scan(fn func(entry[T, V]) bool) {
	m.tree.Scan(fn)
}

// AscendFrom calls fn for every entry with key >= from, in ascending order,
// until fn returns false.
func (m *orderedMap[T, V]) AscendFrom(from T, fn func(entry[T, V]) bool) {
	m.tree.Ascend(entry[T, V]{t: from}, fn)
}

// Clone returns a shallow copy of the map (new tree, same entries).
func (m *orderedMap[T, V]) Clone() *orderedMap[T, V] {
	out := newOrderedMap[T, V](m.clk)
	m.Scan(func(e entry[T, V]) bool {
		out.Set(e.t, e.v)
		return true
	})
	return out
}
