package tstep

import "fmt"

// DataframeSink is an external dataframe adapter boundary: it consumes an
// ordered sequence of (timestamp, value) pairs plus a regular index
// spanning [start, end), and must support forward-fill and reindexing.
// This stays an interface boundary rather than a wrapper around a named
// third-party implementation (see DESIGN.md).
type DataframeSink[T any, V any] interface {
	// Reindex receives the regular grid the caller wants the series
	// expressed over.
	Reindex(grid []T) error
	// ForwardFill writes (t, v), filling any grid point between the
	// previous write and t with the previous value.
	ForwardFill(t T, v V) error
}

// SliceDataframe is a minimal in-memory DataframeSink, enough to exercise
// the adapter contract without pulling in an external dataframe library.
type SliceDataframe[T any, V any] struct {
	grid []T
	rows []Pair[T, V]
	last V
	have bool
}

// NewSliceDataframe returns an empty sink.
func NewSliceDataframe[T any, V any]() *SliceDataframe[T, V] {
	return &SliceDataframe[T, V]{}
}

func (d *SliceDataframe[T, V]) Reindex(grid []T) error {
	d.grid = grid
	d.rows = d.rows[:0]
	return nil
}

// ForwardFill appends (t, v) as one row. It records only the writes it
// receives: grid points between two writes are not filled in.
func (d *SliceDataframe[T, V]) ForwardFill(t T, v V) error {
	d.rows = append(d.rows, Pair[T, V]{T: t, V: v})
	d.last, d.have = v, true
	return nil
}

// Rows returns every (t, v) pair written so far, in write order.
func (d *SliceDataframe[T, V]) Rows() []Pair[T, V] {
	return d.rows
}

// ExportTo walks ts under a mask-free [start, end) window and writes one
// forward-filled row per grid point into sink, erroring ErrMissingAdapter
// if sink is nil.
func ExportTo[T any, V Number](ts *TimeSeries[T, V], clk steppableClock[T], start, end T, period float64, sink DataframeSink[T, V]) error {
	if sink == nil {
		return fmt.Errorf("%w: no dataframe sink configured", ErrMissingAdapter)
	}
	rows, err := Sample(ts, clk, period, start, end, Previous)
	if err != nil {
		return err
	}
	for len(rows) > 0 && !clk.Less(rows[len(rows)-1].T, end) {
		rows = rows[:len(rows)-1] // Sample's grid includes end; the window excludes it
	}
	grid := make([]T, len(rows))
	for i, r := range rows {
		grid[i] = r.T
	}
	if err := sink.Reindex(grid); err != nil {
		return err
	}
	for _, r := range rows {
		if err := sink.ForwardFill(r.T, r.V); err != nil {
			return err
		}
	}
	return nil
}
