package tstep

import "fmt"

// Boundary is the concrete (start, end, mask) triple checkBoundaries
// resolves from whatever subset of those a caller supplied.
type Boundary[T any] struct {
	Start, End Bound[T]
	Mask       *Domain[T]
}

// checkBoundaries normalizes optional (start, end, mask) arguments into a
// concrete interval set. start/end are nil when the caller did
// not supply one. When allowInfinite is true, a missing bound resolves to
// ±∞ instead of the series' first/last recorded time.
func checkBoundaries[T any, V comparable](ts *TimeSeries[T, V], start, end *T, mask *Domain[T], allowInfinite bool) (Boundary[T], error) {
	var b Boundary[T]

	switch {
	case start != nil:
		b.Start = FiniteBound(*start)
	case allowInfinite:
		b.Start = NegInfBound[T]()
	default:
		first, _, ok := ts.First()
		if !ok {
			return b, fmt.Errorf("%w: series has no recorded measurements", ErrBadBoundary)
		}
		b.Start = FiniteBound(first)
	}

	switch {
	case end != nil:
		b.End = FiniteBound(*end)
	case allowInfinite:
		b.End = PosInfBound[T]()
	default:
		last, _, ok := ts.Last()
		if !ok {
			return b, fmt.Errorf("%w: series has no recorded measurements", ErrBadBoundary)
		}
		b.End = FiniteBound(last)
	}

	if !boundLess(ts.clk, b.Start, b.End) {
		return b, fmt.Errorf("%w: start must precede end", ErrBadBoundary)
	}

	var window *Domain[T]
	if s, ok := b.Start.Value(); ok {
		if e, ok := b.End.Value(); ok {
			window = NewDomain(ts.clk)
			if err := window.SetInterval(s, e, true, true); err != nil {
				return b, err
			}
		}
	}

	switch {
	case mask == nil && window == nil:
		return b, fmt.Errorf("%w: boundaries are unbounded and no mask was supplied", ErrBadBoundary)
	case mask == nil:
		b.Mask = window
	case window == nil:
		b.Mask = mask
	default:
		combined, err := window.And(mask)
		if err != nil {
			return b, err
		}
		b.Mask = combined
	}

	if b.Mask.IsEmpty() {
		return b, fmt.Errorf("%w: mask is empty", ErrBadBoundary)
	}
	return b, nil
}
