package tstep

import "fmt"

// Get returns the value of the step function at t under the given
// interpolation policy.
//
// Previous (the default, and the only policy this generic method can
// perform without a Number constraint) returns the value at the greatest
// recorded key <= t, or the series' Default if t precedes every key.
// Requesting Linear here returns ErrUnknownOption with a pointer to
// GetLinear, which needs V to support arithmetic.
func (ts *TimeSeries[T, V]) Get(t T, interp Interpolation) (V, error) {
	var zero V
	switch interp {
	case Previous:
		if e, ok := ts.points.Floor(t); ok {
			return e.v, nil
		}
		return ts.Default()
	default:
		return zero, fmt.Errorf("%w: Get(%s) needs a Number-constrained V; use GetLinear", ErrUnknownOption, interp)
	}
}

// GetLinear returns the value of the step function at t, linearly
// interpolating between the two keys bracketing t when t falls strictly
// between two measurements. At or after the last key it returns the last
// value; before the first key it returns the series' Default.
func GetLinear[T any, V Number](ts *TimeSeries[T, V], t T) (V, error) {
	left, hasLeft := ts.points.Floor(t)
	if !hasLeft {
		return ts.Default()
	}
	right, hasRight := ts.points.Next(t)
	if !hasRight {
		// t is at or after the last measurement.
		last, _ := ts.points.Max()
		return last.v, nil
	}
	interval := ts.clk.SecondsBetween(left.t, right.t)
	if interval == 0 {
		return left.v, nil
	}
	elapsed := ts.clk.SecondsBetween(left.t, t)
	return LinearValue(left.v, right.v, elapsed/interval), nil
}

// Set writes (t, v). If compact is true and the series already reports v
// at t (and is non-empty), the write is a no-op — this is what keeps
// SetInterval from leaving a redundant step at its right endpoint.
func (ts *TimeSeries[T, V]) Set(t T, v V, compact bool) {
	if compact && ts.points.Len() > 0 {
		if cur, err := ts.Get(t, Previous); err == nil && cur == v {
			return
		}
	}
	ts.points.Set(t, v)
}

// Remove deletes the exact recorded measurement at t. It is an error
// (ErrNoSuchMeasurement) if no key equals t.
func (ts *TimeSeries[T, V]) Remove(t T) error {
	if !ts.points.Delete(t) {
		return fmt.Errorf("%w: %v", ErrNoSuchMeasurement, t)
	}
	return nil
}

// SetInterval sets the value to v for every t in [s, e), restoring the
// pre-call value at e. Internally it materializes the periods spanning
// [s, e] first — interval writes evaluate their traversal eagerly before
// mutating, so the write can't invalidate its own cursor — collapses every
// key strictly inside (s, e) into the single value v, and reinstates the
// value the series held at e beforehand.
func (ts *TimeSeries[T, V]) SetInterval(s, e T, v V, compact bool) error {
	if !ts.clk.Less(s, e) {
		return fmt.Errorf("%w: start must precede end", ErrBadBoundary)
	}
	endValue, err := ts.Get(e, Previous)
	if err != nil {
		return err
	}
	periods, err := ts.periodsSlice(s, e, nil)
	if err != nil {
		return err
	}
	for i, p := range periods {
		if i == 0 {
			ts.Set(s, v, compact)
			continue
		}
		ts.points.Delete(p.T0)
	}
	ts.Set(e, endValue, compact)
	return nil
}

// RemovePointsFromInterval deletes every recorded key in [s, e), leaving
// get(t) unchanged for t < s. A key recorded exactly at e is never removed;
// when there is none, the value in force before s carries on through [s, e)
// and past e up to the next remaining key.
func (ts *TimeSeries[T, V]) RemovePointsFromInterval(s, e T) error {
	if !ts.clk.Less(s, e) {
		return fmt.Errorf("%w: start must precede end", ErrBadBoundary)
	}
	periods, err := ts.periodsSlice(s, e, nil)
	if err != nil {
		return err
	}
	for _, p := range periods {
		ts.points.Delete(p.T0)
	}
	return nil
}

// Slice returns a new TimeSeries holding exactly the measurements covering
// [s, e], with explicit points at both s and e: Slice always emits both
// endpoints, regardless of whether e coincides with a recorded key.
func (ts *TimeSeries[T, V]) Slice(s, e T) (*TimeSeries[T, V], error) {
	periods, err := ts.periodsSlice(s, e, nil)
	if err != nil {
		return nil, err
	}
	out := New(ts.clk, ts.deflt)
	for _, p := range periods {
		out.points.Set(p.T0, p.V)
	}
	lastVal, err := ts.Get(e, Previous)
	if err != nil {
		return nil, err
	}
	out.points.Set(e, lastVal)
	return out, nil
}
