package tstep

import (
	"fmt"
	"time"
)

// inflection is one element of the materialized sequence sample_interval
// walks: a recorded or synthesized (t, v) pair bracketing the grid.
type inflection[T any, V any] struct {
	t T
	v V
}

// Sample returns the step function's value at every grid point
// start, start+period, ... <= end, under the given interpolation policy.
func Sample[T any, V Number](ts *TimeSeries[T, V], clk Clock[T], period float64, start, end T, interp Interpolation) ([]Pair[T, V], error) {
	if period <= 0 {
		return nil, fmt.Errorf("%w: period must be positive", ErrBadPeriod)
	}
	if !clk.Less(start, end) {
		return nil, fmt.Errorf("%w: start must precede end", ErrBadBoundary)
	}
	total := clk.SecondsBetween(start, end)
	if period > total {
		return nil, fmt.Errorf("%w: period exceeds window", ErrBadPeriod)
	}
	var out []Pair[T, V]
	elapsed := 0.0
	for elapsed <= total {
		t := advance(clk, start, elapsed)
		var v V
		var err error
		switch interp {
		case Linear:
			v, err = GetLinear(ts, t)
		default:
			v, err = ts.Get(t, Previous)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, Pair[T, V]{T: t, V: v})
		elapsed += period
	}
	return out, nil
}

// advance steps a T forward by secs seconds, computed the only way a
// generic Clock can: by bisecting wall-clock-vs-numeric isn't possible
// generically, so advance requires a Steppable clock; callers needing
// Sample/SampleInterval over an abstract T pass a clock that also
// implements Step, as FloatClock and WallClock do.
type steppableClock[T any] interface {
	Clock[T]
	Step(t T, seconds float64) T
}

func advance[T any](clk Clock[T], t T, seconds float64) T {
	if sc, ok := clk.(steppableClock[T]); ok {
		return sc.Step(t, seconds)
	}
	var zero T
	return zero
}

// Step advances a float64 instant by seconds (FloatClock's time unit is
// already seconds).
func (FloatClock) Step(t float64, seconds float64) float64 { return t + seconds }

// Step advances a wall-clock instant by seconds.
func (WallClock) Step(t time.Time, seconds float64) time.Time {
	return t.Add(time.Duration(seconds * float64(time.Second)))
}

// SampleInterval produces a regular, aggregated grid: a cell per
// [G_k, G_k+period) over [start, end), each aggregated from the step
// function's inflections by op (mean/max/min).
func SampleInterval[T any, V Number](ts *TimeSeries[T, V], clk steppableClock[T], period float64, start, end T, op AggOp) ([]Pair[T, V], error) {
	total := clk.SecondsBetween(start, end)
	if period <= 0 {
		return nil, fmt.Errorf("%w: period must be positive", ErrBadPeriod)
	}
	if period > total {
		return nil, fmt.Errorf("%w: period exceeds window", ErrBadPeriod)
	}
	nCells := int(total / period)
	if float64(nCells)*period < total {
		nCells++
	}
	grid := make([]T, nCells+1)
	for k := 0; k <= nCells; k++ {
		grid[k] = clk.Step(start, float64(k)*period)
	}
	cellIndex := func(t T) int {
		elapsed := clk.SecondsBetween(start, t)
		idx := int(elapsed / period)
		if idx < 0 {
			idx = 0
		}
		if idx > nCells-1 {
			idx = nCells - 1
		}
		return idx
	}

	inflections, err := materializeInflections(ts, clk, start, end)
	if err != nil {
		return nil, err
	}
	if len(inflections) == 0 {
		return nil, nil
	}

	type agg struct {
		started bool
		sum     float64 // for mean: Σ (t1-t0)*v
		cur     V       // for min/max
	}
	newAgg := func(t0 T, v0 V) agg {
		a := agg{cur: v0}
		if op == AggMean {
			a.started = true
		}
		return a
	}
	update := func(a agg, t0, t1 T, v V) agg {
		if !clk.Less(t0, t1) {
			return a // a zero-length span holds no value inside the cell
		}
		switch op {
		case AggMean:
			a.sum += clk.SecondsBetween(t0, t1) * anyToFloat(v)
		case AggMax:
			if !a.started || v > a.cur {
				a.cur = v
			}
			a.started = true
		case AggMin:
			if !a.started || v < a.cur {
				a.cur = v
			}
			a.started = true
		}
		return a
	}
	finish := func(a agg, cs, ce T) V {
		switch op {
		case AggMean:
			dur := clk.SecondsBetween(cs, ce)
			if dur == 0 {
				return V(0)
			}
			return V(a.sum / dur)
		default:
			return a.cur
		}
	}

	results := make(map[int]V)

	t0, v0 := inflections[0].t, inflections[0].v
	i0 := cellIndex(t0)
	cs, ce := grid[i0], grid[i0+1]
	a := newAgg(t0, v0)

	for _, infl := range inflections[1:] {
		t1, v1 := infl.t, infl.v
		i1 := cellIndex(t1)
		if i1 == i0 {
			a = update(a, t0, t1, v0)
			t0, v0 = t1, v1
			continue
		}
		a = update(a, t0, ce, v0)
		results[i0] = finish(a, cs, ce)
		for k := i0 + 1; k < i1; k++ {
			results[k] = v0
		}
		if i1 >= nCells {
			break
		}
		cs, ce = grid[i1], grid[i1+1]
		i0 = i1
		t0 = cs
		a = newAgg(t0, v0)
		a = update(a, t0, t1, v0)
		t0, v0 = t1, v1
	}
	if _, ok := results[i0]; !ok && i0 < nCells {
		a = update(a, t0, ce, v0)
		results[i0] = finish(a, cs, ce)
	}

	out := make([]Pair[T, V], nCells)
	var last V
	for k := 0; k < nCells; k++ {
		v, ok := results[k]
		if !ok {
			v = last // forward-fill an empty cell from the previous one
		} else {
			last = v
		}
		out[k] = Pair[T, V]{T: grid[k], V: v}
	}
	return out, nil
}

func materializeInflections[T any, V Number](ts *TimeSeries[T, V], clk Clock[T], start, end T) ([]inflection[T, V], error) {
	startVal, err := ts.Get(start, Previous)
	if err != nil {
		return nil, err
	}
	out := []inflection[T, V]{{t: start, v: startVal}}
	for t, v := range ts.Iter() {
		if clk.Less(t, start) || !clk.Less(t, end) {
			continue
		}
		out = append(out, inflection[T, V]{t: t, v: v})
	}
	endVal, err := ts.Get(end, Previous)
	if err != nil {
		return nil, err
	}
	out = append(out, inflection[T, V]{t: end, v: endVal})
	return out, nil
}

func anyToFloat[V Number](v V) float64 { return float64(v) }
