package tstep

import "fmt"

// MovingAverage emits (t, mean-over-window(t)) for t = start, start+period,
// ..., <= end. The window around each t depends on placement:
// center is [t-window/2, t+window/2], left is [t, t+window], right is
// [t-window, t].
func MovingAverage[T any, V Number](ts *TimeSeries[T, V], clk steppableClock[T], period, window float64, start, end T, placement Placement) ([]Pair[T, V], error) {
	if period <= 0 {
		return nil, fmt.Errorf("%w: period must be positive", ErrBadPeriod)
	}
	if window <= 0 {
		return nil, fmt.Errorf("%w: window must be positive", ErrBadPeriod)
	}
	total := clk.SecondsBetween(start, end)
	if total < 0 {
		return nil, fmt.Errorf("%w: start must precede end", ErrBadBoundary)
	}

	var out []Pair[T, V]
	elapsed := 0.0
	for elapsed <= total {
		t := clk.Step(start, elapsed)
		var lo, hi T
		switch placement {
		case Left:
			lo, hi = t, clk.Step(t, window)
		case Right:
			lo, hi = clk.Step(t, -window), t
		default: // Center
			lo, hi = clk.Step(t, -window/2), clk.Step(t, window/2)
		}
		m, err := Mean(ts, clk, lo, hi, nil)
		if err != nil {
			return nil, err
		}
		out = append(out, Pair[T, V]{T: t, V: m})
		elapsed += period
	}
	return out, nil
}

// Mean returns the mean of ts' distribution over [start, end], restricted
// by mask. A nil mask means the full window.
func Mean[T any, V Number](ts *TimeSeries[T, V], clk Clock[T], start, end T, mask *Domain[T]) (V, error) {
	hist, err := Distribution(ts, clk, &start, &end, mask, false)
	if err != nil {
		var zero V
		return zero, err
	}
	m, err := hist.Mean()
	if err != nil {
		var zero V
		return zero, err
	}
	return V(m), nil
}
