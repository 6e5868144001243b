package tstep

// Distribution walks the masked window and accumulates each period's
// duration as weight into a Histogram bucketed by that period's value
// start/end/mask are resolved via checkBoundaries exactly as
// every other windowed operation resolves them; a nil mask covers the
// resolved [start, end] exactly. When normalized is true, every bucket's
// weight is divided by the total so the histogram sums to 1.
func Distribution[T any, V Number](ts *TimeSeries[T, V], clk Clock[T], start, end *T, mask *Domain[T], normalized bool) (*Histogram[V], error) {
	b, err := checkBoundaries(ts, start, end, mask, false)
	if err != nil {
		return nil, err
	}
	hist := NewHistogram[V]()
	for run := range b.Mask.Intervals() {
		for p := range ts.IterPeriods(run.T0, run.T1, nil) {
			weight := clk.SecondsBetween(p.T0, p.T1)
			if weight <= 0 {
				continue
			}
			hist.Add(p.V, weight)
		}
	}
	if normalized && hist.total > 0 {
		for v, w := range hist.weights {
			hist.weights[v] = w / hist.total
		}
		hist.total = 1
	}
	return hist, nil
}
