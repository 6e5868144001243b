package tstep

// TimeSeriesJSON is the JSON-friendly DTO for a TimeSeries: a name, a
// comment, and parallel T/V columns. T and V must themselves be
// JSON-marshalable for the columns to round-trip (e.g. time.Time and
// float64, or float64 and float64 for FloatClock series).
type TimeSeriesJSON[T any, V any] struct {
	Name    string `json:"name"`
	Comment string `json:"comment,omitempty"`
	T       []T    `json:"t"`
	V       []V    `json:"v"`
}

// ToJSON converts ts into its JSON-friendly DTO.
func (ts *TimeSeries[T, V]) ToJSON() *TimeSeriesJSON[T, V] {
	items := ts.Items()
	out := &TimeSeriesJSON[T, V]{
		Name:    ts.Name,
		Comment: ts.Comment,
		T:       make([]T, len(items)),
		V:       make([]V, len(items)),
	}
	for i, p := range items {
		out.T[i] = p.T
		out.V[i] = p.V
	}
	return out
}

// TsContainerJSON is the JSON-friendly DTO for a TsContainer: an
// identity plus a map of named TimeSeriesJSON entries.
type TsContainerJSON[T any, V any] struct {
	ID      string                           `json:"id,omitempty"`
	Name    string                           `json:"name"`
	Comment string                           `json:"comment,omitempty"`
	Series  map[string]*TimeSeriesJSON[T, V] `json:"series"`
}

// ToJSON converts c into its JSON-friendly DTO.
func (c *TsContainer[T, V]) ToJSON() *TsContainerJSON[T, V] {
	out := &TsContainerJSON[T, V]{
		ID:      c.ID,
		Name:    c.Name,
		Comment: c.Comment,
		Series:  make(map[string]*TimeSeriesJSON[T, V], len(c.Series)),
	}
	for k, ts := range c.Series {
		out.Series[k] = ts.ToJSON()
	}
	return out
}

// FromJSON rebuilds a TimeSeries from its DTO given a clock and default
// policy: the DTO itself carries no clock/default information, matching
// defaults not being part of equality/serialization.
func FromJSON[T any, V comparable](dto *TimeSeriesJSON[T, V], clk Clock[T], deflt Default[V]) *TimeSeries[T, V] {
	ts := New(clk, deflt)
	ts.Name = dto.Name
	ts.Comment = dto.Comment
	for i := range dto.T {
		ts.Set(dto.T[i], dto.V[i], false)
	}
	return ts
}
