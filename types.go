package tstep

// Default describes the value a TimeSeries reports strictly before its
// first recorded measurement: either ExtendBack (reuse the first recorded
// value) or an explicit constant. Modeled as a tagged variant rather than a
// sentinel value so that any V — including V's own zero value — can be a
// legitimate Explicit default.
type Default[V any] struct {
	extendBack bool
	value      V
}

// ExtendBack reports the value at the first recorded measurement for any
// time before it. Querying an empty series with this default is a usage
// error (ErrEmptyFloating) — the "floating series" of the glossary.
func ExtendBack[V any]() Default[V] { return Default[V]{extendBack: true} }

// Explicit reports v for any time before the first recorded measurement,
// even for an otherwise empty series.
func Explicit[V any](v V) Default[V] { return Default[V]{value: v} }

func (d Default[V]) isExtendBack() bool { return d.extendBack }

// Pair is a single (time, value) observation, the constructor input and
// Iter's output unit.
type Pair[T any, V any] struct {
	T T
	V V
}

// TimeSeries is an ordered, piecewise-constant function of time: its value
// between recorded measurements equals the value of the most recent prior
// one. T is any totally-ordered time type (see Clock); V is any comparable
// value type. Arithmetic-only operations (Sum, Difference, linear
// interpolation, ...) further constrain V to Number via free functions
// rather than methods, since Go cannot narrow a type parameter's
// constraint per-method.
type TimeSeries[T any, V comparable] struct {
	clk    Clock[T]
	points *orderedMap[T, V]
	deflt  Default[V]

	// Name and Comment are free-form metadata fields, with no bearing on
	// equality or step-function semantics.
	Name    string
	Comment string
}

// New builds an empty TimeSeries with clk as its time comparator and deflt
// as its default.
func New[T any, V comparable](clk Clock[T], deflt Default[V]) *TimeSeries[T, V] {
	return &TimeSeries[T, V]{
		clk:    clk,
		points: newOrderedMap[T, V](clk),
		deflt:  deflt,
	}
}

// FromPairs builds a TimeSeries from a collection of (T, V) pairs,
// sorting and de-duplicating by last-wins at equal keys (pairs need not
// arrive in any particular order).
func FromPairs[T any, V comparable](clk Clock[T], deflt Default[V], pairs []Pair[T, V]) *TimeSeries[T, V] {
	ts := New(clk, deflt)
	for _, p := range pairs {
		ts.points.Set(p.T, p.V)
	}
	return ts
}

// FromMap builds a TimeSeries from a T->V mapping. Map iteration order is
// irrelevant since every key is inserted into the ordered map anyway.
func FromMap[T any, V comparable](clk Clock[T], deflt Default[V], data map[T]V) *TimeSeries[T, V] {
	ts := New(clk, deflt)
	for t, v := range data {
		ts.points.Set(t, v)
	}
	return ts
}

// IsFloating reports whether the series is empty with an ExtendBack
// default, in which case its value is undefined everywhere.
func (ts *TimeSeries[T, V]) IsFloating() bool {
	return ts.deflt.isExtendBack() && ts.points.Len() == 0
}

// Default resolves the series' default value. It is an error
// (ErrEmptyFloating) on a floating series.
func (ts *TimeSeries[T, V]) Default() (V, error) {
	if ts.deflt.isExtendBack() {
		if ts.points.Len() == 0 {
			var zero V
			return zero, ErrEmptyFloating
		}
		first, _ := ts.points.Min()
		return first.v, nil
	}
	return ts.deflt.value, nil
}

// DefaultSpec returns the raw Default descriptor, the same policy that
// Merge's default inference compares and Slice/Copy carry forward.
func (ts *TimeSeries[T, V]) DefaultSpec() Default[V] { return ts.deflt }

// NPoints counts the recorded measurements.
func (ts *TimeSeries[T, V]) NPoints() int { return ts.points.Len() }

// NMeasurements is an alias for NPoints, kept because the original
// implementation exposes both spellings (traces.TimeSeries has both
// len(self) and an explicit n_measurements-style accessor used by its
// histogram code).
func (ts *TimeSeries[T, V]) NMeasurements() int { return ts.NPoints() }

// First returns the earliest recorded (t, v), or ok=false if empty.
func (ts *TimeSeries[T, V]) First() (t T, v V, ok bool) {
	e, ok := ts.points.Min()
	return e.t, e.v, ok
}

// Last returns the latest recorded (t, v), or ok=false if empty.
func (ts *TimeSeries[T, V]) Last() (t T, v V, ok bool) {
	e, ok := ts.points.Max()
	return e.t, e.v, ok
}

// Clock returns the comparator the series was built with. Derived
// operations (merge, resample, ...) take their clock as a parameter; this
// accessor is how a caller obtains the one a series uses.
func (ts *TimeSeries[T, V]) Clock() Clock[T] { return ts.clk }

// Copy returns a deep copy: a new TimeSeries sharing no mutable state with
// ts.
func (ts *TimeSeries[T, V]) Copy() *TimeSeries[T, V] {
	return &TimeSeries[T, V]{
		clk:     ts.clk,
		points:  ts.points.Clone(),
		deflt:   ts.deflt,
		Name:    ts.Name,
		Comment: ts.Comment,
	}
}

// Equal reports whether two series have identical ordered (t, v) pairs.
// Defaults are explicitly not compared.
func (ts *TimeSeries[T, V]) Equal(other *TimeSeries[T, V]) bool {
	if ts.points.Len() != other.points.Len() {
		return false
	}
	a := ts.Items()
	b := other.Items()
	for i := range a {
		if ts.clk.Less(a[i].T, b[i].T) || ts.clk.Less(b[i].T, a[i].T) {
			return false
		}
		if a[i].V != b[i].V {
			return false
		}
	}
	return true
}

// Items returns every recorded (t, v) pair in ascending time order. It is
// the slice-returning counterpart to Iter, handy for equality checks,
// tests, and callers that are not yet using range-over-func.
func (ts *TimeSeries[T, V]) Items() []Pair[T, V] {
	out := make([]Pair[T, V], 0, ts.points.Len())
	ts.points.Scan(func(e entry[T, V]) bool {
		out = append(out, Pair[T, V]{T: e.t, V: e.v})
		return true
	})
	return out
}
