// Package tstep manipulates unevenly-spaced time series: step functions of
// time whose value between recorded measurements equals the value of the
// most recent prior measurement.
//
// Unlike most numeric libraries, tstep treats the time axis itself as
// abstract: a series is generic over any totally-ordered time type T (a
// wall clock, a numeric clock, ...) and any comparable value type V. The
// library never assumes continuity between samples — values are
// piecewise-constant unless linear interpolation is explicitly requested
// at a point query.
//
// Key features:
//
//   - Point and interval read/write with an explicit "previous" vs
//     "linear" interpolation policy, and compact writes that skip
//     redundant steps.
//   - A period iterator (IterPeriods) that drives interval writes,
//     distributions and moving averages; the resamplers walk the recorded
//     points directly.
//   - An n-ary, heap-driven merge across any number of series with a
//     deterministic tie-break.
//   - A regular-grid resampler aggregating by mean, min or max.
//   - Domain, a boolean-valued specialization representing a union of
//     half-open true-intervals, used to mask other operations.
//
// Typical usage:
//
//	ts := tstep.New(tstep.WallClock{}, tstep.ExtendBack[float64]())
//	ts.Set(t0, 1.0, false)
//	ts.SetInterval(t1, t2, 5.0, true)
//	v, _ := ts.Get(t1, tstep.Previous)
package tstep
