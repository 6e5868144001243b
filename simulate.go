package tstep

import "math/rand"

// BulkSimul generates a synthetic FloatClock series of samplesize points,
// each period apart plus gaussian jitter (stdDev jitterSeconds), with
// values drawn from N(mean, stdDev). Generalized from a fixed float64
// value type to any Number V, and parameterized on a *rand.Rand the
// caller controls rather than a generator reseeded per-call from wall
// time, so a simulation run is reproducible given a seed.
func BulkSimul[V Number](r *rand.Rand, name string, from float64, period, jitterSeconds, mean, stdDev float64, samplesize int) *TimeSeries[float64, V] {
	ts := New[float64, V](FloatClock{}, ExtendBack[V]())
	ts.Name = name
	t := from
	for i := 0; i < samplesize; i++ {
		jitter := r.NormFloat64() * jitterSeconds
		t += period + jitter
		v := V(r.NormFloat64()*stdDev + mean)
		ts.Set(t, v, false)
	}
	return ts
}
