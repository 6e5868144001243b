package tstep

// Number is the constraint satisfied by value types that support the
// arithmetic a subset of tstep's operations need: linear interpolation,
// Sum/Difference/Multiply, Mean, Distribution, and the mean/min/max cell
// aggregators of SampleInterval. Plain equality-only value types (strings,
// structs, enums) still work with the rest of the API — Get(Previous), Set,
// SetInterval, Domain — none of which require Number.
type Number interface {
	~float64 | ~float32 | ~int | ~int32 | ~int64
}

// LinearValue returns v0 + (v1-v0)*frac, frac typically in [0,1]. It is the
// one piece of arithmetic GetLinear needs, factored out so Get itself can
// stay generic over plain comparable V while linear interpolation, in
// GetLinear, is the only point query that needs Number ("numeric operators
// are required only for operations that invoke them").
func LinearValue[V Number](v0, v1 V, frac float64) V {
	return v0 + V(float64(v1-v0)*frac)
}
