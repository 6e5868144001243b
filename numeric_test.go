package tstep

import "testing"

func TestLinearValueInterpolates(t *testing.T) {
	if got := LinearValue(0.0, 10.0, 0.5); !almostEq(got, 5, 1e-9) {
		t.Fatalf("LinearValue(0,10,0.5) = %v, want 5", got)
	}
	if got := LinearValue(10.0, 0.0, 0.25); !almostEq(got, 7.5, 1e-9) {
		t.Fatalf("LinearValue(10,0,0.25) = %v, want 7.5", got)
	}
}
