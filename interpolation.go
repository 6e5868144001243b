package tstep

import "fmt"

// Interpolation selects the point-query policy used by Get and Sample.
type Interpolation int8

const (
	// Previous returns the value at the greatest recorded key <= t (the
	// step-function's natural value). This is the default.
	Previous Interpolation = iota
	// Linear interpolates between the two bracketing keys, in seconds,
	// for Number-constrained value types (see LinearValue).
	Linear
)

func (i Interpolation) String() string {
	switch i {
	case Previous:
		return "previous"
	case Linear:
		return "linear"
	default:
		return fmt.Sprintf("Interpolation(%d)", int8(i))
	}
}

// ParseInterpolation maps a name to an Interpolation, the way the original
// implementation dispatches through a {"previous": ..., "linear": ...}
// table. Returns ErrUnknownOption for anything else.
func ParseInterpolation(name string) (Interpolation, error) {
	switch name {
	case "previous":
		return Previous, nil
	case "linear":
		return Linear, nil
	default:
		return 0, fmt.Errorf("%w: interpolation %q", ErrUnknownOption, name)
	}
}

// Placement anchors a moving-average window relative to its timestamp.
type Placement int8

const (
	Center Placement = iota
	Left
	Right
)

func (p Placement) String() string {
	switch p {
	case Center:
		return "center"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Placement(%d)", int8(p))
	}
}

// ParsePlacement maps a name to a Placement. Returns ErrUnknownOption for
// anything else.
func ParsePlacement(name string) (Placement, error) {
	switch name {
	case "center":
		return Center, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return 0, fmt.Errorf("%w: placement %q", ErrUnknownOption, name)
	}
}

// AggOp selects the cell aggregator used by SampleInterval.
type AggOp int8

const (
	AggMean AggOp = iota
	AggMax
	AggMin
)

func (a AggOp) String() string {
	switch a {
	case AggMean:
		return "mean"
	case AggMax:
		return "max"
	case AggMin:
		return "min"
	default:
		return fmt.Sprintf("AggOp(%d)", int8(a))
	}
}

// ParseAggOp maps a name to an AggOp. Returns ErrUnknownOption for
// anything else.
func ParseAggOp(name string) (AggOp, error) {
	switch name {
	case "mean":
		return AggMean, nil
	case "max":
		return AggMax, nil
	case "min":
		return AggMin, nil
	default:
		return 0, fmt.Errorf("%w: aggregation %q", ErrUnknownOption, name)
	}
}
