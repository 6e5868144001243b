package tstep

import "errors"

// Error kinds. Every failure mode the library detects itself is one of these
// sentinels (optionally wrapped with fmt.Errorf's %w for context); the
// statistics helpers in stats.go also pass through errors from
// montanaflynn/stats unchanged. Nothing panics and nothing is retried
// internally.
var (
	// ErrUnknownOption is returned for an unrecognized interpolation,
	// placement, or aggregation name.
	ErrUnknownOption = errors.New("tstep: unknown option")

	// ErrEmptyFloating is returned when an operation needs a value from a
	// series that has no measurements and an ExtendBack default.
	ErrEmptyFloating = errors.New("tstep: series is floating (empty, no default)")

	// ErrNoSuchMeasurement is returned by Remove when no key equals t.
	ErrNoSuchMeasurement = errors.New("tstep: no measurement at that time")

	// ErrBadBoundary is returned for start >= end, an empty mask, or an
	// interval operation attempted on an empty series.
	ErrBadBoundary = errors.New("tstep: bad interval boundary")

	// ErrBadPeriod is returned when a sampling period is <= 0 or greater
	// than the window it is sampling.
	ErrBadPeriod = errors.New("tstep: bad sampling period")

	// ErrTypeMismatch is returned when a merge operand is not a
	// TimeSeries where one is required.
	ErrTypeMismatch = errors.New("tstep: type mismatch")

	// ErrMissingAdapter is returned when an operation needs an external
	// dataframe adapter and none was configured.
	ErrMissingAdapter = errors.New("tstep: no dataframe adapter configured")
)
