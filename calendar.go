package tstep

import (
	"iter"
	"time"
)

// Unit is a calendar granularity used by DatetimeFloor, DatetimeRange, and
// SpansBetween.
type Unit int8

const (
	Seconds Unit = iota
	Minutes
	Hours
	Days
	Weeks
)

func (u Unit) String() string {
	switch u {
	case Seconds:
		return "Seconds"
	case Minutes:
		return "Minutes"
	case Hours:
		return "Hours"
	case Days:
		return "Days"
	case Weeks:
		return "Weeks"
	default:
		return "Unknown"
	}
}

// duration returns n units of u as a time.Duration. Days and Weeks are not
// representable by time.Truncate (it rejects periods >= 24h that aren't a
// divisor of a day), so DatetimeFloor handles those two units by calendar
// arithmetic instead of truncation; duration remains useful for the
// regular, fixed-length units.
func (u Unit) duration(n int) time.Duration {
	switch u {
	case Seconds:
		return time.Duration(n) * time.Second
	case Minutes:
		return time.Duration(n) * time.Minute
	case Hours:
		return time.Duration(n) * time.Hour
	case Days:
		return time.Duration(n) * 24 * time.Hour
	case Weeks:
		return time.Duration(n) * 7 * 24 * time.Hour
	default:
		return 0
	}
}

// DatetimeFloor truncates t to the start of the n*unit bucket containing
// it, the generalized replacement for RoundedStartTime's per-string switch
// (seconds/minutes/hours truncate directly; days floor to local midnight;
// weeks floor to the most recent Monday midnight, and for n > 1 to the
// Monday starting an n-week cell counted from Monday 1970-01-05).
func DatetimeFloor(t time.Time, unit Unit, n int) time.Time {
	if n < 1 {
		n = 1
	}
	switch unit {
	case Seconds, Minutes, Hours:
		return t.Truncate(unit.duration(n))
	case Days:
		midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		if n == 1 {
			return midnight
		}
		epoch := time.Date(1970, 1, 1, 0, 0, 0, 0, t.Location())
		days := int(midnight.Sub(epoch).Hours() / 24)
		floored := (days / n) * n
		return epoch.AddDate(0, 0, floored)
	case Weeks:
		midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		offset := (int(midnight.Weekday()) + 6) % 7 // days since Monday
		monday := midnight.AddDate(0, 0, -offset)
		if n == 1 {
			return monday
		}
		epoch := time.Date(1970, 1, 5, 0, 0, 0, 0, t.Location()) // a Monday
		weeks := int(monday.Sub(epoch).Round(24*time.Hour).Hours()/24) / 7
		floored := weeks - ((weeks%n)+n)%n
		return epoch.AddDate(0, 0, 7*floored)
	default:
		return t
	}
}

// DatetimeRange yields the sequence of n*unit-aligned instants from the
// floor of start up to (and not including) end, the calendar analogue of
// AddDuration's repeated stepping in a Downsampling loop.
func DatetimeRange(start, end time.Time, unit Unit, n int) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		t := DatetimeFloor(start, unit, n)
		step := unit.duration(n)
		for t.Before(end) {
			if !yield(t) {
				return
			}
			if unit == Days || unit == Weeks {
				days := n
				if unit == Weeks {
					days = 7 * n
				}
				t = t.AddDate(0, 0, days)
			} else {
				t = t.Add(step)
			}
		}
	}
}

// WeekdayNumber returns Monday=0 .. Sunday=6, the ISO ordering used by
// calendar-aligned grids (time.Weekday itself numbers Sunday=0).
func WeekdayNumber(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// DurationToNumber converts a duration into n*unit, rounding to the
// nearest whole unit — the inverse of Unit.duration.
func DurationToNumber(d time.Duration, unit Unit) int {
	step := unit.duration(1)
	if step == 0 {
		return 0
	}
	return int((d + step/2) / step)
}

// SpansBetween yields calendar-aligned sub-intervals of every true interval
// of d: the cells of the n*unit calendar grid that overlap the interval,
// the first and last of them trimmed to the interval's bounds. It is the
// calendar-aware refinement of Domain.
// Intervals: rather than one segment per maximal true run, it regrids each
// run onto the n*unit calendar, truncating the first and last cell to the
// run's actual bounds. Only meaningful for time.Time-keyed domains, since
// the calendar has no equivalent for an abstract T.
func SpansBetween(d *Domain[time.Time], unit Unit, n int) iter.Seq[Period[time.Time, bool]] {
	return func(yield func(Period[time.Time, bool]) bool) {
		var havePrev bool
		var prevT0, prevT1 time.Time
		for run := range d.Intervals() {
			cursor := run.T0
			for cursor.Before(run.T1) {
				cellStart := DatetimeFloor(cursor, unit, n)
				if cellStart.Before(run.T0) {
					cellStart = run.T0
				}
				next := DatetimeFloor(cellStart, unit, n).Add(unit.duration(n))
				cellEnd := next
				if cellEnd.After(run.T1) {
					cellEnd = run.T1
				}
				cursor = cellEnd
				if !cellStart.Before(cellEnd) {
					continue
				}
				// Adjacent duplicates suppressed: a cell with the exact
				// same bounds as the one just yielded (can only arise at a
				// run/grid boundary coincidence) is not re-emitted.
				if havePrev && prevT0.Equal(cellStart) && prevT1.Equal(cellEnd) {
					continue
				}
				if !yield(Period[time.Time, bool]{T0: cellStart, T1: cellEnd, V: true}) {
					return
				}
				prevT0, prevT1, havePrev = cellStart, cellEnd, true
			}
		}
	}
}
