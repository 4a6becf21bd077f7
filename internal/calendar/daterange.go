package calendar

import "time"

// DateRange is an inclusive span of calendar days. Immutable once validated.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange validates and normalizes an inclusive date range. Both bounds
// are truncated to midnight UTC so day arithmetic is exact. Returns an
// *InvalidRangeError when start is after end.
func NewDateRange(start, end time.Time) (DateRange, error) {
	start = midnight(start)
	end = midnight(end)
	if start.After(end) {
		return DateRange{}, &InvalidRangeError{Start: start, End: end}
	}
	return DateRange{Start: start, End: end}, nil
}

// Days returns the number of calendar days in the range, both bounds
// included. Never less than 1.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Contains reports whether t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	d := midnight(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

// DayIndex returns the zero-based day column index of t within the range.
// Callers must check Contains first; out-of-range dates yield out-of-range
// indexes.
func (r DateRange) DayIndex(t time.Time) int {
	return int(midnight(t).Sub(r.Start).Hours() / 24)
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
