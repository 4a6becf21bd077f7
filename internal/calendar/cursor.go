package calendar

import "time"

// DayRecord describes one calendar day as the cursor emits it. Produced per
// step and consumed immediately; not retained.
type DayRecord struct {
	Date        time.Time
	Weekday     int // 0=Monday .. 6=Sunday
	IsWeekend   bool
	Holiday     bool
	HolidayNote string
	ColumnIndex int // zero-based day column, contiguous from 0

	// Boundary signals the day opens, evaluated week before month before
	// year. The first emitted day fires all three so every band starts
	// open even when the range begins mid week, month or year.
	NewWeek  bool
	NewMonth bool
	NewYear  bool
}

// DateCursor walks a validated date range day by day, classifying each day
// and flagging band boundaries. Lazy, finite and non-restartable; one
// instance per run.
type DateCursor struct {
	rng       DateRange
	holidays  HolidayTable
	weekStart time.Weekday
	current   time.Time
	column    int
	done      bool
}

// NewDateCursor creates a cursor over rng. weekStart is the weekday that
// opens a new week band, normally time.Monday.
func NewDateCursor(rng DateRange, holidays HolidayTable, weekStart time.Weekday) *DateCursor {
	return &DateCursor{
		rng:       rng,
		holidays:  holidays,
		weekStart: weekStart,
		current:   rng.Start,
	}
}

// Next returns the next DayRecord in ascending date order. The second return
// is false once the range is exhausted.
func (c *DateCursor) Next() (DayRecord, bool) {
	if c.done {
		return DayRecord{}, false
	}

	date := c.current
	first := c.column == 0

	rec := DayRecord{
		Date:        date,
		Weekday:     mondayIndexed(date.Weekday()),
		ColumnIndex: c.column,
		NewWeek:     first || date.Weekday() == c.weekStart,
		NewMonth:    first || date.Day() == 1,
		NewYear:     first || (date.Day() == 1 && date.Month() == time.January),
	}
	rec.IsWeekend = rec.Weekday >= 5
	rec.HolidayNote, rec.Holiday = c.holidays.Lookup(date)

	c.column++
	c.current = date.AddDate(0, 0, 1)
	if date.Equal(c.rng.End) {
		c.done = true
	}
	return rec, true
}

// mondayIndexed converts Go's Sunday-first weekday to the Monday-first
// numbering the layout uses.
func mondayIndexed(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
