package calendar

import "fmt"

// Band identifies one of the three merge bands of the calendar heading.
type Band int

const (
	BandWeek Band = iota
	BandMonth
	BandYear
)

func (b Band) String() string {
	switch b {
	case BandWeek:
		return "week"
	case BandMonth:
		return "month"
	case BandYear:
		return "year"
	default:
		return fmt.Sprintf("band(%d)", int(b))
	}
}

// MergeSpan is a finalized run of day columns unified under one band label.
// Columns are zero-based day indexes, both bounds inclusive. Ordinal is the
// zero-based count of spans of this band since range start and drives the
// odd/even format alternation.
type MergeSpan struct {
	Band        Band
	StartColumn int
	EndColumn   int
	Row         int
	Label       string
	Ordinal     int
}

type pendingSpan struct {
	startColumn int
	label       string
	ordinal     int
}

// OffsetTracker keeps the running day column counter and at most one pending
// span per band. One instance per run, consumed only by the grid builder.
// Misuse (double open, close without open) is a defect and panics.
type OffsetTracker struct {
	layout   Layout
	column   int
	pending  map[Band]*pendingSpan
	ordinals map[Band]int
}

// NewOffsetTracker creates a tracker whose spans carry the heading rows of
// layout. The column counter starts before the first column.
func NewOffsetTracker(layout Layout) *OffsetTracker {
	return &OffsetTracker{
		layout:   layout,
		column:   -1,
		pending:  make(map[Band]*pendingSpan),
		ordinals: make(map[Band]int),
	}
}

// AdvanceColumn moves the day column counter forward and returns the new
// column. Called once per day; the first call returns 0.
func (t *OffsetTracker) AdvanceColumn() int {
	t.column++
	return t.column
}

// Column returns the current day column, -1 before the first advance.
func (t *OffsetTracker) Column() int {
	return t.column
}

// IsOpen reports whether band has a pending span.
func (t *OffsetTracker) IsOpen(band Band) bool {
	return t.pending[band] != nil
}

// Open starts a pending span for band at column. Panics if a span for the
// band is already open; the caller must close it first.
func (t *OffsetTracker) Open(band Band, label string, column int) {
	if t.pending[band] != nil {
		panic(fmt.Sprintf("offset tracker: %s span opened twice, pending since column %d",
			band, t.pending[band].startColumn))
	}
	t.pending[band] = &pendingSpan{
		startColumn: column,
		label:       label,
		ordinal:     t.ordinals[band],
	}
	t.ordinals[band]++
}

// Close finalizes the pending span for band at endColumn and returns it.
// Panics if no span is open for the band.
func (t *OffsetTracker) Close(band Band, endColumn int) MergeSpan {
	p := t.pending[band]
	if p == nil {
		panic(fmt.Sprintf("offset tracker: close of %s span that was never opened", band))
	}
	t.pending[band] = nil
	return MergeSpan{
		Band:        band,
		StartColumn: p.startColumn,
		EndColumn:   endColumn,
		Row:         t.layout.BandRow(band),
		Label:       p.label,
		Ordinal:     p.ordinal,
	}
}

// ForceCloseAll closes every still-open span at endColumn, week before month
// before year, and returns them. Called once when the range ends so partial
// trailing bands still come out fully bounded.
func (t *OffsetTracker) ForceCloseAll(endColumn int) []MergeSpan {
	var spans []MergeSpan
	for _, band := range []Band{BandWeek, BandMonth, BandYear} {
		if t.IsOpen(band) {
			spans = append(spans, t.Close(band, endColumn))
		}
	}
	return spans
}
