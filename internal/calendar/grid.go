// Package calendar implements the calendar layout engine: it walks a date
// range day by day, detects week/month/year boundaries, books merge spans
// per heading band, classifies days as weekday/weekend/holiday and emits
// write-cell, merge-range and footnote instructions to an output sink.
package calendar

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/torbjornhedqvist/xlsxcalendar/internal/format"
)

const (
	dayColumnWidth     = 3.5
	contentWidthFactor = 1.1 // average character width, Calibri 11p
)

type buildState int

const (
	stateInitializing buildState = iota
	stateLayingOut
	stateTrimming
	stateOverlaying
	stateFinalized
)

// GridBuilder orchestrates one calendar layout run. Configure it with the
// With methods, then call Build exactly once.
type GridBuilder struct {
	log      zerolog.Logger
	sink     Sink
	rng      DateRange
	rules    format.RuleSet
	holidays HolidayTable

	heading   string
	entries   []string
	weekdays  [7]string
	weekStart time.Weekday

	overlay     Overlay
	overlayID   string
	overlayFile string

	layout  Layout
	offsets *OffsetTracker
	state   buildState
}

// NewGridBuilder creates a builder writing to sink with the resolved format
// rules. Week bands open on Mondays and weekday labels default to English
// unless overridden.
func NewGridBuilder(log zerolog.Logger, sink Sink, rng DateRange, rules format.RuleSet) *GridBuilder {
	return &GridBuilder{
		log:       log,
		sink:      sink,
		rng:       rng,
		rules:     rules,
		holidays:  HolidayTable{},
		weekdays:  [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"},
		weekStart: time.Monday,
	}
}

// WithHolidays sets the holiday table consulted per day.
func (b *GridBuilder) WithHolidays(holidays HolidayTable) *GridBuilder {
	b.holidays = holidays
	return b
}

// WithContentHeading sets the heading cell text above the content rows.
func (b *GridBuilder) WithContentHeading(heading string) *GridBuilder {
	b.heading = heading
	return b
}

// WithContentEntries sets the static content entries. Their count fixes the
// calendar height unless an overlay replaces them at load time.
func (b *GridBuilder) WithContentEntries(entries []string) *GridBuilder {
	b.entries = entries
	return b
}

// WithWeekdayLabels sets the day-of-week row labels, Monday first.
func (b *GridBuilder) WithWeekdayLabels(labels [7]string) *GridBuilder {
	b.weekdays = labels
	return b
}

// WithWeekStart sets the weekday that opens a new week band.
func (b *GridBuilder) WithWeekStart(weekStart time.Weekday) *GridBuilder {
	b.weekStart = weekStart
	return b
}

// WithOverlay configures an import overlay. Its Load replaces the content
// entries before layout; its Plot runs once after the grid is complete. The
// id names the overlay in errors.
func (b *GridBuilder) WithOverlay(id string, overlay Overlay, filename string) *GridBuilder {
	b.overlay = overlay
	b.overlayID = id
	b.overlayFile = filename
	return b
}

// Layout returns the sheet geometry in effect. Only meaningful after Build.
func (b *GridBuilder) Layout() Layout {
	return b.layout
}

// Build runs the layout pass: Initializing, Laying Out, Trimming, Overlaying,
// Finalized. Errors before or during layout abort with no usable grid. A
// returned *OverlayError with Op "plot" is the one non-fatal case: the base
// calendar is complete and the caller decides whether to persist it.
// Build panics when called a second time.
func (b *GridBuilder) Build() error {
	if b.state != stateInitializing {
		panic("grid builder: build already run")
	}

	if err := b.initialize(); err != nil {
		return err
	}

	b.state = stateLayingOut
	lastColumn, err := b.layOut()
	if err != nil {
		return err
	}

	b.state = stateTrimming
	if err := b.trim(lastColumn); err != nil {
		return err
	}

	b.state = stateOverlaying
	err = b.plotOverlay()

	b.state = stateFinalized
	return err
}

// initialize resolves the calendar height, fixes the geometry and writes the
// static parts: column widths, the content heading and the content entries.
func (b *GridBuilder) initialize() error {
	if b.overlay != nil {
		entries, err := b.overlay.Load(b.overlayFile)
		if err != nil {
			return &OverlayError{Importer: b.overlayID, Op: "load", Err: err}
		}
		b.entries = entries
	}

	rows := len(b.entries)
	if rows == 0 {
		rows = DefaultContentRows
	}
	b.layout = DefaultLayout(rows)
	b.offsets = NewOffsetTracker(b.layout)

	days := b.rng.Days()
	b.log.Info().
		Str("start", b.rng.Start.Format("2006-01-02")).
		Str("end", b.rng.End.Format("2006-01-02")).
		Int("days", days).
		Int("content_rows", rows).
		Msg("laying out calendar grid")

	if err := b.sink.SetColWidth(b.layout.HeadingColumn, b.layout.HeadingColumn,
		contentColumnWidth(b.heading, b.entries)); err != nil {
		return fmt.Errorf("sizing content column: %w", err)
	}
	if err := b.sink.SetColWidth(b.layout.StartColumn, b.layout.Column(days-1), dayColumnWidth); err != nil {
		return fmt.Errorf("sizing day columns: %w", err)
	}

	if err := b.sink.WriteCell(b.layout.DayRow, b.layout.HeadingColumn, b.heading,
		b.rules.Get(format.TagContentHeading)); err != nil {
		return fmt.Errorf("writing content heading: %w", err)
	}
	for i := 0; i < rows; i++ {
		var value interface{}
		if i < len(b.entries) {
			value = b.entries[i]
		}
		if err := b.sink.WriteCell(b.layout.ContentRow(i), b.layout.HeadingColumn, value,
			format.Border()); err != nil {
			return fmt.Errorf("writing content entry %d: %w", i, err)
		}
	}
	return nil
}

// layOut walks the range, bookkeeping band boundaries and writing the day
// columns. Returns the last day column index.
func (b *GridBuilder) layOut() (int, error) {
	cursor := NewDateCursor(b.rng, b.holidays, b.weekStart)
	last := 0
	for {
		rec, ok := cursor.Next()
		if !ok {
			break
		}
		col := b.offsets.AdvanceColumn()
		last = col

		// Boundary order is week, month, year: month and year merges rely
		// on the week-aligned column grid being booked first.
		if err := b.handleBoundary(rec.NewWeek, BandWeek, weekLabel(rec.Date), col); err != nil {
			return 0, err
		}
		if err := b.handleBoundary(rec.NewMonth, BandMonth, monthLabel(rec.Date), col); err != nil {
			return 0, err
		}
		if err := b.handleBoundary(rec.NewYear, BandYear, yearLabel(rec.Date), col); err != nil {
			return 0, err
		}

		if err := b.writeDay(rec); err != nil {
			return 0, err
		}
	}
	return last, nil
}

// handleBoundary closes the previous span of band at the column before the
// boundary and opens the new one at the boundary column.
func (b *GridBuilder) handleBoundary(opens bool, band Band, label string, column int) error {
	if !opens {
		return nil
	}
	if b.offsets.IsOpen(band) {
		if err := b.emitSpan(b.offsets.Close(band, column-1)); err != nil {
			return err
		}
	}
	b.offsets.Open(band, label, column)
	return nil
}

// writeDay writes one day column: the weekday label, the day number, and for
// weekends and holidays the painted content cells plus the holiday footnote.
func (b *GridBuilder) writeDay(rec DayRecord) error {
	col := b.layout.Column(rec.ColumnIndex)

	tag := format.TagDay
	if rec.IsWeekend || rec.Holiday {
		tag = format.TagWeekend
	}
	attrs := b.rules.Get(tag)

	if err := b.sink.WriteCell(b.layout.DayOfWeekRow, col, b.weekdays[rec.Weekday], attrs); err != nil {
		return fmt.Errorf("writing weekday cell column %d: %w", rec.ColumnIndex, err)
	}
	if err := b.sink.WriteCell(b.layout.DayRow, col, rec.Date.Day(), attrs); err != nil {
		return fmt.Errorf("writing day cell column %d: %w", rec.ColumnIndex, err)
	}

	if tag == format.TagWeekend {
		for i := 0; i < b.layout.ContentRows; i++ {
			if err := b.sink.WriteCell(b.layout.ContentRow(i), col, nil, attrs); err != nil {
				return fmt.Errorf("painting content cell column %d row %d: %w", rec.ColumnIndex, i, err)
			}
		}
	}

	if rec.Holiday {
		if err := b.sink.AddFootnote(b.layout.MarkerRow(), col, "!", rec.HolidayNote,
			format.BoldBorderCenter()); err != nil {
			return fmt.Errorf("adding holiday footnote column %d: %w", rec.ColumnIndex, err)
		}
	}
	return nil
}

// trim force-closes every still-open band at the last column so partial
// trailing weeks, months and years come out merged like full ones.
func (b *GridBuilder) trim(lastColumn int) error {
	for _, span := range b.offsets.ForceCloseAll(lastColumn) {
		if err := b.emitSpan(span); err != nil {
			return err
		}
	}
	return nil
}

// plotOverlay invokes the overlay's plot contract on the finished grid.
func (b *GridBuilder) plotOverlay() error {
	if b.overlay == nil {
		return nil
	}
	ctx := PlotContext{
		Log:    b.log,
		Sink:   b.sink,
		Layout: b.layout,
		Range:  b.rng,
		Rules:  b.rules,
	}
	if err := b.overlay.Plot(ctx); err != nil {
		b.log.Warn().Err(err).Str("importer", b.overlayID).
			Msg("overlay plot failed, base calendar preserved")
		return &OverlayError{Importer: b.overlayID, Op: "plot", Err: err}
	}
	return nil
}

// emitSpan merges a finalized band span with the odd/even rule picked by the
// span's ordinal since range start.
func (b *GridBuilder) emitSpan(span MergeSpan) error {
	var tag format.Tag
	switch span.Band {
	case BandWeek:
		tag = format.WeekTag(span.Ordinal)
	case BandMonth:
		tag = format.MonthTag(span.Ordinal)
	case BandYear:
		tag = format.YearTag(span.Ordinal)
	}

	b.log.Debug().
		Str("band", span.Band.String()).
		Str("label", span.Label).
		Int("start", span.StartColumn).
		Int("end", span.EndColumn).
		Int("ordinal", span.Ordinal).
		Msg("merging band span")

	if err := b.sink.MergeRange(span.Row, b.layout.Column(span.StartColumn),
		b.layout.Column(span.EndColumn), span.Label, b.rules.Get(tag)); err != nil {
		return fmt.Errorf("merging %s span %q: %w", span.Band, span.Label, err)
	}
	return nil
}

func weekLabel(t time.Time) string {
	_, week := t.ISOWeek()
	return fmt.Sprintf("W%d", week)
}

func monthLabel(t time.Time) string {
	return t.Format("Jan")
}

func yearLabel(t time.Time) string {
	return strconv.Itoa(t.Year())
}

// contentColumnWidth sizes the content column from the longest of the
// heading and the entries.
func contentColumnWidth(heading string, entries []string) float64 {
	size := utf8.RuneCountInString(heading)
	for _, entry := range entries {
		if n := utf8.RuneCountInString(entry); n > size {
			size = n
		}
	}
	return float64(size) * contentWidthFactor
}
