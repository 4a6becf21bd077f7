package calendar

// DefaultContentRows is the calendar height when neither content entries nor
// an import overlay provide one.
const DefaultContentRows = 10

// Layout fixes the sheet geometry of the calendar: which 1-based sheet rows
// carry the heading bands and where the day columns start. The content rows
// follow directly under the day row and the footnote marker row follows the
// content rows.
type Layout struct {
	HeadingColumn int // content heading and entries, column A
	StartColumn   int // first day column, column B
	YearRow       int
	MonthRow      int
	WeekRow       int
	DayOfWeekRow  int
	DayRow        int
	ContentRows   int
}

// DefaultLayout returns the standard geometry with the given number of
// content rows.
func DefaultLayout(contentRows int) Layout {
	return Layout{
		HeadingColumn: 1,
		StartColumn:   2,
		YearRow:       3,
		MonthRow:      4,
		WeekRow:       5,
		DayOfWeekRow:  6,
		DayRow:        7,
		ContentRows:   contentRows,
	}
}

// Column maps a zero-based day column index to its sheet column.
func (l Layout) Column(dayIndex int) int {
	return l.StartColumn + dayIndex
}

// ContentRow maps a zero-based content row index to its sheet row.
func (l Layout) ContentRow(i int) int {
	return l.DayRow + 1 + i
}

// MarkerRow is the sheet row carrying holiday footnote markers, directly
// under the last content row.
func (l Layout) MarkerRow() int {
	return l.DayRow + l.ContentRows + 1
}

// BandRow returns the heading sheet row for a merge band.
func (l Layout) BandRow(band Band) int {
	switch band {
	case BandWeek:
		return l.WeekRow
	case BandMonth:
		return l.MonthRow
	case BandYear:
		return l.YearRow
	default:
		panic("layout: unknown band " + band.String())
	}
}
