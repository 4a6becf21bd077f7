package calendar

import (
	"github.com/rs/zerolog"

	"github.com/torbjornhedqvist/xlsxcalendar/internal/format"
	"github.com/torbjornhedqvist/xlsxcalendar/pkg/xlsxgrid"
)

// Sink receives the layout instructions the grid builder emits. Rows and
// columns are 1-based sheet coordinates. *xlsxgrid.Grid is the production
// implementation; tests substitute recorders.
type Sink interface {
	WriteCell(row, col int, value interface{}, attrs xlsxgrid.Attrs) error
	MergeRange(row, startCol, endCol int, value interface{}, attrs xlsxgrid.Attrs) error
	AddFootnote(row, col int, marker, note string, attrs xlsxgrid.Attrs) error
	SetColWidth(startCol, endCol int, width float64) error
}

// Overlay supplies alternative content entries before layout and plots
// additional cells after it. Load runs before the calendar height is fixed
// and its result defines that height; Plot runs exactly once, after the full
// grid exists.
type Overlay interface {
	Load(filename string) ([]string, error)
	Plot(ctx PlotContext) error
}

// PlotContext hands an overlay everything it may touch: the sink, the sheet
// geometry, the calendar range and the resolved format rules.
type PlotContext struct {
	Log    zerolog.Logger
	Sink   Sink
	Layout Layout
	Range  DateRange
	Rules  format.RuleSet
}
