package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"

	"github.com/torbjornhedqvist/xlsxcalendar/internal/calendar"
	"github.com/torbjornhedqvist/xlsxcalendar/internal/format"
	"github.com/torbjornhedqvist/xlsxcalendar/pkg/xlsxgrid"
)

// sinkCell records one WriteCell call.
type sinkCell struct {
	row, col int
	value    interface{}
	attrs    xlsxgrid.Attrs
}

// recordingSink captures sink calls for assertions.
type recordingSink struct {
	cells []sinkCell
}

func (s *recordingSink) WriteCell(row, col int, value interface{}, attrs xlsxgrid.Attrs) error {
	s.cells = append(s.cells, sinkCell{row: row, col: col, value: value, attrs: attrs})
	return nil
}

func (s *recordingSink) MergeRange(row, startCol, endCol int, value interface{}, attrs xlsxgrid.Attrs) error {
	return nil
}

func (s *recordingSink) AddFootnote(row, col int, marker, note string, attrs xlsxgrid.Attrs) error {
	return nil
}

func (s *recordingSink) SetColWidth(startCol, endCol int, width float64) error {
	return nil
}

func (s *recordingSink) cellAt(t *testing.T, row, col int) sinkCell {
	t.Helper()
	for _, c := range s.cells {
		if c.row == row && c.col == col {
			return c
		}
	}
	t.Fatalf("no cell written at row %d col %d", row, col)
	return sinkCell{}
}

func (s *recordingSink) hasCellAt(row, col int) bool {
	for _, c := range s.cells {
		if c.row == row && c.col == col {
			return true
		}
	}
	return false
}

// writeLatin1CSV writes an ISO-8859-1 encoded export file and returns its path.
func writeLatin1CSV(t *testing.T, lines ...string) string {
	t.Helper()
	encoded, err := charmap.ISO8859_1.NewEncoder().String(strings.Join(lines, "\n") + "\n")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "absence.csv")
	require.NoError(t, os.WriteFile(path, []byte(encoded), 0o644))
	return path
}

func dateRange(t *testing.T, start, end string) calendar.DateRange {
	t.Helper()
	s, err := time.Parse("2006-01-02", start)
	require.NoError(t, err)
	e, err := time.Parse("2006-01-02", end)
	require.NoError(t, err)
	rng, err := calendar.NewDateRange(s, e)
	require.NoError(t, err)
	return rng
}

func plotContext(sink calendar.Sink, rng calendar.DateRange, contentRows int) calendar.PlotContext {
	return calendar.PlotContext{
		Log:    zerolog.Nop(),
		Sink:   sink,
		Layout: calendar.DefaultLayout(contentRows),
		Range:  rng,
		Rules:  format.Defaults(),
	}
}

// essWeek is a one week export, Monday 2022-12-19 through Sunday 2022-12-25.
var essWeek = []string{
	"Personnel No;Name;Org Unit;Company;Country;19.12;20.12;21.12;22.12;23.12;24.12;25.12",
	"12345678;Åsa Öberg;The unit;XYZ;SE;A;;P;;;O;O",
	"87654321;Kalle Karlsson;The unit;XYZ;SE;;H;;;;O;O",
}

func TestESSLoadCSV(t *testing.T) {
	path := writeLatin1CSV(t, essWeek...)

	ess := &ESS{}
	names, err := ess.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Åsa Öberg", "Kalle Karlsson"}, names)
	assert.Equal(t, []string{"19.12", "20.12", "21.12", "22.12", "23.12", "24.12", "25.12"}, ess.dateRow)
}

func TestESSLoadXLSX(t *testing.T) {
	f := excelize.NewFile()
	for i, line := range essWeek {
		row := make([]interface{}, 0)
		for _, field := range strings.Split(line, ";") {
			row = append(row, field)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(f.GetSheetName(0), cell, &row))
	}
	path := filepath.Join(t.TempDir(), "absence.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	ess := &ESS{}
	names, err := ess.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Åsa Öberg", "Kalle Karlsson"}, names)
	assert.Equal(t, []string{"19.12", "20.12", "21.12", "22.12", "23.12", "24.12", "25.12"}, ess.dateRow)
}

func TestESSLoadMissingFile(t *testing.T) {
	ess := &ESS{}
	_, err := ess.Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening import file")
}

func TestESSLoadRejectsShortRows(t *testing.T) {
	path := writeLatin1CSV(t,
		"Personnel No;Name;Org Unit;Company;Country;19.12",
		"12345678;Kalle Karlsson;The unit",
	)

	ess := &ESS{}
	_, err := ess.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed row")
}

func TestESSLoadRequiresDateHeaders(t *testing.T) {
	path := writeLatin1CSV(t, "12345678;Kalle Karlsson;The unit;XYZ;SE;A;P")

	ess := &ESS{}
	_, err := ess.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no date header row")
}

func TestESSPlotWritesCodesAndLegend(t *testing.T) {
	ess := &ESS{}
	_, err := ess.Load(writeLatin1CSV(t, essWeek...))
	require.NoError(t, err)

	sink := &recordingSink{}
	ctx := plotContext(sink, dateRange(t, "2022-12-19", "2022-12-25"), 2)
	require.NoError(t, ess.Plot(ctx))

	// Åsa: approved Monday, planned Wednesday.
	approved := ctx.Layout.ContentRow(0)
	cell := sink.cellAt(t, approved, ctx.Layout.Column(0))
	assert.Equal(t, "A", cell.value)
	assert.Equal(t, "#00FF00", cell.attrs[xlsxgrid.AttrFgColor])
	assert.Equal(t, 1, cell.attrs[xlsxgrid.AttrBorder])

	cell = sink.cellAt(t, approved, ctx.Layout.Column(2))
	assert.Equal(t, "P", cell.value)
	assert.Equal(t, "#00B0F0", cell.attrs[xlsxgrid.AttrFgColor])

	// Kalle: imported holiday Tuesday painted with the weekend rule.
	cell = sink.cellAt(t, ctx.Layout.ContentRow(1), ctx.Layout.Column(1))
	assert.Nil(t, cell.value)
	assert.Equal(t, ctx.Rules.Get(format.TagWeekend), cell.attrs)

	// Weekend markers and empty codes leave their cells alone.
	for _, day := range []int{1, 3, 4, 5, 6} {
		assert.False(t, sink.hasCellAt(approved, ctx.Layout.Column(day)),
			"day %d should not be written", day)
	}

	// Legend block under the marker row, heading column.
	legendRow := ctx.Layout.MarkerRow() + 1
	col := ctx.Layout.HeadingColumn
	cell = sink.cellAt(t, legendRow, col)
	assert.Equal(t, "Legend", cell.value)
	assert.Equal(t, true, cell.attrs[xlsxgrid.AttrBold])
	assert.Equal(t, "#D9E1F2", cell.attrs[xlsxgrid.AttrFgColor])

	cell = sink.cellAt(t, legendRow+1, col)
	assert.Equal(t, `Approved absence="A"`, cell.value)
	assert.Equal(t, "#00FF00", cell.attrs[xlsxgrid.AttrFgColor])

	cell = sink.cellAt(t, legendRow+2, col)
	assert.Equal(t, `Planned absence="P"`, cell.value)
	assert.Equal(t, "#00B0F0", cell.attrs[xlsxgrid.AttrFgColor])
}

func TestESSPlotResolvesYearAcrossBoundary(t *testing.T) {
	ess := &ESS{}
	_, err := ess.Load(writeLatin1CSV(t,
		"Personnel No;Name;Org Unit;Company;Country;30.12;31.12;01.01;02.01",
		"12345678;Kalle Karlsson;The unit;XYZ;SE;A;O;O;A",
	))
	require.NoError(t, err)

	sink := &recordingSink{}
	ctx := plotContext(sink, dateRange(t, "2022-11-13", "2023-01-26"), 1)
	require.NoError(t, ess.Plot(ctx))

	// 2022-12-30 is day 47 of the calendar, 2023-01-02 is day 50.
	row := ctx.Layout.ContentRow(0)
	assert.Equal(t, "A", sink.cellAt(t, row, ctx.Layout.Column(47)).value)
	assert.Equal(t, "A", sink.cellAt(t, row, ctx.Layout.Column(50)).value)
}

func TestESSPlotRejectsImportOutsideCalendar(t *testing.T) {
	ess := &ESS{}
	_, err := ess.Load(writeLatin1CSV(t, essWeek...))
	require.NoError(t, err)

	sink := &recordingSink{}
	ctx := plotContext(sink, dateRange(t, "2023-03-01", "2023-03-31"), 2)
	err = ess.Plot(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside calendar range")
	assert.Empty(t, sink.cells)
}

func TestESSPlotRejectsMisalignedWeekendMarker(t *testing.T) {
	ess := &ESS{}
	_, err := ess.Load(writeLatin1CSV(t,
		"Personnel No;Name;Org Unit;Company;Country;19.12;20.12;21.12",
		"12345678;Kalle Karlsson;The unit;XYZ;SE;;O;",
	))
	require.NoError(t, err)

	sink := &recordingSink{}
	ctx := plotContext(sink, dateRange(t, "2022-12-19", "2022-12-25"), 1)
	err = ess.Plot(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not aligned")
}

func TestESSPlotRejectsUnknownCode(t *testing.T) {
	ess := &ESS{}
	_, err := ess.Load(writeLatin1CSV(t,
		"Personnel No;Name;Org Unit;Company;Country;19.12;20.12",
		"12345678;Kalle Karlsson;The unit;XYZ;SE;X;",
	))
	require.NoError(t, err)

	sink := &recordingSink{}
	ctx := plotContext(sink, dateRange(t, "2022-12-19", "2022-12-25"), 1)
	err = ess.Plot(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unrecognized absence code "X"`)
	assert.Contains(t, err.Error(), "Kalle Karlsson")
}

func TestESSPlotRejectsBackwardsHeaders(t *testing.T) {
	ess := &ESS{}
	_, err := ess.Load(writeLatin1CSV(t,
		"Personnel No;Name;Org Unit;Company;Country;25.12;19.12",
		"12345678;Kalle Karlsson;The unit;XYZ;SE;;",
	))
	require.NoError(t, err)

	err = ess.Plot(plotContext(&recordingSink{}, dateRange(t, "2022-12-01", "2022-12-31"), 1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run backwards")
}

func TestESSPlotRejectsMalformedHeaders(t *testing.T) {
	ess := &ESS{}
	_, err := ess.Load(writeLatin1CSV(t,
		"Personnel No;Name;Org Unit;Company;Country;Monday;Tuesday",
		"12345678;Kalle Karlsson;The unit;XYZ;SE;;",
	))
	require.NoError(t, err)

	err = ess.Plot(plotContext(&recordingSink{}, dateRange(t, "2022-12-01", "2022-12-31"), 1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in DD.MM format")
}
