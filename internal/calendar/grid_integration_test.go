package calendar

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/torbjornhedqvist/xlsxcalendar/internal/format"
	"github.com/torbjornhedqvist/xlsxcalendar/pkg/xlsxgrid"
)

// Builds a real workbook and reads it back through excelize.
func TestBuildIntoWorkbook(t *testing.T) {
	grid, err := xlsxgrid.New("- Calendar -", xlsxgrid.WithTabColor("#ff9966"))
	require.NoError(t, err)
	defer grid.Close()

	rng := mustRange(t, "2022-12-19", "2022-12-31")
	holidays := NewHolidayTable(map[string]string{"2022-12-25": "Christmas"})

	b := NewGridBuilder(zerolog.Nop(), grid, rng, format.Defaults()).
		WithContentHeading("Team").
		WithContentEntries([]string{"Alice", "Bob"}).
		WithHolidays(holidays)
	require.NoError(t, b.Build())

	f := grid.File()
	sheet := grid.Sheet()

	cell := func(ref string) string {
		v, err := f.GetCellValue(sheet, ref)
		require.NoError(t, err)
		return v
	}

	// Static content column.
	assert.Equal(t, "Team", cell("A7"))
	assert.Equal(t, "Alice", cell("A8"))
	assert.Equal(t, "Bob", cell("A9"))

	// Day columns: 2022-12-19 (Monday) in B through 2022-12-31 in N.
	assert.Equal(t, "Mo", cell("B6"))
	assert.Equal(t, "19", cell("B7"))
	assert.Equal(t, "Su", cell("H6"))
	assert.Equal(t, "25", cell("H7"))
	assert.Equal(t, "31", cell("N7"))

	// Band merges: one year, one month, two weeks.
	merged, err := f.GetMergeCells(sheet)
	require.NoError(t, err)
	byStart := map[string]string{}
	for _, m := range merged {
		byStart[m.GetStartAxis()+":"+m.GetEndAxis()] = m.GetCellValue()
	}
	assert.Equal(t, map[string]string{
		"B3:N3": "2022",
		"B4:N4": "Dec",
		"B5:H5": "W51",
		"I5:N5": "W52",
	}, byStart)

	// Christmas footnote under the two content rows: marker row is 10.
	assert.Equal(t, "!", cell("H10"))
	comments, err := f.GetComments(sheet)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "H10", comments[0].Cell)
	require.NotEmpty(t, comments[0].Paragraph)
	assert.Equal(t, "Christmas", comments[0].Paragraph[0].Text)

	// The holiday column carries the weekend fill, a plain weekday the day fill.
	assertFill(t, f, sheet, "H7", "CF1020")
	assertFill(t, f, sheet, "B7", "D9D9D9")

	// Tab color survives the round trip.
	props, err := f.GetSheetProps(sheet)
	require.NoError(t, err)
	require.NotNil(t, props.TabColorRGB)
	assert.True(t, strings.EqualFold(*props.TabColorRGB, "ff9966"))

	require.NoError(t, grid.Save(filepath.Join(t.TempDir(), "calendar.xlsx")))
}

func assertFill(t *testing.T, f *excelize.File, sheet, ref, wantHex string) {
	t.Helper()
	styleID, err := f.GetCellStyle(sheet, ref)
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotEmpty(t, style.Fill.Color)
	assert.Contains(t, strings.ToUpper(style.Fill.Color[0]), wantHex)
}
