package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"

	"github.com/torbjornhedqvist/xlsxcalendar/internal/calendar"
	"github.com/torbjornhedqvist/xlsxcalendar/internal/format"
	"github.com/torbjornhedqvist/xlsxcalendar/pkg/xlsxgrid"
)

func init() {
	Register("ess", func() calendar.Overlay { return &ESS{} })
}

// Absence codes found in ESS exports.
const (
	codeApproved = "A"
	codePlanned  = "P"
	codeHoliday  = "H"
	codeWeekend  = "O"
)

// ESS imports the semicolon separated absence exports of an ESS system:
//
//	Personnel No;Name;Org Unit;Company;Country;19.08;20.08;21.08;...
//	12345678;Kalle Karlsson;The unit;XYZ;SE;;O;O;A;...
//
// Load keeps the Name column and the per-day absence codes and drops the
// rest. The date headers carry no year, so Plot resolves them against the
// calendar range and re-checks weekend alignment before writing anything.
// Files ending in .xlsx are read through excelize instead of the CSV path.
type ESS struct {
	records []essRecord
	dateRow []string
}

type essRecord struct {
	name  string
	codes []string
}

// Load reads the export and returns the names, in file order, to be used as
// content entries.
func (e *ESS) Load(filename string) ([]string, error) {
	var (
		rows [][]string
		err  error
	)
	if strings.HasSuffix(strings.ToLower(filename), ".xlsx") {
		rows, err = readXLSXRows(filename)
	} else {
		rows, err = readCSVRows(filename)
	}
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		// Layout: Personnel No, Name, Org Unit, Company, Country, dates...
		if len(row) < 6 {
			return nil, fmt.Errorf("malformed row, expected at least 6 columns, got %d", len(row))
		}
		name := strings.TrimSpace(row[1])
		codes := row[5:]
		if name == "Name" {
			e.dateRow = codes
			continue
		}
		e.records = append(e.records, essRecord{name: name, codes: codes})
	}

	if e.dateRow == nil {
		return nil, fmt.Errorf("no date header row found in %s", filename)
	}

	names := make([]string, len(e.records))
	for i, rec := range e.records {
		names[i] = rec.name
	}
	return names, nil
}

// Plot writes the absence codes into the content rows and adds the legend
// block. Approved and planned absences get their own fills; imported H
// holidays are repainted with the weekend rule so local holidays missing
// from the configuration still show up.
func (e *ESS) Plot(ctx calendar.PlotContext) error {
	importStart, importEnd, err := e.resolveDates(ctx.Range)
	if err != nil {
		return err
	}
	if !ctx.Range.Contains(importStart) || !ctx.Range.Contains(importEnd) {
		return fmt.Errorf("import range %s to %s outside calendar range",
			importStart.Format("2006-01-02"), importEnd.Format("2006-01-02"))
	}

	delta := ctx.Range.DayIndex(importStart)
	ctx.Log.Debug().Int("delta", delta).Msg("plotting ess import")

	approved := xlsxgrid.NewAttrs().Border(1).Align("center").Fill("#00FF00").Build()
	planned := xlsxgrid.NewAttrs().Border(1).Align("center").Fill("#00B0F0").Build()
	weekend := ctx.Rules.Get(format.TagWeekend)

	for r, rec := range e.records {
		row := ctx.Layout.ContentRow(r)
		for day, code := range rec.codes {
			code = strings.TrimSpace(code)
			if code == "" {
				continue
			}

			date := importStart.AddDate(0, 0, day)
			col := ctx.Layout.Column(delta + day)

			// The in-range check cannot catch an import that is shifted by
			// whole weeks; mismatched weekend markers can.
			if code == codeWeekend {
				if !isWeekend(date) {
					return fmt.Errorf("weekend marker on %s, calendar and import are not aligned",
						date.Format("2006-01-02"))
				}
				continue
			}

			switch code {
			case codeHoliday:
				err = ctx.Sink.WriteCell(row, col, nil, weekend)
			case codePlanned:
				err = ctx.Sink.WriteCell(row, col, code, planned)
			case codeApproved:
				err = ctx.Sink.WriteCell(row, col, code, approved)
			default:
				return fmt.Errorf("unrecognized absence code %q for %s", code, rec.name)
			}
			if err != nil {
				return fmt.Errorf("writing absence cell for %s: %w", rec.name, err)
			}
		}
	}

	return e.writeLegend(ctx)
}

// writeLegend puts the code explanation under the footnote marker row.
func (e *ESS) writeLegend(ctx calendar.PlotContext) error {
	col := ctx.Layout.HeadingColumn
	legendRow := ctx.Layout.MarkerRow() + 1

	header := xlsxgrid.NewAttrs().Bold().Border(2).Align("center").Fill("#D9E1F2").Build()
	approved := xlsxgrid.NewAttrs().Border(1).Fill("#00FF00").Build()
	planned := xlsxgrid.NewAttrs().Border(1).Fill("#00B0F0").Build()

	if err := ctx.Sink.WriteCell(legendRow, col, "Legend", header); err != nil {
		return fmt.Errorf("writing legend header: %w", err)
	}
	if err := ctx.Sink.WriteCell(legendRow+1, col, `Approved absence="A"`, approved); err != nil {
		return fmt.Errorf("writing legend entry: %w", err)
	}
	if err := ctx.Sink.WriteCell(legendRow+2, col, `Planned absence="P"`, planned); err != nil {
		return fmt.Errorf("writing legend entry: %w", err)
	}
	return nil
}

// resolveDates turns the yearless DD.MM header bounds into full dates. Within
// a single-year calendar the year is fixed; across a year boundary a header
// month at or after the calendar's start month belongs to the start year,
// anything earlier to the end year.
func (e *ESS) resolveDates(rng calendar.DateRange) (time.Time, time.Time, error) {
	if len(e.dateRow) == 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("import has no date headers, Load must run first")
	}
	startDay, startMonth, err := parseDayMonth(e.dateRow[0])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endDay, endMonth, err := parseDayMonth(e.dateRow[len(e.dateRow)-1])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	resolveYear := func(month int) int {
		if rng.Start.Year() == rng.End.Year() || month >= int(rng.Start.Month()) {
			return rng.Start.Year()
		}
		return rng.End.Year()
	}

	start := time.Date(resolveYear(startMonth), time.Month(startMonth), startDay, 0, 0, 0, 0, time.UTC)
	end := time.Date(resolveYear(endMonth), time.Month(endMonth), endDay, 0, 0, 0, 0, time.UTC)
	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("import date headers run backwards, %s before %s",
			e.dateRow[len(e.dateRow)-1], e.dateRow[0])
	}
	return start, end, nil
}

func parseDayMonth(header string) (day, month int, err error) {
	parts := strings.SplitN(strings.TrimSpace(header), ".", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("date header %q is not in DD.MM format", header)
	}
	day, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("date header %q is not in DD.MM format", header)
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("date header %q is not in DD.MM format", header)
	}
	return day, month, nil
}

func isWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}

// readCSVRows reads a semicolon separated ISO-8859-1 encoded export.
func readCSVRows(filename string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening import file: %w", err)
	}
	defer file.Close()
	return parseCSV(charmap.ISO8859_1.NewDecoder().Reader(file))
}

func parseCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}
	return rows, nil
}

// readXLSXRows reads the first worksheet of an xlsx export.
func readXLSXRows(filename string) ([][]string, error) {
	f, err := excelize.OpenFile(filename)
	if err != nil {
		return nil, fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("reading import worksheet: %w", err)
	}
	return rows, nil
}
