// Package xlsxgrid is a thin cell-grid sink on top of excelize. Callers
// address cells by 1-based (row, column) coordinates and describe formatting
// with flat attribute maps; the grid owns the workbook, the style cache and
// the final serialization to disk.
package xlsxgrid

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const commentAuthor = "xlsxcalendar"

// Option configures a Grid at construction time.
type Option func(cfg *gridConfig) error

type gridConfig struct {
	tabColor string
}

// WithTabColor sets the worksheet tab color, "#RRGGBB" or "RRGGBB".
func WithTabColor(color string) Option {
	return func(cfg *gridConfig) error {
		cfg.tabColor = color
		return nil
	}
}

// Grid wraps a single-worksheet workbook. All writes land on that worksheet.
type Grid struct {
	file   *excelize.File
	sheet  string
	styles map[string]int
}

// New creates a workbook with one worksheet named sheetName.
func New(sheetName string, opts ...Option) (*Grid, error) {
	cfg := &gridConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying grid option: %w", err)
		}
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("renaming worksheet: %w", err)
	}
	if cfg.tabColor != "" {
		color := normalizeColor(cfg.tabColor)
		if err := f.SetSheetProps(sheetName, &excelize.SheetPropsOptions{TabColorRGB: &color}); err != nil {
			return nil, fmt.Errorf("setting tab color: %w", err)
		}
	}

	return &Grid{
		file:   f,
		sheet:  sheetName,
		styles: make(map[string]int),
	}, nil
}

// Sheet returns the worksheet name.
func (g *Grid) Sheet() string {
	return g.sheet
}

// File exposes the underlying workbook. Intended for read-back in tests and
// for callers that need excelize features the grid does not wrap.
func (g *Grid) File() *excelize.File {
	return g.file
}

// WriteCell writes value into the cell at (row, col) and applies attrs.
func (g *Grid) WriteCell(row, col int, value interface{}, attrs Attrs) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("resolving cell name: %w", err)
	}

	if value != nil {
		if err := g.file.SetCellValue(g.sheet, cell, value); err != nil {
			return fmt.Errorf("setting cell value %s: %w", cell, err)
		}
	}
	return g.applyStyle(cell, cell, attrs)
}

// MergeRange merges the cells from startCol to endCol on row, writes value
// into the top-left cell and styles the whole range. A range of a single
// column skips the merge and degrades to a plain styled write.
func (g *Grid) MergeRange(row, startCol, endCol int, value interface{}, attrs Attrs) error {
	if endCol < startCol {
		return fmt.Errorf("merge range end column %d before start column %d", endCol, startCol)
	}
	if startCol == endCol {
		return g.WriteCell(row, startCol, value, attrs)
	}

	start, err := excelize.CoordinatesToCellName(startCol, row)
	if err != nil {
		return fmt.Errorf("resolving merge start: %w", err)
	}
	end, err := excelize.CoordinatesToCellName(endCol, row)
	if err != nil {
		return fmt.Errorf("resolving merge end: %w", err)
	}

	if err := g.file.MergeCell(g.sheet, start, end); err != nil {
		return fmt.Errorf("merging %s:%s: %w", start, end, err)
	}
	if value != nil {
		if err := g.file.SetCellValue(g.sheet, start, value); err != nil {
			return fmt.Errorf("setting merged value %s: %w", start, err)
		}
	}
	return g.applyStyle(start, end, attrs)
}

// AddFootnote writes marker into the cell at (row, col) and attaches note as
// a cell comment.
func (g *Grid) AddFootnote(row, col int, marker, note string, attrs Attrs) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("resolving footnote cell: %w", err)
	}
	if err := g.file.SetCellValue(g.sheet, cell, marker); err != nil {
		return fmt.Errorf("setting footnote marker %s: %w", cell, err)
	}
	if err := g.file.AddComment(g.sheet, excelize.Comment{
		Cell:      cell,
		Author:    commentAuthor,
		Paragraph: []excelize.RichTextRun{{Text: note}},
	}); err != nil {
		return fmt.Errorf("adding footnote comment %s: %w", cell, err)
	}
	return g.applyStyle(cell, cell, attrs)
}

// SetColWidth sets the width of the columns startCol through endCol.
func (g *Grid) SetColWidth(startCol, endCol int, width float64) error {
	start, err := excelize.ColumnNumberToName(startCol)
	if err != nil {
		return fmt.Errorf("resolving start column: %w", err)
	}
	end, err := excelize.ColumnNumberToName(endCol)
	if err != nil {
		return fmt.Errorf("resolving end column: %w", err)
	}
	if err := g.file.SetColWidth(g.sheet, start, end, width); err != nil {
		return fmt.Errorf("setting column width %s:%s: %w", start, end, err)
	}
	return nil
}

// Save serializes the workbook to path. Failures come back as *OutputError
// so callers can distinguish sink trouble from layout trouble.
func (g *Grid) Save(path string) error {
	if err := g.file.SaveAs(path); err != nil {
		return &OutputError{Path: path, Err: err}
	}
	return nil
}

// Write serializes the workbook to w.
func (g *Grid) Write(w io.Writer) error {
	if err := g.file.Write(w); err != nil {
		return &OutputError{Path: "", Err: err}
	}
	return nil
}

// Close releases the workbook resources.
func (g *Grid) Close() error {
	return g.file.Close()
}

// applyStyle resolves attrs to a cached style ID and applies it to the range.
// Empty attrs leave the cells on the workbook default.
func (g *Grid) applyStyle(start, end string, attrs Attrs) error {
	if len(attrs) == 0 {
		return nil
	}
	styleID, err := g.styleFor(attrs)
	if err != nil {
		return err
	}
	if err := g.file.SetCellStyle(g.sheet, start, end, styleID); err != nil {
		return fmt.Errorf("setting cell style %s:%s: %w", start, end, err)
	}
	return nil
}

// styleFor returns the style ID for attrs, registering it on first use.
// Identical attribute maps share one workbook style.
func (g *Grid) styleFor(attrs Attrs) (int, error) {
	key := attrs.cacheKey()
	if id, ok := g.styles[key]; ok {
		return id, nil
	}
	id, err := g.file.NewStyle(attrs.style())
	if err != nil {
		return 0, fmt.Errorf("creating style: %w", err)
	}
	g.styles[key] = id
	return id, nil
}
