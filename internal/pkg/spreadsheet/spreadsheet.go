// Package spreadsheet decodes .xlsx/.xls uploads into a generic grid of
// typed cells. Parsers downstream only ever see the grid, never the file.
package spreadsheet

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

var ErrUnsupportedFormat = errors.New("file must be in .xlsx or .xls format")

type CellKind int

const (
	CellEmpty CellKind = iota
	CellString
	CellNumber
)

// Cell is one spreadsheet cell: empty, a string, or a number.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// String renders the cell the way the recap parsers expect raw values:
// numbers without exponent or trailing zeros, empty cells as "".
func (c Cell) String() string {
	switch c.Kind {
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellString:
		return c.Text
	default:
		return ""
	}
}

// Grid is an ordered sequence of rows of cells.
type Grid [][]Cell

// Cell returns the cell at (row, col), or an empty cell when the
// coordinates fall outside the ragged grid.
func (g Grid) Cell(row, col int) Cell {
	if row < 0 || row >= len(g) {
		return Cell{}
	}
	r := g[row]
	if col < 0 || col >= len(r) {
		return Cell{}
	}
	return r[col]
}

// Open reads a spreadsheet file into a Grid. The extension decides the
// decoder; anything but .xlsx/.xls fails before any parsing starts.
func Open(path string) (Grid, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return openXLSX(path)
	case ".xls":
		return openXLS(path)
	default:
		return nil, ErrUnsupportedFormat
	}
}

func openXLSX(path string) (Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no worksheet found")
	}

	// Raw values keep fractional-day clock times numeric instead of
	// the display string excelize would otherwise render.
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}

	return gridFromStrings(rows), nil
}

func openXLS(path string) (Grid, error) {
	workbook, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("failed to open xls file: %w", err)
	}
	if workbook.NumSheets() == 0 {
		return nil, fmt.Errorf("no worksheet found")
	}

	rows := workbook.ReadAllCells(100000)
	return gridFromStrings(rows), nil
}

func gridFromStrings(rows [][]string) Grid {
	grid := make(Grid, len(rows))
	for i, row := range rows {
		cells := make([]Cell, len(row))
		for j, raw := range row {
			cells[j] = cellFromRaw(raw)
		}
		grid[i] = cells
	}
	return grid
}

func cellFromRaw(raw string) Cell {
	if strings.TrimSpace(raw) == "" {
		return Cell{}
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return Cell{Kind: CellNumber, Number: n}
	}
	return Cell{Kind: CellString, Text: raw}
}
