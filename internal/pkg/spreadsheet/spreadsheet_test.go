package spreadsheet

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestOpen_UnsupportedExtension(t *testing.T) {
	_, err := Open("laporan.csv")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Open("laporan")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestOpen_XLSX(t *testing.T) {
	// Setup: a small workbook with string, numeric, and empty cells
	path := filepath.Join(t.TempDir(), "absensi.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Nama Karyawan"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "Ahmad"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", 0.5))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	// Act
	grid, err := Open(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, CellString, grid.Cell(0, 0).Kind)
	assert.Equal(t, "Nama Karyawan", grid.Cell(0, 0).String())
	assert.Equal(t, CellString, grid.Cell(0, 1).Kind)

	numeric := grid.Cell(1, 0)
	assert.Equal(t, CellNumber, numeric.Kind)
	assert.InDelta(t, 0.5, numeric.Number, 1e-9)
}

func TestGrid_Cell_OutOfBounds(t *testing.T) {
	grid := Grid{{Cell{Kind: CellString, Text: "x"}}}

	assert.Equal(t, Cell{}, grid.Cell(5, 0))
	assert.Equal(t, Cell{}, grid.Cell(0, 5))
	assert.Equal(t, Cell{}, grid.Cell(-1, -1))
}

func TestCellFromRaw(t *testing.T) {
	assert.Equal(t, CellEmpty, cellFromRaw("").Kind)
	assert.Equal(t, CellEmpty, cellFromRaw("   ").Kind)
	assert.Equal(t, CellNumber, cellFromRaw("0.291666").Kind)
	assert.Equal(t, CellString, cellFromRaw("07:00").Kind)
	assert.Equal(t, CellString, cellFromRaw("TOTAL").Kind)
}

func TestCell_String_Number(t *testing.T) {
	// Numbers render without exponent or trailing zeros, matching how
	// the parsers expect raw identifiers to look.
	assert.Equal(t, "2023", Cell{Kind: CellNumber, Number: 2023}.String())
	assert.Equal(t, "0.5", Cell{Kind: CellNumber, Number: 0.5}.String())
	assert.Equal(t, "", Cell{}.String())
}

func TestPeriodHintFromFilename(t *testing.T) {
	start, end, ok := PeriodHintFromFilename("attendance_report_detail_2025-11-01_2025-11-22.xlsx")
	require.True(t, ok)
	assert.Equal(t, "2025-11-01", start)
	assert.Equal(t, "2025-11-22", end)

	_, _, ok = PeriodHintFromFilename("jadwal-guru.xlsx")
	assert.False(t, ok)
}
