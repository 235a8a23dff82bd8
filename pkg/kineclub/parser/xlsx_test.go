package parser

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/antoine-piarou/kineclub/pkg/kineclub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// saveAndOpen round-trips a workbook through disk so tests read what a
// user's file would contain.
func saveAndOpen(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(tmpFile), "Failed to save test file")

	f2, err := excelize.OpenFile(tmpFile)
	require.NoError(t, err, "Failed to open test file")
	t.Cleanup(func() { f2.Close() })
	return f2
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	require.NoError(t, f.SetCellValue(sheetName, "A1", "TEST"))
	require.NoError(t, f.SetCellValue(sheetName, "B1", "JOUEUR A"))
	require.NoError(t, f.SetCellValue(sheetName, "C1", "EQUIPE"))
	require.NoError(t, f.SetCellValue(sheetName, "A2", "ANATOMIE"))
	require.NoError(t, f.SetCellValue(sheetName, "B2", 5))
	require.NoError(t, f.SetCellValue(sheetName, "C2", 7.5))
	require.NoError(t, f.SetCellValue(sheetName, "A3", "Taille"))
	require.NoError(t, f.SetCellValue(sheetName, "B3", "180"))
	require.NoError(t, f.SetCellValue(sheetName, "C3", 185))
	require.NoError(t, f.SetCellValue(sheetName, "A4", "Apte"))
	require.NoError(t, f.SetCellValue(sheetName, "B4", true))

	grid, info, err := ReadXLSX(saveAndOpen(t, f))
	require.NoError(t, err)

	require.Len(t, grid, 4)
	for _, row := range grid {
		assert.Len(t, row, 3, "grid is rectangular")
	}

	assert.Equal(t, models.String("TEST"), grid[0][0])
	assert.Equal(t, models.String("JOUEUR A"), grid[0][1])
	assert.Equal(t, models.Number(5), grid[1][1])
	assert.Equal(t, models.Number(7.5), grid[1][2])
	assert.Equal(t, models.String("180"), grid[2][1], "text cells stay text even when numeric")
	assert.Equal(t, models.Number(185), grid[2][2])
	assert.Equal(t, models.String("TRUE"), grid[3][1])
	assert.True(t, grid[3][2].IsAbsent())

	assert.Equal(t, sheetName, info.Name)
	assert.Equal(t, 4, info.Range.Rows())
	assert.Equal(t, "A1:C4", info.Ref)
	assert.Equal(t, 11, info.DataCells)
}

func TestReadXLSXUsesFirstSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet("Autre")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "TEST"))
	require.NoError(t, f.SetCellValue("Autre", "A1", "IGNORED"))

	grid, info, err := ReadXLSX(saveAndOpen(t, f))
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", info.Name)
	assert.Equal(t, models.String("TEST"), grid[0][0])
}

func TestReadXLSXNoDataCells(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, _, err := ReadXLSX(saveAndOpen(t, f))
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNoDataCells))
}

func TestParseDimension(t *testing.T) {
	tests := []struct {
		ref      string
		expected models.CellRange
		ok       bool
	}{
		{"A1:D10", models.CellRange{R1: 1, C1: 1, R2: 10, C2: 4}, true},
		{"$A$1:$C$3", models.CellRange{R1: 1, C1: 1, R2: 3, C2: 3}, true},
		{"B2", models.CellRange{R1: 2, C1: 2, R2: 2, C2: 2}, true},
		{"", models.CellRange{}, false},
	}

	for _, tt := range tests {
		area, ok, err := parseDimension(tt.ref)
		require.NoError(t, err, tt.ref)
		assert.Equal(t, tt.ok, ok, tt.ref)
		assert.Equal(t, tt.expected, area, tt.ref)
	}
}

func TestParseDimensionMalformed(t *testing.T) {
	for _, ref := range []string{"D10:A1", "C1:A5", "A1:B2:C3", "not-a-ref"} {
		_, _, err := parseDimension(ref)
		require.Error(t, err, ref)
		assert.True(t, errors.Is(err, models.ErrMalformedRange), ref)
	}
}

func TestUnionRange(t *testing.T) {
	got := unionRange(
		models.CellRange{R1: 1, C1: 1, R2: 1, C2: 1},
		models.CellRange{R1: 2, C1: 2, R2: 5, C2: 4},
	)
	assert.Equal(t, models.CellRange{R1: 1, C1: 1, R2: 5, C2: 4}, got)
	assert.Equal(t, "A1:D5", rangeRef(got))
}

func TestFindDataBounds(t *testing.T) {
	rows := [][]string{
		{},
		{"", "", "x"},
		{"", "y", "", "z"},
	}

	area, ok := findDataBounds(rows)
	require.True(t, ok)
	assert.Equal(t, models.CellRange{R1: 2, C1: 2, R2: 3, C2: 4}, area)
	assert.Equal(t, 3, countNonEmptyCells(rows, area))

	_, ok = findDataBounds([][]string{{"", ""}})
	assert.False(t, ok)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input        string
		decimalComma bool
		expected     models.Cell
	}{
		{"123", false, models.Number(123)},
		{"123.45", false, models.Number(123.45)},
		{"-100", false, models.Number(-100)},
		{"hello", false, models.String("hello")},
		{"", false, models.Absent()},
		{"NaN", false, models.String("NaN")},
		{"Inf", false, models.String("Inf")},
		{"12,5", false, models.String("12,5")},
		{"12,5", true, models.Number(12.5)},
		{"1,234.5", true, models.String("1,234.5")},
		{"1,2,3", true, models.String("1,2,3")},
	}

	for _, tt := range tests {
		result := parseValue(tt.input, tt.decimalComma)
		assert.Equal(t, tt.expected, result, "parseValue(%q, %v)", tt.input, tt.decimalComma)
	}
}
