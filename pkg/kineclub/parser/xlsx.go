// Package parser loads spreadsheet files into grids of primitive cells.
package parser

import (
	"fmt"

	"github.com/antoine-piarou/kineclub/pkg/kineclub/models"
	"github.com/xuri/excelize/v2"
)

// SheetInfo describes where a grid was read from.
type SheetInfo struct {
	// Name is the sheet name, or "csv" for delimited text.
	Name string
	// Range is the used range the grid covers.
	Range models.CellRange
	// Ref is Range in A1:D10 notation.
	Ref string
	// DataCells is the number of non-empty cells in Range.
	DataCells int
}

// ReadXLSX reads the first sheet of a workbook into a rectangular grid.
// The grid starts at the top-left of the sheet's used range and holds
// calculated values, never formulas.
func ReadXLSX(f *excelize.File) (models.Grid, *SheetInfo, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, models.NewValidationError(models.ErrEmptySource, "workbook has no sheets")
	}
	sheetName := sheets[0]

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}

	dim, err := f.GetSheetDimension(sheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("read dimension of sheet %q: %w", sheetName, err)
	}
	area, hasDim, err := parseDimension(dim)
	if err != nil {
		return nil, nil, err
	}

	// The stored dimension is a hint; some writers leave it at A1.
	bounds, ok := findDataBounds(rows)
	if !ok {
		return nil, nil, models.NewValidationError(models.ErrNoDataCells,
			"sheet %q contains no data cells", sheetName)
	}
	if hasDim {
		area = unionRange(area, bounds)
	} else {
		area = bounds
	}

	grid := make(models.Grid, area.Rows())
	for r := range grid {
		rowNum := area.R1 + r
		row := make([]models.Cell, area.Cols())
		for c := range row {
			colNum := area.C1 + c
			raw := rawAt(rows, rowNum, colNum)
			if raw == "" {
				continue
			}
			cell, err := typedCell(f, sheetName, colNum, rowNum, raw)
			if err != nil {
				return nil, nil, err
			}
			row[c] = cell
		}
		grid[r] = row
	}

	return grid, &SheetInfo{
		Name:      sheetName,
		Range:     area,
		Ref:       rangeRef(area),
		DataCells: countNonEmptyCells(rows, area),
	}, nil
}

// typedCell turns a raw cell string into a string or number cell using
// the type recorded in the sheet. Untyped cells are numbers when they
// parse as one.
func typedCell(f *excelize.File, sheetName string, col, row int, raw string) (models.Cell, error) {
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return models.Cell{}, err
	}
	cellType, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return models.Cell{}, fmt.Errorf("read type of cell %s: %w", cellName, err)
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return models.String(raw), nil
	case excelize.CellTypeBool, excelize.CellTypeError, excelize.CellTypeDate:
		// Display text: TRUE/FALSE, #DIV/0!, formatted dates.
		text, err := f.GetCellValue(sheetName, cellName)
		if err != nil {
			return models.Cell{}, fmt.Errorf("read cell %s: %w", cellName, err)
		}
		return models.String(text), nil
	default:
		return parseValue(raw, false), nil
	}
}
