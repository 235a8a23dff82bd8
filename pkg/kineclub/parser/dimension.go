package parser

import (
	"fmt"
	"strings"

	"github.com/antoine-piarou/kineclub/pkg/kineclub/models"
	"github.com/xuri/excelize/v2"
)

// parseDimension parses a sheet dimension reference such as A1:D10 or a
// single cell A1. An empty reference reports ok == false. A reference
// that does not decode, or that ends before it starts, is a malformed
// range.
func parseDimension(ref string) (models.CellRange, bool, error) {
	// Remove $ signs
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")
	if ref == "" {
		return models.CellRange{}, false, nil
	}

	// Split by :
	parts := strings.Split(ref, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return models.CellRange{}, false, models.NewValidationError(models.ErrMalformedRange,
			"could not decode sheet range %q", ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.CellRange{}, false, models.NewValidationError(models.ErrMalformedRange,
			"could not decode sheet range %q: %v", ref, err)
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.CellRange{}, false, models.NewValidationError(models.ErrMalformedRange,
			"could not decode sheet range %q: %v", ref, err)
	}

	area := models.CellRange{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}
	if !area.Valid() {
		return models.CellRange{}, false, models.NewValidationError(models.ErrMalformedRange,
			"sheet range %q ends before it starts", ref)
	}
	return area, true, nil
}

// unionRange returns the smallest range covering a and b.
func unionRange(a, b models.CellRange) models.CellRange {
	return models.CellRange{
		R1: min(a.R1, b.R1),
		C1: min(a.C1, b.C1),
		R2: max(a.R2, b.R2),
		C2: max(a.C2, b.C2),
	}
}

// rangeRef formats a range in A1:D10 notation.
func rangeRef(area models.CellRange) string {
	start, _ := excelize.CoordinatesToCellName(area.C1, area.R1)
	end, _ := excelize.CoordinatesToCellName(area.C2, area.R2)
	return fmt.Sprintf("%s:%s", start, end)
}
