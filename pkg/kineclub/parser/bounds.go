package parser

import "github.com/antoine-piarou/kineclub/pkg/kineclub/models"

// findDataBounds finds the bounding box of non-empty cells, as a 1-based
// range. ok is false when every cell is empty.
func findDataBounds(rows [][]string) (area models.CellRange, ok bool) {
	minRow, maxRow := -1, -1
	minCol, maxCol := -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	if minRow < 0 {
		return models.CellRange{}, false
	}
	return models.CellRange{R1: minRow + 1, C1: minCol + 1, R2: maxRow + 1, C2: maxCol + 1}, true
}

// countNonEmptyCells counts non-empty cells within a 1-based range.
func countNonEmptyCells(rows [][]string, area models.CellRange) int {
	count := 0
	for rowIdx := area.R1 - 1; rowIdx < area.R2 && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := area.C1 - 1; colIdx < area.C2 && colIdx < len(row); colIdx++ {
			if row[colIdx] != "" {
				count++
			}
		}
	}
	return count
}

// rawAt returns the raw string at a 1-based position, "" when missing.
func rawAt(rows [][]string, row, col int) string {
	if row < 1 || row > len(rows) || col < 1 || col > len(rows[row-1]) {
		return ""
	}
	return rows[row-1][col-1]
}
