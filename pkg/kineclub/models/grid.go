package models

// Grid is a row-major table of cells. Row 0 is the header row and
// column 0 holds row labels.
type Grid [][]Cell

// At returns the cell at (row, col), or an absent cell when the
// position lies outside the grid.
func (g Grid) At(row, col int) Cell {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return Absent()
	}
	return g[row][col]
}

// Width returns the length of the longest row.
func (g Grid) Width() int {
	width := 0
	for _, row := range g {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// Label returns the column-0 string of a row, if any.
func (g Grid) Label(row int) (string, bool) {
	return g.At(row, 0).Text()
}
