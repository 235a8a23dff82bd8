package parser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/antoine-piarou/kineclub/pkg/kineclub/models"
	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// CSVOptions configures delimited text loading.
type CSVOptions struct {
	// Comma is the field delimiter. Zero detects ';', ',' or tab from the
	// first line.
	Comma rune
}

// ReadCSV reads delimited text into a rectangular grid anchored at A1.
// Input that is not valid UTF-8 is decoded as Windows-1252, the default
// of spreadsheet exports on French systems.
func ReadCSV(r io.Reader, opts CSVOptions) (models.Grid, *SheetInfo, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}
	content = bytes.TrimPrefix(content, utf8BOM)
	if !utf8.Valid(content) {
		content, err = charmap.Windows1252.NewDecoder().Bytes(content)
		if err != nil {
			return nil, nil, fmt.Errorf("decode csv: %w", err)
		}
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, nil, models.NewValidationError(models.ErrEmptySource, "csv has no rows")
	}

	comma := opts.Comma
	if comma == 0 {
		comma = detectComma(content)
	}

	cr := csv.NewReader(bytes.NewReader(content))
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}

	width := 0
	for _, rec := range records {
		width = max(width, len(rec))
	}
	area := models.CellRange{R1: 1, C1: 1, R2: len(records), C2: width}
	if _, ok := findDataBounds(records); !ok {
		return nil, nil, models.NewValidationError(models.ErrNoDataCells, "csv contains no data cells")
	}

	decimalComma := comma == ';'
	grid := make(models.Grid, len(records))
	for r, rec := range records {
		row := make([]models.Cell, width)
		for c, raw := range rec {
			row[c] = parseValue(raw, decimalComma)
		}
		grid[r] = row
	}

	return grid, &SheetInfo{
		Name:      "csv",
		Range:     area,
		Ref:       rangeRef(area),
		DataCells: countNonEmptyCells(records, area),
	}, nil
}

// detectComma picks the delimiter that occurs most often in the first
// line, preferring ',' on ties.
func detectComma(content []byte) rune {
	line := content
	if i := bytes.IndexByte(content, '\n'); i >= 0 {
		line = content[:i]
	}
	best, bestCount := ',', bytes.Count(line, []byte{','})
	for _, candidate := range []rune{';', '\t'} {
		if n := bytes.Count(line, []byte(string(candidate))); n > bestCount {
			best, bestCount = candidate, n
		}
	}
	return best
}
