// Package models defines data structures for roster extraction.
package models

import (
	"encoding/json"
	"strconv"
)

// CellKind identifies which value a Cell holds.
type CellKind uint8

const (
	// CellAbsent marks a cell with no value.
	CellAbsent CellKind = iota
	// CellString marks a text cell.
	CellString
	// CellNumber marks a numeric cell.
	CellNumber
)

// Cell is a single primitive grid value: a string, a number, or nothing.
type Cell struct {
	// Kind tells which of Str or Num is meaningful.
	Kind CellKind
	// Str is the text value when Kind is CellString.
	Str string
	// Num is the numeric value when Kind is CellNumber.
	Num float64
}

// Absent returns an empty cell.
func Absent() Cell { return Cell{} }

// String returns a text cell. The value is kept verbatim, including "".
func String(s string) Cell { return Cell{Kind: CellString, Str: s} }

// Number returns a numeric cell.
func Number(f float64) Cell { return Cell{Kind: CellNumber, Num: f} }

// IsAbsent reports whether the cell holds no value.
func (c Cell) IsAbsent() bool { return c.Kind == CellAbsent }

// Text returns the string value and whether the cell is a string.
func (c Cell) Text() (string, bool) {
	if c.Kind != CellString {
		return "", false
	}
	return c.Str, true
}

// Display renders the cell the way a spreadsheet shows it.
// Absent cells render as "".
func (c Cell) Display() string {
	switch c.Kind {
	case CellString:
		return c.Str
	case CellNumber:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	default:
		return ""
	}
}

// MarshalJSON encodes the cell as a JSON string, number or null.
func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case CellString:
		return json.Marshal(c.Str)
	case CellNumber:
		return json.Marshal(c.Num)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes a JSON string, number or null into the cell.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case string:
		*c = String(t)
	case float64:
		*c = Number(t)
	default:
		*c = Absent()
	}
	return nil
}
