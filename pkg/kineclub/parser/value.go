package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/antoine-piarou/kineclub/pkg/kineclub/models"
)

// parseValue attempts to parse a raw cell string as a number.
// Returns a number cell when the whole string is a finite number, a string
// cell otherwise, and an absent cell for "". With decimalComma, a single
// comma is read as the decimal separator ("12,5").
func parseValue(s string, decimalComma bool) models.Cell {
	if s == "" {
		return models.Absent()
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.Number(float64(i))
	}
	candidate := s
	if decimalComma && strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		candidate = strings.Replace(s, ",", ".", 1)
	}
	// Try float; "NaN" and "Inf" parse but are text in a sheet.
	if f, err := strconv.ParseFloat(candidate, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return models.Number(f)
	}
	// Return as string
	return models.String(s)
}
