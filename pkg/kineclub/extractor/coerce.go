package extractor

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/antoine-piarou/kineclub/pkg/kineclub/models"
)

// leadingNumber matches the longest numeric prefix a spreadsheet user
// would expect to be read: "7", "7.5", ".5", "7 pts", "1e2".
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ScoreValue coerces a category-row cell to a score. Numbers pass
// through, strings are read up to their first non-numeric character, and
// anything unreadable or non-finite becomes 0.
func ScoreValue(c models.Cell) float64 {
	switch c.Kind {
	case models.CellNumber:
		return finiteOrZero(c.Num)
	case models.CellString:
		return finiteOrZero(parseLeadingFloat(c.Str))
	default:
		return 0
	}
}

// MetricValue decides whether a metric-row cell is kept. The value is
// returned unchanged: absent cells and empty strings are dropped, every
// other value (0 included) is kept with its source type.
func MetricValue(c models.Cell) (models.Cell, bool) {
	switch c.Kind {
	case models.CellAbsent:
		return c, false
	case models.CellString:
		return c, c.Str != ""
	default:
		return c, true
	}
}

func parseLeadingFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	m := leadingNumber.FindString(s)
	if m == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		// Exponent overflow; the prefix is still a number.
		return math.Inf(1)
	}
	return f
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
