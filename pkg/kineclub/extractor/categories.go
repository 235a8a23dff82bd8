// Package extractor infers player and team records from a loosely
// structured assessment grid.
//
// The grid carries no schema. Column roles come from header text, an
// optional sub-header row disambiguates the team block, and row roles come
// from the label column. Extraction is a single synchronous pass with no
// state shared between calls.
package extractor

import (
	"strings"

	"github.com/antoine-piarou/kineclub/pkg/kineclub/models"
)

// Categories is the fixed category vocabulary, matched case-sensitively
// after trimming.
var Categories = []string{
	"ANATOMIE",
	"MOBILITE",
	"FORCE",
	"EXPLOSIVITE",
	"VITESSE",
	"CARDIO",
	"MOUVEMENT",
}

var categorySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Categories))
	for _, c := range Categories {
		set[c] = struct{}{}
	}
	return set
}()

// Sentinel labels mark section headers in the label column. They never
// start a metric row.
const (
	SentinelTest = "TEST"
	SentinelNote = "NOTE"
)

// IsCategory reports whether a row label names a category row.
func IsCategory(label string) bool {
	_, ok := categorySet[strings.TrimSpace(label)]
	return ok
}

// LocateCategoryRows returns, in grid order, the indices of rows whose
// label is a category token.
func LocateCategoryRows(g models.Grid) []int {
	rows := []int{}
	for r := range g {
		if label, ok := g.Label(r); ok && IsCategory(label) {
			rows = append(rows, r)
		}
	}
	return rows
}
