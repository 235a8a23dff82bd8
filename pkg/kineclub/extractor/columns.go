package extractor

import (
	"math"
	"strings"

	"github.com/antoine-piarou/kineclub/pkg/kineclub/models"
)

// Marker tokens searched in upper-cased header and sub-header text.
const (
	TeamMarker       = "EQUIPE"
	AggregateMarker  = "MOYENNE"
	AnnotationMarker = "NOTE"
	ScoreMarker      = "SCORE"

	// PlaceholderPrefix starts the names loaders generate for blank
	// header cells.
	PlaceholderPrefix = "Unnamed"
)

// neighborSpan bounds the search for a team's primary-score column.
const neighborSpan = 2

// Role is the classification of a header column.
type Role int

const (
	// RoleSkip columns produce no record.
	RoleSkip Role = iota
	// RolePlayer columns produce one player record.
	RolePlayer
	// RoleTeam columns produce the team record.
	RoleTeam
)

func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleTeam:
		return "team"
	default:
		return "skip"
	}
}

// ColumnDecision is the outcome of classifying one header column.
// ScoreColumn and MetricColumn are only meaningful when Role is not
// RoleSkip.
type ColumnDecision struct {
	Role         Role
	HeaderIndex  int
	Header       string
	ScoreColumn  int
	MetricColumn int
	// Reason names the classification step that decided Role, and for
	// team columns also the step that resolved MetricColumn.
	Reason string
}

// Accepted reports whether the column produces a record.
func (d ColumnDecision) Accepted() bool { return d.Role != RoleSkip }

// scanState is threaded through the column scan of a single extraction.
type scanState struct {
	teamAccepted bool
}

// headerColumn is the view of a column the classification steps share.
type headerColumn struct {
	grid   models.Grid
	index  int
	header models.Cell
	text   string
	upper  string
}

func (h headerColumn) isTeamLabel() bool {
	return strings.Contains(h.upper, TeamMarker) && !strings.Contains(h.upper, AggregateMarker)
}

// classifyStep inspects a column and either decides its role or defers
// to the next step.
type classifyStep struct {
	name  string
	apply func(h headerColumn, st *scanState) (Role, bool)
}

// classifySteps run in order; the first step that decides wins.
var classifySteps = []classifyStep{
	{"non-text", skipNonText},
	{"placeholder", skipPlaceholder},
	{"aggregate", skipAggregate},
	{"duplicate-team", skipDuplicateTeam},
	{"team-annotation", skipTeamAnnotation},
	{"team", acceptTeam},
	{"player", acceptPlayer},
}

func skipNonText(h headerColumn, _ *scanState) (Role, bool) {
	return RoleSkip, h.header.Kind != models.CellString
}

// skipPlaceholder drops loader-generated names for blank header cells.
// A header typed as whitespace is text and still names a player.
func skipPlaceholder(h headerColumn, _ *scanState) (Role, bool) {
	return RoleSkip, strings.HasPrefix(h.text, PlaceholderPrefix)
}

// skipAggregate drops computed average columns such as "MOYENNE".
func skipAggregate(h headerColumn, _ *scanState) (Role, bool) {
	return RoleSkip, strings.Contains(h.upper, AggregateMarker) && !strings.Contains(h.upper, TeamMarker)
}

func skipDuplicateTeam(h headerColumn, st *scanState) (Role, bool) {
	return RoleSkip, h.isTeamLabel() && st.teamAccepted
}

// skipTeamAnnotation drops the annotation half of the team block; its
// primary column is accepted elsewhere in the scan.
func skipTeamAnnotation(h headerColumn, _ *scanState) (Role, bool) {
	if !h.isTeamLabel() {
		return RoleSkip, false
	}
	sub, ok := subHeader(h.grid, h.index)
	return RoleSkip, ok && strings.Contains(sub, AnnotationMarker)
}

func acceptTeam(h headerColumn, st *scanState) (Role, bool) {
	if !h.isTeamLabel() {
		return RoleSkip, false
	}
	st.teamAccepted = true
	return RoleTeam, true
}

func acceptPlayer(headerColumn, *scanState) (Role, bool) {
	return RolePlayer, true
}

// metricStep resolves the metric column of an accepted team column.
type metricStep struct {
	name  string
	apply func(g models.Grid, col int) (int, bool)
}

// teamMetricSteps run in order; the last step always resolves.
var teamMetricSteps = []metricStep{
	{"no-subheader", metricWithoutSubHeader},
	{"annotation", metricLeftOfAnnotation},
	{"primary-score", metricAtPrimaryScore},
	{"neighbor-search", metricFromNeighbor},
	{"fallback", metricFallback},
}

func metricWithoutSubHeader(g models.Grid, col int) (int, bool) {
	_, ok := subHeader(g, col)
	return col, !ok
}

func metricLeftOfAnnotation(g models.Grid, col int) (int, bool) {
	sub, _ := subHeader(g, col)
	return col - 1, strings.Contains(sub, AnnotationMarker)
}

func metricAtPrimaryScore(g models.Grid, col int) (int, bool) {
	sub, _ := subHeader(g, col)
	return col, strings.Contains(sub, ScoreMarker)
}

// metricFromNeighbor looks up to neighborSpan columns either side, left
// first, for a sub-header naming the primary score.
func metricFromNeighbor(g models.Grid, col int) (int, bool) {
	width := len(g[0])
	for offset := -neighborSpan; offset <= neighborSpan; offset++ {
		c := col + offset
		if offset == 0 || c < 0 || c >= width {
			continue
		}
		sub, ok := subHeader(g, c)
		if ok && strings.Contains(sub, ScoreMarker) && !strings.Contains(sub, AnnotationMarker) {
			return c, true
		}
	}
	return col, false
}

// metricFallback reads metrics from the score column itself. When the
// sub-header was unrecognized this may read the wrong half of the team
// block; the behavior is kept for compatibility with existing sheets.
func metricFallback(_ models.Grid, col int) (int, bool) {
	return col, true
}

// subHeader returns the upper-cased sub-header text of a column. Absent
// cells, empty strings and zero count as no sub-header.
func subHeader(g models.Grid, col int) (string, bool) {
	c := g.At(1, col)
	switch c.Kind {
	case models.CellString:
		if c.Str == "" {
			return "", false
		}
	case models.CellNumber:
		if c.Num == 0 || math.IsNaN(c.Num) {
			return "", false
		}
	default:
		return "", false
	}
	return strings.ToUpper(c.Display()), true
}

// ResolveColumns classifies every header column right of the label
// column, in header order. At most one decision has RoleTeam.
func ResolveColumns(g models.Grid) []ColumnDecision {
	if len(g) == 0 {
		return nil
	}
	st := &scanState{}
	decisions := make([]ColumnDecision, 0, len(g[0]))
	for i := 1; i < len(g[0]); i++ {
		decisions = append(decisions, resolveColumn(g, i, st))
	}
	return decisions
}

func resolveColumn(g models.Grid, i int, st *scanState) ColumnDecision {
	header := g.At(0, i)
	h := headerColumn{
		grid:   g,
		index:  i,
		header: header,
		text:   header.Str,
		upper:  strings.ToUpper(strings.TrimSpace(header.Str)),
	}

	d := ColumnDecision{HeaderIndex: i, Header: header.Str}
	for _, step := range classifySteps {
		if role, ok := step.apply(h, st); ok {
			d.Role = role
			d.Reason = step.name
			break
		}
	}

	switch d.Role {
	case RolePlayer:
		// A player block is the metric column followed by its score column.
		d.ScoreColumn = i + 1
		d.MetricColumn = i
	case RoleTeam:
		d.ScoreColumn = i
		for _, step := range teamMetricSteps {
			if col, ok := step.apply(g, i); ok {
				d.MetricColumn = col
				d.Reason += "/" + step.name
				break
			}
		}
	}
	return d
}
