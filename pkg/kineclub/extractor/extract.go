package extractor

import (
	"strconv"

	"github.com/antoine-piarou/kineclub/pkg/kineclub/models"
)

// PlayerIDPrefix prefixes the header column index in player ids.
const PlayerIDPrefix = "player-"

// Validate checks the structural preconditions of a grid.
func Validate(g models.Grid) error {
	if len(g) == 0 {
		return models.NewValidationError(models.ErrEmptySource, "grid has no rows")
	}
	if len(g[0]) == 0 {
		return models.NewValidationError(models.ErrEmptySource, "header row is empty")
	}
	for _, c := range g[0] {
		if !c.IsAbsent() {
			return nil
		}
	}
	return models.NewValidationError(models.ErrEmptySource, "header row has no values")
}

// Extract infers the player records and the team record of a grid. It
// fails only when Validate does; the grid is never modified.
func Extract(g models.Grid) (models.Report, error) {
	report, _, err := ExtractWithDecisions(g)
	return report, err
}

// ExtractWithDecisions is Extract that also returns the column decisions
// the report was built from.
func ExtractWithDecisions(g models.Grid) (models.Report, []ColumnDecision, error) {
	if err := Validate(g); err != nil {
		return models.Report{}, nil, err
	}

	categoryRows := LocateCategoryRows(g)
	decisions := ResolveColumns(g)

	report := models.Report{
		Players: []models.PlayerRecord{},
		Team:    models.EmptyTeam(),
	}
	for _, d := range decisions {
		if !d.Accepted() {
			continue
		}
		metrics, scores := ExtractRecord(g, d, categoryRows)
		if d.Role == RoleTeam {
			report.Team = models.TeamRecord{Metrics: metrics, Scores: scores}
			continue
		}
		report.Players = append(report.Players, models.PlayerRecord{
			ID:      PlayerIDPrefix + strconv.Itoa(d.HeaderIndex),
			Name:    d.Header,
			Metrics: metrics,
			Scores:  scores,
		})
	}
	return report, decisions, nil
}
