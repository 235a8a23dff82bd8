// Package summary aggregates extracted scores across a squad.
package summary

import (
	"math"
	"strconv"
	"strings"

	"github.com/antoine-piarou/kineclub/pkg/kineclub/models"
	"github.com/montanaflynn/stats"
)

// CategorySummary holds squad statistics for one category row.
type CategorySummary struct {
	Category string  `json:"category"`
	Team     float64 `json:"team"`
	Players  int     `json:"players"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	StdDev   float64 `json:"std_dev"`
}

// Summarize computes one summary per category, in score-list order.
// Every score list of a report has the same categories in the same
// order, so entries are matched by position.
func Summarize(report *models.Report) ([]CategorySummary, error) {
	categories := report.Team.Scores
	if len(categories) == 0 && len(report.Players) > 0 {
		categories = report.Players[0].Scores
	}

	out := make([]CategorySummary, 0, len(categories))
	for i, entry := range categories {
		cs := CategorySummary{Category: entry.Category}
		if i < len(report.Team.Scores) {
			cs.Team = report.Team.Scores[i].Value
		}

		values := make(stats.Float64Data, 0, len(report.Players))
		for _, p := range report.Players {
			if i < len(p.Scores) {
				values = append(values, p.Scores[i].Value)
			}
		}
		cs.Players = len(values)
		if len(values) > 0 {
			if err := describe(values, &cs); err != nil {
				return nil, err
			}
		}
		out = append(out, cs)
	}
	return out, nil
}

func describe(values stats.Float64Data, cs *CategorySummary) error {
	var err error
	if cs.Mean, err = stats.Mean(values); err != nil {
		return err
	}
	if cs.Median, err = stats.Median(values); err != nil {
		return err
	}
	if cs.Min, err = stats.Min(values); err != nil {
		return err
	}
	if cs.Max, err = stats.Max(values); err != nil {
		return err
	}
	if cs.StdDev, err = stats.StandardDeviationPopulation(values); err != nil {
		return err
	}
	return nil
}

// PlayerMean returns the mean of a player's category scores, 0 when the
// player has none.
func PlayerMean(p models.PlayerRecord) float64 {
	values := make(stats.Float64Data, 0, len(p.Scores))
	for _, s := range p.Scores {
		values = append(values, s.Value)
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return mean
}

// ScoreScale is the maximum of a category score.
const ScoreScale = 10

// Levels maps report-card legend bands, in percent of ScoreScale, to
// level names.
var Levels = []struct {
	From float64
	Name string
}{
	{90, "Pro"},
	{70, "National"},
	{50, "Région"},
	{30, "Départ"},
	{0, "Loisir"},
}

// Level returns the level name of a category score on the 0-ScoreScale
// scale, or of a mean of such scores. Scores below 0 are Loisir.
func Level(score float64) string {
	percent := score * 100 / ScoreScale
	for _, l := range Levels {
		if percent >= l.From {
			return l.Name
		}
	}
	return Levels[len(Levels)-1].Name
}

// RoundMetric rounds a numeric metric, or a string that reads as a
// number, to two decimals. Other values pass through unchanged.
func RoundMetric(c models.Cell) models.Cell {
	switch c.Kind {
	case models.CellNumber:
		return models.Number(round2(c.Num))
	case models.CellString:
		if f, ok := parseNumber(c.Str); ok {
			return models.Number(round2(f))
		}
	}
	return c
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
