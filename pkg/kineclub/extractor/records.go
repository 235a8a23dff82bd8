package extractor

import "github.com/antoine-piarou/kineclub/pkg/kineclub/models"

// ExtractScores reads one score per category row from the given column.
// The result always has len(categoryRows) entries.
func ExtractScores(g models.Grid, scoreColumn int, categoryRows []int) []models.ScoreEntry {
	scores := make([]models.ScoreEntry, 0, len(categoryRows))
	for _, r := range categoryRows {
		label, _ := g.Label(r)
		scores = append(scores, models.ScoreEntry{
			Category: label,
			Value:    ScoreValue(g.At(r, scoreColumn)),
		})
	}
	return scores
}

// ExtractMetrics reads every labeled data row that is neither a category
// row nor a sentinel row from the given column.
func ExtractMetrics(g models.Grid, metricColumn int, categoryRows []int) []models.MetricEntry {
	skip := make(map[int]struct{}, len(categoryRows))
	for _, r := range categoryRows {
		skip[r] = struct{}{}
	}

	metrics := []models.MetricEntry{}
	for r := 1; r < len(g); r++ {
		if _, ok := skip[r]; ok {
			continue
		}
		label, ok := g.Label(r)
		if !ok || label == "" || label == SentinelTest || label == SentinelNote {
			continue
		}
		value, keep := MetricValue(g.At(r, metricColumn))
		if !keep {
			continue
		}
		metrics = append(metrics, models.MetricEntry{Name: label, Value: value})
	}
	return metrics
}

// ExtractRecord builds the metric and score lists of an accepted column.
func ExtractRecord(g models.Grid, d ColumnDecision, categoryRows []int) ([]models.MetricEntry, []models.ScoreEntry) {
	return ExtractMetrics(g, d.MetricColumn, categoryRows), ExtractScores(g, d.ScoreColumn, categoryRows)
}
