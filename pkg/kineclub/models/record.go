package models

// MetricEntry is one labeled measurement read from a metric row.
type MetricEntry struct {
	// Name is the row label.
	Name string `json:"name"`
	// Value is the source cell, string or number, never coerced.
	Value Cell `json:"value"`
}

// ScoreEntry is one category score read from a category row.
type ScoreEntry struct {
	// Category is the row label of the category row.
	Category string `json:"category"`
	// Value is the coerced score; 0 when the source did not parse.
	Value float64 `json:"value"`
}

// PlayerRecord holds the metrics and scores of one player column.
type PlayerRecord struct {
	// ID is "player-" followed by the header column index.
	ID string `json:"id"`
	// Name is the header cell, unmodified.
	Name string `json:"name"`
	// Metrics lists metric rows in grid order.
	Metrics []MetricEntry `json:"metrics"`
	// Scores lists category rows in grid order.
	Scores []ScoreEntry `json:"scores"`
}

// TeamRecord holds the metrics and scores of the team column.
type TeamRecord struct {
	// Metrics lists metric rows in grid order.
	Metrics []MetricEntry `json:"metrics"`
	// Scores lists category rows in grid order.
	Scores []ScoreEntry `json:"scores"`
}

// EmptyTeam returns the team record used when no column qualifies.
func EmptyTeam() TeamRecord {
	return TeamRecord{Metrics: []MetricEntry{}, Scores: []ScoreEntry{}}
}

// Report is the result of one extraction.
type Report struct {
	// Players lists player records in header order.
	Players []PlayerRecord `json:"players"`
	// Team is the single team record; empty lists when no team column exists.
	Team TeamRecord `json:"team"`
}
