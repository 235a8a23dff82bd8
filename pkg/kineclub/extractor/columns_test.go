package extractor

import (
	"testing"

	"github.com/antoine-piarou/kineclub/pkg/kineclub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	s = models.String
	n = models.Number
	x = models.Absent()
)

func accepted(decisions []ColumnDecision) []ColumnDecision {
	var out []ColumnDecision
	for _, d := range decisions {
		if d.Accepted() {
			out = append(out, d)
		}
	}
	return out
}

func TestWhitespaceHeaderIsAPlayer(t *testing.T) {
	g := models.Grid{
		{s("TEST"), s(" "), x},
		{s("ANATOMIE"), x, n(4)},
	}

	report, err := Extract(g)
	require.NoError(t, err)
	require.Len(t, report.Players, 1)
	assert.Equal(t, " ", report.Players[0].Name)
	assert.Equal(t, []models.ScoreEntry{{Category: "ANATOMIE", Value: 4}}, report.Players[0].Scores)
}

func TestClassifySkipsNonTextAndPlaceholders(t *testing.T) {
	g := models.Grid{
		{s("TEST"), n(3), x, s("Unnamed: 3"), s("   "), s("JOUEUR A"), x},
	}

	decisions := ResolveColumns(g)
	require.Len(t, decisions, 6)

	reasons := make([]string, 0, len(decisions))
	for _, d := range decisions {
		reasons = append(reasons, d.Reason)
	}
	assert.Equal(t, []string{"non-text", "non-text", "placeholder", "player", "player", "non-text"}, reasons)
}

func TestClassifyAggregateIgnoresCase(t *testing.T) {
	for _, header := range []string{"MOYENNE", "moyenne", " Moyenne Joueurs ", "mOyEnNe"} {
		g := models.Grid{{s("TEST"), s(header)}}
		d := ResolveColumns(g)[0]
		assert.Equal(t, RoleSkip, d.Role, header)
		assert.Equal(t, "aggregate", d.Reason, header)
	}
}

func TestClassifyTeamAndAggregateTogether(t *testing.T) {
	// Both markers: not an aggregate skip, not a team label either.
	g := models.Grid{{s("TEST"), s("MOYENNE EQUIPE")}}
	d := ResolveColumns(g)[0]
	assert.Equal(t, RolePlayer, d.Role)
}

func TestClassifySingleTeam(t *testing.T) {
	g := models.Grid{
		{s("TEST"), s("EQUIPE"), s("EQUIPE"), s("equipe bis")},
	}

	decisions := ResolveColumns(g)
	require.Len(t, decisions, 3)
	assert.Equal(t, RoleTeam, decisions[0].Role)
	assert.Equal(t, "duplicate-team", decisions[1].Reason)
	assert.Equal(t, "duplicate-team", decisions[2].Reason)
}

func TestClassifyTeamAnnotationBeforeScore(t *testing.T) {
	g := models.Grid{
		{s("TEST"), s("EQUIPE"), s("EQUIPE")},
		{s("NOTE"), s("Note /10"), s("Score")},
	}

	decisions := ResolveColumns(g)
	assert.Equal(t, "team-annotation", decisions[0].Reason)
	assert.Equal(t, RoleTeam, decisions[1].Role)
	assert.Equal(t, 2, decisions[1].ScoreColumn)
	assert.Equal(t, 2, decisions[1].MetricColumn)
	assert.Equal(t, "team/primary-score", decisions[1].Reason)
}

func TestPlayerColumns(t *testing.T) {
	g := models.Grid{
		{s("TEST"), s("JOUEUR A"), x, s("JOUEUR B"), x},
	}

	got := accepted(ResolveColumns(g))
	require.Len(t, got, 2)
	assert.Equal(t, ColumnDecision{Role: RolePlayer, HeaderIndex: 1, Header: "JOUEUR A", ScoreColumn: 2, MetricColumn: 1, Reason: "player"}, got[0])
	assert.Equal(t, 3, got[1].HeaderIndex)
	assert.Equal(t, 4, got[1].ScoreColumn)
	assert.Equal(t, 3, got[1].MetricColumn)
}

func TestTeamMetricColumnResolution(t *testing.T) {
	tests := []struct {
		name      string
		grid      models.Grid
		metricCol int
		reason    string
	}{
		{
			name:      "no sub-header row",
			grid:      models.Grid{{s("TEST"), s("X"), s("EQUIPE")}},
			metricCol: 2,
			reason:    "team/no-subheader",
		},
		{
			name: "empty sub-header",
			grid: models.Grid{
				{s("TEST"), s("X"), s("EQUIPE")},
				{s("TEST"), x, s("")},
			},
			metricCol: 2,
			reason:    "team/no-subheader",
		},
		{
			name: "zero sub-header",
			grid: models.Grid{
				{s("TEST"), s("X"), s("EQUIPE")},
				{s("TEST"), x, n(0)},
			},
			metricCol: 2,
			reason:    "team/no-subheader",
		},
		{
			name: "score sub-header",
			grid: models.Grid{
				{s("TEST"), s("X"), s("EQUIPE")},
				{s("TEST"), x, s("score equipe")},
			},
			metricCol: 2,
			reason:    "team/primary-score",
		},
		{
			name: "neighbor to the left",
			grid: models.Grid{
				{s("TEST"), s("SCORE"), s("X"), s("EQUIPE")},
				{s("TEST"), s("Score"), x, s("moy")},
			},
			metricCol: 1,
			reason:    "team/neighbor-search",
		},
		{
			name: "neighbor to the right",
			grid: models.Grid{
				{s("TEST"), s("X"), s("EQUIPE"), x, x},
				{s("TEST"), s("Note"), s("valeur"), x, s("SCORE")},
			},
			metricCol: 4,
			reason:    "team/neighbor-search",
		},
		{
			name: "neighbor with both markers is ignored",
			grid: models.Grid{
				{s("TEST"), s("X"), s("EQUIPE"), x},
				{s("TEST"), x, s("valeur"), s("SCORE NOTE")},
			},
			metricCol: 2,
			reason:    "team/fallback",
		},
		{
			name: "neighbor beyond two columns is ignored",
			grid: models.Grid{
				{s("TEST"), s("EQUIPE"), x, x, x},
				{s("TEST"), s("valeur"), x, x, s("SCORE")},
			},
			metricCol: 1,
			reason:    "team/fallback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accepted(ResolveColumns(tt.grid))
			var team *ColumnDecision
			for i := range got {
				if got[i].Role == RoleTeam {
					team = &got[i]
				}
			}
			require.NotNil(t, team)
			assert.Equal(t, team.HeaderIndex, team.ScoreColumn)
			assert.Equal(t, tt.metricCol, team.MetricColumn)
			assert.Equal(t, tt.reason, team.Reason)
		})
	}
}

func TestMetricLeftOfAnnotation(t *testing.T) {
	g := models.Grid{
		{s("TEST"), s("EQUIPE"), s("EQUIPE")},
		{s("TEST"), s("Score"), s("Note")},
	}

	col, ok := metricLeftOfAnnotation(g, 2)
	assert.True(t, ok)
	assert.Equal(t, 1, col)

	_, ok = metricLeftOfAnnotation(g, 1)
	assert.False(t, ok)
}

func TestResolveColumnsIsPerCall(t *testing.T) {
	g := models.Grid{{s("TEST"), s("EQUIPE")}}

	first := accepted(ResolveColumns(g))
	second := accepted(ResolveColumns(g))
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, RoleTeam, second[0].Role)
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "skip", RoleSkip.String())
	assert.Equal(t, "player", RolePlayer.String())
	assert.Equal(t, "team", RoleTeam.String())
}
