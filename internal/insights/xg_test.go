package insights

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/yourusername/footy-edge/internal/ensemble"
	"github.com/yourusername/footy-edge/internal/models"
)

func xgContext(features map[string]float64) *models.MatchContext {
	return &models.MatchContext{
		MatchupID: uuid.New(),
		League:    "premier_league",
		HomeTeam:  "Arsenal",
		AwayTeam:  "Chelsea",
		Features:  features,
	}
}

func neutralVector() []float64 {
	return []float64{1.0, 1.0, 1.0, 1.0, 0.5, 0.5, 0.0}
}

func TestResolveXGExplicitFeatures(t *testing.T) {
	matchCtx := xgContext(map[string]float64{
		models.FeatureHomeXG: 1.8,
		models.FeatureAwayXG: 0.9,
	})

	analysis := resolveXG(matchCtx, neutralVector(), ensemble.NewHeuristicModel())

	assert.Equal(t, XGSourceFeatures, analysis.Source)
	assert.Equal(t, 1.8, analysis.HomeXG)
	assert.Equal(t, 0.9, analysis.AwayXG)
}

func TestResolveXGExplicitRequiresBothPositive(t *testing.T) {
	tests := []struct {
		name     string
		features map[string]float64
	}{
		{
			name:     "only home xg supplied",
			features: map[string]float64{models.FeatureHomeXG: 1.8},
		},
		{
			name: "non-positive away xg",
			features: map[string]float64{
				models.FeatureHomeXG: 1.8,
				models.FeatureAwayXG: 0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := resolveXG(xgContext(tt.features), neutralVector(), ensemble.NewHeuristicModel())

			assert.NotEqual(t, XGSourceFeatures, analysis.Source)
			assert.Greater(t, analysis.HomeXG, 0.0)
			assert.Greater(t, analysis.AwayXG, 0.0)
		})
	}
}

func TestResolveXGStrengths(t *testing.T) {
	matchCtx := xgContext(map[string]float64{
		models.FeatureHomeAttack:  1.2,
		models.FeatureHomeDefense: 1.0,
		models.FeatureAwayAttack:  0.8,
		models.FeatureAwayDefense: 0.9,
	})
	vec := []float64{1.2, 1.0, 0.8, 0.9, 0.5, 0.5, 0.0}

	analysis := resolveXG(matchCtx, vec, ensemble.NewHeuristicModel())

	assert.Equal(t, XGSourceStrengths, analysis.Source)
	assert.InDelta(t, 1.45*1.2/0.9, analysis.HomeXG, 1e-9)
	assert.InDelta(t, 1.15*0.8/1.0, analysis.AwayXG, 1e-9)
}

func TestResolveXGLeagueAverageBaseline(t *testing.T) {
	matchCtx := xgContext(map[string]float64{models.FeatureHomeForm: 0.6})

	analysis := resolveXG(matchCtx, neutralVector(), ensemble.NewHeuristicModel())

	assert.Equal(t, XGSourceLeagueAverage, analysis.Source)
	assert.InDelta(t, 1.45, analysis.HomeXG, 1e-9)
	assert.InDelta(t, 1.15, analysis.AwayXG, 1e-9)
}

func TestResolveXGLeagueAverageScaled(t *testing.T) {
	matchCtx := xgContext(map[string]float64{
		models.FeatureLeagueAvgGoals: 3.12,
	})

	analysis := resolveXG(matchCtx, neutralVector(), ensemble.NewHeuristicModel())

	assert.Equal(t, XGSourceLeagueAverage, analysis.Source)
	assert.InDelta(t, 1.45*1.2, analysis.HomeXG, 1e-9)
	assert.InDelta(t, 1.15*1.2, analysis.AwayXG, 1e-9)
}
