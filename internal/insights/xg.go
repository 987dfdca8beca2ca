package insights

import (
	"github.com/yourusername/footy-edge/internal/ensemble"
	"github.com/yourusername/footy-edge/internal/models"
)

// XG sources, in preference order.
const (
	XGSourceFeatures      = "features"
	XGSourceStrengths     = "strengths"
	XGSourceLeagueAverage = "league_average"
)

// defaultLeagueGoals is the total-goals baseline the league-average path
// scales against when a league_avg_goals feature is supplied.
const defaultLeagueGoals = 2.60

// resolveXG picks the expected goals for the simulator. Explicit xG
// features win; otherwise the strength features price the match; with
// neither, the league-average baselines apply, scaled by league_avg_goals
// when present.
func resolveXG(matchCtx *models.MatchContext, features []float64, heuristic *ensemble.HeuristicModel) models.XGAnalysis {
	homeXG, homeOK := matchCtx.Feature(models.FeatureHomeXG)
	awayXG, awayOK := matchCtx.Feature(models.FeatureAwayXG)
	if homeOK && awayOK && homeXG > 0 && awayXG > 0 {
		return models.XGAnalysis{HomeXG: homeXG, AwayXG: awayXG, Source: XGSourceFeatures}
	}

	h, a := heuristic.Intensities(features)

	if hasStrengthFeatures(matchCtx) {
		return models.XGAnalysis{HomeXG: h, AwayXG: a, Source: XGSourceStrengths}
	}

	if avg, ok := matchCtx.Feature(models.FeatureLeagueAvgGoals); ok && avg > 0 {
		scale := avg / defaultLeagueGoals
		h *= scale
		a *= scale
	}
	return models.XGAnalysis{HomeXG: h, AwayXG: a, Source: XGSourceLeagueAverage}
}

func hasStrengthFeatures(matchCtx *models.MatchContext) bool {
	for _, name := range []string{
		models.FeatureHomeAttack,
		models.FeatureHomeDefense,
		models.FeatureAwayAttack,
		models.FeatureAwayDefense,
	} {
		if _, ok := matchCtx.Feature(name); ok {
			return true
		}
	}
	return false
}
