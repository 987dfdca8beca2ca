package insights

import (
	"fmt"
	"strings"

	"github.com/yourusername/footy-edge/internal/models"
)

// buildNarrative renders a short human-readable summary of the bundle:
// the favourite, the expected scoreline, the best value found, and the
// risk verdict.
func buildNarrative(bundle *models.InsightsBundle) string {
	var b strings.Builder

	final := bundle.Predictions.Final
	favourite := final.Outcome()
	fmt.Fprintf(&b, "%s vs %s: the model makes %s the most likely result at %.1f%% (confidence %.0f%%).",
		bundle.HomeTeam, bundle.AwayTeam, outcomeLabel(favourite),
		final.Probability(favourite)*100, final.Confidence*100)

	fmt.Fprintf(&b, " Expected goals %.2f-%.2f.", bundle.XGAnalysis.HomeXG, bundle.XGAnalysis.AwayXG)
	if bundle.MonteCarlo != nil && len(bundle.MonteCarlo.TopScorelines) > 0 {
		top := bundle.MonteCarlo.TopScorelines[0]
		fmt.Fprintf(&b, " The most common simulated scoreline is %s (%.1f%% of %d trials).",
			top.Score(), top.Probability*100, bundle.MonteCarlo.Trials)
	}

	if best := bundle.Risk.BestBet; best != nil {
		fmt.Fprintf(&b, " Best value: %s at %.2f with a %.1f%% edge (%s).",
			outcomeLabel(best.Outcome), best.MarketOdds, best.EdgePercent, best.QualityTier)
	} else {
		b.WriteString(" No value found against the supplied odds.")
	}

	fmt.Fprintf(&b, " Risk is %s: %s", bundle.Risk.RiskLevel, bundle.Risk.Recommendation)

	return b.String()
}

func outcomeLabel(o models.Outcome) string {
	switch o {
	case models.OutcomeHomeWin:
		return "a home win"
	case models.OutcomeDraw:
		return "a draw"
	case models.OutcomeAwayWin:
		return "an away win"
	default:
		return string(o)
	}
}
