package calc

import "github.com/yourusername/footy-edge/internal/models"

// Quality score composition. EV dominates, confidence second, liquidity a
// tiebreaker. The EV term saturates at evSaturation profit per unit so one
// outlier price cannot max the score alone.
const (
	evWeight         = 0.5
	confidenceWeight = 0.3
	liquidityWeight  = 0.2

	evSaturation = 0.25

	tierExcellentMin = 80.0
	tierGoodMin      = 65.0
	tierFairMin      = 50.0
)

// BetQuality grades a candidate bet.
type BetQuality struct {
	Score          float64
	Tier           models.QualityTier
	Recommendation string
}

// AssessBetQuality scores a candidate bet on a 0-100 scale from its
// expected value per unit staked, the model's confidence, and a liquidity
// rating in [0,1]. The composite is monotonic: raising any input never
// lowers the score. Scores bucket into four tiers at 80/65/50.
func AssessBetQuality(ev, confidence, liquidity float64) BetQuality {
	evTerm := Clamp(ev/evSaturation, 0, 1)
	confTerm := Clamp(confidence, 0, 1)
	liqTerm := Clamp(liquidity, 0, 1)

	score := 100 * (evWeight*evTerm + confidenceWeight*confTerm + liquidityWeight*liqTerm)

	q := BetQuality{Score: score}
	switch {
	case score >= tierExcellentMin:
		q.Tier = models.TierExcellent
		q.Recommendation = "Strong value: stake the full Kelly-sized amount"
	case score >= tierGoodMin:
		q.Tier = models.TierGood
		q.Recommendation = "Good value: stake the standard fractional amount"
	case score >= tierFairMin:
		q.Tier = models.TierFair
		q.Recommendation = "Marginal value: consider a reduced stake"
	default:
		q.Tier = models.TierPoor
		q.Recommendation = "Skip: the edge does not justify the risk"
	}
	return q
}
