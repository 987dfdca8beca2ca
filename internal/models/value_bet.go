package models

import "github.com/shopspring/decimal"

// QualityTier buckets a bet quality score.
type QualityTier string

const (
	TierExcellent QualityTier = "Excellent"
	TierGood      QualityTier = "Good"
	TierFair      QualityTier = "Fair"
	TierPoor      QualityTier = "Poor"
)

// ValueBet is one market outcome where the model's probability exceeds the
// market's implied probability by at least the configured edge threshold.
// Probabilities and percentages are float64; money is decimal.
type ValueBet struct {
	Outcome            Outcome         `json:"outcome"`
	ModelProbability   float64         `json:"model_probability"`
	MarketOdds         float64         `json:"market_odds"`
	ImpliedProbability float64         `json:"implied_probability"`
	EdgePercent        float64         `json:"edge_percent"`
	ExpectedValue      float64         `json:"expected_value"`
	KellyPercent       float64         `json:"kelly_percent"`
	RecommendedStake   decimal.Decimal `json:"recommended_stake"`
	ProjectedCLV       float64         `json:"projected_clv"`
	QualityScore       float64         `json:"quality_score"`
	QualityTier        QualityTier     `json:"quality_tier"`
	Recommendation     string          `json:"recommendation"`
}

// IsPositiveEV reports whether the bet carries positive expected value.
func (vb *ValueBet) IsPositiveEV() bool {
	return vb.ExpectedValue > 0
}
