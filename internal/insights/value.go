package insights

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/footy-edge/internal/calc"
	"github.com/yourusername/footy-edge/internal/config"
	applogger "github.com/yourusername/footy-edge/internal/logger"
	"github.com/yourusername/footy-edge/internal/metrics"
	"github.com/yourusername/footy-edge/internal/models"
)

// ValueDetector scans a probability triple against quoted market odds and
// sizes the bets worth taking.
type ValueDetector struct {
	minEdgePercent   float64
	defaultLiquidity float64
	staking          config.StakingConfig
	valueLog         *applogger.ValueLogger
}

// NewValueDetector creates a detector with the configured edge threshold
// and stake bounds.
func NewValueDetector(valueCfg config.ValueConfig, staking config.StakingConfig, log *logrus.Logger) *ValueDetector {
	liquidity := valueCfg.DefaultLiquidity
	if liquidity <= 0 {
		liquidity = 0.5
	}
	return &ValueDetector{
		minEdgePercent:   valueCfg.MinEdgePercent,
		defaultLiquidity: liquidity,
		staking:          staking,
		valueLog:         applogger.NewValueLogger(log),
	}
}

// Detect builds the value analysis for one matchup. Outcomes without a
// quote are skipped, and an edge below the threshold is not a bet.
func (d *ValueDetector) Detect(probs models.ProbabilityTriple, marketOdds map[string]float64, bankroll float64) models.ValueAnalysis {
	analysis := models.ValueAnalysis{
		Bankroll:   decimal.NewFromFloat(bankroll).Round(2),
		TotalStake: decimal.Zero,
	}

	for _, outcome := range models.Outcomes() {
		odds, ok := marketOdds[string(outcome)]
		if !ok || odds <= 1 {
			continue
		}

		modelProb := probs.Probability(outcome)
		implied := calc.ImpliedProbability(odds)
		edge := calc.ValuePercentage(modelProb, implied)
		if edge < d.minEdgePercent {
			continue
		}

		bet := d.buildBet(outcome, modelProb, odds, implied, edge, probs.Confidence, bankroll)
		analysis.Bets = append(analysis.Bets, bet)
		analysis.TotalStake = analysis.TotalStake.Add(bet.RecommendedStake)

		metrics.RecordValueBet(string(bet.QualityTier))
		stake, _ := bet.RecommendedStake.Float64()
		d.valueLog.LogValueBet(string(outcome), modelProb, odds, edge, bet.KellyPercent, stake, string(bet.QualityTier))
	}

	return analysis
}

func (d *ValueDetector) buildBet(outcome models.Outcome, modelProb, odds, implied, edge, confidence, bankroll float64) models.ValueBet {
	ev := calc.ExpectedValue(modelProb, odds)
	kelly := calc.KellyFraction(modelProb, odds)

	raw := calc.KellyStake(modelProb, odds, bankroll, d.staking.KellyFraction)
	stake := 0.0
	if raw > 0 {
		stake = calc.OptimizeBetSize(raw, d.staking.MinStake, d.staking.MaxStake)
	}

	quality := calc.AssessBetQuality(ev, confidence, d.defaultLiquidity)

	return models.ValueBet{
		Outcome:            outcome,
		ModelProbability:   modelProb,
		MarketOdds:         odds,
		ImpliedProbability: implied,
		EdgePercent:        edge,
		ExpectedValue:      ev,
		KellyPercent:       kelly * 100,
		RecommendedStake:   decimal.NewFromFloat(stake).Round(2),
		ProjectedCLV:       calc.ProjectedCLV(modelProb, odds),
		QualityScore:       quality.Score,
		QualityTier:        quality.Tier,
		Recommendation:     quality.Recommendation,
	}
}
