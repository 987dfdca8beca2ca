// Package risk grades the overall betting opportunity for a matchup from
// the model's confidence and the value detected against the market.
package risk

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/footy-edge/internal/models"
)

// Thresholds configures the tier boundaries.
type Thresholds struct {
	MinConfidence    float64
	HighConfidence   float64
	HighQualityScore float64
}

// DefaultThresholds returns the standard tier boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinConfidence:    0.5,
		HighConfidence:   0.7,
		HighQualityScore: 75,
	}
}

// Assessor assigns a risk tier to a matchup.
type Assessor struct {
	thresholds Thresholds
	logger     *logrus.Logger
}

// NewAssessor creates an assessor with the given tier boundaries.
func NewAssessor(thresholds Thresholds, logger *logrus.Logger) *Assessor {
	return &Assessor{thresholds: thresholds, logger: logger}
}

// Assess grades a matchup: high risk when no positive-EV bet exists or the
// model's confidence is below the minimum, low risk when the best bet is
// both high quality and backed by high confidence, medium otherwise.
func (a *Assessor) Assess(probs models.ProbabilityTriple, bets []models.ValueBet) models.RiskAssessment {
	best := BestBet(bets)
	valueAvailable := false
	for _, bet := range bets {
		if bet.IsPositiveEV() {
			valueAvailable = true
			break
		}
	}

	confidence := probs.Confidence

	level := models.RiskMedium
	switch {
	case !valueAvailable || confidence < a.thresholds.MinConfidence:
		level = models.RiskHigh
	case best.QualityScore >= a.thresholds.HighQualityScore &&
		best.IsPositiveEV() &&
		confidence > a.thresholds.HighConfidence:
		level = models.RiskLow
	}

	assessment := models.RiskAssessment{
		RiskLevel:       level,
		ConfidenceScore: confidence,
		ValueAvailable:  valueAvailable,
		Recommendation:  a.recommend(level, confidence, valueAvailable, best),
		BestBet:         best,
	}

	a.logger.WithFields(logrus.Fields{
		"risk_level":      level,
		"confidence":      confidence,
		"value_available": valueAvailable,
	}).Debug("Risk assessed")

	return assessment
}

func (a *Assessor) recommend(level models.RiskLevel, confidence float64, valueAvailable bool, best *models.ValueBet) string {
	switch level {
	case models.RiskLow:
		return fmt.Sprintf("Strong opportunity: back %s within the recommended stake", best.Outcome)
	case models.RiskHigh:
		if !valueAvailable {
			return "No value detected against the market; sit this one out"
		}
		return "Model confidence too low to trust the edge; sit this one out"
	default:
		if best != nil {
			return fmt.Sprintf("Modest edge on %s; reduce stakes", best.Outcome)
		}
		return "Marginal opportunity; reduce stakes"
	}
}

// BestBet returns a copy of the highest-quality bet, breaking ties by the
// larger edge. It returns nil for an empty slice.
func BestBet(bets []models.ValueBet) *models.ValueBet {
	var best *models.ValueBet
	for i := range bets {
		candidate := &bets[i]
		if best == nil ||
			candidate.QualityScore > best.QualityScore ||
			(candidate.QualityScore == best.QualityScore && candidate.EdgePercent > best.EdgePercent) {
			best = candidate
		}
	}
	if best == nil {
		return nil
	}
	bet := *best
	return &bet
}
