package risk

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/footy-edge/internal/models"
)

func newTestAssessor() *Assessor {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return NewAssessor(DefaultThresholds(), logger)
}

func bet(outcome models.Outcome, quality, edge, ev float64) models.ValueBet {
	return models.ValueBet{
		Outcome:       outcome,
		QualityScore:  quality,
		EdgePercent:   edge,
		ExpectedValue: ev,
	}
}

func triple(home, draw, away, confidence float64) models.ProbabilityTriple {
	return models.ProbabilityTriple{HomeWin: home, Draw: draw, AwayWin: away, Confidence: confidence}
}

func TestAssessHighRiskWhenNoBets(t *testing.T) {
	a := newTestAssessor()

	got := a.Assess(triple(0.6, 0.25, 0.15, 0.8), nil)

	assert.Equal(t, models.RiskHigh, got.RiskLevel)
	assert.False(t, got.ValueAvailable)
	assert.Nil(t, got.BestBet)
	assert.Contains(t, got.Recommendation, "No value")
}

func TestAssessHighRiskWhenNoPositiveEV(t *testing.T) {
	a := newTestAssessor()
	bets := []models.ValueBet{bet(models.OutcomeHomeWin, 40, -2.0, -0.05)}

	got := a.Assess(triple(0.6, 0.25, 0.15, 0.8), bets)

	assert.Equal(t, models.RiskHigh, got.RiskLevel)
	assert.False(t, got.ValueAvailable)
}

func TestAssessHighRiskWhenLowConfidence(t *testing.T) {
	a := newTestAssessor()
	bets := []models.ValueBet{bet(models.OutcomeHomeWin, 85, 8.0, 0.12)}

	got := a.Assess(triple(0.4, 0.3, 0.3, 0.4), bets)

	assert.Equal(t, models.RiskHigh, got.RiskLevel)
	assert.True(t, got.ValueAvailable)
	assert.Contains(t, got.Recommendation, "confidence too low")
}

func TestAssessLowRisk(t *testing.T) {
	a := newTestAssessor()
	bets := []models.ValueBet{bet(models.OutcomeHomeWin, 82, 6.5, 0.1)}

	got := a.Assess(triple(0.62, 0.22, 0.16, 0.75), bets)

	assert.Equal(t, models.RiskLow, got.RiskLevel)
	assert.True(t, got.ValueAvailable)
	require.NotNil(t, got.BestBet)
	assert.Equal(t, models.OutcomeHomeWin, got.BestBet.Outcome)
	assert.Contains(t, got.Recommendation, "home_win")
}

func TestAssessMediumRisk(t *testing.T) {
	a := newTestAssessor()
	bets := []models.ValueBet{bet(models.OutcomeDraw, 60, 3.0, 0.04)}

	got := a.Assess(triple(0.45, 0.35, 0.2, 0.6), bets)

	assert.Equal(t, models.RiskMedium, got.RiskLevel)
	assert.Contains(t, got.Recommendation, "draw")
}

func TestAssessBoundaries(t *testing.T) {
	a := newTestAssessor()
	strong := []models.ValueBet{bet(models.OutcomeAwayWin, 75, 5.0, 0.08)}

	t.Run("confidence at minimum is not high risk", func(t *testing.T) {
		got := a.Assess(triple(0.4, 0.25, 0.35, 0.5), strong)
		assert.Equal(t, models.RiskMedium, got.RiskLevel)
	})

	t.Run("confidence at high threshold is not low risk", func(t *testing.T) {
		got := a.Assess(triple(0.2, 0.2, 0.6, 0.7), strong)
		assert.Equal(t, models.RiskMedium, got.RiskLevel)
	})

	t.Run("quality at threshold with high confidence is low risk", func(t *testing.T) {
		got := a.Assess(triple(0.15, 0.2, 0.65, 0.71), strong)
		assert.Equal(t, models.RiskLow, got.RiskLevel)
	})
}

func TestBestBet(t *testing.T) {
	t.Run("empty slice", func(t *testing.T) {
		assert.Nil(t, BestBet(nil))
	})

	t.Run("highest quality wins", func(t *testing.T) {
		bets := []models.ValueBet{
			bet(models.OutcomeHomeWin, 55, 9.0, 0.06),
			bet(models.OutcomeDraw, 72, 4.0, 0.05),
		}
		got := BestBet(bets)
		require.NotNil(t, got)
		assert.Equal(t, models.OutcomeDraw, got.Outcome)
	})

	t.Run("quality tie broken by edge", func(t *testing.T) {
		bets := []models.ValueBet{
			bet(models.OutcomeHomeWin, 70, 3.0, 0.04),
			bet(models.OutcomeAwayWin, 70, 5.5, 0.07),
		}
		got := BestBet(bets)
		require.NotNil(t, got)
		assert.Equal(t, models.OutcomeAwayWin, got.Outcome)
	})

	t.Run("returns a copy", func(t *testing.T) {
		bets := []models.ValueBet{bet(models.OutcomeHomeWin, 70, 3.0, 0.04)}
		got := BestBet(bets)
		require.NotNil(t, got)
		got.QualityScore = 1
		assert.Equal(t, 70.0, bets[0].QualityScore)
	})
}
