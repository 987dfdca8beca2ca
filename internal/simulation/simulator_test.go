package simulation

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/footy-edge/internal/models"
)

func newTestSimulator() *Simulator {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return New(logger)
}

func TestSimulateRejectsInvalidIntensities(t *testing.T) {
	s := newTestSimulator()

	_, err := s.Simulate(0, 1.2, Options{Seed: 1})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = s.Simulate(1.5, -0.3, Options{Seed: 1})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestSimulateOutcomeProbabilities(t *testing.T) {
	s := newTestSimulator()

	result, err := s.Simulate(1.5, 1.2, Options{Seed: 99})
	require.NoError(t, err)

	assert.Equal(t, DefaultTrials, result.Trials)
	assert.Equal(t, int64(99), result.Seed)

	sum := 0.0
	for _, o := range models.Outcomes() {
		p := result.OutcomeProbs[o]
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
		sum += p

		ci := result.ConfidenceIntervals[o]
		assert.GreaterOrEqual(t, ci.Lower, 0.0)
		assert.LessOrEqual(t, ci.Upper, 1.0)
		assert.True(t, ci.Contains(p), "interval must contain the point estimate for %s", o)
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestSimulateReproducibleWithSameSeed(t *testing.T) {
	s := newTestSimulator()
	opts := Options{Trials: 10000, Seed: 12345}

	first, err := s.Simulate(1.5, 1.2, opts)
	require.NoError(t, err)
	second, err := s.Simulate(1.5, 1.2, opts)
	require.NoError(t, err)

	// Wall-clock duration is the only field allowed to differ.
	first.DurationMS = 0
	second.DurationMS = 0
	assert.Equal(t, first, second)
}

func TestSimulateDifferentSeedsStatisticallyConsistent(t *testing.T) {
	s := newTestSimulator()

	a, err := s.Simulate(1.5, 1.2, Options{Seed: 1111})
	require.NoError(t, err)
	b, err := s.Simulate(1.5, 1.2, Options{Seed: 2222})
	require.NoError(t, err)

	// The interval only accounts for run a's sampling noise, so allow a
	// little slack for run b's.
	const slack = 0.02
	for _, o := range models.Outcomes() {
		ci := a.ConfidenceIntervals[o]
		p := b.OutcomeProbs[o]
		assert.GreaterOrEqual(t, p, ci.Lower-slack,
			"outcome %s from seed 2222 far below seed 1111's interval", o)
		assert.LessOrEqual(t, p, ci.Upper+slack,
			"outcome %s from seed 2222 far above seed 1111's interval", o)
	}
}

func TestSimulateSymmetricIntensities(t *testing.T) {
	s := newTestSimulator()

	result, err := s.Simulate(1.3, 1.3, Options{Trials: 20000, Seed: 777})
	require.NoError(t, err)

	assert.InDelta(t, result.OutcomeProbs[models.OutcomeHomeWin],
		result.OutcomeProbs[models.OutcomeAwayWin], 0.05)
}

func TestSimulateDerivedMarkets(t *testing.T) {
	s := newTestSimulator()

	result, err := s.Simulate(1.6, 1.1, Options{Seed: 31})
	require.NoError(t, err)

	t.Run("top scorelines", func(t *testing.T) {
		require.NotEmpty(t, result.TopScorelines)
		assert.LessOrEqual(t, len(result.TopScorelines), 5)
		for i := 1; i < len(result.TopScorelines); i++ {
			assert.GreaterOrEqual(t, result.TopScorelines[i-1].Probability,
				result.TopScorelines[i].Probability)
		}
	})

	t.Run("over under lines", func(t *testing.T) {
		require.Len(t, result.OverUnder, 5)
		for i, ou := range result.OverUnder {
			assert.Equal(t, Lines[i], ou.Line)
			assert.InDelta(t, 1.0, ou.Over+ou.Under, 1e-9)
			if i > 0 {
				assert.LessOrEqual(t, ou.Over, result.OverUnder[i-1].Over)
			}
		}
	})

	t.Run("btts consistent with clean sheets", func(t *testing.T) {
		assert.LessOrEqual(t, result.BTTS, 1-result.HomeCleanSheet+1e-9)
		assert.LessOrEqual(t, result.BTTS, 1-result.AwayCleanSheet+1e-9)
	})

	t.Run("goal statistics near intensities", func(t *testing.T) {
		assert.InDelta(t, 1.6, result.HomeGoals.Mean, 0.1)
		assert.InDelta(t, 1.1, result.AwayGoals.Mean, 0.1)
		assert.InDelta(t, 2.7, result.TotalGoals.Mean, 0.15)
		assert.Greater(t, result.HomeGoals.StdDev, 0.0)
	})

	t.Run("goal distributions sum to one", func(t *testing.T) {
		for _, dist := range [][]float64{result.HomeGoalDist, result.AwayGoalDist} {
			sum := 0.0
			for _, p := range dist {
				sum += p
			}
			assert.InDelta(t, 1.0, sum, 1e-9)
		}
	})
}

func TestSimulateZeroSeedDerivesOne(t *testing.T) {
	s := newTestSimulator()

	result, err := s.Simulate(1.5, 1.2, Options{Trials: 200})
	require.NoError(t, err)
	assert.NotZero(t, result.Seed)
}

func TestSimulateAgreesWithAnalyticOutcome(t *testing.T) {
	s := newTestSimulator()

	exact := AnalyticOutcome(1.5, 1.2, DefaultMaxGoals)
	result, err := s.Simulate(1.5, 1.2, Options{Trials: 50000, Seed: 4242})
	require.NoError(t, err)

	assert.InDelta(t, exact.HomeWin, result.OutcomeProbs[models.OutcomeHomeWin], 0.02)
	assert.InDelta(t, exact.Draw, result.OutcomeProbs[models.OutcomeDraw], 0.02)
	assert.InDelta(t, exact.AwayWin, result.OutcomeProbs[models.OutcomeAwayWin], 0.02)
}
