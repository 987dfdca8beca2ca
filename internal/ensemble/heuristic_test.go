package ensemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/footy-edge/internal/models"
)

func TestHeuristicModelAlwaysTrained(t *testing.T) {
	h := NewHeuristicModel()
	assert.True(t, h.IsTrained())
	assert.Equal(t, "heuristic-v1", h.Version())
}

func TestHeuristicModelIntensities(t *testing.T) {
	h := NewHeuristicModel()

	t.Run("average strengths give the baselines", func(t *testing.T) {
		homeXG, awayXG := h.Intensities(strengthRow(1.0, 1.0, 1.0, 1.0))
		assert.InDelta(t, defaultBaseHomeGoals, homeXG, 1e-9)
		assert.InDelta(t, defaultBaseAwayGoals, awayXG, 1e-9)
	})

	t.Run("short vector falls back to the baselines", func(t *testing.T) {
		homeXG, awayXG := h.Intensities([]float64{1.3})
		assert.InDelta(t, defaultBaseHomeGoals, homeXG, 1e-9)
		assert.InDelta(t, defaultBaseAwayGoals, awayXG, 1e-9)
	})

	t.Run("attack raises and opposing defence lowers", func(t *testing.T) {
		homeXG, _ := h.Intensities(strengthRow(1.5, 1.0, 1.0, 1.0))
		assert.InDelta(t, defaultBaseHomeGoals*1.5, homeXG, 1e-9)

		homeXG, _ = h.Intensities(strengthRow(1.0, 1.0, 1.0, 2.0))
		assert.InDelta(t, defaultBaseHomeGoals/2, homeXG, 1e-9)
	})

	t.Run("degenerate strengths are clamped", func(t *testing.T) {
		homeXG, awayXG := h.Intensities(strengthRow(0, -3, 100, 0))
		assert.Greater(t, homeXG, 0.0)
		assert.Greater(t, awayXG, 0.0)
	})
}

func TestHeuristicModelPredictions(t *testing.T) {
	h := NewHeuristicModel()

	t.Run("stronger home side favoured", func(t *testing.T) {
		probs, err := h.PredictProba(strengthRow(1.6, 1.3, 0.8, 0.9))
		require.NoError(t, err)
		assert.Greater(t, probs[0], probs[2])

		outcome, err := h.Predict(strengthRow(1.6, 1.3, 0.8, 0.9))
		require.NoError(t, err)
		assert.Equal(t, models.OutcomeHomeWin, outcome)
	})

	t.Run("mirrored strengths mirror probabilities within home advantage", func(t *testing.T) {
		probs, err := h.PredictProba(strengthRow(1.0, 1.0, 1.0, 1.0))
		require.NoError(t, err)

		// The home baseline exceeds the away baseline, so even with equal
		// strengths the home side is favoured.
		assert.Greater(t, probs[0], probs[2])
	})

	t.Run("valid triple", func(t *testing.T) {
		probs, err := h.PredictProba(strengthRow(0.7, 0.9, 1.4, 1.1))
		require.NoError(t, err)
		triple, err := models.TripleFromSlice(probs)
		require.NoError(t, err)
		assert.True(t, triple.Valid())
	})
}
