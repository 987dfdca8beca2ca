package ensemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/footy-edge/internal/models"
)

// strengthRow builds a default-schema vector from the four strengths.
func strengthRow(homeAttack, homeDef, awayAttack, awayDef float64) []float64 {
	return []float64{homeAttack, homeDef, awayAttack, awayDef, 0.5, 0.5, 0}
}

func TestNewStackedEnsembleRequiresBases(t *testing.T) {
	_, err := NewStackedEnsemble(nil, nil, StackingConfig{}, newTestLogger())
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestStackedEnsembleMeanFallback(t *testing.T) {
	bases := []models.Estimator{NewHeuristicModel(), NewHeuristicModel()}
	e, err := NewStackedEnsemble(bases, nil, StackingConfig{}, newTestLogger())
	require.NoError(t, err)
	require.True(t, e.IsTrained())

	row := strengthRow(1.4, 1.1, 0.8, 0.9)
	probs, err := e.PredictProba(row)
	require.NoError(t, err)
	require.Len(t, probs, 3)

	// Identical bases mean the average equals a single base's output.
	single, err := NewHeuristicModel().PredictProba(row)
	require.NoError(t, err)
	for k := range probs {
		assert.InDelta(t, single[k], probs[k], 1e-9)
	}
}

func TestStackedEnsembleWithFittedMeta(t *testing.T) {
	bases := []models.Estimator{NewHeuristicModel()}
	e, err := NewStackedEnsemble(bases, nil, StackingConfig{}, newTestLogger())
	require.NoError(t, err)

	// Strong home sides win, balanced sides draw, strong away sides win.
	features := [][]float64{
		strengthRow(1.8, 1.3, 0.7, 0.7),
		strengthRow(1.7, 1.2, 0.8, 0.8),
		strengthRow(1.9, 1.4, 0.6, 0.9),
		strengthRow(1.0, 1.0, 1.0, 1.0),
		strengthRow(0.9, 1.1, 0.9, 1.1),
		strengthRow(1.1, 0.9, 1.1, 0.9),
		strengthRow(0.7, 0.7, 1.8, 1.3),
		strengthRow(0.8, 0.8, 1.7, 1.2),
		strengthRow(0.6, 0.9, 1.9, 1.4),
	}
	labels := []int{0, 0, 0, 1, 1, 1, 2, 2, 2}

	require.NoError(t, e.FitMeta(features, labels, SoftmaxConfig{LearningRate: 0.5, Epochs: 1000}))
	require.True(t, e.IsTrained())

	triple, err := e.PredictTriple(strengthRow(1.8, 1.3, 0.7, 0.7))
	require.NoError(t, err)
	assert.True(t, triple.Valid())
	assert.Equal(t, triple.Max(), triple.HomeWin, "strong home side should be favoured")
}

func TestStackedEnsembleUntrainedBase(t *testing.T) {
	bases := []models.Estimator{NewHeuristicModel(), NewSoftmaxClassifier(SoftmaxConfig{})}
	e, err := NewStackedEnsemble(bases, nil, StackingConfig{}, newTestLogger())
	require.NoError(t, err)

	assert.False(t, e.IsTrained())

	_, err = e.PredictProba(strengthRow(1.2, 1.0, 0.9, 1.0))
	assert.ErrorIs(t, err, models.ErrModelNotTrained)
}

func TestStackedEnsembleIncludeRawFeatures(t *testing.T) {
	bases := []models.Estimator{NewHeuristicModel()}
	e, err := NewStackedEnsemble(bases, nil, StackingConfig{IncludeRawFeatures: true}, newTestLogger())
	require.NoError(t, err)

	row := strengthRow(1.2, 1.0, 0.9, 1.0)
	stacked, err := e.stackedInput(row)
	require.NoError(t, err)
	assert.Len(t, stacked, 3+len(row))
}

func TestStackedEnsemblePredictTripleConfidence(t *testing.T) {
	e, err := NewStackedEnsemble([]models.Estimator{NewHeuristicModel()}, nil, StackingConfig{}, newTestLogger())
	require.NoError(t, err)

	lopsided, err := e.PredictTriple(strengthRow(2.5, 1.8, 0.4, 0.5))
	require.NoError(t, err)
	balanced, err := e.PredictTriple(strengthRow(1.0, 1.0, 1.0, 1.0))
	require.NoError(t, err)

	assert.Greater(t, lopsided.Confidence, balanced.Confidence)
}

func TestConfidence(t *testing.T) {
	assert.InDelta(t, 0.0, Confidence(models.ProbabilityTriple{HomeWin: 1.0 / 3, Draw: 1.0 / 3, AwayWin: 1.0 / 3}), 1e-9)
	assert.InDelta(t, 1.0, Confidence(models.ProbabilityTriple{HomeWin: 1, Draw: 0, AwayWin: 0}), 1e-9)
	assert.InDelta(t, 0.4, Confidence(models.ProbabilityTriple{HomeWin: 0.6, Draw: 0.2, AwayWin: 0.2}), 1e-9)
}
