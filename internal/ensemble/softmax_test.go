package ensemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/footy-edge/internal/models"
)

// separableSet is a toy three-class problem: class 0 lives at high x0,
// class 2 at high x1, class 1 near the origin.
func separableSet() ([][]float64, []int) {
	features := [][]float64{
		{2.0, 0.1}, {1.8, 0.2}, {2.2, 0.0}, {1.9, 0.1},
		{0.1, 0.1}, {0.0, 0.2}, {0.2, 0.0}, {0.1, 0.2},
		{0.1, 2.0}, {0.2, 1.9}, {0.0, 2.1}, {0.1, 1.8},
	}
	labels := []int{0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2}
	return features, labels
}

func TestSoftmaxClassifierFitAndPredict(t *testing.T) {
	features, labels := separableSet()

	clf := NewSoftmaxClassifier(SoftmaxConfig{LearningRate: 0.5, Epochs: 2000})
	require.NoError(t, clf.Fit(features, labels))
	require.True(t, clf.IsTrained())

	correct := 0
	for i, row := range features {
		probs, err := clf.PredictProba(row)
		require.NoError(t, err)
		require.Len(t, probs, 3)

		sum := 0.0
		best, bestIdx := -1.0, -1
		for k, p := range probs {
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 1.0)
			sum += p
			if p > best {
				best, bestIdx = p, k
			}
		}
		assert.InDelta(t, 1.0, sum, 1e-9)

		if bestIdx == labels[i] {
			correct++
		}
	}
	assert.GreaterOrEqual(t, float64(correct)/float64(len(labels)), 0.9,
		"training accuracy on a separable set")
}

func TestSoftmaxClassifierUnfit(t *testing.T) {
	clf := NewSoftmaxClassifier(SoftmaxConfig{})
	assert.False(t, clf.IsTrained())

	_, err := clf.PredictProba([]float64{1, 2})
	assert.ErrorIs(t, err, models.ErrModelNotTrained)

	_, err = clf.Predict([]float64{1, 2})
	assert.ErrorIs(t, err, models.ErrModelNotTrained)
}

func TestSoftmaxClassifierFitValidation(t *testing.T) {
	clf := NewSoftmaxClassifier(SoftmaxConfig{Epochs: 10})

	tests := []struct {
		name     string
		features [][]float64
		labels   []int
	}{
		{"empty set", nil, nil},
		{"misaligned", [][]float64{{1, 2}}, []int{0, 1}},
		{"ragged rows", [][]float64{{1, 2}, {1}}, []int{0, 1}},
		{"label out of range", [][]float64{{1, 2}, {3, 4}}, []int{0, 3}},
		{"negative label", [][]float64{{1, 2}, {3, 4}}, []int{0, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, clf.Fit(tt.features, tt.labels), models.ErrInvalidInput)
		})
	}
}

func TestSoftmaxClassifierFeatureWidthMismatch(t *testing.T) {
	features, labels := separableSet()
	clf := NewSoftmaxClassifier(SoftmaxConfig{Epochs: 50})
	require.NoError(t, clf.Fit(features, labels))

	_, err := clf.PredictProba([]float64{1, 2, 3})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestSoftmaxClassifierBatch(t *testing.T) {
	features, labels := separableSet()
	clf := NewSoftmaxClassifier(SoftmaxConfig{Epochs: 200})
	require.NoError(t, clf.Fit(features, labels))

	rows, err := clf.PredictProbaBatch(features)
	require.NoError(t, err)
	require.Len(t, rows, len(features))
	for _, probs := range rows {
		sum := 0.0
		for _, p := range probs {
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}

func TestSoftmaxClassifierVersion(t *testing.T) {
	assert.Equal(t, "softmax-v1", NewSoftmaxClassifier(SoftmaxConfig{}).Version())
	assert.Equal(t, "meta-v2", NewSoftmaxClassifier(SoftmaxConfig{Version: "meta-v2"}).Version())
}
