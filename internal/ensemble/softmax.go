package ensemble

import (
	"fmt"
	"math"

	"github.com/yourusername/footy-edge/internal/models"
)

// numClasses is fixed at the three match outcomes.
const numClasses = 3

// Training defaults.
const (
	defaultLearningRate = 0.1
	defaultEpochs       = 500
	defaultVersion      = "softmax-v1"
)

// SoftmaxConfig tunes softmax training. Zero values select the defaults.
type SoftmaxConfig struct {
	LearningRate float64
	Epochs       int
	L2           float64
	Version      string
}

// SoftmaxClassifier is a multinomial logistic regression trained with
// batch gradient descent on cross-entropy loss. It serves as the stacking
// meta-combiner and as the blender's internal predictor. Fit is not safe
// to call concurrently with predictions; the engine fits once at load time
// and treats the weights as read-only afterwards.
type SoftmaxClassifier struct {
	weights      [][]float64 // [class][feature], bias at the last index
	learningRate float64
	epochs       int
	l2           float64
	version      string
	trained      bool
}

// NewSoftmaxClassifier creates an unfit classifier.
func NewSoftmaxClassifier(cfg SoftmaxConfig) *SoftmaxClassifier {
	if cfg.LearningRate <= 0 {
		cfg.LearningRate = defaultLearningRate
	}
	if cfg.Epochs <= 0 {
		cfg.Epochs = defaultEpochs
	}
	if cfg.Version == "" {
		cfg.Version = defaultVersion
	}
	return &SoftmaxClassifier{
		learningRate: cfg.LearningRate,
		epochs:       cfg.Epochs,
		l2:           cfg.L2,
		version:      cfg.Version,
	}
}

// Fit trains the classifier on aligned feature rows and outcome labels
// (canonical indices 0..2). Rows must share one width.
func (c *SoftmaxClassifier) Fit(features [][]float64, labels []int) error {
	if len(features) == 0 || len(features) != len(labels) {
		return fmt.Errorf("%w: features and labels must be non-empty and aligned", models.ErrInvalidInput)
	}

	nFeat := len(features[0])
	for i, row := range features {
		if len(row) != nFeat {
			return fmt.Errorf("%w: feature row %d has %d values, expected %d",
				models.ErrInvalidInput, i, len(row), nFeat)
		}
	}
	for i, y := range labels {
		if y < 0 || y >= numClasses {
			return fmt.Errorf("%w: label %d out of range at row %d", models.ErrInvalidInput, y, i)
		}
	}

	c.weights = make([][]float64, numClasses)
	for k := range c.weights {
		c.weights[k] = make([]float64, nFeat+1)
	}

	n := float64(len(features))
	for epoch := 0; epoch < c.epochs; epoch++ {
		grad := make([][]float64, numClasses)
		for k := range grad {
			grad[k] = make([]float64, nFeat+1)
		}

		for i, row := range features {
			probs := c.scores(row)
			for k := 0; k < numClasses; k++ {
				residual := probs[k]
				if labels[i] == k {
					residual -= 1
				}
				for j, x := range row {
					grad[k][j] += residual * x
				}
				grad[k][nFeat] += residual
			}
		}

		for k := 0; k < numClasses; k++ {
			for j := range c.weights[k] {
				update := grad[k][j] / n
				if c.l2 > 0 && j < nFeat {
					update += c.l2 * c.weights[k][j]
				}
				c.weights[k][j] -= c.learningRate * update
			}
		}
	}

	c.trained = true
	return nil
}

// scores computes softmax probabilities for one row. Logits are clamped to
// keep exp finite and probabilities away from exact zero, and the max is
// subtracted before exponentiation for numerical stability.
func (c *SoftmaxClassifier) scores(features []float64) []float64 {
	logits := make([]float64, numClasses)
	for k := 0; k < numClasses; k++ {
		z := c.weights[k][len(features)]
		for j, x := range features {
			z += c.weights[k][j] * x
		}
		logits[k] = clampLogit(z)
	}

	maxLogit := logits[0]
	for _, z := range logits[1:] {
		if z > maxLogit {
			maxLogit = z
		}
	}

	probs := make([]float64, numClasses)
	sum := 0.0
	for k, z := range logits {
		probs[k] = math.Exp(z - maxLogit)
		sum += probs[k]
	}
	for k := range probs {
		probs[k] /= sum
	}
	return probs
}

func clampLogit(z float64) float64 {
	if z > 20 {
		return 20
	}
	if z < -20 {
		return -20
	}
	return z
}

// PredictProba returns outcome probabilities for one feature row.
func (c *SoftmaxClassifier) PredictProba(features []float64) ([]float64, error) {
	if !c.trained {
		return nil, models.ErrModelNotTrained
	}
	if len(features) != len(c.weights[0])-1 {
		return nil, fmt.Errorf("%w: expected %d features, got %d",
			models.ErrInvalidInput, len(c.weights[0])-1, len(features))
	}
	return c.scores(features), nil
}

// PredictProbaBatch returns one probability row per feature row.
func (c *SoftmaxClassifier) PredictProbaBatch(features [][]float64) ([][]float64, error) {
	out := make([][]float64, len(features))
	for i, row := range features {
		probs, err := c.PredictProba(row)
		if err != nil {
			return nil, err
		}
		out[i] = probs
	}
	return out, nil
}

// Predict returns the most likely outcome for one feature row.
func (c *SoftmaxClassifier) Predict(features []float64) (models.Outcome, error) {
	probs, err := c.PredictProba(features)
	if err != nil {
		return "", err
	}
	triple, err := models.TripleFromSlice(probs)
	if err != nil {
		return "", err
	}
	return triple.Outcome(), nil
}

// IsTrained reports whether Fit has completed.
func (c *SoftmaxClassifier) IsTrained() bool {
	return c.trained
}

// Version identifies the trained artifact.
func (c *SoftmaxClassifier) Version() string {
	return c.version
}
