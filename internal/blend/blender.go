// Package blend implements the SOTA blender: a second, independently
// trained predictor whose output is mixed into the ensemble's triple with
// an adaptive weight derived from the blender's own validation Brier
// score. Lower Brier means more trust and a weight closer to the ceiling.
package blend

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/footy-edge/internal/calc"
	"github.com/yourusername/footy-edge/internal/ensemble"
	applogger "github.com/yourusername/footy-edge/internal/logger"
	"github.com/yourusername/footy-edge/internal/models"
)

// uniformBrier is the three-class Brier score of the uniform predictor
// against one-hot outcomes, the point at which the blender earns no trust.
const uniformBrier = 2.0 / 3

const defaultValidationSplit = 0.2

// Config bounds the adaptive weight and shapes training.
type Config struct {
	Enabled         bool
	Floor           float64
	Ceiling         float64
	ValidationSplit float64
	Softmax         ensemble.SoftmaxConfig
}

// Blender trains an internal softmax predictor and blends its output with
// the ensemble's. Fit may be re-run to retrain; reads take a consistent
// snapshot under a read lock.
type Blender struct {
	mu            sync.RWMutex
	cfg           Config
	model         *ensemble.SoftmaxClassifier
	state         models.BlendState
	predictionLog *applogger.PredictionLogger
}

// New creates an unfit blender. Weight bounds must satisfy
// 0 <= floor <= ceiling <= 1.
func New(cfg Config, logger *logrus.Logger) (*Blender, error) {
	if cfg.Floor < 0 || cfg.Ceiling > 1 || cfg.Floor > cfg.Ceiling {
		return nil, fmt.Errorf("%w: blend weight bounds [%.2f, %.2f] invalid",
			models.ErrInvalidInput, cfg.Floor, cfg.Ceiling)
	}
	if cfg.ValidationSplit <= 0 || cfg.ValidationSplit >= 1 {
		cfg.ValidationSplit = defaultValidationSplit
	}
	return &Blender{
		cfg:           cfg,
		predictionLog: applogger.NewPredictionLogger(logger),
	}, nil
}

// Fit trains the internal predictor on a train/validation split of the
// given samples, computes validation metrics, and derives the adaptive
// weight. The caller is responsible for shuffling; the tail of the sample
// order becomes the validation set.
func (b *Blender) Fit(features [][]float64, labels []int) error {
	if len(features) == 0 || len(features) != len(labels) {
		return fmt.Errorf("%w: features and labels must be non-empty and aligned", models.ErrInvalidInput)
	}

	nVal := int(math.Round(float64(len(features)) * b.cfg.ValidationSplit))
	if nVal >= len(features) {
		nVal = len(features) - 1
	}

	split := len(features) - nVal
	trainX, trainY := features[:split], labels[:split]
	valX, valY := features[split:], labels[split:]
	if len(valX) == 0 {
		// Too few samples to hold anything out; validate on the training
		// set and let the metrics say so via the sample counts.
		valX, valY = trainX, trainY
	}

	model := ensemble.NewSoftmaxClassifier(b.cfg.Softmax)
	if err := model.Fit(trainX, trainY); err != nil {
		return err
	}

	preds, err := model.PredictProbaBatch(valX)
	if err != nil {
		return err
	}

	metrics := evaluate(preds, valY)
	weight := weightFromBrier(metrics.Brier, b.cfg.Floor, b.cfg.Ceiling)

	b.mu.Lock()
	b.model = model
	b.state = models.BlendState{
		Weight:       weight,
		Floor:        b.cfg.Floor,
		Ceiling:      b.cfg.Ceiling,
		Metrics:      metrics,
		TrainSamples: len(trainX),
		ValSamples:   nVal,
		FittedAt:     time.Now().UTC(),
	}
	b.mu.Unlock()

	b.predictionLog.LogBlendFit(weight, metrics.Accuracy, metrics.Brier,
		metrics.LogLoss, len(trainX), nVal)

	return nil
}

// Blend mixes the ensemble triple with the blender's prediction for the
// same feature row: blended = (1-w)*ensemble + w*sota, renormalized, with
// confidence recomputed from the blended sharpness.
func (b *Blender) Blend(ensembleTriple models.ProbabilityTriple, features []float64) (models.ProbabilityTriple, error) {
	b.mu.RLock()
	model, weight := b.model, b.state.Weight
	b.mu.RUnlock()

	if model == nil {
		return models.ProbabilityTriple{}, fmt.Errorf("%w: blender has not been fit", models.ErrModelNotTrained)
	}

	sota, err := model.PredictProba(features)
	if err != nil {
		return models.ProbabilityTriple{}, err
	}

	ens := ensembleTriple.Slice()
	blended := make([]float64, len(ens))
	for k := range ens {
		blended[k] = (1-weight)*ens[k] + weight*sota[k]
	}

	triple, err := models.TripleFromSlice(blended)
	if err != nil {
		return models.ProbabilityTriple{}, err
	}
	triple = triple.Normalize()
	triple.Confidence = ensemble.Confidence(triple)
	return triple, nil
}

// Ready reports whether blending is enabled and the predictor is fit; the
// orchestrator bypasses the blend stage entirely when this is false.
func (b *Blender) Ready() bool {
	return b.cfg.Enabled && b.IsTrained()
}

// State returns the current blend state for the persistence collaborator.
func (b *Blender) State() models.BlendState {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state
}

// Weight returns the current adaptive weight.
func (b *Blender) Weight() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state.Weight
}

// PredictProba returns the internal predictor's probabilities. It fails
// with ErrModelNotTrained before Fit.
func (b *Blender) PredictProba(features []float64) ([]float64, error) {
	b.mu.RLock()
	model := b.model
	b.mu.RUnlock()

	if model == nil {
		return nil, fmt.Errorf("%w: blender has not been fit", models.ErrModelNotTrained)
	}
	return model.PredictProba(features)
}

// Predict returns the internal predictor's most likely outcome.
func (b *Blender) Predict(features []float64) (models.Outcome, error) {
	probs, err := b.PredictProba(features)
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
func (b *Blender) IsTrained() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.model != nil
}

// Version identifies the blender artifact.
func (b *Blender) Version() string {
	return "sota-blend-v1"
}

// weightFromBrier maps a validation Brier score onto [floor, ceiling]: a
// perfect score earns the ceiling, anything at or beyond the uniform
// predictor's score earns the floor.
func weightFromBrier(brier, floor, ceiling float64) float64 {
	trust := calc.Clamp(1-brier/uniformBrier, 0, 1)
	return floor + (ceiling-floor)*trust
}

// evaluate computes accuracy, Brier score, and log-loss for predicted
// probability rows against their labels.
func evaluate(preds [][]float64, labels []int) models.TrainingMetrics {
	n := float64(len(labels))
	var correct, brier, logLoss float64

	for i, probs := range preds {
		label := labels[i]

		best := 0
		for k := 1; k < len(probs); k++ {
			if probs[k] > probs[best] {
				best = k
			}
		}
		if best == label {
			correct++
		}

		for k, p := range probs {
			y := 0.0
			if k == label {
				y = 1
			}
			d := p - y
			brier += d * d
		}

		p := probs[label]
		if p < 1e-15 {
			p = 1e-15
		}
		logLoss += -math.Log(p)
	}

	return models.TrainingMetrics{
		Accuracy: correct / n,
		Brier:    brier / n,
		LogLoss:  logLoss / n,
	}
}
