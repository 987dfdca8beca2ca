// Package ensemble implements the stacked ensemble predictor: several
// independently trained base estimators feed a meta-combiner trained on
// their concatenated outputs, producing one calibrated probability triple.
// The package also provides the feature imputer, the trainable softmax
// classifier, and the closed-form heuristic model used as the degradation
// fallback.
package ensemble

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/footy-edge/internal/calc"
	applogger "github.com/yourusername/footy-edge/internal/logger"
	"github.com/yourusername/footy-edge/internal/models"
)

// StackingConfig shapes a stacked ensemble.
type StackingConfig struct {
	// IncludeRawFeatures appends the raw feature row to the concatenated
	// base outputs before the meta-combiner sees them.
	IncludeRawFeatures bool
	Version            string
}

// StackedEnsemble combines base estimators through a meta-combiner. It
// implements the estimator contract itself, so a whole ensemble can stand
// wherever a single model does. With no meta-combiner configured it falls
// back to the renormalized mean of the base outputs.
type StackedEnsemble struct {
	bases              []models.Estimator
	meta               models.Estimator
	includeRawFeatures bool
	version            string
	logger             *logrus.Logger
	auditLog           *applogger.AuditLogger
}

// NewStackedEnsemble creates an ensemble over the given bases. The meta
// estimator may be nil; FitMeta can install one later.
func NewStackedEnsemble(bases []models.Estimator, meta models.Estimator, cfg StackingConfig, logger *logrus.Logger) (*StackedEnsemble, error) {
	if len(bases) == 0 {
		return nil, fmt.Errorf("%w: ensemble needs at least one base estimator", models.ErrInvalidInput)
	}
	version := cfg.Version
	if version == "" {
		version = "stacked-v1"
	}
	return &StackedEnsemble{
		bases:              bases,
		meta:               meta,
		includeRawFeatures: cfg.IncludeRawFeatures,
		version:            version,
		logger:             logger,
		auditLog:           applogger.NewAuditLogger(logger),
	}, nil
}

// FitMeta trains a softmax meta-combiner on the bases' outputs for the
// given training set, replacing any existing combiner. Labels are
// canonical outcome indices.
func (e *StackedEnsemble) FitMeta(features [][]float64, labels []int, cfg SoftmaxConfig) error {
	start := time.Now()

	stacked := make([][]float64, len(features))
	for i, row := range features {
		s, err := e.stackedInput(row)
		if err != nil {
			return fmt.Errorf("stacking training row %d: %w", i, err)
		}
		stacked[i] = s
	}

	meta := NewSoftmaxClassifier(cfg)
	if err := meta.Fit(stacked, labels); err != nil {
		return err
	}
	e.meta = meta

	e.auditLog.LogModelFit(e.version, float64(time.Since(start).Microseconds())/1000.0,
		map[string]float64{
			"bases":   float64(len(e.bases)),
			"samples": float64(len(features)),
		})
	return nil
}

// stackedInput concatenates every base's probabilities for one row,
// optionally followed by the raw features.
func (e *StackedEnsemble) stackedInput(features []float64) ([]float64, error) {
	stacked := make([]float64, 0, len(e.bases)*numClasses+len(features))
	for i, base := range e.bases {
		probs, err := base.PredictProba(features)
		if err != nil {
			return nil, fmt.Errorf("base estimator %d (%s): %w", i, base.Version(), err)
		}
		stacked = append(stacked, probs...)
	}
	if e.includeRawFeatures {
		stacked = append(stacked, features...)
	}
	return stacked, nil
}

// PredictProba returns the stacked probabilities for one feature row.
func (e *StackedEnsemble) PredictProba(features []float64) ([]float64, error) {
	if !e.IsTrained() {
		return nil, models.ErrModelNotTrained
	}

	stacked, err := e.stackedInput(features)
	if err != nil {
		return nil, err
	}

	if e.meta == nil {
		return e.meanOfBases(stacked), nil
	}
	return e.meta.PredictProba(stacked)
}

// meanOfBases averages the base triples held in the stacked input and
// renormalizes.
func (e *StackedEnsemble) meanOfBases(stacked []float64) []float64 {
	avg := make([]float64, numClasses)
	for b := range e.bases {
		for k := 0; k < numClasses; k++ {
			avg[k] += stacked[b*numClasses+k]
		}
	}

	sum := 0.0
	for _, v := range avg {
		sum += v
	}
	if sum <= 0 {
		return []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}
	}
	for k := range avg {
		avg[k] /= sum
	}
	return avg
}

// PredictTriple returns the ensemble's normalized triple with confidence
// derived from its sharpness.
func (e *StackedEnsemble) PredictTriple(features []float64) (models.ProbabilityTriple, error) {
	probs, err := e.PredictProba(features)
	if err != nil {
		return models.ProbabilityTriple{}, err
	}

	triple, err := models.TripleFromSlice(probs)
	if err != nil {
		return models.ProbabilityTriple{}, err
	}
	triple = triple.Normalize()
	triple.Confidence = Confidence(triple)

	e.logger.WithFields(logrus.Fields{
		"version":    e.version,
		"bases":      len(e.bases),
		"confidence": triple.Confidence,
	}).Debug("Ensemble prediction produced")

	return triple, nil
}

// Predict returns the most likely outcome for one feature row.
func (e *StackedEnsemble) Predict(features []float64) (models.Outcome, error) {
	triple, err := e.PredictTriple(features)
	if err != nil {
		return "", err
	}
	return triple.Outcome(), nil
}

// IsTrained reports whether every base, and the meta-combiner when
// present, is trained.
func (e *StackedEnsemble) IsTrained() bool {
	for _, b := range e.bases {
		if !b.IsTrained() {
			return false
		}
	}
	if e.meta != nil && !e.meta.IsTrained() {
		return false
	}
	return true
}

// Version identifies the ensemble artifact.
func (e *StackedEnsemble) Version() string {
	return e.version
}

// Confidence rescales the sharpness of a triple into [0,1]: 0 at the
// uniform distribution, 1 when one outcome is certain.
func Confidence(t models.ProbabilityTriple) float64 {
	return calc.Clamp((t.Max()-1.0/3)/(1-1.0/3), 0, 1)
}
