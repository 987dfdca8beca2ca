package models

// Estimator is the capability contract implemented by every probability
// model the engine can invoke: the in-repo estimators (softmax classifier,
// heuristic model, stacked ensemble) and externally trained handles loaded
// through the model registry.
type Estimator interface {
	// PredictProba returns outcome probabilities for one feature vector in
	// canonical order (home win, draw, away win). It fails with
	// ErrModelNotTrained when the estimator is not fit.
	PredictProba(features []float64) ([]float64, error)

	// Predict returns the most likely outcome for one feature vector.
	Predict(features []float64) (Outcome, error)

	// IsTrained reports whether the estimator can serve predictions.
	IsTrained() bool

	// Version identifies the trained artifact, e.g. "heuristic-v1".
	Version() string
}
