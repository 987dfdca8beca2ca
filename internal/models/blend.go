package models

import "time"

// TrainingMetrics captures validation quality for a fitted predictor.
type TrainingMetrics struct {
	Accuracy float64 `json:"accuracy"`
	Brier    float64 `json:"brier"`
	LogLoss  float64 `json:"log_loss"`
}

// BlendState is the read-only snapshot of a fitted blender: the adaptive
// weight it currently applies, the bounds that clamp it, and the validation
// metrics the weight derives from. The external artifact collaborator
// persists this alongside the fitted predictor.
type BlendState struct {
	Weight       float64         `json:"weight"`
	Floor        float64         `json:"floor"`
	Ceiling      float64         `json:"ceiling"`
	Metrics      TrainingMetrics `json:"metrics"`
	TrainSamples int             `json:"train_samples"`
	ValSamples   int             `json:"validation_samples"`
	FittedAt     time.Time       `json:"fitted_at"`
}
