// Package logger provides prediction-specific logging.
package logger

import (
	"github.com/sirupsen/logrus"
)

// PredictionLogger provides dedicated logging for prediction operations.
type PredictionLogger struct {
	*logrus.Entry
}

// NewPredictionLogger creates a new prediction logger.
func NewPredictionLogger(baseLogger *logrus.Logger) *PredictionLogger {
	return &PredictionLogger{
		Entry: baseLogger.WithField("component", "prediction"),
	}
}

// LogPrediction logs a completed probability prediction.
func (pl *PredictionLogger) LogPrediction(league, homeTeam, awayTeam, modelVersion string, homeWin, draw, awayWin, confidence float64, blended bool, latencyMs float64) {
	pl.WithFields(logrus.Fields{
		"league":        league,
		"home_team":     homeTeam,
		"away_team":     awayTeam,
		"model_version": modelVersion,
		"home_win":      homeWin,
		"draw":          draw,
		"away_win":      awayWin,
		"confidence":    confidence,
		"blended":       blended,
		"latency_ms":    latencyMs,
	}).Info("Prediction completed")
}

// LogBlendFit logs a SOTA blender fit.
func (pl *PredictionLogger) LogBlendFit(weight, accuracy, brier, logLoss float64, trainSamples, valSamples int) {
	pl.WithFields(logrus.Fields{
		"weight":             weight,
		"accuracy":           accuracy,
		"brier":              brier,
		"log_loss":           logLoss,
		"train_samples":      trainSamples,
		"validation_samples": valSamples,
	}).Info("Blend weight updated")
}

// LogSimulation logs a completed Monte Carlo run.
func (pl *PredictionLogger) LogSimulation(trials int, homeXG, awayXG float64, seed int64, durationMs float64) {
	pl.WithFields(logrus.Fields{
		"trials":      trials,
		"home_xg":     homeXG,
		"away_xg":     awayXG,
		"seed":        seed,
		"duration_ms": durationMs,
	}).Info("Simulation completed")
}

// LogPredictionError logs prediction failures.
func (pl *PredictionLogger) LogPredictionError(league, matchup, errorReason string) {
	pl.WithFields(logrus.Fields{
		"league":       league,
		"matchup":      matchup,
		"error_reason": errorReason,
	}).Error("Prediction failed")
}
