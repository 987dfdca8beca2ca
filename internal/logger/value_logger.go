// Package logger provides value detection logging.
package logger

import (
	"github.com/sirupsen/logrus"
)

// ValueLogger provides dedicated logging for value and risk decisions.
type ValueLogger struct {
	*logrus.Entry
}

// NewValueLogger creates a new value logger.
func NewValueLogger(baseLogger *logrus.Logger) *ValueLogger {
	return &ValueLogger{
		Entry: baseLogger.WithField("component", "value"),
	}
}

// LogValueBet logs a detected value bet.
func (vl *ValueLogger) LogValueBet(outcome string, modelProbability, marketOdds, edgePercent, kellyPercent, recommendedStake float64, qualityTier string) {
	vl.WithFields(logrus.Fields{
		"outcome":           outcome,
		"model_probability": modelProbability,
		"market_odds":       marketOdds,
		"edge_percent":      edgePercent,
		"kelly_percent":     kellyPercent,
		"recommended_stake": recommendedStake,
		"quality_tier":      qualityTier,
	}).Info("Value bet detected")
}

// LogRiskAssessment logs a risk tier decision.
func (vl *ValueLogger) LogRiskAssessment(riskLevel string, confidence float64, valueAvailable bool, recommendation string) {
	vl.WithFields(logrus.Fields{
		"risk_level":      riskLevel,
		"confidence":      confidence,
		"value_available": valueAvailable,
		"recommendation":  recommendation,
	}).Info("Risk assessed")
}

// LogDegradation logs a degraded insights stage.
func (vl *ValueLogger) LogDegradation(matchup, reason string) {
	vl.WithFields(logrus.Fields{
		"matchup": matchup,
		"reason":  reason,
	}).Warn("Insights stage degraded")
}
