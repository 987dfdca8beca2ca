// Package logger provides audit logging.
package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

// AuditLogger provides dedicated audit trail logging.
type AuditLogger struct {
	*logrus.Entry
}

// NewAuditLogger creates a new audit logger.
func NewAuditLogger(baseLogger *logrus.Logger) *AuditLogger {
	return &AuditLogger{
		Entry: baseLogger.WithField("component", "audit"),
	}
}

// LogBundleGenerated logs a completed insights bundle.
func (al *AuditLogger) LogBundleGenerated(requestID, league, homeTeam, awayTeam string, degradations []string, generatedAt time.Time, durationMs float64) {
	al.WithFields(logrus.Fields{
		"request_id":   requestID,
		"league":       league,
		"home_team":    homeTeam,
		"away_team":    awayTeam,
		"degradations": degradations,
		"generated_at": generatedAt.Unix(),
		"duration_ms":  durationMs,
	}).Info("Insights bundle generated")
}

// LogRegistryPublish logs a model registry snapshot publication.
func (al *AuditLogger) LogRegistryPublish(version string, leagues int, loadedAt time.Time) {
	al.WithFields(logrus.Fields{
		"version":   version,
		"leagues":   leagues,
		"loaded_at": loadedAt.Unix(),
	}).Info("Registry snapshot published")
}

// LogModelFit logs model training events.
func (al *AuditLogger) LogModelFit(modelName string, trainingDurationMs float64, metrics map[string]float64) {
	al.WithFields(logrus.Fields{
		"model_name":           modelName,
		"training_duration_ms": trainingDurationMs,
		"metrics":              metrics,
	}).Info("Model fit completed")
}
