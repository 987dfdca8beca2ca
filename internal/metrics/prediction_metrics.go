// Package metrics defines prediction-specific metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prediction-specific counter vectors
var (
	PredictionsByLeagueTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "footy_edge",
		Name:      "predictions_by_league_total",
		Help:      "Total number of predictions by league and blend state",
	}, []string{"league", "blended"})

	ValueBetsDetectedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "footy_edge",
		Name:      "value_bets_detected_total",
		Help:      "Total number of value bets detected by quality tier",
	}, []string{"tier"})

	RiskAssessmentsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "footy_edge",
		Name:      "risk_assessments_total",
		Help:      "Total number of risk assessments by tier",
	}, []string{"level"})

	DegradedInsightsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "footy_edge",
		Name:      "degraded_insights_total",
		Help:      "Total number of degraded insights stages by reason",
	}, []string{"reason"})
)

// Prediction-specific histogram vectors
var (
	PredictionConfidenceScore = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "footy_edge",
		Name:      "prediction_confidence_score",
		Help:      "Confidence scores of produced predictions",
		Buckets:   []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
	}, []string{"league"})
)

// RecordPredictionOutcome records a prediction by league and blend state.
func RecordPredictionOutcome(league string, blended bool) {
	blendedLabel := "false"
	if blended {
		blendedLabel = "true"
	}
	PredictionsByLeagueTotal.WithLabelValues(league, blendedLabel).Inc()
}

// RecordPredictionConfidence records a prediction confidence score.
func RecordPredictionConfidence(league string, score float64) {
	PredictionConfidenceScore.WithLabelValues(league).Observe(score)
}

// RecordValueBet records a detected value bet by quality tier.
func RecordValueBet(tier string) {
	ValueBetsDetectedTotal.WithLabelValues(tier).Inc()
}

// RecordRiskAssessment records a risk assessment by tier.
func RecordRiskAssessment(level string) {
	RiskAssessmentsTotal.WithLabelValues(level).Inc()
}

// RecordDegradation records a degraded insights stage.
func RecordDegradation(reason string) {
	DegradedInsightsTotal.WithLabelValues(reason).Inc()
}
