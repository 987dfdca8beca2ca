// Package metrics provides the centralized Prometheus metrics registry for the engine.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	PredictionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "footy_edge",
		Name:      "predictions_total",
		Help:      "Total number of probability predictions produced",
	})
	SimulationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "footy_edge",
		Name:      "simulations_total",
		Help:      "Total number of Monte Carlo simulations run",
	})
	InsightsBundlesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "footy_edge",
		Name:      "insights_bundles_total",
		Help:      "Total number of insights bundles generated",
	})
	CacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "footy_edge",
		Name:      "insights_cache_hits_total",
		Help:      "Total number of insights bundle cache hits",
	})
	CacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "footy_edge",
		Name:      "insights_cache_misses_total",
		Help:      "Total number of insights bundle cache misses",
	})
)

// Gauge metrics
var (
	RegisteredModels = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "footy_edge",
		Name:      "registered_models",
		Help:      "Number of estimators in the published registry snapshot",
	})
	BlendWeight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "footy_edge",
		Name:      "blend_weight",
		Help:      "Current adaptive SOTA blend weight",
	})
	CurrentBankroll = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "footy_edge",
		Name:      "current_bankroll",
		Help:      "Configured bankroll in currency units",
	})
)

// Histogram metrics
var (
	PredictionDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "footy_edge",
		Name:      "prediction_duration_seconds",
		Help:      "Duration of probability predictions in seconds",
		Buckets:   prometheus.DefBuckets,
	})
	SimulationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "footy_edge",
		Name:      "simulation_duration_seconds",
		Help:      "Duration of Monte Carlo simulations in seconds",
		Buckets:   prometheus.DefBuckets,
	})
	InsightsDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "footy_edge",
		Name:      "insights_duration_seconds",
		Help:      "End-to-end duration of insights bundle generation in seconds",
		Buckets:   prometheus.DefBuckets,
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		// Register counter metrics
		registry.MustRegister(PredictionsTotal)
		registry.MustRegister(SimulationsTotal)
		registry.MustRegister(InsightsBundlesTotal)
		registry.MustRegister(CacheHitsTotal)
		registry.MustRegister(CacheMissesTotal)

		// Register gauge metrics
		registry.MustRegister(RegisteredModels)
		registry.MustRegister(BlendWeight)
		registry.MustRegister(CurrentBankroll)

		// Register histogram metrics
		registry.MustRegister(PredictionDuration)
		registry.MustRegister(SimulationDuration)
		registry.MustRegister(InsightsDuration)

		// Register prediction metrics
		registry.MustRegister(PredictionsByLeagueTotal)
		registry.MustRegister(PredictionConfidenceScore)
		registry.MustRegister(ValueBetsDetectedTotal)
		registry.MustRegister(RiskAssessmentsTotal)
		registry.MustRegister(DegradedInsightsTotal)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordPrediction records a completed prediction.
func RecordPrediction(durationSeconds float64) {
	PredictionsTotal.Inc()
	PredictionDuration.Observe(durationSeconds)
}

// RecordSimulation records a completed Monte Carlo run.
func RecordSimulation(durationSeconds float64) {
	SimulationsTotal.Inc()
	SimulationDuration.Observe(durationSeconds)
}

// RecordInsightsBundle records a generated insights bundle.
func RecordInsightsBundle(durationSeconds float64) {
	InsightsBundlesTotal.Inc()
	InsightsDuration.Observe(durationSeconds)
}

// RecordCacheHit records an insights bundle cache hit.
func RecordCacheHit() {
	CacheHitsTotal.Inc()
}

// RecordCacheMiss records an insights bundle cache miss.
func RecordCacheMiss() {
	CacheMissesTotal.Inc()
}

// UpdateRegisteredModels updates the registered estimators gauge.
func UpdateRegisteredModels(count float64) {
	RegisteredModels.Set(count)
}

// UpdateBlendWeight updates the adaptive blend weight gauge.
func UpdateBlendWeight(weight float64) {
	BlendWeight.Set(weight)
}

// UpdateBankroll updates the configured bankroll gauge.
func UpdateBankroll(amount float64) {
	CurrentBankroll.Set(amount)
}
