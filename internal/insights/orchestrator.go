// Package insights provides the prediction pipeline orchestration.
package insights

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/yourusername/footy-edge/internal/blend"
	"github.com/yourusername/footy-edge/internal/config"
	"github.com/yourusername/footy-edge/internal/ensemble"
	applogger "github.com/yourusername/footy-edge/internal/logger"
	"github.com/yourusername/footy-edge/internal/metrics"
	"github.com/yourusername/footy-edge/internal/models"
	"github.com/yourusername/footy-edge/internal/registry"
	"github.com/yourusername/footy-edge/internal/risk"
	"github.com/yourusername/footy-edge/internal/simulation"
)

// Degradation notes appended to a bundle when a stage falls back or is
// skipped. The exact strings are part of the response contract.
const (
	DegradeNoOdds     = "no market odds supplied"
	DegradeNotTrained = "model not trained"
	DegradeNoModel    = "no model registered for league"
)

// Orchestrator sequences the prediction pipeline for one matchup: validate,
// vectorize, predict, optionally blend, derive expected goals, simulate,
// detect value, assess risk, and assemble the bundle. Every stage that can
// fall back does so with a degradation note instead of an error.
type Orchestrator struct {
	cfg       *config.Config
	registry  *registry.Registry
	blender   *blend.Blender
	simulator *simulation.Simulator
	imputer   *ensemble.Imputer
	assessor  *risk.Assessor
	detector  *ValueDetector
	fallback  *ensemble.HeuristicModel
	cache     *BundleCache
	validate  *validator.Validate
	logger    *logrus.Logger
	warn      rate.Sometimes

	predictionLog *applogger.PredictionLogger
	valueLog      *applogger.ValueLogger
	auditLog      *applogger.AuditLogger
}

// NewOrchestrator wires the pipeline from configuration. The registry and
// blender belong to the caller; a nil blender disables the blend stage.
func NewOrchestrator(cfg *config.Config, reg *registry.Registry, blender *blend.Blender, log *logrus.Logger) *Orchestrator {
	o := &Orchestrator{
		cfg:           cfg,
		registry:      reg,
		blender:       blender,
		simulator:     simulation.New(log),
		imputer:       ensemble.NewImputer(ensemble.DefaultFeatureSpecs(), log),
		assessor:      risk.NewAssessor(riskThresholds(cfg.Risk), log),
		detector:      NewValueDetector(cfg.Value, cfg.Staking, log),
		fallback:      ensemble.NewHeuristicModel(),
		validate:      validator.New(),
		logger:        log,
		warn:          rate.Sometimes{First: 5, Interval: time.Minute},
		predictionLog: applogger.NewPredictionLogger(log),
		valueLog:      applogger.NewValueLogger(log),
		auditLog:      applogger.NewAuditLogger(log),
	}

	if cfg.Cache.Enabled {
		o.cache = NewBundleCache(cfg.CacheTTL(), cfg.CacheCleanupInterval())
	}

	metrics.UpdateBankroll(cfg.Staking.Bankroll)

	return o
}

func riskThresholds(cfg config.RiskConfig) risk.Thresholds {
	if cfg.MinConfidence == 0 && cfg.HighConfidence == 0 && cfg.HighQualityScore == 0 {
		return risk.DefaultThresholds()
	}
	return risk.Thresholds{
		MinConfidence:    cfg.MinConfidence,
		HighConfidence:   cfg.HighConfidence,
		HighQualityScore: cfg.HighQualityScore,
	}
}

// GenerateInsights runs the full pipeline for one matchup and returns a
// structurally complete bundle. Errors are reserved for invalid input and
// cancellation; everything else degrades with a note.
func (o *Orchestrator) GenerateInsights(ctx context.Context, matchCtx models.MatchContext) (*models.InsightsBundle, error) {
	start := time.Now()

	if err := o.validate.Struct(&matchCtx); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	key := CacheKey{
		MatchupID:       matchCtx.MatchupID,
		SnapshotVersion: o.registry.Version(),
		OddsFingerprint: matchCtx.OddsFingerprint(),
	}
	if o.cache != nil {
		if cached := o.cache.Get(key); cached != nil {
			o.logger.WithFields(logrus.Fields{
				"matchup_id": matchCtx.MatchupID,
				"cache_key":  key.String(),
			}).Debug("Returning cached insights bundle")
			return cached, nil
		}
	}

	bundle := &models.InsightsBundle{
		RequestID: uuid.New(),
		MatchupID: matchCtx.MatchupID,
		League:    matchCtx.League,
		HomeTeam:  matchCtx.HomeTeam,
		AwayTeam:  matchCtx.AwayTeam,
	}

	o.logger.WithFields(logrus.Fields{
		"request_id": bundle.RequestID,
		"matchup_id": matchCtx.MatchupID,
		"league":     matchCtx.League,
		"home_team":  matchCtx.HomeTeam,
		"away_team":  matchCtx.AwayTeam,
	}).Info("Generating insights bundle")

	// Step 1: Vectorize features into the estimator schema
	features, _, err := o.imputer.Vectorize(matchCtx.Features)
	if err != nil {
		o.predictionLog.LogPredictionError(matchCtx.League, matchupLabel(&matchCtx), err.Error())
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Step 2: Ensemble prediction, heuristic fallback on a missing or unfit model
	predStart := time.Now()
	final, modelVersion := o.predictEnsemble(bundle, &matchCtx, features)
	bundle.Predictions.Ensemble = final
	bundle.Predictions.ModelVersion = modelVersion

	// Step 3: SOTA blend when a fitted blender is available
	blended := false
	if o.blender != nil && o.blender.Ready() {
		blendTriple, blendErr := o.blender.Blend(final, features)
		if blendErr != nil {
			o.logger.WithError(blendErr).Warn("Blend failed, using ensemble probabilities")
		} else {
			bundle.Predictions.Blended = &blendTriple
			final = blendTriple
			blended = true
			metrics.UpdateBlendWeight(o.blender.Weight())
		}
	}
	bundle.Predictions.Final = final
	predDuration := time.Since(predStart)

	o.predictionLog.LogPrediction(matchCtx.League, matchCtx.HomeTeam, matchCtx.AwayTeam, modelVersion,
		final.HomeWin, final.Draw, final.AwayWin, final.Confidence, blended, durationMS(predDuration))
	metrics.RecordPrediction(predDuration.Seconds())
	metrics.RecordPredictionOutcome(matchCtx.League, blended)
	metrics.RecordPredictionConfidence(matchCtx.League, final.Confidence)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Step 4: Expected goals for the simulator
	bundle.XGAnalysis = resolveXG(&matchCtx, features, o.fallback)

	// Step 5: Monte Carlo simulation
	simOpts := simulation.Options{
		Trials:   o.cfg.Simulation.Trials,
		MaxGoals: o.cfg.Simulation.MaxGoals,
		Seed:     o.cfg.Simulation.Seed,
	}
	sim, err := o.simulator.Simulate(bundle.XGAnalysis.HomeXG, bundle.XGAnalysis.AwayXG, simOpts)
	if err != nil {
		return nil, fmt.Errorf("simulating outcomes: %w", err)
	}
	bundle.MonteCarlo = sim
	o.predictionLog.LogSimulation(sim.Trials, sim.HomeXG, sim.AwayXG, sim.Seed, sim.DurationMS)
	metrics.RecordSimulation(sim.DurationMS / 1000.0)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Step 6: Scenario analysis over the configured presets
	if len(o.cfg.Scenarios) > 0 {
		scenarios, scErr := o.simulator.SimulateScenarios(
			bundle.XGAnalysis.HomeXG, bundle.XGAnalysis.AwayXG, o.scenarioPresets(), simOpts)
		if scErr != nil {
			o.logger.WithError(scErr).Warn("Scenario analysis failed, continuing without it")
		} else {
			bundle.Scenarios = scenarios
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Step 7: Value detection against the supplied market odds
	bankroll := o.cfg.Staking.Bankroll
	if matchCtx.Bankroll != nil {
		bankroll = *matchCtx.Bankroll
	}
	if matchCtx.HasOdds() {
		bundle.ValueAnalysis = o.detector.Detect(final, matchCtx.MarketOdds, bankroll)
	} else {
		bundle.ValueAnalysis = models.ValueAnalysis{
			Bankroll:   decimal.NewFromFloat(bankroll).Round(2),
			TotalStake: decimal.Zero,
		}
		o.degrade(bundle, &matchCtx, DegradeNoOdds)
	}

	// Step 8: Risk assessment
	bundle.Risk = o.assessor.Assess(final, bundle.ValueAnalysis.Bets)
	o.valueLog.LogRiskAssessment(string(bundle.Risk.RiskLevel), bundle.Risk.ConfidenceScore,
		bundle.Risk.ValueAvailable, bundle.Risk.Recommendation)
	metrics.RecordRiskAssessment(string(bundle.Risk.RiskLevel))

	// Step 9: Assemble and publish
	bundle.Narrative = buildNarrative(bundle)
	bundle.GeneratedAt = time.Now().UTC()

	duration := time.Since(start)
	metrics.RecordInsightsBundle(duration.Seconds())
	o.auditLog.LogBundleGenerated(bundle.RequestID.String(), bundle.League, bundle.HomeTeam,
		bundle.AwayTeam, bundle.Degradations, bundle.GeneratedAt, durationMS(duration))

	if o.cache != nil {
		o.cache.Set(key, bundle)
	}

	o.logger.WithFields(logrus.Fields{
		"request_id":  bundle.RequestID,
		"risk_level":  bundle.Risk.RiskLevel,
		"value_bets":  len(bundle.ValueAnalysis.Bets),
		"degraded":    bundle.Degraded(),
		"duration_ms": durationMS(duration),
	}).Info("Insights bundle generated")

	return bundle, nil
}

// predictEnsemble resolves the league's estimator and predicts. Any failure
// to serve a trained model degrades to the bundled heuristic, which cannot
// fail on an imputed feature vector. This is the one place allowed to
// swallow ErrModelNotTrained.
func (o *Orchestrator) predictEnsemble(bundle *models.InsightsBundle, matchCtx *models.MatchContext, features []float64) (models.ProbabilityTriple, string) {
	estimator, ok := o.registry.Lookup(matchCtx.League)
	switch {
	case !ok:
		o.degrade(bundle, matchCtx, DegradeNoModel)
		estimator = o.fallback
	case !estimator.IsTrained():
		o.degrade(bundle, matchCtx, DegradeNotTrained)
		estimator = o.fallback
	}

	probs, err := estimator.PredictProba(features)
	if err != nil {
		o.logger.WithError(err).WithFields(logrus.Fields{
			"league":  matchCtx.League,
			"version": estimator.Version(),
		}).Warn("Estimator failed, using heuristic fallback")
		if errors.Is(err, models.ErrModelNotTrained) {
			o.degrade(bundle, matchCtx, DegradeNotTrained)
		}
		estimator = o.fallback
		probs, _ = estimator.PredictProba(features)
	}

	triple, err := models.TripleFromSlice(probs)
	if err != nil {
		triple = models.ProbabilityTriple{}
	}
	triple = triple.Normalize()
	triple.Confidence = ensemble.Confidence(triple)

	return triple, estimator.Version()
}

// degrade appends a note once per bundle, counts it, and logs it with
// throttling so a misconfigured league cannot flood the logs.
func (o *Orchestrator) degrade(bundle *models.InsightsBundle, matchCtx *models.MatchContext, note string) {
	for _, existing := range bundle.Degradations {
		if existing == note {
			return
		}
	}
	bundle.Degradations = append(bundle.Degradations, note)
	metrics.RecordDegradation(note)
	o.warn.Do(func() {
		o.valueLog.LogDegradation(matchupLabel(matchCtx), note)
	})
}

func (o *Orchestrator) scenarioPresets() []simulation.Scenario {
	presets := make([]simulation.Scenario, len(o.cfg.Scenarios))
	for i, sc := range o.cfg.Scenarios {
		presets[i] = simulation.Scenario{
			Name: sc.Name,
			Home: simulation.Modifier{Multiplier: sc.HomeMultiplier, Delta: sc.HomeDelta},
			Away: simulation.Modifier{Multiplier: sc.AwayMultiplier, Delta: sc.AwayDelta},
		}
	}
	return presets
}

// CacheStats exposes the bundle cache hit/miss counters. All zeros when
// caching is disabled.
func (o *Orchestrator) CacheStats() (hits, misses uint64, ratio float64) {
	if o.cache == nil {
		return 0, 0, 0
	}
	return o.cache.Stats()
}

func matchupLabel(matchCtx *models.MatchContext) string {
	return fmt.Sprintf("%s vs %s", matchCtx.HomeTeam, matchCtx.AwayTeam)
}

func durationMS(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}
