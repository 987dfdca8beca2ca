package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Prediction groups the probability estimates produced for one matchup.
// Blended is nil when the blend stage was bypassed; Final is whichever
// triple downstream stages consumed.
type Prediction struct {
	Ensemble     ProbabilityTriple  `json:"ensemble"`
	Blended      *ProbabilityTriple `json:"blended,omitempty"`
	Final        ProbabilityTriple  `json:"final"`
	ModelVersion string             `json:"model_version"`
}

// XGAnalysis records the expected-goal inputs handed to the simulator and
// where they came from.
type XGAnalysis struct {
	HomeXG float64 `json:"home_xg"`
	AwayXG float64 `json:"away_xg"`
	Source string  `json:"source"`
}

// ValueAnalysis is the set of value bets found against the supplied odds,
// with the bankroll they were sized for.
type ValueAnalysis struct {
	Bets       []ValueBet      `json:"bets"`
	Bankroll   decimal.Decimal `json:"bankroll"`
	TotalStake decimal.Decimal `json:"total_stake"`
}

// ScenarioResult is one what-if simulation run with its probability deltas
// against the base case.
type ScenarioResult struct {
	Name         string              `json:"name"`
	HomeXG       float64             `json:"home_xg"`
	AwayXG       float64             `json:"away_xg"`
	OutcomeProbs map[Outcome]float64 `json:"outcome_probabilities"`
	Deltas       map[Outcome]float64 `json:"probability_deltas"`
}

// ScenarioAnalysis groups the base-case probabilities with every scenario
// run against them.
type ScenarioAnalysis struct {
	Base      map[Outcome]float64 `json:"base"`
	Scenarios []ScenarioResult    `json:"scenarios"`
}

// InsightsBundle is the engine's single response object. It is always
// structurally complete; stages that could not run leave their section
// empty and append a note to Degradations.
type InsightsBundle struct {
	RequestID     uuid.UUID         `json:"request_id"`
	MatchupID     uuid.UUID         `json:"matchup_id"`
	League        string            `json:"league"`
	HomeTeam      string            `json:"home_team"`
	AwayTeam      string            `json:"away_team"`
	Predictions   Prediction        `json:"predictions"`
	XGAnalysis    XGAnalysis        `json:"xg_analysis"`
	ValueAnalysis ValueAnalysis     `json:"value_analysis"`
	MonteCarlo    *SimulationResult `json:"monte_carlo,omitempty"`
	Scenarios     *ScenarioAnalysis `json:"scenarios,omitempty"`
	Risk          RiskAssessment    `json:"risk_assessment"`
	Narrative     string            `json:"narrative"`
	Degradations  []string          `json:"degradations,omitempty"`
	GeneratedAt   time.Time         `json:"generated_at"`
}

// Degraded reports whether any stage fell back or was skipped.
func (b *InsightsBundle) Degraded() bool {
	return len(b.Degradations) > 0
}
