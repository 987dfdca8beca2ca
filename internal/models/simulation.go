package models

import "fmt"

// Scoreline is one exact final score with its sampled frequency.
type Scoreline struct {
	HomeGoals   int     `json:"home_goals"`
	AwayGoals   int     `json:"away_goals"`
	Probability float64 `json:"probability"`
}

// Score renders the scoreline as "2-1".
func (s Scoreline) Score() string {
	return fmt.Sprintf("%d-%d", s.HomeGoals, s.AwayGoals)
}

// OutcomeInterval is a 95% confidence interval for one outcome probability.
type OutcomeInterval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Contains reports whether p falls inside the interval.
func (ci OutcomeInterval) Contains(p float64) bool {
	return p >= ci.Lower && p <= ci.Upper
}

// GoalStats summarizes a sampled goal-count distribution.
type GoalStats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// OverUnderLine holds the sampled over/under split at one total-goals line.
type OverUnderLine struct {
	Line  float64 `json:"line"`
	Over  float64 `json:"over"`
	Under float64 `json:"under"`
}

// SimulationResult aggregates one Monte Carlo run: outcome frequencies with
// confidence intervals, the most common scorelines, goal statistics, and
// the derived markets.
type SimulationResult struct {
	HomeXG              float64                     `json:"home_xg"`
	AwayXG              float64                     `json:"away_xg"`
	Trials              int                         `json:"trials"`
	Seed                int64                       `json:"seed"`
	OutcomeProbs        map[Outcome]float64         `json:"outcome_probabilities"`
	ConfidenceIntervals map[Outcome]OutcomeInterval `json:"confidence_intervals"`
	TopScorelines       []Scoreline                 `json:"top_scorelines"`
	HomeGoals           GoalStats                   `json:"home_goals"`
	AwayGoals           GoalStats                   `json:"away_goals"`
	TotalGoals          GoalStats                   `json:"total_goals"`
	HomeGoalDist        []float64                   `json:"home_goal_distribution"`
	AwayGoalDist        []float64                   `json:"away_goal_distribution"`
	OverUnder           []OverUnderLine             `json:"over_under"`
	BTTS                float64                     `json:"btts_probability"`
	HomeCleanSheet      float64                     `json:"home_clean_sheet"`
	AwayCleanSheet      float64                     `json:"away_clean_sheet"`
	DurationMS          float64                     `json:"duration_ms"`
}

// Triple returns the simulated outcome probabilities as a ProbabilityTriple
// with zero confidence.
func (r *SimulationResult) Triple() ProbabilityTriple {
	return ProbabilityTriple{
		HomeWin: r.OutcomeProbs[OutcomeHomeWin],
		Draw:    r.OutcomeProbs[OutcomeDraw],
		AwayWin: r.OutcomeProbs[OutcomeAwayWin],
	}
}
