// Package models defines the domain types shared by the prediction and
// value-betting engine: match inputs, probability triples, simulation and
// value-analysis outputs, and the estimator capability contract.
package models

// Outcome is one of the three full-time match results.
type Outcome string

const (
	OutcomeHomeWin Outcome = "home_win"
	OutcomeDraw    Outcome = "draw"
	OutcomeAwayWin Outcome = "away_win"
)

// Outcomes returns the three match outcomes in canonical order. Probability
// vectors throughout the engine follow this order: home win, draw, away win.
func Outcomes() []Outcome {
	return []Outcome{OutcomeHomeWin, OutcomeDraw, OutcomeAwayWin}
}

// OutcomeIndex maps an outcome to its position in the canonical order.
// Unknown outcomes map to -1.
func OutcomeIndex(o Outcome) int {
	switch o {
	case OutcomeHomeWin:
		return 0
	case OutcomeDraw:
		return 1
	case OutcomeAwayWin:
		return 2
	default:
		return -1
	}
}
