package models

import "fmt"

// ProbTolerance is the allowed deviation from 1.0 for a probability triple.
const ProbTolerance = 1e-3

// ProbabilityTriple holds calibrated probabilities for the three match
// outcomes plus a scalar confidence in the prediction. Components are in
// [0,1] and sum to 1 within ProbTolerance.
type ProbabilityTriple struct {
	HomeWin    float64 `json:"home_win"`
	Draw       float64 `json:"draw"`
	AwayWin    float64 `json:"away_win"`
	Confidence float64 `json:"confidence"`
}

// TripleFromSlice builds a triple from a canonical-order probability vector.
func TripleFromSlice(probs []float64) (ProbabilityTriple, error) {
	if len(probs) != 3 {
		return ProbabilityTriple{}, fmt.Errorf("%w: expected 3 probabilities, got %d", ErrInvalidInput, len(probs))
	}
	return ProbabilityTriple{HomeWin: probs[0], Draw: probs[1], AwayWin: probs[2]}, nil
}

// Slice returns the triple as a canonical-order probability vector.
func (t ProbabilityTriple) Slice() []float64 {
	return []float64{t.HomeWin, t.Draw, t.AwayWin}
}

// Sum returns the total probability mass.
func (t ProbabilityTriple) Sum() float64 {
	return t.HomeWin + t.Draw + t.AwayWin
}

// Max returns the largest component.
func (t ProbabilityTriple) Max() float64 {
	m := t.HomeWin
	if t.Draw > m {
		m = t.Draw
	}
	if t.AwayWin > m {
		m = t.AwayWin
	}
	return m
}

// Outcome returns the most likely outcome. Ties resolve in canonical order.
func (t ProbabilityTriple) Outcome() Outcome {
	switch t.Max() {
	case t.HomeWin:
		return OutcomeHomeWin
	case t.Draw:
		return OutcomeDraw
	default:
		return OutcomeAwayWin
	}
}

// Probability returns the component for the given outcome.
func (t ProbabilityTriple) Probability(o Outcome) float64 {
	switch o {
	case OutcomeHomeWin:
		return t.HomeWin
	case OutcomeDraw:
		return t.Draw
	case OutcomeAwayWin:
		return t.AwayWin
	default:
		return 0
	}
}

// Normalize rescales the components to sum to exactly 1. A triple with no
// positive mass normalizes to the uniform distribution. Confidence is
// carried through unchanged.
func (t ProbabilityTriple) Normalize() ProbabilityTriple {
	sum := t.Sum()
	if sum <= 0 {
		return ProbabilityTriple{HomeWin: 1.0 / 3, Draw: 1.0 / 3, AwayWin: 1.0 / 3, Confidence: t.Confidence}
	}
	return ProbabilityTriple{
		HomeWin:    t.HomeWin / sum,
		Draw:       t.Draw / sum,
		AwayWin:    t.AwayWin / sum,
		Confidence: t.Confidence,
	}
}

// Valid reports whether every component is in [0,1] and the mass sums to 1
// within ProbTolerance.
func (t ProbabilityTriple) Valid() bool {
	for _, p := range t.Slice() {
		if p < 0 || p > 1 {
			return false
		}
	}
	diff := t.Sum() - 1
	return diff >= -ProbTolerance && diff <= ProbTolerance
}

// ToMap returns the triple keyed by outcome label, confidence excluded.
func (t ProbabilityTriple) ToMap() map[string]float64 {
	return map[string]float64{
		string(OutcomeHomeWin): t.HomeWin,
		string(OutcomeDraw):    t.Draw,
		string(OutcomeAwayWin): t.AwayWin,
	}
}
