// Package calc provides the pure betting mathematics used across the
// engine: implied probability, expected value, Kelly staking, edges,
// performance ratios, and bet quality scoring. Every function is
// side-effect free and resolves invalid market inputs by returning a
// documented neutral sentinel instead of an error, so callers compose them
// without per-call error handling.
package calc

import "math"

// z-scores for the supported confidence levels.
const (
	z90 = 1.645
	z95 = 1.96
	z99 = 2.576
)

// ImpliedProbability converts decimal odds into the probability the market
// is charging for. Non-positive odds return 0.
func ImpliedProbability(odds float64) float64 {
	if odds <= 0 {
		return 0
	}
	return 1 / odds
}

// ExpectedValue returns the expected profit per unit staked at the given
// decimal odds. Non-positive odds return 0.
func ExpectedValue(prob, odds float64) float64 {
	if odds <= 0 {
		return 0
	}
	return prob*(odds-1) - (1 - prob)
}

// KellyFraction returns the full-Kelly bankroll fraction for a bet with the
// given win probability and decimal odds, clamped to [0,1]. Non-positive
// edge, probabilities outside (0,1], or odds at or below evens return 0.
func KellyFraction(prob, odds float64) float64 {
	if prob <= 0 || odds <= 1 {
		return 0
	}
	b := odds - 1
	f := (prob*b - (1 - prob)) / b
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// KellyStake sizes a stake with fractional Kelly: bankroll times fraction
// times the full-Kelly fraction. Non-positive expected value, bankroll, or
// fraction returns 0.
func KellyStake(prob, odds, bankroll, fraction float64) float64 {
	if bankroll <= 0 || fraction <= 0 {
		return 0
	}
	return bankroll * fraction * KellyFraction(prob, odds)
}

// ValuePercentage returns the model's edge over the market as a percentage
// of the implied probability. Non-positive implied probability returns 0.
func ValuePercentage(modelProb, impliedProb float64) float64 {
	if impliedProb <= 0 {
		return 0
	}
	return (modelProb - impliedProb) / impliedProb * 100
}

// ConfidenceInterval returns the Wald interval around a sampled proportion
// at the given level (0.90, 0.95, or 0.99; anything else falls back to
// 0.95), clamped to [0,1]. Zero trials return the degenerate interval
// (prob, prob).
func ConfidenceInterval(prob float64, n int, level float64) (lower, upper float64) {
	if n <= 0 {
		return prob, prob
	}

	z := z95
	switch level {
	case 0.90:
		z = z90
	case 0.99:
		z = z99
	}

	margin := z * math.Sqrt(prob*(1-prob)/float64(n))
	return Clamp(prob-margin, 0, 1), Clamp(prob+margin, 0, 1)
}

// BettingEdge computes the percentage edge for every outcome present in
// both maps. Outcomes without quoted odds are skipped, not errors: markets
// routinely quote fewer outcomes than the model prices.
func BettingEdge(probs map[string]float64, odds map[string]float64) map[string]float64 {
	edges := make(map[string]float64, len(probs))
	for outcome, p := range probs {
		o, ok := odds[outcome]
		if !ok {
			continue
		}
		edges[outcome] = ValuePercentage(p, ImpliedProbability(o))
	}
	return edges
}

// ROI returns the percentage return on investment for a settled position.
// Zero stake returns 0.
func ROI(finalValue, initialValue, stake float64) float64 {
	if stake == 0 {
		return 0
	}
	return (finalValue - initialValue) / stake * 100
}

// SharpeRatio returns mean over standard deviation for a return series.
// Empty and zero-variance series return 0.
func SharpeRatio(returns []float64) float64 {
	if len(returns) == 0 {
		return 0
	}

	mean, std := MeanStd(returns)
	if std == 0 {
		return 0
	}
	return mean / std
}

// BreakevenOdds returns the decimal odds at which a bet with the given win
// probability has zero expected value. Non-positive probability returns
// +Inf: no finite odds make such a bet break even.
func BreakevenOdds(prob float64) float64 {
	if prob <= 0 {
		return math.Inf(1)
	}
	return 1 / prob
}

// ProjectedCLV estimates closing line value as the percentage by which the
// taken odds beat the model's fair price, assuming the market closes at
// that price. Non-positive odds or probability return 0.
func ProjectedCLV(modelProb, odds float64) float64 {
	if odds <= 0 || modelProb <= 0 {
		return 0
	}
	return (odds*modelProb - 1) * 100
}

// OptimizeBetSize clamps a raw stake into the configured bounds.
func OptimizeBetSize(raw, minStake, maxStake float64) float64 {
	return Clamp(raw, minStake, maxStake)
}

// Clamp bounds v into [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// MeanStd returns the mean and population standard deviation of a series.
// An empty series returns (0, 0).
func MeanStd(values []float64) (mean, std float64) {
	if len(values) == 0 {
		return 0, 0
	}

	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	var variance float64
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))

	return mean, math.Sqrt(variance)
}
