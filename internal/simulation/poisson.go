package simulation

import (
	"math"
	"math/rand"

	"github.com/yourusername/footy-edge/internal/models"
)

// GoalDistribution returns the Poisson probability mass for the given
// intensity, truncated at maxGoals and renormalized to sum to 1. Index k
// holds the probability of scoring exactly k goals.
func GoalDistribution(lambda float64, maxGoals int) []float64 {
	dist := make([]float64, maxGoals+1)

	sum := 0.0
	for k := 0; k <= maxGoals; k++ {
		dist[k] = poissonPMF(lambda, k)
		sum += dist[k]
	}
	if sum <= 0 {
		dist[0] = 1
		return dist
	}

	for k := range dist {
		dist[k] /= sum
	}
	return dist
}

// poissonPMF computes exp(-lambda) * lambda^k / k! in log space so large
// intensities stay finite.
func poissonPMF(lambda float64, k int) float64 {
	if lambda <= 0 {
		if k == 0 {
			return 1
		}
		return 0
	}
	return math.Exp(-lambda + float64(k)*math.Log(lambda) - logFactorial(k))
}

func logFactorial(k int) float64 {
	lf := 0.0
	for i := 2; i <= k; i++ {
		lf += math.Log(float64(i))
	}
	return lf
}

// sampleGoals draws one goal count from a categorical distribution by
// walking the cumulative mass.
func sampleGoals(dist []float64, rng *rand.Rand) int {
	u := rng.Float64()
	cum := 0.0
	for k, p := range dist {
		cum += p
		if u < cum {
			return k
		}
	}
	return len(dist) - 1
}

// AnalyticOutcome computes exact outcome probabilities from the truncated
// goal distributions without sampling: the score matrix is the outer
// product of the two goal vectors; home wins sum the lower triangle, draws
// the diagonal, away wins the upper. Used by the heuristic model and as a
// cross-check on simulated frequencies.
func AnalyticOutcome(homeXG, awayXG float64, maxGoals int) models.ProbabilityTriple {
	if maxGoals <= 0 {
		maxGoals = DefaultMaxGoals
	}

	home := GoalDistribution(homeXG, maxGoals)
	away := GoalDistribution(awayXG, maxGoals)

	var homeWin, draw, awayWin float64
	for i, ph := range home {
		for j, pa := range away {
			p := ph * pa
			switch {
			case i > j:
				homeWin += p
			case i == j:
				draw += p
			default:
				awayWin += p
			}
		}
	}

	return models.ProbabilityTriple{HomeWin: homeWin, Draw: draw, AwayWin: awayWin}.Normalize()
}
