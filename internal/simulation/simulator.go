// Package simulation implements the Monte Carlo outcome simulator: each
// side's goal count is drawn from a truncated Poisson distribution and the
// sampled scorelines are aggregated into outcome probabilities with
// confidence intervals, top scorelines, goal statistics, and the derived
// markets (totals, both-teams-to-score, clean sheets).
package simulation

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/footy-edge/internal/calc"
	"github.com/yourusername/footy-edge/internal/models"
)

// Defaults applied when an Options field is zero.
const (
	DefaultTrials   = 10000
	DefaultMaxGoals = 10

	topScorelineCount = 5
)

// Lines are the standard total-goals lines reported by every simulation.
var Lines = []float64{0.5, 1.5, 2.5, 3.5, 4.5}

// Options tunes one simulation run. The zero value selects the defaults.
// A zero Seed derives one from the clock: randomness is the production
// default and determinism is opt-in.
type Options struct {
	Trials   int
	MaxGoals int
	Seed     int64
}

func (o Options) withDefaults() Options {
	if o.Trials <= 0 {
		o.Trials = DefaultTrials
	}
	if o.MaxGoals <= 0 {
		o.MaxGoals = DefaultMaxGoals
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	return o
}

// Simulator runs Monte Carlo goal simulations. It holds no mutable state:
// every invocation constructs its own generator, so concurrent calls never
// share sampling state.
type Simulator struct {
	logger *logrus.Logger
}

// New creates a simulator.
func New(logger *logrus.Logger) *Simulator {
	return &Simulator{logger: logger}
}

// Simulate draws opts.Trials independent scorelines from truncated Poisson
// goal distributions and aggregates them. Both intensities must be
// positive; anything else fails with ErrInvalidInput.
func (s *Simulator) Simulate(homeXG, awayXG float64, opts Options) (*models.SimulationResult, error) {
	if homeXG <= 0 || awayXG <= 0 {
		return nil, fmt.Errorf("%w: expected goals must be positive, got home=%.3f away=%.3f",
			models.ErrInvalidInput, homeXG, awayXG)
	}
	opts = opts.withDefaults()

	start := time.Now()
	rng := rand.New(rand.NewSource(opts.Seed))

	homeDist := GoalDistribution(homeXG, opts.MaxGoals)
	awayDist := GoalDistribution(awayXG, opts.MaxGoals)

	var (
		wins        [3]int
		scoreCounts = make(map[[2]int]int)
		homeGoals   = make([]float64, opts.Trials)
		awayGoals   = make([]float64, opts.Trials)
		totals      = make([]float64, opts.Trials)
		overCounts  = make([]int, len(Lines))
		btts        int
		homeCS      int
		awayCS      int
	)

	for i := 0; i < opts.Trials; i++ {
		h := sampleGoals(homeDist, rng)
		a := sampleGoals(awayDist, rng)

		switch {
		case h > a:
			wins[0]++
		case h == a:
			wins[1]++
		default:
			wins[2]++
		}

		scoreCounts[[2]int{h, a}]++
		homeGoals[i] = float64(h)
		awayGoals[i] = float64(a)
		totals[i] = float64(h + a)

		for li, line := range Lines {
			if totals[i] > line {
				overCounts[li]++
			}
		}
		if h > 0 && a > 0 {
			btts++
		}
		if a == 0 {
			homeCS++
		}
		if h == 0 {
			awayCS++
		}
	}

	n := float64(opts.Trials)
	outcomeProbs := map[models.Outcome]float64{
		models.OutcomeHomeWin: float64(wins[0]) / n,
		models.OutcomeDraw:    float64(wins[1]) / n,
		models.OutcomeAwayWin: float64(wins[2]) / n,
	}

	intervals := make(map[models.Outcome]models.OutcomeInterval, 3)
	for o, p := range outcomeProbs {
		lower, upper := calc.ConfidenceInterval(p, opts.Trials, 0.95)
		intervals[o] = models.OutcomeInterval{Lower: lower, Upper: upper}
	}

	homeMean, homeStd := calc.MeanStd(homeGoals)
	awayMean, awayStd := calc.MeanStd(awayGoals)
	totalMean, totalStd := calc.MeanStd(totals)

	result := &models.SimulationResult{
		HomeXG:              homeXG,
		AwayXG:              awayXG,
		Trials:              opts.Trials,
		Seed:                opts.Seed,
		OutcomeProbs:        outcomeProbs,
		ConfidenceIntervals: intervals,
		TopScorelines:       topScorelines(scoreCounts, opts.Trials),
		HomeGoals:           models.GoalStats{Mean: homeMean, StdDev: homeStd},
		AwayGoals:           models.GoalStats{Mean: awayMean, StdDev: awayStd},
		TotalGoals:          models.GoalStats{Mean: totalMean, StdDev: totalStd},
		HomeGoalDist:        goalFrequencies(homeGoals, opts.MaxGoals),
		AwayGoalDist:        goalFrequencies(awayGoals, opts.MaxGoals),
		OverUnder:           overUnderLines(overCounts, opts.Trials),
		BTTS:                float64(btts) / n,
		HomeCleanSheet:      float64(homeCS) / n,
		AwayCleanSheet:      float64(awayCS) / n,
		DurationMS:          float64(time.Since(start).Microseconds()) / 1000.0,
	}

	s.logger.WithFields(logrus.Fields{
		"home_xg":     homeXG,
		"away_xg":     awayXG,
		"trials":      opts.Trials,
		"seed":        opts.Seed,
		"duration_ms": result.DurationMS,
	}).Debug("Monte Carlo simulation completed")

	return result, nil
}

// topScorelines ranks sampled scorelines by frequency. Ties order by score
// so identical samples always produce identical output.
func topScorelines(counts map[[2]int]int, trials int) []models.Scoreline {
	lines := make([]models.Scoreline, 0, len(counts))
	for score, count := range counts {
		lines = append(lines, models.Scoreline{
			HomeGoals:   score[0],
			AwayGoals:   score[1],
			Probability: float64(count) / float64(trials),
		})
	}

	sort.Slice(lines, func(i, j int) bool {
		if lines[i].Probability != lines[j].Probability {
			return lines[i].Probability > lines[j].Probability
		}
		if lines[i].HomeGoals != lines[j].HomeGoals {
			return lines[i].HomeGoals < lines[j].HomeGoals
		}
		return lines[i].AwayGoals < lines[j].AwayGoals
	})

	if len(lines) > topScorelineCount {
		lines = lines[:topScorelineCount]
	}
	return lines
}

func goalFrequencies(samples []float64, maxGoals int) []float64 {
	freq := make([]float64, maxGoals+1)
	for _, g := range samples {
		freq[int(g)]++
	}
	for k := range freq {
		freq[k] /= float64(len(samples))
	}
	return freq
}

func overUnderLines(overCounts []int, trials int) []models.OverUnderLine {
	out := make([]models.OverUnderLine, len(Lines))
	for i, line := range Lines {
		over := float64(overCounts[i]) / float64(trials)
		out[i] = models.OverUnderLine{Line: line, Over: over, Under: 1 - over}
	}
	return out
}
