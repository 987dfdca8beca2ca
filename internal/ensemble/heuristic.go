package ensemble

import (
	"github.com/yourusername/footy-edge/internal/models"
	"github.com/yourusername/footy-edge/internal/simulation"
)

// League-average goal baselines for the heuristic intensities.
const (
	defaultBaseHomeGoals = 1.45
	defaultBaseAwayGoals = 1.15

	minStrength = 0.1
	maxStrength = 5.0
)

// HeuristicModel prices a match from the default schema's strength
// features alone, using the closed-form truncated-Poisson outcome matrix.
// It needs no training, which makes it the orchestrator's degradation
// fallback and the bundled default model.
type HeuristicModel struct {
	maxGoals int
	baseHome float64
	baseAway float64
}

// NewHeuristicModel creates a heuristic model with league-average
// baselines.
func NewHeuristicModel() *HeuristicModel {
	return &HeuristicModel{
		maxGoals: simulation.DefaultMaxGoals,
		baseHome: defaultBaseHomeGoals,
		baseAway: defaultBaseAwayGoals,
	}
}

// PredictProba derives each side's expected goals from the strength
// features and returns the exact outcome probabilities of the truncated
// Poisson model.
func (h *HeuristicModel) PredictProba(features []float64) ([]float64, error) {
	homeXG, awayXG := h.Intensities(features)
	return simulation.AnalyticOutcome(homeXG, awayXG, h.maxGoals).Slice(), nil
}

// Intensities converts the leading strength features (default schema
// order: home attack, home defence, away attack, away defence) into
// expected goals: attack scales a side's baseline up, the opposing
// defence scales it down. Vectors without strength features fall back to
// the baselines.
func (h *HeuristicModel) Intensities(features []float64) (homeXG, awayXG float64) {
	homeAttack, homeDef, awayAttack, awayDef := 1.0, 1.0, 1.0, 1.0
	if len(features) >= 4 {
		homeAttack = clampStrength(features[0])
		homeDef = clampStrength(features[1])
		awayAttack = clampStrength(features[2])
		awayDef = clampStrength(features[3])
	}

	homeXG = h.baseHome * homeAttack / awayDef
	awayXG = h.baseAway * awayAttack / homeDef
	return homeXG, awayXG
}

func clampStrength(v float64) float64 {
	if v < minStrength {
		return minStrength
	}
	if v > maxStrength {
		return maxStrength
	}
	return v
}

// Predict returns the most likely outcome.
func (h *HeuristicModel) Predict(features []float64) (models.Outcome, error) {
	probs, err := h.PredictProba(features)
	if err != nil {
		return "", err
	}
	triple, err := models.TripleFromSlice(probs)
	if err != nil {
		return "", err
	}
	return triple.Outcome(), nil
}

// IsTrained always reports true: the heuristic has no trainable state.
func (h *HeuristicModel) IsTrained() bool {
	return true
}

// Version identifies the heuristic artifact.
func (h *HeuristicModel) Version() string {
	return "heuristic-v1"
}
