package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/footy-edge/internal/models"
)

func TestModifierApply(t *testing.T) {
	tests := []struct {
		name     string
		mod      Modifier
		xg       float64
		expected float64
	}{
		{"zero value is identity", Modifier{}, 1.5, 1.5},
		{"multiplier only", Modifier{Multiplier: 1.2}, 1.5, 1.8},
		{"delta only", Modifier{Delta: -0.3}, 1.5, 1.2},
		{"multiplier then delta", Modifier{Multiplier: 2.0, Delta: 0.1}, 1.5, 3.1},
		{"floored at minimum intensity", Modifier{Multiplier: 0.1, Delta: -1.0}, 1.5, minIntensity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.mod.Apply(tt.xg), 1e-9)
		})
	}
}

func TestSimulateScenarios(t *testing.T) {
	s := newTestSimulator()

	scenarios := []Scenario{
		{Name: "home attacking boost", Home: Modifier{Multiplier: 1.3}},
		{Name: "away key striker out", Away: Modifier{Multiplier: 0.7}},
	}

	analysis, err := s.SimulateScenarios(1.4, 1.2, scenarios, Options{Seed: 555})
	require.NoError(t, err)

	require.Len(t, analysis.Scenarios, 2)
	assert.NotEmpty(t, analysis.Base)

	for _, sc := range analysis.Scenarios {
		for _, o := range models.Outcomes() {
			assert.InDelta(t, sc.OutcomeProbs[o]-analysis.Base[o], sc.Deltas[o], 1e-9,
				"delta must equal scenario minus base for %s/%s", sc.Name, o)
		}
	}

	t.Run("boosting home attack raises home win probability", func(t *testing.T) {
		boost := analysis.Scenarios[0]
		assert.Greater(t, boost.Deltas[models.OutcomeHomeWin], 0.0)
	})

	t.Run("weakening away attack raises home win probability", func(t *testing.T) {
		weaker := analysis.Scenarios[1]
		assert.Greater(t, weaker.Deltas[models.OutcomeHomeWin], 0.0)
	})

	t.Run("reproducible with the same seed", func(t *testing.T) {
		again, err := s.SimulateScenarios(1.4, 1.2, scenarios, Options{Seed: 555})
		require.NoError(t, err)
		assert.Equal(t, analysis.Base, again.Base)
		for i := range analysis.Scenarios {
			assert.Equal(t, analysis.Scenarios[i].Deltas, again.Scenarios[i].Deltas)
		}
	})
}
