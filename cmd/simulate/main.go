// Package main provides the entry point for the standalone simulation CLI.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/footy-edge/internal/simulation"
)

// scenarioSpec is the JSON shape of one entry in the --scenarios file.
type scenarioSpec struct {
	Name           string  `json:"name"`
	HomeMultiplier float64 `json:"home_multiplier"`
	HomeDelta      float64 `json:"home_delta"`
	AwayMultiplier float64 `json:"away_multiplier"`
	AwayDelta      float64 `json:"away_delta"`
}

func main() {
	var (
		homeXG        = flag.Float64("home-xg", 1.45, "Expected goals for the home side")
		awayXG        = flag.Float64("away-xg", 1.15, "Expected goals for the away side")
		trials        = flag.Int("trials", simulation.DefaultTrials, "Number of Monte Carlo trials")
		maxGoals      = flag.Int("max-goals", simulation.DefaultMaxGoals, "Truncation point for per-side goal counts")
		seed          = flag.Int64("seed", 0, "RNG seed; 0 derives one from the clock")
		scenariosFile = flag.String("scenarios", "", "Path to a JSON file of what-if scenario presets")
		pretty        = flag.Bool("pretty", false, "Pretty-print the result JSON")
	)
	flag.Parse()

	logger := newLogger()

	opts := simulation.Options{
		Trials:   *trials,
		MaxGoals: *maxGoals,
		Seed:     *seed,
	}

	sim := simulation.New(logger)
	result, err := sim.Simulate(*homeXG, *awayXG, opts)
	if err != nil {
		logger.Fatalf("Simulation failed: %v", err)
	}

	output := struct {
		Simulation interface{} `json:"simulation"`
		Scenarios  interface{} `json:"scenarios,omitempty"`
	}{Simulation: result}

	if *scenariosFile != "" {
		scenarios, err := readScenarios(*scenariosFile)
		if err != nil {
			logger.Fatalf("Failed to read scenarios: %v", err)
		}
		analysis, err := sim.SimulateScenarios(*homeXG, *awayXG, scenarios, opts)
		if err != nil {
			logger.Fatalf("Scenario analysis failed: %v", err)
		}
		output.Scenarios = analysis
	}

	out, err := marshalResult(output, *pretty)
	if err != nil {
		logger.Fatalf("Failed to encode result: %v", err)
	}
	fmt.Println(string(out))
}

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	return logger
}

func readScenarios(path string) ([]simulation.Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var specs []scenarioSpec
	if err := json.Unmarshal(raw, &specs); err != nil {
		return nil, err
	}

	scenarios := make([]simulation.Scenario, len(specs))
	for i, sc := range specs {
		scenarios[i] = simulation.Scenario{
			Name: sc.Name,
			Home: simulation.Modifier{Multiplier: sc.HomeMultiplier, Delta: sc.HomeDelta},
			Away: simulation.Modifier{Multiplier: sc.AwayMultiplier, Delta: sc.AwayDelta},
		}
	}
	return scenarios, nil
}

func marshalResult(result interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}
