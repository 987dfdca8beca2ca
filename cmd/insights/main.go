// Package main provides the entry point for the insights CLI tool.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/footy-edge/internal/blend"
	"github.com/yourusername/footy-edge/internal/config"
	"github.com/yourusername/footy-edge/internal/ensemble"
	"github.com/yourusername/footy-edge/internal/insights"
	applogger "github.com/yourusername/footy-edge/internal/logger"
	"github.com/yourusername/footy-edge/internal/metrics"
	"github.com/yourusername/footy-edge/internal/models"
	"github.com/yourusername/footy-edge/internal/registry"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile string
	inputFile  string
	pretty     bool

	logger *logrus.Logger
	cfg    *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to configuration file")
	rootCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Path to the match context JSON file")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print the bundle JSON")
	_ = rootCmd.MarkFlagRequired("input")
}

var rootCmd = &cobra.Command{
	Use:   "insights",
	Short: "Generate a value-betting insights bundle for one matchup",
	Long:  `Reads a match context JSON file, runs the prediction and value-betting pipeline against it, and prints the resulting insights bundle.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		logger = applogger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInsights()
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig() error {
	var err error
	cfg, err = config.LoadWithDefaults(configFile)
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return config.ValidateEnvironment(cfg)
}

func runInsights() error {
	ctx := context.Background()

	matchCtx, err := readMatchContext(inputFile)
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"matchup_id": matchCtx.MatchupID,
		"league":     matchCtx.League,
		"home_team":  matchCtx.HomeTeam,
		"away_team":  matchCtx.AwayTeam,
	}).Info("Match context loaded")

	metrics.InitRegistry()

	reg := registry.New(bundledModelLoader(matchCtx.League), logger)
	if err := reg.Load(ctx); err != nil {
		return fmt.Errorf("failed to load model registry: %w", err)
	}
	metrics.UpdateRegisteredModels(float64(reg.Len()))

	blender, err := buildBlender()
	if err != nil {
		return err
	}

	orchestrator := insights.NewOrchestrator(cfg, reg, blender, logger)

	bundle, err := orchestrator.GenerateInsights(ctx, matchCtx)
	if err != nil {
		return fmt.Errorf("failed to generate insights: %w", err)
	}

	out, err := marshalBundle(bundle)
	if err != nil {
		return fmt.Errorf("failed to encode bundle: %w", err)
	}
	fmt.Println(string(out))

	return nil
}

func readMatchContext(path string) (models.MatchContext, error) {
	var matchCtx models.MatchContext

	raw, err := os.ReadFile(path)
	if err != nil {
		return matchCtx, fmt.Errorf("failed to read match context: %w", err)
	}
	if err := json.Unmarshal(raw, &matchCtx); err != nil {
		return matchCtx, fmt.Errorf("failed to parse match context: %w", err)
	}
	return matchCtx, nil
}

// bundledModelLoader registers the no-training heuristic for the requested
// league. Processes embedding the engine replace this with a loader for
// their trained artifacts.
func bundledModelLoader(league string) registry.LoaderFunc {
	return func(ctx context.Context) (map[string]models.Estimator, string, error) {
		return map[string]models.Estimator{
			league: ensemble.NewHeuristicModel(),
		}, "bundled-" + time.Now().UTC().Format("2006-01-02"), nil
	}
}

func buildBlender() (*blend.Blender, error) {
	if !cfg.Blend.Enabled {
		return nil, nil
	}

	blender, err := blend.New(blend.Config{
		Enabled:         true,
		Floor:           cfg.Blend.WeightFloor,
		Ceiling:         cfg.Blend.WeightCeiling,
		ValidationSplit: cfg.Blend.ValidationSplit,
		Softmax: ensemble.SoftmaxConfig{
			LearningRate: cfg.Blend.LearningRate,
			Epochs:       cfg.Blend.Epochs,
		},
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create blender: %w", err)
	}

	// The CLI ships no training data, so the blender stays unfit and the
	// pipeline runs unblended until an embedding process fits it.
	logger.Warn("Blend enabled with no training data; running unblended")
	return blender, nil
}

func marshalBundle(bundle *models.InsightsBundle) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(bundle, "", "  ")
	}
	return json.Marshal(bundle)
}
