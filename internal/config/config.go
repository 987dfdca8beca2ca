// Package config provides configuration management for the footy-edge engine.
package config

import (
	"time"
)

// Config represents the complete engine configuration
type Config struct {
	App        AppConfig        `mapstructure:"app" validate:"required"`
	Staking    StakingConfig    `mapstructure:"staking" validate:"required"`
	Value      ValueConfig      `mapstructure:"value" validate:"required"`
	Blend      BlendConfig      `mapstructure:"blend"`
	Simulation SimulationConfig `mapstructure:"simulation" validate:"required"`
	Risk       RiskConfig       `mapstructure:"risk" validate:"required"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Registry   RegistryConfig   `mapstructure:"registry"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Scenarios  []ScenarioConfig `mapstructure:"scenarios" validate:"omitempty,dive"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// StakingConfig represents bankroll and stake sizing configuration
type StakingConfig struct {
	Bankroll      float64 `mapstructure:"bankroll" validate:"required,gt=0"`
	KellyFraction float64 `mapstructure:"kelly_fraction" validate:"required,gt=0,lte=1"`
	MinStake      float64 `mapstructure:"min_stake" validate:"gte=0"`
	MaxStake      float64 `mapstructure:"max_stake" validate:"required,gt=0"`
}

// ValueConfig represents value bet detection configuration
type ValueConfig struct {
	MinEdgePercent   float64 `mapstructure:"min_edge_percent" validate:"gte=0"`
	DefaultLiquidity float64 `mapstructure:"default_liquidity" validate:"gte=0,lte=1"`
}

// BlendConfig represents SOTA blend configuration
type BlendConfig struct {
	Enabled         bool    `mapstructure:"enabled"`
	WeightFloor     float64 `mapstructure:"weight_floor" validate:"gte=0,lte=1"`
	WeightCeiling   float64 `mapstructure:"weight_ceiling" validate:"gte=0,lte=1"`
	ValidationSplit float64 `mapstructure:"validation_split" validate:"gte=0,lt=1"`
	LearningRate    float64 `mapstructure:"learning_rate" validate:"gte=0"`
	Epochs          int     `mapstructure:"epochs" validate:"gte=0"`
}

// SimulationConfig represents Monte Carlo simulation configuration
type SimulationConfig struct {
	Trials   int   `mapstructure:"trials" validate:"required,gt=0"`
	MaxGoals int   `mapstructure:"max_goals" validate:"required,gt=0,lte=25"`
	Seed     int64 `mapstructure:"seed"`
}

// RiskConfig represents risk tier boundary configuration
type RiskConfig struct {
	MinConfidence    float64 `mapstructure:"min_confidence" validate:"gte=0,lte=1"`
	HighConfidence   float64 `mapstructure:"high_confidence" validate:"gte=0,lte=1"`
	HighQualityScore float64 `mapstructure:"high_quality_score" validate:"gte=0,lte=100"`
}

// CacheConfig represents insights bundle cache configuration
type CacheConfig struct {
	Enabled        bool `mapstructure:"enabled"`
	TTLSeconds     int  `mapstructure:"ttl_seconds" validate:"omitempty,gt=0"`
	CleanupSeconds int  `mapstructure:"cleanup_seconds" validate:"omitempty,gt=0"`
}

// RegistryConfig represents model registry refresh configuration
type RegistryConfig struct {
	RefreshSchedule string `mapstructure:"refresh_schedule" validate:"omitempty,cronexpr"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Path    string `mapstructure:"path"`
}

// ScenarioConfig represents a named what-if scenario preset
type ScenarioConfig struct {
	Name           string  `mapstructure:"name" validate:"required"`
	HomeMultiplier float64 `mapstructure:"home_multiplier" validate:"gte=0"`
	HomeDelta      float64 `mapstructure:"home_delta"`
	AwayMultiplier float64 `mapstructure:"away_multiplier" validate:"gte=0"`
	AwayDelta      float64 `mapstructure:"away_delta"`
}

// IsDevelopment checks if the engine is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsStaging checks if the engine is running in staging mode
func (c *Config) IsStaging() bool {
	return c.App.Environment == "staging"
}

// IsProduction checks if the engine is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// CacheTTL returns the bundle cache TTL as a duration
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}

// CacheCleanupInterval returns the bundle cache cleanup interval as a duration
func (c *Config) CacheCleanupInterval() time.Duration {
	return time.Duration(c.Cache.CleanupSeconds) * time.Second
}
