// Package config provides configuration management for the footy-edge engine.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
)

// CustomValidator wraps the validator with custom validation rules
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new validator with custom validation functions
func NewValidator() *CustomValidator {
	v := validator.New()

	// Register custom validation functions
	_ = v.RegisterValidation("environment", validateEnvironment)
	_ = v.RegisterValidation("loglevel", validateLogLevel)
	_ = v.RegisterValidation("cronexpr", validateCronExpr)

	return &CustomValidator{validator: v}
}

// Validate validates the entire configuration
func Validate(cfg *Config) error {
	cv := NewValidator()
	return cv.Validate(cfg)
}

// Validate validates the configuration using registered validation rules
func (cv *CustomValidator) Validate(cfg *Config) error {
	err := cv.validator.Struct(cfg)
	if err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	// Additional cross-field validations
	if err := validateCrossField(cfg); err != nil {
		return err
	}

	return nil
}

// validateEnvironment validates the environment field
func validateEnvironment(fl validator.FieldLevel) bool {
	env := fl.Field().String()
	switch env {
	case "development", "staging", "production":
		return true
	default:
		return false
	}
}

// validateLogLevel validates the log level field
func validateLogLevel(fl validator.FieldLevel) bool {
	level := fl.Field().String()
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// validateCronExpr validates cron schedule expressions
func validateCronExpr(fl validator.FieldLevel) bool {
	_, err := cron.ParseStandard(fl.Field().String())
	return err == nil
}

// validateCrossField performs cross-field validations
func validateCrossField(cfg *Config) error {
	// Validate stake bounds
	if cfg.Staking.MinStake > cfg.Staking.MaxStake {
		return fmt.Errorf("staking min_stake cannot exceed max_stake")
	}

	// Validate blend weight bounds
	if cfg.Blend.WeightFloor > cfg.Blend.WeightCeiling {
		return fmt.Errorf("blend weight_floor cannot exceed weight_ceiling")
	}

	// Validate risk tier boundaries
	if cfg.Risk.MinConfidence >= cfg.Risk.HighConfidence {
		return fmt.Errorf("risk min_confidence must be below high_confidence")
	}

	// Validate scenario names are unique
	seen := make(map[string]bool, len(cfg.Scenarios))
	for _, scenario := range cfg.Scenarios {
		if seen[scenario.Name] {
			return fmt.Errorf("duplicate scenario name: %s", scenario.Name)
		}
		seen[scenario.Name] = true
	}

	// Validate production environment requirements
	if cfg.IsProduction() {
		if cfg.Simulation.Seed != 0 {
			return fmt.Errorf("production environment must not pin the simulation seed")
		}
		if !cfg.Metrics.Enabled {
			return fmt.Errorf("metrics must be enabled in production")
		}
	}

	return nil
}

// formatValidationErrors formats validation errors into a readable string
func formatValidationErrors(validationErrors validator.ValidationErrors) error {
	var errMsg string
	for _, fieldError := range validationErrors {
		field := fieldError.StructField()
		tag := fieldError.Tag()
		value := fieldError.Value()

		switch tag {
		case "required":
			errMsg += fmt.Sprintf("- Field '%s' is required\n", field)
		case "min", "max":
			errMsg += fmt.Sprintf("- Field '%s' validation failed: %s constraint violated\n", field, tag)
		case "gt", "gte", "lt", "lte":
			errMsg += fmt.Sprintf("- Field '%s' validation failed: numeric constraint %s violated\n", field, tag)
		case "environment":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: development, staging, production\n", field)
		case "loglevel":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: debug, info, warn, error\n", field)
		case "cronexpr":
			errMsg += fmt.Sprintf("- Field '%s' must be a valid cron expression, got '%v'\n", field, value)
		default:
			errMsg += fmt.Sprintf("- Field '%s' failed validation: %s\n", field, tag)
		}
	}
	return fmt.Errorf("configuration validation failed:\n%s", errMsg)
}

// ValidateEnvironment validates environment-specific requirements
func ValidateEnvironment(cfg *Config) error {
	if cfg.IsProduction() {
		if cfg.Simulation.Seed != 0 {
			return fmt.Errorf("production environment must not pin the simulation seed")
		}
		if cfg.Staking.Bankroll > 0 && cfg.Staking.MaxStake > cfg.Staking.Bankroll {
			return fmt.Errorf("production max_stake cannot exceed the bankroll")
		}
	}

	return nil
}
