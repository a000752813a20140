package config

import (
	"os"
	"strconv"
	"strings"

	"goscore/internal/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config represents the complete application configuration
type Config struct {
	Data      DataConfig
	Profiling ProfilingConfig
	Runtime   RuntimeConfig
}

// DataConfig holds input and output file settings
type DataConfig struct {
	DataFile    string
	SummaryFile string
	OutputFile  string
	Sheet       string `validate:"required"`
}

// ProfilingConfig holds column type inference and aggregate settings
type ProfilingConfig struct {
	DeriveAggregates bool
	NumericThreshold float64 `validate:"gt=0,lte=1"`
	BooleanThreshold float64 `validate:"gt=0,lte=1"`
}

// RuntimeConfig holds execution settings
type RuntimeConfig struct {
	Workers  int    `validate:"min=1,max=64"`
	LogLevel string `validate:"oneof=ERROR WARN INFO DEBUG TRACE"`
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Data:      *loadDataConfig(),
		Profiling: *loadProfilingConfig(),
		Runtime:   *loadRuntimeConfig(),
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// Validate checks field constraints. Call it again after applying overrides.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.WithCode(errors.CodeConfigInvalid, err)
	}
	return nil
}

func loadDataConfig() *DataConfig {
	return &DataConfig{
		DataFile:    getEnvOrDefault("GOSCORE_DATA_FILE", ""),
		SummaryFile: getEnvOrDefault("GOSCORE_SUMMARY_FILE", ""),
		OutputFile:  getEnvOrDefault("GOSCORE_OUTPUT_FILE", ""),
		Sheet:       getEnvOrDefault("GOSCORE_SHEET", "Sheet1"),
	}
}

func loadProfilingConfig() *ProfilingConfig {
	return &ProfilingConfig{
		DeriveAggregates: getEnvBoolOrDefault("GOSCORE_DERIVE_AGGREGATES", true),
		NumericThreshold: getEnvFloatOrDefault("GOSCORE_NUMERIC_THRESHOLD", 0.8),
		BooleanThreshold: getEnvFloatOrDefault("GOSCORE_BOOLEAN_THRESHOLD", 0.9),
	}
}

func loadRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Workers:  getEnvIntOrDefault("GOSCORE_WORKERS", 4),
		LogLevel: strings.ToUpper(getEnvOrDefault("GOSCORE_LOG_LEVEL", "INFO")),
	}
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
