package config

import (
	"testing"

	"goscore/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GOSCORE_DATA_FILE", "")
	t.Setenv("GOSCORE_WORKERS", "")
	t.Setenv("GOSCORE_LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", cfg.Data.Sheet)
	assert.Equal(t, 4, cfg.Runtime.Workers)
	assert.True(t, cfg.Profiling.DeriveAggregates)
	assert.Equal(t, 0.8, cfg.Profiling.NumericThreshold)
	assert.Equal(t, "INFO", cfg.Runtime.LogLevel)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("GOSCORE_DATA_FILE", "rows.xlsx")
	t.Setenv("GOSCORE_WORKERS", "8")
	t.Setenv("GOSCORE_DERIVE_AGGREGATES", "false")
	t.Setenv("GOSCORE_NUMERIC_THRESHOLD", "0.95")
	t.Setenv("GOSCORE_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "rows.xlsx", cfg.Data.DataFile)
	assert.Equal(t, 8, cfg.Runtime.Workers)
	assert.False(t, cfg.Profiling.DeriveAggregates)
	assert.Equal(t, 0.95, cfg.Profiling.NumericThreshold)
	assert.Equal(t, "DEBUG", cfg.Runtime.LogLevel)
}

func TestLoad_RejectsOutOfRange(t *testing.T) {
	t.Setenv("GOSCORE_WORKERS", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))

	t.Setenv("GOSCORE_WORKERS", "")
	t.Setenv("GOSCORE_LOG_LEVEL", "loud")
	_, err = Load()
	assert.Error(t, err)
}

func TestValidate_AfterOverride(t *testing.T) {
	t.Setenv("GOSCORE_WORKERS", "")
	t.Setenv("GOSCORE_LOG_LEVEL", "")
	cfg, err := Load()
	require.NoError(t, err)

	cfg.Profiling.BooleanThreshold = 1.5
	assert.Error(t, cfg.Validate())
}
