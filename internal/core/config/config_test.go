package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"APP_ENV",
	"LOG_LEVEL",
	"RATES_FILE",
	"REFERENCE_FILE",
	"DEFAULT_DESTINATION",
	"DEFAULT_ORIGIN",
	"DEFAULT_CATEGORY",
	"DEFAULT_VALUE",
	"DEFAULT_SHIPPING",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		os.Unsetenv(key)
	}
}

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Data.RatesFile)
	assert.Empty(t, cfg.Data.ReferenceFile)
	assert.Equal(t, "italy", cfg.Defaults.Destination)
	assert.Equal(t, "india", cfg.Defaults.Origin)
	assert.Equal(t, "electronics", cfg.Defaults.Category)
	assert.Equal(t, 50000.0, cfg.Defaults.Value)
	assert.Equal(t, 500.0, cfg.Defaults.Shipping)
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATES_FILE", "/etc/tradecalc/rates.yaml")
	t.Setenv("DEFAULT_DESTINATION", "india")
	t.Setenv("DEFAULT_CATEGORY", "food")
	t.Setenv("DEFAULT_VALUE", "1250.5")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/etc/tradecalc/rates.yaml", cfg.Data.RatesFile)
	assert.Equal(t, "india", cfg.Defaults.Destination)
	assert.Equal(t, "food", cfg.Defaults.Category)
	assert.Equal(t, 1250.5, cfg.Defaults.Value)
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	content := []byte(`
APP_ENV=staging
LOG_LEVEL=warn
DEFAULT_ORIGIN=germany
DEFAULT_SHIPPING=750
`)
	require.NoError(t, os.WriteFile(dir+"/.env", content, 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "germany", cfg.Defaults.Origin)
	assert.Equal(t, 750.0, cfg.Defaults.Shipping)
}

// TestLoad_NegativeDefaults verifies that negative default amounts are rejected.
func TestLoad_NegativeDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEFAULT_VALUE", "-1")

	cfg, err := Load(".")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "must be non-negative")
}

// TestValidateRequired verifies that missing required fields return an error.
func TestValidateRequired(t *testing.T) {
	cfg := AppConfig{
		Defaults: ShipmentDefaults{Destination: "italy", Origin: "india"},
	}

	err := validateRequired(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required configuration: DEFAULT_CATEGORY")

	cfg.Defaults.Category = "food"
	assert.NoError(t, validateRequired(&cfg))
}
