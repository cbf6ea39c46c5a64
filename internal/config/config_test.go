package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE_PATH", "")
	t.Setenv("SEED_ACCOUNTS", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("APP_ENV", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "accounts.csv", cfg.StorePath)
	assert.Equal(t, 20, cfg.SeedAccounts)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "production", cfg.AppEnv)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_PATH", "/var/lib/minibank/accounts.csv")
	t.Setenv("SEED_ACCOUNTS", "5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/minibank/accounts.csv", cfg.StorePath)
	assert.Equal(t, 5, cfg.SeedAccounts)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("negative seed count", func(t *testing.T) {
		t.Setenv("SEED_ACCOUNTS", "-1")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("non-numeric seed count", func(t *testing.T) {
		t.Setenv("SEED_ACCOUNTS", "twenty")
		_, err := Load()
		require.Error(t, err)
	})
}
