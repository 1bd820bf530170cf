package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.Server.Addr())
	assert.Equal(t, "/metrics", cfg.Server.MetricsPath)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.False(t, cfg.Game.ChainLevelUps)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GAME_CHAIN_LEVEL_UPS", "true")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr())
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Game.ChainLevelUps)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("GAME_CHAIN_LEVEL_UPS", "maybe")
	_, err := Load()
	assert.Error(t, err)
}
