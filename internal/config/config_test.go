package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8085", cfg.Server.Addr())
	assert.Equal(t, 10*time.Second, cfg.DataAPI.Timeout)
	assert.Equal(t, 15*time.Second, cfg.Pricer.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("DESKD_SERVER_PORT", "9090")
	t.Setenv("DESKD_LOG_LEVEL", "debug")
	t.Setenv("DESKD_DATA_API_BASE_URL", "http://data.internal:1337")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "http://data.internal:1337", cfg.DataAPI.BaseURL)
}
