package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.True(t, cfg.App.SeedDemoData)
	assert.Empty(t, cfg.App.ReferenceDate)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEED_DEMO_DATA", "false")
	t.Setenv("REFERENCE_DATE", "2025-09-20")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.False(t, cfg.App.SeedDemoData)
	assert.Equal(t, "2025-09-20", cfg.App.ReferenceDate)
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "-1")

	_, err := Load()
	assert.Error(t, err)
}

func TestGetSafeAfterLoad(t *testing.T) {
	_, err := Load()
	require.NoError(t, err)

	cfg, ok := GetSafe()
	require.True(t, ok)
	assert.NotNil(t, cfg)
}
