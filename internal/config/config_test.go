package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "gemini-1.5-flash", cfg.GeminiModel)
	assert.Equal(t, 30, cfg.GenerationPerHr)
	assert.Equal(t, 45, cfg.ClassifyTimeoutS)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("GEMINI_MODEL", "gemini-1.5-pro")
	t.Setenv("GENERATION_RATE_PER_HOUR", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "gemini-1.5-pro", cfg.GeminiModel)
	assert.Equal(t, 5, cfg.GenerationPerHr)
}

func TestLoadIgnoresInvalidInt(t *testing.T) {
	t.Setenv("GENERATION_RATE_PER_HOUR", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.GenerationPerHr)
}
