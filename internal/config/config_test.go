package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk_test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8503", cfg.ListenAddr)
	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.GroqBaseURL)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.Model)
	assert.InDelta(t, 0.35, cfg.Temperature, 1e-9)
	assert.Equal(t, 1200, cfg.MaxTokens)
	assert.Equal(t, 60*time.Second, cfg.Timeout)
}

func TestLoad_MissingAPIKeyFails(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GROQ_API_KEY")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("GROQ_MODEL", "llama-3.3-70b-versatile")
	t.Setenv("GROQ_TEMPERATURE", "0.1")
	t.Setenv("LISTEN_ADDR", ":9000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.Model)
	assert.InDelta(t, 0.1, cfg.Temperature, 1e-9)
	assert.Equal(t, ":9000", cfg.ListenAddr)
}

func TestLoad_RejectsBadRanges(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("GROQ_TEMPERATURE", "1.5")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("GROQ_TEMPERATURE", "0.3")
	t.Setenv("GROQ_MAX_TOKENS", "0")
	_, err = Load()
	assert.Error(t, err)
}
