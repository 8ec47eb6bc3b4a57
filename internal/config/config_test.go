package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests use t.Setenv and so cannot run in parallel.

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "DB_URL", "LOG_LEVEL", "RESOLVE_THRESHOLD", "CATEGORY_KEYWORDS_FILE",
		"FETCH_TIMEOUT", "FETCH_MAX_RETRIES", "FETCH_RATE_LIMIT", "FETCH_USER_AGENT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 1.0, cfg.ResolveThreshold)
	assert.Equal(t, 15*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 2, cfg.FetchMaxRetries)
	assert.Equal(t, 2.0, cfg.FetchRateLimit)
	assert.Empty(t, cfg.CategoryKeywordsFile)
	assert.EqualError(t, cfg.Validate(), "DB_URL is required")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_URL", "postgres://localhost/household")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RESOLVE_THRESHOLD", "0.85")
	t.Setenv("FETCH_TIMEOUT", "3s")
	t.Setenv("FETCH_MAX_RETRIES", "5")
	t.Setenv("FETCH_RATE_LIMIT", "0.5")
	t.Setenv("FETCH_USER_AGENT", "test-agent")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 0.85, cfg.ResolveThreshold)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 5, cfg.FetchMaxRetries)
	assert.Equal(t, 0.5, cfg.FetchRateLimit)
	assert.Equal(t, "test-agent", cfg.FetchUserAgent)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("RESOLVE_THRESHOLD", "1.5")
	t.Setenv("FETCH_TIMEOUT", "soon")
	t.Setenv("FETCH_MAX_RETRIES", "many")
	t.Setenv("FETCH_RATE_LIMIT", "2")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
	assert.Contains(t, err.Error(), "RESOLVE_THRESHOLD")
	assert.Contains(t, err.Error(), "FETCH_TIMEOUT")
	assert.Contains(t, err.Error(), "FETCH_MAX_RETRIES")
}
