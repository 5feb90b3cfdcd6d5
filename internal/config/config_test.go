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

	assert.Equal(t, "http://localhost:8000", cfg.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.RetryShort)
	assert.Equal(t, 5*time.Second, cfg.RetryLong)
	assert.Equal(t, 1500*time.Millisecond, cfg.AdvanceShort)
	assert.Equal(t, 4*time.Second, cfg.AdvanceLong)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("QUIZZY_BASE_URL", "http://quiz.internal:9090")
	t.Setenv("QUIZZY_RETRY_SHORT", "250ms")
	t.Setenv("QUIZZY_ADVANCE_LONG", "10s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://quiz.internal:9090", cfg.BaseURL)
	assert.Equal(t, 250*time.Millisecond, cfg.RetryShort)
	assert.Equal(t, 10*time.Second, cfg.AdvanceLong)
	// Untouched knobs keep their defaults.
	assert.Equal(t, 5*time.Second, cfg.RetryLong)
}

func TestLoadRejectsMalformedDuration(t *testing.T) {
	t.Setenv("QUIZZY_RETRY_SHORT", "soon")

	_, err := Load()
	require.Error(t, err)
}
