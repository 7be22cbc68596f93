package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	for _, key := range []string{"PORT", "DATABASE_URL", "SESSION_TTL",
		"MISTRAL_BASE_URL", "MISTRAL_MODEL", "MISTRAL_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "tripmark.db", cfg.DatabaseURL)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "https://api.mistral.ai", cfg.MistralBaseURL)
	assert.Equal(t, "mistral-medium", cfg.MistralModel)
	assert.Equal(t, 15*time.Second, cfg.MistralTimeout)
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsBadDurations(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	t.Setenv("MISTRAL_TIMEOUT", "not-a-duration")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("MISTRAL_TIMEOUT", "-5s")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("MISTRAL_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 5*time.Second, cfg.MistralTimeout)
}
