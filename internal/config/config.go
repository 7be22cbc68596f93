package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultPort           = "8080"
	defaultDatabaseURL    = "tripmark.db"
	defaultSessionTTL     = "24h"
	defaultMistralBaseURL = "https://api.mistral.ai"
	defaultMistralModel   = "mistral-medium"
	defaultMistralTimeout = "15s"
)

type Config struct {
	Port        string
	DatabaseURL string

	JWTSecret  string
	SessionTTL time.Duration

	MistralAPIKey  string
	MistralBaseURL string
	MistralModel   string
	MistralTimeout time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", defaultPort),
		DatabaseURL:    getEnv("DATABASE_URL", defaultDatabaseURL),
		JWTSecret:      strings.TrimSpace(os.Getenv("JWT_SECRET")),
		MistralAPIKey:  strings.TrimSpace(os.Getenv("MISTRAL_API_KEY")),
		MistralBaseURL: getEnv("MISTRAL_BASE_URL", defaultMistralBaseURL),
		MistralModel:   getEnv("MISTRAL_MODEL", defaultMistralModel),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	var err error
	cfg.SessionTTL, err = parseDurationEnv("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, err
	}
	cfg.MistralTimeout, err = parseDurationEnv("MISTRAL_TIMEOUT", defaultMistralTimeout)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %q", key, raw)
	}
	return d, nil
}
