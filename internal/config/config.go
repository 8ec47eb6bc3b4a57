// Package config reads the household service configuration from the
// environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/mwhite7112/woodpantry-household/internal/logging"
)

// Config holds all configuration for the household service.
type Config struct {
	// Server settings
	Port     string
	LogLevel slog.Level

	// Database settings
	DatabaseURL string

	// Ingredient dictionary
	ResolveThreshold     float64
	CategoryKeywordsFile string

	// Recipe page fetching
	FetchTimeout    time.Duration
	FetchMaxRetries int
	FetchRateLimit  float64
	FetchUserAgent  string
}

// Load reads configuration from environment variables with sensible defaults.
// Every malformed value is reported in the returned error.
func Load() (*Config, error) {
	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	cfg := &Config{
		Port:                 getEnv("PORT", "8080"),
		DatabaseURL:          getEnv("DB_URL", ""),
		CategoryKeywordsFile: getEnv("CATEGORY_KEYWORDS_FILE", ""),
		FetchUserAgent:       getEnv("FETCH_USER_AGENT", ""),
	}

	var err error
	cfg.LogLevel, err = logging.ParseLevel(os.Getenv("LOG_LEVEL"))
	collect(err)
	cfg.ResolveThreshold, err = getEnvFloat("RESOLVE_THRESHOLD", 1.0)
	collect(err)
	cfg.FetchTimeout, err = getEnvDuration("FETCH_TIMEOUT", 15*time.Second)
	collect(err)
	cfg.FetchMaxRetries, err = getEnvInt("FETCH_MAX_RETRIES", 2)
	collect(err)
	cfg.FetchRateLimit, err = getEnvFloat("FETCH_RATE_LIMIT", 2)
	collect(err)

	if cfg.ResolveThreshold < 0 || cfg.ResolveThreshold > 1 {
		errs = append(errs, fmt.Errorf("RESOLVE_THRESHOLD must be between 0 and 1, got %v", cfg.ResolveThreshold))
	}
	if cfg.FetchRateLimit <= 0 {
		errs = append(errs, fmt.Errorf("FETCH_RATE_LIMIT must be positive, got %v", cfg.FetchRateLimit))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DB_URL is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}
