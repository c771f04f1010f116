package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"codeberg.org/reclaim/server/internal/suggest"
	"github.com/joho/godotenv"
)

var defaultCORSOrigins = []string{"http://localhost:3000", "http://localhost:5173"}

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	databaseURL := os.Getenv("DATABASE_URL")
	jwtSecret := os.Getenv("JWT_SECRET")

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	suggestions, err := loadSuggestionOptions()
	if err != nil {
		return nil, err
	}

	return &Config{
		DatabaseURL:        databaseURL,
		JWTSecret:          jwtSecret,
		Environment:        getEnv("ENVIRONMENT", "development"),
		Port:               getEnv("PORT", "8080"),
		RedisURL:           os.Getenv("REDIS_URL"),
		RateLimit:          os.Getenv("RATE_LIMIT"),
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS"), defaultCORSOrigins),
		Suggestions:        suggestions,
	}, nil
}

func loadSuggestionOptions() (suggest.Options, error) {
	opts := suggest.DefaultOptions()

	if v := os.Getenv("SUGGESTION_THRESHOLD"); v != "" {
		threshold, err := strconv.ParseFloat(v, 64)
		if err != nil || threshold <= 0 || threshold >= 1 {
			return opts, fmt.Errorf("SUGGESTION_THRESHOLD must be a number in (0, 1), got %q", v)
		}

		opts.Threshold = threshold
	}

	if v := os.Getenv("SUGGESTION_LIMIT"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			return opts, fmt.Errorf("SUGGESTION_LIMIT must be a positive integer, got %q", v)
		}

		opts.Limit = limit
	}

	if v := os.Getenv("SUGGESTION_MAX_FEATURES"); v != "" {
		maxFeatures, err := strconv.Atoi(v)
		if err != nil || maxFeatures <= 0 {
			return opts, fmt.Errorf("SUGGESTION_MAX_FEATURES must be a positive integer, got %q", v)
		}

		opts.MaxFeatures = maxFeatures
	}

	return opts, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

// splits a comma separated list, dropping blanks
func splitList(raw string, fallback []string) []string {
	var out []string

	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	if len(out) == 0 {
		return fallback
	}

	return out
}
