package config

import (
	"testing"

	"codeberg.org/reclaim/server/internal/suggest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/reclaim")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoadEnvironmentVariables_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("PORT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("SUGGESTION_THRESHOLD", "")
	t.Setenv("SUGGESTION_LIMIT", "")
	t.Setenv("SUGGESTION_MAX_FEATURES", "")

	cfg, err := LoadEnvironmentVariables()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, defaultCORSOrigins, cfg.CORSAllowedOrigins)
	assert.Equal(t, suggest.DefaultOptions(), cfg.Suggestions)
}

func TestLoadEnvironmentVariables_Required(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "secret")

	_, err := LoadEnvironmentVariables()
	assert.ErrorContains(t, err, "DATABASE_URL")

	t.Setenv("DATABASE_URL", "postgres://localhost/reclaim")
	t.Setenv("JWT_SECRET", "")

	_, err = LoadEnvironmentVariables()
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestLoadEnvironmentVariables_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("SUGGESTION_THRESHOLD", "0.25")
	t.Setenv("SUGGESTION_LIMIT", "5")
	t.Setenv("SUGGESTION_MAX_FEATURES", "200")

	cfg, err := LoadEnvironmentVariables()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, suggest.Options{Threshold: 0.25, Limit: 5, MaxFeatures: 200}, cfg.Suggestions)
}

func TestLoadEnvironmentVariables_BadSuggestionSettings(t *testing.T) {
	tests := []struct{ key, value string }{
		{"SUGGESTION_THRESHOLD", "high"},
		{"SUGGESTION_THRESHOLD", "1.5"},
		{"SUGGESTION_LIMIT", "0"},
		{"SUGGESTION_MAX_FEATURES", "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.value)

			_, err := LoadEnvironmentVariables()
			assert.ErrorContains(t, err, tt.key)
		})
	}
}

func TestParseSeedFlags(t *testing.T) {
	assert.True(t, ParseSeedFlags(nil).Categories)
	assert.False(t, ParseSeedFlags([]string{"-categories=false"}).Categories)
}
