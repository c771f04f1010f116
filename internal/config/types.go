package config

import "codeberg.org/reclaim/server/internal/suggest"

type Config struct {
	DatabaseURL        string
	JWTSecret          string
	Environment        string
	Port               string
	RedisURL           string
	RateLimit          string
	CORSAllowedOrigins []string
	Suggestions        suggest.Options
}

// flags for the seed command
type Flags struct {
	Categories bool
}
