// Package config loads process-wide settings from environment variables,
// with an optional .env overlay for development. The resulting struct is
// constructed once at startup and passed by reference; there are no
// ambient globals.
package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string

	// DatabaseURL is the Postgres DSN (pgx).
	DatabaseURL string

	// Secret signs bearer tokens (HS256). Minimum 32 characters.
	Secret string

	// BasePath is the route prefix for the auth endpoints.
	BasePath string

	// TokenTTL is the validity window of issued tokens.
	TokenTTL time.Duration

	// CORSOrigins is a comma-separated list of allowed origins.
	CORSOrigins string
}

var (
	ErrDatabaseURLRequired = errors.New("DATABASE_URL is required")
	ErrSecretRequired      = errors.New("AUTH_SECRET is required")
)

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if present.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set env vars directly
	_ = godotenv.Load()

	cfg := &Config{
		Addr:        getEnv("ADDR", ":8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		Secret:      getEnv("AUTH_SECRET", ""),
		BasePath:    getEnv("BASE_PATH", "/api"),
		TokenTTL:    getEnvAsDuration("TOKEN_TTL", 24*time.Hour),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
	}

	if cfg.DatabaseURL == "" {
		return nil, ErrDatabaseURLRequired
	}
	if cfg.Secret == "" {
		return nil, ErrSecretRequired
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
