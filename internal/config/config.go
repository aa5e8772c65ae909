// Package config reads the process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the backend.
type Config struct {
	// Path of the SQLite database file
	DBFile string

	// Base URL the API is reachable at, used to construct links
	APIURL string

	// Secret the bearer tokens are signed with
	TokenSecret string

	// Lifetime of issued bearer tokens
	TokenLifetime time.Duration
}

// Load reads the configuration from environment variables.
//
// A .env file in the working directory is loaded first if it exists.
func Load() (*Config, error) {
	// Ignore the error, a missing .env file is fine
	_ = godotenv.Load()

	cfg := &Config{
		DBFile:        getEnv("DB_FILE", "data/backend.db"),
		APIURL:        getEnv("API_URL", "http://localhost:8080"),
		TokenSecret:   getEnv("TOKEN_SECRET", ""),
		TokenLifetime: 24 * time.Hour,
	}

	if lifetime, ok := os.LookupEnv("TOKEN_LIFETIME"); ok {
		parsed, err := time.ParseDuration(lifetime)
		if err != nil {
			return nil, fmt.Errorf("TOKEN_LIFETIME is not a valid duration: %w", err)
		}
		cfg.TokenLifetime = parsed
	}

	if cfg.TokenSecret == "" {
		return nil, fmt.Errorf("TOKEN_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
