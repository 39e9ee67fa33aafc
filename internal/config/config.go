// Package config handles loading application configuration from environment
// variables. All config is centralized here so no other package reads env
// vars directly. Sensible defaults are provided for development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration. Populated from environment
// variables at startup. Passed to other packages via dependency injection.
type Config struct {
	// Env is the runtime environment: "development" or "production".
	Env string

	// Port is the HTTP listen port (default: 8080).
	Port int

	// LogLevel controls log verbosity: "debug", "info", "warn", "error".
	LogLevel string

	// CORSOrigins is the comma-separated list of origins allowed to call
	// the API cross-origin (the mobile dev client, a web build, etc.).
	CORSOrigins []string

	// Redis holds Redis connection settings.
	Redis RedisConfig

	// Storage holds key-value storage settings.
	Storage StorageConfig

	// Auth holds authentication-related settings.
	Auth AuthConfig

	// Assistant holds generative-language assistant settings.
	Assistant AssistantConfig
}

// RedisConfig holds Redis connection parameters.
type RedisConfig struct {
	// URL is the Redis connection URL (e.g., "redis://localhost:6379").
	URL string
}

// StorageConfig holds settings for the key-value persistence layer.
type StorageConfig struct {
	// Namespace prefixes every storage key. The default matches the key
	// layout of the original mobile client ("audit_demo:drafts" etc.) so
	// existing data imports cleanly.
	Namespace string
}

// AuthConfig holds authentication settings.
type AuthConfig struct {
	// SecretKey gates production startup: a deployment must set it
	// deliberately before accepting registrations.
	SecretKey string

	// SessionTTL is how long sessions last before expiring.
	SessionTTL time.Duration
}

// AssistantConfig holds settings for the generative-language assistant.
type AssistantConfig struct {
	// APIKey is the generative-language API key. Empty disables the
	// assistant (every chat returns the offline message).
	APIKey string

	// APIURL is the generateContent endpoint. Overridable for tests and
	// for pointing at a different model.
	APIURL string

	// MinInterval is the minimum delay enforced between consecutive
	// upstream calls.
	MinInterval time.Duration

	// MaxCalls caps the total upstream calls per process lifetime.
	MaxCalls int
}

// Load reads configuration from environment variables with sensible defaults.
// Returns an error if required variables are missing.
func Load() (*Config, error) {
	cfg := &Config{
		Env:         getEnv("ENV", "development"),
		Port:        getEnvInt("PORT", 8080),
		LogLevel:    getEnv("LOG_LEVEL", "debug"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:8081")),

		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", "redis://localhost:6379"),
		},

		Storage: StorageConfig{
			Namespace: getEnv("STORAGE_NAMESPACE", "audit_demo"),
		},

		Auth: AuthConfig{
			SecretKey:  getEnv("SECRET_KEY", ""),
			SessionTTL: getEnvDuration("SESSION_TTL", 720*time.Hour),
		},

		Assistant: AssistantConfig{
			APIKey:      getEnv("GEMINI_API_KEY", ""),
			APIURL:      getEnv("GEMINI_API_URL", "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"),
			MinInterval: getEnvDuration("ASSISTANT_MIN_INTERVAL", time.Second),
			MaxCalls:    getEnvInt("ASSISTANT_MAX_CALLS", 50),
		},
	}

	// Validate required fields in production. Case-insensitive check catches
	// common variants like "Production", "prod", etc.
	envLower := strings.ToLower(cfg.Env)
	if envLower == "production" || envLower == "prod" {
		if cfg.Auth.SecretKey == "" {
			return nil, fmt.Errorf("SECRET_KEY is required in production")
		}
		if len(cfg.Auth.SecretKey) < 32 {
			return nil, fmt.Errorf("SECRET_KEY must be at least 32 characters in production")
		}
	}

	// Provide a dev-only default secret so local dev works without .env.
	if cfg.Auth.SecretKey == "" {
		cfg.Auth.SecretKey = "dev-secret-key-do-not-use-in-production!!"
	}

	if cfg.Storage.Namespace == "" {
		return nil, fmt.Errorf("STORAGE_NAMESPACE must not be empty")
	}
	if cfg.Assistant.MaxCalls < 0 {
		return nil, fmt.Errorf("ASSISTANT_MAX_CALLS must not be negative")
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.Env)
	return env == "development" || env == "dev"
}

// splitCSV splits a comma-separated env value into trimmed, non-empty parts.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// --- Helper functions for reading environment variables ---

// getEnv reads a string env var or returns the default.
func getEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return defaultVal
}

// getEnvInt reads an integer env var or returns the default.
func getEnvInt(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// getEnvDuration reads a duration env var (e.g., "720h") or returns the default.
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
