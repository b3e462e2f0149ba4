package config

import (
	"os"
	"strings"
)

// Environment represents the application environment
type Environment string

const (
	// Development environment - verbose logging
	Development Environment = "development"
	// Production environment - quiet logging
	Production Environment = "production"
)

// EnvConfig holds environment-specific configuration
type EnvConfig struct {
	// Environment name (development, production)
	Env Environment

	// Feature flags
	Debug bool

	// Environment-specific values
	LogLevel string

	// Overrides for colorkit.json
	Palette     string // COLORKIT_PALETTE
	Format      string // COLORKIT_FORMAT
	MetricsFile string // COLORKIT_METRICS_FILE
}

// LoadEnv loads environment configuration from environment variables
func LoadEnv() *EnvConfig {
	env := getEnvOrDefault("APP_ENV", "production")

	cfg := &EnvConfig{
		Env:      Environment(strings.ToLower(env)),
		LogLevel: strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
	}

	switch cfg.Env {
	case Development:
		cfg.Debug = getEnvOrDefault("DEBUG", "true") == "true"
		if cfg.LogLevel == "info" {
			cfg.LogLevel = "debug" // Dev default
		}
	default:
		cfg.Env = Production // Normalize unknown envs to production
		cfg.Debug = getEnvOrDefault("DEBUG", "false") == "true"
	}

	cfg.Palette = os.Getenv("COLORKIT_PALETTE")
	cfg.Format = os.Getenv("COLORKIT_FORMAT")
	cfg.MetricsFile = os.Getenv("COLORKIT_METRICS_FILE")

	return cfg
}

// IsDevelopment returns true if running in development mode
func (e *EnvConfig) IsDevelopment() bool {
	return e.Env == Development
}

// IsProduction returns true if running in production mode
func (e *EnvConfig) IsProduction() bool {
	return e.Env == Production
}

// Verbose reports whether debug output is enabled.
func (e *EnvConfig) Verbose() bool {
	return e.Debug || e.LogLevel == "debug"
}

// String returns the environment name
func (e Environment) String() string {
	return string(e)
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
