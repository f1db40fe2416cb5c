package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Environment
	Environment string

	// External data sources
	ProfileServiceURL string
	LoanServiceURL    string
	HTTPTimeout       time.Duration

	// Cache (empty RedisAddr disables caching)
	RedisAddr     string
	RedisPassword string
	CacheTTL      time.Duration

	// Batch analysis
	AnalysisWorkers int

	// Sentry
	SentryDSN string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Environment:       getEnv("ENVIRONMENT", "development"),
		ProfileServiceURL: getEnv("PROFILE_SERVICE_URL", "http://user-service:3000"),
		LoanServiceURL:    getEnv("LOAN_SERVICE_URL", "http://loan-service:3001"),
		HTTPTimeout:       getEnvAsDuration("HTTP_TIMEOUT_SECONDS", 10*time.Second),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		CacheTTL:          getEnvAsDuration("CACHE_TTL_SECONDS", 5*time.Minute),
		AnalysisWorkers:   getEnvAsInt("ANALYSIS_WORKERS", 5),
		SentryDSN:         getEnv("SENTRY_DSN", ""),
	}

	// Validate required configuration
	if cfg.ProfileServiceURL == "" {
		return nil, fmt.Errorf("PROFILE_SERVICE_URL is required")
	}
	if cfg.LoanServiceURL == "" {
		return nil, fmt.Errorf("LOAN_SERVICE_URL is required")
	}
	if cfg.AnalysisWorkers < 1 {
		cfg.AnalysisWorkers = 1
	}

	// Trailing slashes break URL joining in the clients
	cfg.ProfileServiceURL = strings.TrimRight(cfg.ProfileServiceURL, "/")
	cfg.LoanServiceURL = strings.TrimRight(cfg.LoanServiceURL, "/")

	return cfg, nil
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt reads an environment variable as integer
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration reads an environment variable holding a number of seconds
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	seconds, err := strconv.Atoi(valueStr)
	if err != nil || seconds <= 0 {
		return defaultValue
	}
	return time.Duration(seconds) * time.Second
}
