package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	// Server
	Port         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CookieSecure bool

	// Processing backend
	BackendURL       string
	BackendPublicURL string
	BackendTimeout   time.Duration
	BackendRateLimit float64

	// Snapshot store; an empty RedisURI keeps snapshots in memory
	RedisURI    string
	SnapshotTTL time.Duration

	// Sessions
	SessionTTL time.Duration

	// Ad Creatives page
	AdCreativesDefaultPath string
}

// NewConfig creates a new configuration from environment variables
func NewConfig() *Config {
	readTimeoutSec, _ := strconv.Atoi(getEnv("READ_TIMEOUT", "5"))
	writeTimeoutSec, _ := strconv.Atoi(getEnv("WRITE_TIMEOUT", "10"))
	backendTimeoutSec, _ := strconv.Atoi(getEnv("BACKEND_TIMEOUT", "600"))
	backendRateLimit, _ := strconv.ParseFloat(getEnv("BACKEND_RATE_LIMIT", "2"), 64)
	snapshotTTLMin, _ := strconv.Atoi(getEnv("SNAPSHOT_TTL_MINUTES", "60"))
	sessionTTLMin, _ := strconv.Atoi(getEnv("SESSION_TTL_MINUTES", "30"))
	cookieSecure, _ := strconv.ParseBool(getEnv("COOKIE_SECURE", "false"))

	backendURL := getEnv("BACKEND_URL", "http://localhost:8000")

	return &Config{
		// Server
		Port:         getEnv("PORT", "3000"),
		Environment:  getEnv("ENVIRONMENT", "development"),
		ReadTimeout:  time.Duration(readTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(writeTimeoutSec) * time.Second,
		CookieSecure: cookieSecure,

		// Processing backend
		BackendURL:       backendURL,
		BackendPublicURL: getEnv("BACKEND_PUBLIC_URL", backendURL),
		BackendTimeout:   time.Duration(backendTimeoutSec) * time.Second,
		BackendRateLimit: backendRateLimit,

		// Snapshot store
		RedisURI:    os.Getenv("REDIS_URI"),
		SnapshotTTL: time.Duration(snapshotTTLMin) * time.Minute,

		// Sessions
		SessionTTL: time.Duration(sessionTTLMin) * time.Minute,

		// Ad Creatives page
		AdCreativesDefaultPath: os.Getenv("AD_CREATIVES_DEFAULT_PATH"),
	}
}

// IsProduction reports whether the app runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
