package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration values, loaded once at startup and
// injected into the components that need them.
type Config struct {
	Port           string
	MongoURI       string
	MongoDBName    string
	JWTSecret      string
	RedisURL       string
	SearchCacheTTL time.Duration
	RateLimitRPS   float64
}

// NewConfig creates a new Config instance, loading values from environment
// variables.
func NewConfig() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		MongoURI:       getEnv("MONGODB_URI", ""),
		MongoDBName:    getEnv("MONGODB_DB_NAME", "melodix"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		RedisURL:       getEnv("REDIS_URL", ""),
		SearchCacheTTL: time.Second * time.Duration(getEnvAsInt("SEARCH_CACHE_TTL_SECONDS", 60)),
		RateLimitRPS:   float64(getEnvAsInt("RATE_LIMIT_RPS", 10)),
	}
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a
// default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
