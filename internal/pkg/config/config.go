// Package config reads the process configuration from the environment.
// Every knob has a default that works for local development.
package config

import (
	"os"
	"strings"
	"time"
)

// Server configures cmd/pickup-server.
type Server struct {
	Addr   string
	DBPath string

	// RedisAddr selects the catalog cache backend: set it and the cache is
	// Redis, leave it empty and an in-process cache is used instead.
	RedisAddr string

	CatalogCacheTTL time.Duration
}

func LoadServer() Server {
	return Server{
		Addr:            getEnv("PICKUP_ADDR", ":8080"),
		DBPath:          getEnv("PICKUP_DB_PATH", "./data/pickup.db"),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		CatalogCacheTTL: getEnvDuration("PICKUP_CATALOG_CACHE_TTL", 5*time.Minute),
	}
}

// Client configures the app-side data layer (cmd/pickup-demo).
type Client struct {
	// BaseURL of the pickup API. Empty means no remote is configured:
	// the client runs in offline demo mode — local quotes against the seed
	// catalog and simulated status progression instead of polling.
	BaseURL string

	// Timeout bounds every network call. After it the operation fails
	// with a timeout error rather than hanging.
	Timeout time.Duration

	// CachePath is where the durable order cache lives on disk.
	CachePath string
}

func LoadClient() Client {
	return Client{
		BaseURL:   strings.TrimRight(getEnv("PICKUP_API_URL", ""), "/"),
		Timeout:   getEnvDuration("PICKUP_API_TIMEOUT", 8*time.Second),
		CachePath: getEnv("PICKUP_CACHE_PATH", "./data/orders.json"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
