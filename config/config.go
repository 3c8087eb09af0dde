// Package config loads runtime settings from the environment, optionally
// seeded from .env files.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/orienteer/grid"
	"github.com/katalvlaran/orienteer/pathfind"
)

// ErrInvalidValue indicates an environment variable that cannot be used.
var ErrInvalidValue = errors.New("config: invalid value")

// Environment variable names.
const (
	EnvHTTPAddr     = "ORIENTEER_HTTP_ADDR"
	EnvBaseURL      = "ORIENTEER_BASE_URL"
	EnvHeuristic    = "ORIENTEER_HEURISTIC"
	EnvWorkers      = "ORIENTEER_WORKERS"
	EnvMaxLandmarks = "ORIENTEER_MAX_LANDMARKS"
	EnvCacheSize    = "ORIENTEER_CACHE_SIZE"
	EnvRedisAddr    = "ORIENTEER_REDIS_ADDR"
	EnvCacheTTL     = "ORIENTEER_CACHE_TTL"
)

// Config holds the application's configuration values.
type Config struct {
	HTTPAddr     string        // Address the HTTP API listens on
	BaseURL      string        // Route prefix
	Heuristic    string        // Pathfinder heuristic name
	Workers      int           // Concurrent pair searches per matrix build
	MaxLandmarks int           // Landmark ceiling for incoming grids
	CacheSize    int           // In-memory LRU capacity, 0 disables it
	RedisAddr    string        // Redis address, empty disables the shared cache
	CacheTTL     time.Duration // Redis entry lifetime
}

// Load reads the given .env files (default ".env") into the process
// environment without overriding variables already set, then builds a Config.
// A missing .env file is logged and ignored.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	var (
		c   Config
		err error
	)
	c.HTTPAddr = getEnvWithDefault(EnvHTTPAddr, ":8080")
	c.BaseURL = getEnvWithDefault(EnvBaseURL, "/api")

	c.Heuristic = getEnvWithDefault(EnvHeuristic, pathfind.NameManhattan)
	if _, err = pathfind.ParseHeuristic(c.Heuristic); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidValue, EnvHeuristic, err)
	}

	if c.Workers, err = getEnvAsInt(EnvWorkers, 1, 1); err != nil {
		return Config{}, err
	}
	if c.MaxLandmarks, err = getEnvAsInt(EnvMaxLandmarks, grid.DefaultMaxLandmarks, 2); err != nil {
		return Config{}, err
	}
	if c.MaxLandmarks > grid.HardMaxLandmarks {
		return Config{}, fmt.Errorf("%w: %s=%d exceeds %d", ErrInvalidValue, EnvMaxLandmarks, c.MaxLandmarks, grid.HardMaxLandmarks)
	}
	if c.CacheSize, err = getEnvAsInt(EnvCacheSize, 256, 0); err != nil {
		return Config{}, err
	}

	c.RedisAddr = getEnvWithDefault(EnvRedisAddr, "")

	ttl := getEnvWithDefault(EnvCacheTTL, "1h")
	if c.CacheTTL, err = time.ParseDuration(ttl); err != nil || c.CacheTTL < 0 {
		return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvCacheTTL, ttl)
	}

	return c, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}

	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to def when unset and
// rejecting values below floor.
func getEnvAsInt(key string, def, floor int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < floor {
		return 0, fmt.Errorf("%w: %s=%q (integer >= %d)", ErrInvalidValue, key, raw, floor)
	}

	return value, nil
}
