package server

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/matzehuels/hemicycle/pkg/cache"
	"github.com/matzehuels/hemicycle/pkg/errors"
)

// Environment variables read by LoadConfig.
const (
	EnvAddr      = "HEMICYCLE_ADDR"
	EnvRedisURL  = "HEMICYCLE_REDIS_URL"
	EnvCacheTTL  = "HEMICYCLE_CACHE_TTL"
	EnvKeyPrefix = "HEMICYCLE_CACHE_PREFIX"
)

const (
	defaultAddr      = ":8080"
	defaultKeyPrefix = "hemicycle:"
)

// Config holds the server settings.
type Config struct {
	Addr      string        // listen address
	RedisURL  string        // empty disables the artifact cache
	CacheTTL  time.Duration // lifetime of cached artifacts
	KeyPrefix string        // namespace for Redis keys
}

// LoadConfig reads a .env file from the working directory, if present,
// and then the environment. Unset variables take their defaults.
func LoadConfig() (Config, error) {
	_ = godotenv.Load() // Load .env if present, ignore error

	cfg := Config{
		Addr:      os.Getenv(EnvAddr),
		RedisURL:  os.Getenv(EnvRedisURL),
		KeyPrefix: os.Getenv(EnvKeyPrefix),
		CacheTTL:  cache.TTLArtifact,
	}
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = defaultKeyPrefix
	}
	if v := os.Getenv(EnvCacheTTL); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "%s=%q", EnvCacheTTL, v)
		}
		cfg.CacheTTL = ttl
	}
	return cfg, cfg.Validate()
}

// Validate checks the settings for obvious mistakes.
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New(errors.ErrCodeInvalidInput, "listen address is required")
	}
	if c.CacheTTL < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cache ttl must not be negative, got %s", c.CacheTTL)
	}
	return nil
}
