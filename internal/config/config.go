package config

import (
	"errors"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Parse result cache in front of the codec.
	CacheEnabled bool
	CacheSize    int
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	cacheEnabled, err := strconv.ParseBool(sharedcfg.EnvOrDefault("CACHE_ENABLED", "true"))
	if err != nil {
		return nil, errors.New("invalid CACHE_ENABLED")
	}

	cacheSize, err := strconv.Atoi(sharedcfg.EnvOrDefault("CACHE_SIZE", "1000"))
	if err != nil || cacheSize <= 0 {
		return nil, errors.New("invalid CACHE_SIZE: must be a positive integer")
	}

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		CacheEnabled:    cacheEnabled,
		CacheSize:       cacheSize,
	}

	if cfg.HTTPAddr == "" {
		return nil, errors.New("HTTP_ADDR is required")
	}
	switch cfg.LogFormat {
	case "json", "text":
	default:
		return nil, errors.New("invalid LOG_FORMAT: must be json or text")
	}

	return cfg, nil
}
