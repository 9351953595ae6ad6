// Package config provides JWT configuration functionality.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// JWTConfig holds configuration for JWT token generation and validation.
type JWTConfig struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// NewJWTConfig creates a new JWT configuration from environment variables.
// It reads JWT_SECRET (required), JWT_ACCESS_MINUTES (default: 30), and
// JWT_REFRESH_HOURS (default: 168).
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	accessMinutes, err := envIntDefault("JWT_ACCESS_MINUTES", 30)
	if err != nil {
		return nil, err
	}
	refreshHours, err := envIntDefault("JWT_REFRESH_HOURS", 168)
	if err != nil {
		return nil, err
	}

	config := &JWTConfig{
		Secret:     secret,
		AccessTTL:  time.Duration(accessMinutes) * time.Minute,
		RefreshTTL: time.Duration(refreshHours) * time.Hour,
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *JWTConfig) normalize() error {
	if c.Secret == "" {
		return fmt.Errorf("JWT_SECRET cannot be empty")
	}
	if c.AccessTTL < time.Minute {
		return fmt.Errorf("JWT access TTL must be at least 1 minute, got: %s", c.AccessTTL)
	}
	if c.RefreshTTL <= c.AccessTTL {
		return fmt.Errorf("JWT refresh TTL must exceed the access TTL")
	}
	return nil
}

func envIntDefault(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return v, nil
}
