// Package config provides configuration loading and validation for the server.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config represents the server configuration, loaded from environment variables.
type Config struct {
	// Server
	Port int // HTTP listen port

	// Storage
	DatabaseURL string // PostgreSQL connection URL

	// LLM
	GeminiAPIKey string        // Gemini API key
	LLMTimeout   time.Duration // per-call timeout for LLM requests

	// Generation
	TargetScore int // ATS score at which the retry loop stops early
	MaxAttempts int // maximum generation attempts per request

	// Document tooling
	LaTeXTimeout  time.Duration // per-invocation timeout for pdflatex
	PandocTimeout time.Duration // per-invocation timeout for pandoc

	// Behavior
	UseBrowser bool // use headless browser fallback for SPA job pages
	Verbose    bool // print detailed debug information
}

// Load reads the configuration from environment variables, applying defaults
// for everything except DATABASE_URL and GEMINI_API_KEY.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          8080,
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		LLMTimeout:    45 * time.Second,
		TargetScore:   90,
		MaxAttempts:   3,
		LaTeXTimeout:  30 * time.Second,
		PandocTimeout: 30 * time.Second,
		UseBrowser:    true,
	}

	var err error
	if cfg.Port, err = envInt("PORT", cfg.Port); err != nil {
		return nil, err
	}
	if cfg.TargetScore, err = envInt("TARGET_SCORE", cfg.TargetScore); err != nil {
		return nil, err
	}
	if cfg.MaxAttempts, err = envInt("MAX_ATTEMPTS", cfg.MaxAttempts); err != nil {
		return nil, err
	}
	if cfg.LLMTimeout, err = envSeconds("LLM_TIMEOUT_SECONDS", cfg.LLMTimeout); err != nil {
		return nil, err
	}
	if cfg.LaTeXTimeout, err = envSeconds("LATEX_TIMEOUT_SECONDS", cfg.LaTeXTimeout); err != nil {
		return nil, err
	}
	if cfg.PandocTimeout, err = envSeconds("PANDOC_TIMEOUT_SECONDS", cfg.PandocTimeout); err != nil {
		return nil, err
	}
	if cfg.UseBrowser, err = envBool("USE_BROWSER", cfg.UseBrowser); err != nil {
		return nil, err
	}
	if cfg.Verbose, err = envBool("VERBOSE", cfg.Verbose); err != nil {
		return nil, err
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize validates the configuration.
func (c *Config) normalize() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required but not set")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.TargetScore < 1 || c.TargetScore > 100 {
		return fmt.Errorf("TARGET_SCORE out of range: %d (must be 1-100)", c.TargetScore)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("MAX_ATTEMPTS must be at least 1, got: %d", c.MaxAttempts)
	}
	if c.LLMTimeout < time.Second || c.LaTeXTimeout < time.Second || c.PandocTimeout < time.Second {
		return fmt.Errorf("timeouts must be at least 1 second")
	}
	return nil
}

func envInt(key string, def int) (int, error) {
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

func envSeconds(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return time.Duration(v) * time.Second, nil
}

func envBool(key string, def bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %v", key, err)
	}
	return v, nil
}
