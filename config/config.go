// Package config loads portal configuration from an optional TOML file with
// environment-variable overrides. Environment wins so deployments can tweak
// a single value without editing the file.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Port                   string `toml:"port"`
	UpstreamBaseURL        string `toml:"upstream_base_url"`
	UpstreamTimeoutSeconds int    `toml:"upstream_timeout_seconds"`
	OperatorRole           string `toml:"operator_role"`
	DefaultLanguage        string `toml:"default_language"`
	LogLevel               string `toml:"log_level"`
	MetricsEnabled         bool   `toml:"metrics_enabled"`
}

// Default returns the built-in configuration, before file and environment
// are applied.
func Default() Config {
	return Config{
		Port:                   "8080",
		UpstreamTimeoutSeconds: 30,
		OperatorRole:           "center_operator",
		DefaultLanguage:        "en",
		LogLevel:               "info",
		MetricsEnabled:         true,
	}
}

// Load reads the config file at path (skipped when path is empty or the
// file does not exist), applies environment overrides, and validates the
// result. UPSTREAM_BASE_URL is required one way or the other.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.UpstreamBaseURL = getEnv("UPSTREAM_BASE_URL", cfg.UpstreamBaseURL)
	cfg.OperatorRole = getEnv("OPERATOR_ROLE", cfg.OperatorRole)
	cfg.DefaultLanguage = getEnv("DEFAULT_LANGUAGE", cfg.DefaultLanguage)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	if v := os.Getenv("UPSTREAM_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.UpstreamTimeoutSeconds = n
		}
	}
	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.MetricsEnabled = b
		}
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.UpstreamBaseURL == "" {
		return fmt.Errorf("upstream base URL is not configured (set UPSTREAM_BASE_URL or upstream_base_url)")
	}
	u, err := url.Parse(c.UpstreamBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("upstream base URL %q is not a valid absolute URL", c.UpstreamBaseURL)
	}
	if c.UpstreamTimeoutSeconds < 1 {
		return fmt.Errorf("upstream timeout must be at least 1 second")
	}
	return nil
}

// Address returns the listen address for the HTTP server.
func (c Config) Address() string {
	return fmt.Sprintf(":%s", c.Port)
}

// UpstreamTimeout returns the upstream HTTP client timeout.
func (c Config) UpstreamTimeout() time.Duration {
	return time.Duration(c.UpstreamTimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}
