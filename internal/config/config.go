// Package config reads the catalog service settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port            string
	CatalogSource   string
	RefreshInterval time.Duration
	LogLevel        string
	MetricsEnabled  bool
	MetricsToken    string
	RateLimitPerMin int
	TrustProxy      bool
	ShutdownTimeout time.Duration
}

// Load collects configuration from the environment with defaults. Values
// that are set but cannot be parsed are reported rather than ignored.
func Load() (Config, error) {
	c := Config{
		Port:          getenv("PORT", "8082"),
		CatalogSource: getenv("CATALOG_SOURCE", "data/products.json"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		MetricsToken:  os.Getenv("METRICS_TOKEN"),
	}

	var err error
	if c.RefreshInterval, err = durenv("CATALOG_REFRESH_INTERVAL", 0); err != nil {
		return Config{}, err
	}
	if c.ShutdownTimeout, err = durenv("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if c.MetricsEnabled, err = boolenv("METRICS_ENABLED", true); err != nil {
		return Config{}, err
	}
	if c.RateLimitPerMin, err = atoienv("RATE_LIMIT_PER_MIN", 0); err != nil {
		return Config{}, err
	}
	if c.TrustProxy, err = boolenv("RATE_LIMIT_TRUST_PROXY", false); err != nil {
		return Config{}, err
	}

	if c.RefreshInterval < 0 {
		return Config{}, fmt.Errorf("CATALOG_REFRESH_INTERVAL must not be negative")
	}
	if c.RateLimitPerMin < 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_PER_MIN must not be negative")
	}
	return c, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func durenv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func boolenv(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
