package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "CATALOG_SOURCE", "CATALOG_REFRESH_INTERVAL", "LOG_LEVEL",
		"METRICS_ENABLED", "METRICS_TOKEN", "RATE_LIMIT_PER_MIN", "RATE_LIMIT_TRUST_PROXY",
		"SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Port != "8082" {
		t.Fatalf("Port default: %q", c.Port)
	}
	if c.CatalogSource != "data/products.json" {
		t.Fatalf("CatalogSource default: %q", c.CatalogSource)
	}
	if c.RefreshInterval != 0 {
		t.Fatalf("RefreshInterval default: %v", c.RefreshInterval)
	}
	if c.LogLevel != "info" || !c.MetricsEnabled || c.MetricsToken != "" {
		t.Fatalf("logging/metrics defaults: %+v", c)
	}
	if c.RateLimitPerMin != 0 || c.TrustProxy {
		t.Fatalf("rate limit defaults: %+v", c)
	}
	if c.ShutdownTimeout != 10*time.Second {
		t.Fatalf("ShutdownTimeout default: %v", c.ShutdownTimeout)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("CATALOG_SOURCE", "postgres://localhost/shop")
	t.Setenv("CATALOG_REFRESH_INTERVAL", "30s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("METRICS_TOKEN", "secret")
	t.Setenv("RATE_LIMIT_PER_MIN", "120")
	t.Setenv("RATE_LIMIT_TRUST_PROXY", "true")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Port != "9090" || c.CatalogSource != "postgres://localhost/shop" {
		t.Fatalf("addr/source env: %+v", c)
	}
	if c.RefreshInterval != 30*time.Second || c.ShutdownTimeout != 3*time.Second {
		t.Fatalf("durations env: %+v", c)
	}
	if c.LogLevel != "debug" || c.MetricsEnabled || c.MetricsToken != "secret" {
		t.Fatalf("logging/metrics env: %+v", c)
	}
	if c.RateLimitPerMin != 120 || !c.TrustProxy {
		t.Fatalf("rate limit env: %+v", c)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"CATALOG_REFRESH_INTERVAL": "soon",
		"SHUTDOWN_TIMEOUT":         "10",
		"METRICS_ENABLED":          "maybe",
		"RATE_LIMIT_PER_MIN":       "ten",
		"RATE_LIMIT_TRUST_PROXY":   "sometimes",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", key, val)
			}
		})
	}

	clearEnv(t)
	t.Setenv("RATE_LIMIT_PER_MIN", "-1")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative rate limit")
	}
}
