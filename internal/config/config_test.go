package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FILMADVISOR_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Env != "dev" {
		t.Fatalf("expected default env dev, got %q", cfg.Env)
	}
	if cfg.RateLimits.DefaultBurst != 10 {
		t.Fatalf("expected default burst 10, got %d", cfg.RateLimits.DefaultBurst)
	}
}

func TestLoadTOMLFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "filmadvisor.toml")
	body := `
port = "9090"
env = "staging"
log_level = "debug"
cors_allow_origins = ["http://a.example", "http://b.example"]

[rate_limits]
default_rate = 2.5
default_burst = 4
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("FILMADVISOR_CONFIG", path)
	t.Setenv("PORT", "7070")

	cfg := Load()
	if cfg.Port != "7070" {
		t.Fatalf("env should override file: expected port 7070, got %q", cfg.Port)
	}
	if cfg.Env != "staging" {
		t.Fatalf("expected env staging from file, got %q", cfg.Env)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected log level debug, got %q", cfg.LogLevel)
	}
	if len(cfg.CORSAllowOrigin) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.CORSAllowOrigin)
	}
	if cfg.RateLimits.DefaultRate != 2.5 || cfg.RateLimits.DefaultBurst != 4 {
		t.Fatalf("unexpected rate limits: %+v", cfg.RateLimits)
	}
	// Sections absent from the file keep their defaults.
	if cfg.RateLimits.ReferenceBurst != 40 {
		t.Fatalf("expected reference burst default 40, got %d", cfg.RateLimits.ReferenceBurst)
	}
}

func TestNormalizeEnv(t *testing.T) {
	cases := map[string]string{
		"prod":       "production",
		"PRODUCTION": "production",
		"staging":    "staging",
		"dev":        "dev",
		"anything":   "dev",
	}
	for raw, want := range cases {
		if got := normalizeEnv(raw); got != want {
			t.Fatalf("normalizeEnv(%q) = %q, want %q", raw, got, want)
		}
	}
}
