package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// RateLimits configures the per-client token buckets.
type RateLimits struct {
	DefaultRate    float64 `toml:"default_rate"`
	DefaultBurst   int     `toml:"default_burst"`
	ReferenceRate  float64 `toml:"reference_rate"`
	ReferenceBurst int     `toml:"reference_burst"`
}

// Config holds application configuration.
type Config struct {
	Port            string     `toml:"port"`
	Env             string     `toml:"env"`
	LogLevel        string     `toml:"log_level"`
	CORSAllowOrigin []string   `toml:"cors_allow_origins"`
	RateLimits      RateLimits `toml:"rate_limits"`
}

// Default returns the baseline configuration before file or env overrides.
func Default() Config {
	return Config{
		Port:            "8080",
		Env:             "dev",
		LogLevel:        "info",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		RateLimits: RateLimits{
			DefaultRate:    5,
			DefaultBurst:   10,
			ReferenceRate:  20,
			ReferenceBurst: 40,
		},
	}
}

// Load builds configuration from defaults, an optional TOML file, then
// environment variables, in that order of precedence.
func Load() Config {
	cfg := Default()

	path := getEnv("FILMADVISOR_CONFIG", "filmadvisor.toml")
	if data, err := os.ReadFile(path); err == nil {
		// A malformed file falls back to defaults rather than killing the
		// process; env overrides still apply.
		_ = toml.Unmarshal(data, &cfg)
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Env = normalizeEnv(getEnv("ENV", cfg.Env))
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	if raw := os.Getenv("CORS_ALLOW_ORIGINS"); raw != "" {
		cfg.CORSAllowOrigin = splitAndTrim(raw)
	}
	if v, ok := floatEnv("RATE_LIMIT_DEFAULT_RATE"); ok {
		cfg.RateLimits.DefaultRate = v
	}
	if v, ok := intEnv("RATE_LIMIT_DEFAULT_BURST"); ok {
		cfg.RateLimits.DefaultBurst = v
	}
	if v, ok := floatEnv("RATE_LIMIT_REFERENCE_RATE"); ok {
		cfg.RateLimits.ReferenceRate = v
	}
	if v, ok := intEnv("RATE_LIMIT_REFERENCE_BURST"); ok {
		cfg.RateLimits.ReferenceBurst = v
	}

	return cfg
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func floatEnv(key string) (float64, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func intEnv(key string) (int, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	default:
		return "dev"
	}
}
