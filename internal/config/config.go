// Package config collects the demo's runtime knobs from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port     string
	Env      string
	LogLevel string

	JWTSecret  string
	SessionTTL time.Duration
	CookieName string

	ProtectedPrefixes []string

	SimulatedLatency time.Duration

	MetricsEnabled bool
	MetricsToken   string
}

// DefaultJWTSecret is only acceptable for local demos; serve warns when it
// leaks into a production environment.
const DefaultJWTSecret = "routemart-dev-secret"

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func boolenv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func csvenv(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// Load reads configuration from the environment with demo-friendly defaults.
func Load() Config {
	return Config{
		Port:     getenv("PORT", "8080"),
		Env:      getenv("APP_ENV", "development"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		JWTSecret:  getenv("JWT_SECRET", DefaultJWTSecret),
		SessionTTL: time.Duration(atoienv("SESSION_TTL_MIN", 60)) * time.Minute,
		CookieName: getenv("AUTH_COOKIE", "auth_token"),

		ProtectedPrefixes: csvenv("PROTECTED_PREFIXES", []string{"/dashboard", "/profile", "/admin"}),

		SimulatedLatency: time.Duration(atoienv("SIMULATED_LATENCY_MS", 0)) * time.Millisecond,

		MetricsEnabled: boolenv("METRICS_ENABLED", true),
		MetricsToken:   os.Getenv("METRICS_TOKEN"),
	}
}
