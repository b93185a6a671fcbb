package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadEnvDefaults(t *testing.T) {
	for _, k := range []string{"APP_ADDR", "JWT_TTL", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "CORS_ALLOWED_ORIGINS", "DB_DSN"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	env, err := LoadEnv("testdata/does-not-exist.env")
	if err != nil {
		t.Fatalf("LoadEnv error: %v", err)
	}
	if env.AppAddr != ":5000" {
		t.Errorf("AppAddr = %q", env.AppAddr)
	}
	if env.JWTTTL != 24*time.Hour {
		t.Errorf("JWTTTL = %v", env.JWTTTL)
	}
	if env.RateLimitRPS != 5 || env.RateLimitBurst != 10 {
		t.Errorf("rate limit = %v/%d", env.RateLimitRPS, env.RateLimitBurst)
	}
	if env.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v", env.ShutdownTimeout)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_ADDR", " :9090 ")
	t.Setenv("JWT_TTL", "90m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "3")

	env, err := LoadEnv("testdata/does-not-exist.env")
	if err != nil {
		t.Fatalf("LoadEnv error: %v", err)
	}
	if env.AppAddr != ":9090" {
		t.Errorf("AppAddr = %q", env.AppAddr)
	}
	if env.JWTTTL != 90*time.Minute {
		t.Errorf("JWTTTL = %v", env.JWTTTL)
	}
	if len(env.CORSAllowedOrigins) != 2 || env.CORSAllowedOrigins[1] != "http://b.test" {
		t.Errorf("CORSAllowedOrigins = %#v", env.CORSAllowedOrigins)
	}
	if env.RateLimitRPS != 2.5 || env.RateLimitBurst != 3 {
		t.Errorf("rate limit = %v/%d", env.RateLimitRPS, env.RateLimitBurst)
	}
}

func TestLoadEnvRejectsNonPositiveTTL(t *testing.T) {
	t.Setenv("JWT_TTL", "0s")
	if _, err := LoadEnv("testdata/does-not-exist.env"); err == nil {
		t.Fatalf("expected error for zero JWT_TTL")
	}
}
