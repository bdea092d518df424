package config

import (
	"testing"
	"time"
)

func TestEnvHelpers(t *testing.T) {
	t.Setenv("X_STR", "hello")
	t.Setenv("X_INT", "42")
	t.Setenv("X_INT_BAD", "forty-two")
	t.Setenv("X_BOOL_ON", "on")
	t.Setenv("X_BOOL_FALSE", "false")
	t.Setenv("X_DUR", "250ms")
	t.Setenv("X_DUR_BAD", "soon")

	if got := envStr("X_STR", "d"); got != "hello" {
		t.Fatalf("envStr = %q", got)
	}
	if got := envStr("X_MISSING", "d"); got != "d" {
		t.Fatalf("envStr default = %q", got)
	}
	if got := envInt("X_INT", 0); got != 42 {
		t.Fatalf("envInt = %d", got)
	}
	if got := envInt("X_INT_BAD", 7); got != 7 {
		t.Fatalf("envInt bad value = %d, want default", got)
	}
	if !envBool("X_BOOL_ON", false) {
		t.Fatal("envBool should accept on")
	}
	if envBool("X_BOOL_FALSE", true) {
		t.Fatal("envBool should accept false")
	}
	if got := envDur("X_DUR", time.Second); got != 250*time.Millisecond {
		t.Fatalf("envDur = %v", got)
	}
	if got := envDur("X_DUR_BAD", time.Second); got != time.Second {
		t.Fatalf("envDur bad value = %v, want default", got)
	}
}

func TestLoadRateLimitConfig_Clamps(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_TOKENS", "-3")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	cfg := LoadRateLimitConfig()
	if cfg.Capacity != 1 {
		t.Fatalf("Capacity = %d, want clamp to 1", cfg.Capacity)
	}
	if cfg.RefillTokens != 1 {
		t.Fatalf("RefillTokens = %d, want clamp to 1", cfg.RefillTokens)
	}
	if want := 10 * time.Second; cfg.TTL != want {
		t.Fatalf("TTL = %v, want %v (5x refill interval)", cfg.TTL, want)
	}
}

func TestLoadRateLimitConfig_BurstOverride(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "60")
	t.Setenv("RATE_LIMIT_BURST", "5")
	t.Setenv("RATE_LIMIT_REFILL_EVERY", "3s")

	cfg := LoadRateLimitConfig()
	if cfg.Capacity != 5 {
		t.Fatalf("Capacity = %d, want burst override 5", cfg.Capacity)
	}
	if cfg.RefillTokens != 1 || cfg.RefillInterval != 3*time.Second {
		t.Fatalf("refill = %d per %v, want 1 per 3s", cfg.RefillTokens, cfg.RefillInterval)
	}
}

func TestLoadCacheConfig_Methods(t *testing.T) {
	t.Setenv("CACHE_METHODS", "get, head ,")
	t.Setenv("CACHE_TTL", "45s")

	cfg := LoadCacheConfig()
	if !cfg.Methods["GET"] || !cfg.Methods["HEAD"] || len(cfg.Methods) != 2 {
		t.Fatalf("Methods = %v, want GET and HEAD only", cfg.Methods)
	}
	if cfg.TTL != 45*time.Second {
		t.Fatalf("TTL = %v", cfg.TTL)
	}
}
