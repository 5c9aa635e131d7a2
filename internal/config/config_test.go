package config

import (
	"strings"
	"testing"
)

const testSecret = "Abc123!xyz-long-enough-secret-key-42"

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SUFRA_SESSION_SECRET", testSecret)
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DBPath != "./data/sufra.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.ServerAddr() != "localhost:8080" {
		t.Errorf("ServerAddr = %q", cfg.ServerAddr())
	}
	if !cfg.IsDevelopment() {
		t.Error("default env should be development")
	}
	if cfg.UseRedisCache() {
		t.Error("redis enabled without URL")
	}
	if cfg.GeoIPEnabled() {
		t.Error("geoip enabled without path")
	}
	if cfg.CacheTTL != 3600 {
		t.Errorf("CacheTTL = %d", cfg.CacheTTL)
	}
	if cfg.FeedbackRateLimit != 6 {
		t.Errorf("FeedbackRateLimit = %d", cfg.FeedbackRateLimit)
	}
	if cfg.DoSeed {
		t.Error("seeding enabled by default")
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("SUFRA_SESSION_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load succeeded without session secret")
	}
}

func TestLoad_ShortSecret(t *testing.T) {
	t.Setenv("SUFRA_SESSION_SECRET", "too-short")

	_, err := Load()
	if err == nil {
		t.Fatal("Load accepted a short secret")
	}
	if !strings.Contains(err.Error(), "32 bytes") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_WeakSecretRejected(t *testing.T) {
	t.Setenv("SUFRA_SESSION_SECRET", "change-me-to-32-byte-secret-key!")

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted a known default secret")
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SUFRA_SERVER_PORT", "9000")
	t.Setenv("SUFRA_ENV", "production")
	t.Setenv("SUFRA_REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ServerPort != 9000 {
		t.Errorf("ServerPort = %d", cfg.ServerPort)
	}
	if cfg.IsDevelopment() {
		t.Error("production env reported as development")
	}
	if !cfg.UseRedisCache() {
		t.Error("redis URL not detected")
	}
}

func TestHasMinimumEntropy(t *testing.T) {
	if hasMinimumEntropy("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa") {
		t.Error("single character class passed entropy check")
	}
	if !hasMinimumEntropy(testSecret) {
		t.Error("mixed secret failed entropy check")
	}
}
