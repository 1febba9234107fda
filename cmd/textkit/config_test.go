package main

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestLoadConfigAppliesDefaults(t *testing.T) {
	config, loadError := loadConfig(context.Background())
	if loadError != nil {
		t.Fatalf("loadConfig returned error: %v", loadError)
	}
	if config.ListenAddress != ":8080" {
		t.Fatalf("expected default listen address, got %q", config.ListenAddress)
	}
	if config.requireAuth() {
		t.Fatalf("expected auth to be disabled without a key")
	}
	if len(config.AllowedOrigins) != 0 {
		t.Fatalf("expected empty allowlist, got %v", config.AllowedOrigins)
	}
	if config.TokenLifetime != 5*time.Minute {
		t.Fatalf("expected 5m token lifetime, got %s", config.TokenLifetime)
	}
	if config.MaxBatchValues != 10000 || config.MaxRequestBytes != 1048576 {
		t.Fatalf("unexpected limits: %d values, %d bytes", config.MaxBatchValues, config.MaxRequestBytes)
	}
}

func TestLoadConfigTrimsOriginAllowlist(t *testing.T) {
	t.Setenv("ORIGIN_ALLOWLIST", " https://app.example.com ,\thttps://r.example.com,, ")
	config, loadError := loadConfig(context.Background())
	if loadError != nil {
		t.Fatalf("loadConfig returned error: %v", loadError)
	}
	if len(config.AllowedOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", config.AllowedOrigins)
	}
	for _, origin := range []string{"https://app.example.com", "https://r.example.com"} {
		if _, found := config.AllowedOrigins[origin]; !found {
			t.Fatalf("expected %s in allowlist %v", origin, config.AllowedOrigins)
		}
	}
}

func TestLoadConfigRejectsWeakKey(t *testing.T) {
	t.Setenv("TEXTKIT_JWT_HS256_KEY", "short")
	_, loadError := loadConfig(context.Background())
	if loadError == nil {
		t.Fatalf("expected weak key to return an error")
	}
	if !strings.Contains(loadError.Error(), "TEXTKIT_JWT_HS256_KEY") {
		t.Fatalf("expected error mentioning TEXTKIT_JWT_HS256_KEY, got %v", loadError)
	}
}

func TestLoadConfigLoadsKey(t *testing.T) {
	t.Setenv("TEXTKIT_JWT_HS256_KEY", "  0123456789abcdef0123456789abcdef  ")
	config, loadError := loadConfig(context.Background())
	if loadError != nil {
		t.Fatalf("loadConfig returned error: %v", loadError)
	}
	if string(config.JwtHmacKey) != "0123456789abcdef0123456789abcdef" {
		t.Fatalf("expected trimmed key, got %q", config.JwtHmacKey)
	}
	if !config.requireAuth() {
		t.Fatalf("expected auth to be enabled")
	}
}

func TestLoadConfigRejectsNonPositiveLimits(t *testing.T) {
	for _, envKey := range []string{"TOKEN_LIFETIME_SECONDS", "RATE_LIMIT_PER_MINUTE", "MAX_REQUEST_BYTES", "MAX_BATCH_VALUES"} {
		t.Run(envKey, func(t *testing.T) {
			t.Setenv(envKey, "0")
			if _, loadError := loadConfig(context.Background()); loadError == nil {
				t.Fatalf("expected %s=0 to be rejected", envKey)
			}
		})
	}
}

func TestLoadConfigRejectsMalformedNumber(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "lots")
	if _, loadError := loadConfig(context.Background()); loadError == nil {
		t.Fatalf("expected malformed RATE_LIMIT_PER_MINUTE to be rejected")
	}
}
