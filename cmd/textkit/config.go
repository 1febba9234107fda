package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MarkoPoloResearchLab/textkit"
	"github.com/sethvargo/go-envconfig"
)

const (
	envKeyJwtHmacKey = "TEXTKIT_JWT_HS256_KEY"

	minimumJwtHmacKeyLength = 16
)

type environmentConfig struct {
	ListenAddress        string   `env:"LISTEN_ADDR,default=:8080"`
	OriginAllowlist      []string `env:"ORIGIN_ALLOWLIST"`
	JwtHmacKey           string   `env:"TEXTKIT_JWT_HS256_KEY"`
	TokenLifetimeSeconds int      `env:"TOKEN_LIFETIME_SECONDS,default=300"`
	RateLimitPerMinute   int      `env:"RATE_LIMIT_PER_MINUTE,default=600"`
	MaxRequestBytes      int64    `env:"MAX_REQUEST_BYTES,default=1048576"`
	MaxBatchValues       int      `env:"MAX_BATCH_VALUES,default=10000"`
	LogLevel             string   `env:"LOG_LEVEL,default=info"`
	LogFormat            string   `env:"LOG_FORMAT,default=json"`
}

type serverConfig struct {
	ListenAddress      string
	AllowedOrigins     map[string]struct{}
	JwtHmacKey         []byte
	TokenLifetime      time.Duration
	RateLimitPerMinute int
	MaxRequestBytes    int64
	MaxBatchValues     int
	LogLevel           string
	LogFormat          string
}

// requireAuth reports whether the /v1 endpoints expect a bearer token.
func (config serverConfig) requireAuth() bool {
	return len(config.JwtHmacKey) > 0
}

func loadConfig(ctx context.Context) (serverConfig, error) {
	var environment environmentConfig
	if processError := envconfig.Process(ctx, &environment); processError != nil {
		return serverConfig{}, fmt.Errorf("process environment: %w", processError)
	}

	allowedOrigins := make(map[string]struct{})
	trimmedOrigins, trimError := textkit.Trim(environment.OriginAllowlist, textkit.TrimBoth)
	if trimError != nil {
		return serverConfig{}, fmt.Errorf("trim ORIGIN_ALLOWLIST: %w", trimError)
	}
	for _, originItem := range trimmedOrigins {
		if originItem != "" {
			allowedOrigins[originItem] = struct{}{}
		}
	}

	jwtHmacSecret := strings.TrimSpace(environment.JwtHmacKey)
	if jwtHmacSecret != "" && len(jwtHmacSecret) < minimumJwtHmacKeyLength {
		return serverConfig{}, fmt.Errorf("weak %s: want at least %d characters", envKeyJwtHmacKey, minimumJwtHmacKeyLength)
	}

	if environment.TokenLifetimeSeconds <= 0 {
		return serverConfig{}, fmt.Errorf("bad TOKEN_LIFETIME_SECONDS: %d", environment.TokenLifetimeSeconds)
	}
	if environment.RateLimitPerMinute <= 0 {
		return serverConfig{}, fmt.Errorf("bad RATE_LIMIT_PER_MINUTE: %d", environment.RateLimitPerMinute)
	}
	if environment.MaxRequestBytes <= 0 {
		return serverConfig{}, fmt.Errorf("bad MAX_REQUEST_BYTES: %d", environment.MaxRequestBytes)
	}
	if environment.MaxBatchValues <= 0 {
		return serverConfig{}, fmt.Errorf("bad MAX_BATCH_VALUES: %d", environment.MaxBatchValues)
	}

	return serverConfig{
		ListenAddress:      environment.ListenAddress,
		AllowedOrigins:     allowedOrigins,
		JwtHmacKey:         []byte(jwtHmacSecret),
		TokenLifetime:      time.Duration(environment.TokenLifetimeSeconds) * time.Second,
		RateLimitPerMinute: environment.RateLimitPerMinute,
		MaxRequestBytes:    environment.MaxRequestBytes,
		MaxBatchValues:     environment.MaxBatchValues,
		LogLevel:           environment.LogLevel,
		LogFormat:          environment.LogFormat,
	}, nil
}
