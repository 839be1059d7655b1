package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMustLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("JWT_EXPIRES_IN", "")
	t.Setenv("RULE_CACHE_TTL", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CURRENCY_SYMBOL", "")

	cfg := MustLoad()

	assert.Equal(t, ":8080", cfg.ServerPort)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiresIn)
	assert.Equal(t, 30*time.Second, cfg.RuleCacheTTL)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "$", cfg.CurrencySymbol)
}

func TestMustLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_EXPIRES_IN", "15m")
	t.Setenv("RULE_CACHE_TTL", "0s")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("MAX_RETRIES", "5")

	cfg := MustLoad()

	assert.Equal(t, ":9090", cfg.ServerPort)
	assert.Equal(t, 15*time.Minute, cfg.JWTExpiresIn)
	assert.Equal(t, time.Duration(0), cfg.RuleCacheTTL)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 5, cfg.MaxRetries)
}

func TestMustLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("JWT_EXPIRES_IN", "tomorrow")
	t.Setenv("MAX_RETRIES", "many")

	cfg := MustLoad()

	assert.Equal(t, 24*time.Hour, cfg.JWTExpiresIn)
	assert.Equal(t, 3, cfg.MaxRetries)
}
