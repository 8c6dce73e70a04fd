package config

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "CORS_ALLOWED_ORIGINS", "DATABASE_URL", "LOG_LEVEL", "REQUEST_TIMEOUT", "REGISTRATION_URL", "EVENT_CACHE_TTL"} {
		t.Setenv(k, "")
	}
	t.Setenv("GO_ENV", "production")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, ":5000", cfg.Addr())
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Empty(t, cfg.DBUrl)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "http://localhost:5000", cfg.RegistrationURL)
	assert.Equal(t, 24*time.Hour, cfg.EventCacheTTL)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://ui.example.com")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/registration?sslmode=disable")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("REQUEST_TIMEOUT", "2s")
	t.Setenv("REGISTRATION_URL", "https://registration.example.com")
	t.Setenv("EVENT_CACHE_TTL", "10m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, []string{"http://localhost:3000", "https://ui.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, "postgres://localhost:5432/registration?sslmode=disable", cfg.DBUrl)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "https://registration.example.com", cfg.RegistrationURL)
	assert.Equal(t, 10*time.Minute, cfg.EventCacheTTL)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"non numeric port", "PORT", "http"},
		{"bad timeout", "REQUEST_TIMEOUT", "soon"},
		{"negative ttl", "EVENT_CACHE_TTL", "-1h"},
		{"bad log level", "LOG_LEVEL", "verbose"},
		{"bad registration url", "REGISTRATION_URL", "not a url"},
		{"empty origins", "CORS_ALLOWED_ORIGINS", " , "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestNewLoggerTo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, "production", "warn")

	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"k":"v"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
}
