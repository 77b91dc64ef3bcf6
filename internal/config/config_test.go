package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanshika/finsight/backend/internal/store"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 15*time.Second, cfg.HTTP.WriteTimeout)
	assert.Equal(t, store.ModeMemory, cfg.StoreMode())
	assert.Equal(t, "demo-user", cfg.Auth.DemoUserID)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "INR", cfg.Currency.Code)
	assert.Equal(t, "en", cfg.Currency.Locale)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_ALLOWED_ORIGINS", "http://localhost:3000,https://app.example.com")
	t.Setenv("STORE_MODE", "kv")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("AUTH_JWT_SECRET", "s3cret")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("CURRENCY_CODE", "USD")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, store.ModeKV, cfg.StoreMode())
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "USD", cfg.Currency.Code)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"bad port":          {"SERVER_PORT": "70000"},
		"unparseable port":  {"SERVER_PORT": "eighty"},
		"bad duration":      {"SERVER_READ_TIMEOUT": "soon"},
		"unknown mode":      {"STORE_MODE": "sqlite"},
		"graph without uri": {"STORE_MODE": "graph"},
		"zero ttl":          {"AUTH_TOKEN_TTL": "0s"},
	}

	for name, vars := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range vars {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
