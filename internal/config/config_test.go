package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ENV", "MONGODB_URI", "MONGO_URI", "REDIS_URI", "SESSION_SECRET", "PORT", "FRONTEND_URL", "ALLOWED_ORIGINS", "VIEWS_DIR"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "mongodb://localhost:27017/userportal", cfg.MongoURI)
	assert.Empty(t, cfg.RedisURI)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "views", cfg.ViewsDir)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENV", "Production")
	t.Setenv("MONGODB_URI", "mongodb://db:27017/accounts")
	t.Setenv("REDIS_URI", "redis://cache:6379/0")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "https://example.com, https://www.example.com")

	cfg := Load()

	assert.Equal(t, "mongodb://db:27017/accounts", cfg.MongoURI)
	assert.Equal(t, "redis://cache:6379/0", cfg.RedisURI)
	assert.Equal(t, "s3cret", cfg.SessionSecret)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"https://example.com", "https://www.example.com"}, cfg.AllowedOrigins)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_FrontendURLFallback(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("FRONTEND_URL", "https://app.example.com")

	cfg := Load()

	assert.Equal(t, []string{"https://app.example.com"}, cfg.AllowedOrigins)
}

func TestParseOrigins(t *testing.T) {
	assert.Nil(t, parseOrigins(""))
	assert.Equal(t, []string{"a", "b"}, parseOrigins(" a ,, b "))
}
