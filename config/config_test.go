package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("fails without secret key", func(t *testing.T) {
		t.Setenv("SECRET_KEY", "")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("applies defaults", func(t *testing.T) {
		t.Setenv("SECRET_KEY", "test-secret")
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "8000", cfg.ServerPort)
		assert.Equal(t, "HS256", cfg.Algorithm)
		assert.Equal(t, "https://api.openai.com/v1/responses", cfg.ModelAPIURL)
		assert.NotNil(t, cfg.SigningMethod())
		assert.Contains(t, cfg.AllowedOrigins, "http://localhost:4200")
	})

	t.Run("rejects unknown signing algorithm", func(t *testing.T) {
		t.Setenv("SECRET_KEY", "test-secret")
		t.Setenv("ALGORITHM", "HS1024")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("parses cors origins", func(t *testing.T) {
		t.Setenv("SECRET_KEY", "test-secret")
		t.Setenv("CORS_ORIGINS", "https://app.example.com, https://staging.example.com")
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.AllowedOrigins)
	})

	t.Run("builds redis address", func(t *testing.T) {
		t.Setenv("SECRET_KEY", "test-secret")
		t.Setenv("REDIS_HOST", "cache.internal")
		t.Setenv("REDIS_PORT", "6380")
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "cache.internal:6380", cfg.RedisAddr())
	})
}
