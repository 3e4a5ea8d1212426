package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetViper(t)
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, "medialocker", cfg.MongoDatabase)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURL)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Empty(t, cfg.ClientURL)
}

func TestLoadConfig_Overrides(t *testing.T) {
	resetViper(t)
	t.Setenv("MONGO_URL", "mongodb://db:27017")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "9090")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("MONGO_DATABASE", "locker_test")
	t.Setenv("CLIENT_URL", "https://app.example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "locker_test", cfg.MongoDatabase)
	assert.Equal(t, "https://app.example.com", cfg.ClientURL)
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	t.Run("missing MONGO_URL", func(t *testing.T) {
		resetViper(t)
		t.Setenv("MONGO_URL", "")
		t.Setenv("JWT_SECRET", "test-secret")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "MONGO_URL")
	})

	t.Run("missing JWT_SECRET", func(t *testing.T) {
		resetViper(t)
		t.Setenv("MONGO_URL", "mongodb://localhost:27017")
		t.Setenv("JWT_SECRET", "")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})
}
