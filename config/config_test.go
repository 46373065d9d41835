package config_test

import (
	"testing"

	"go-talent-backend/config"
	"go-talent-backend/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET_KEY", "secret")

		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, 60, cfg.JWTTTLMinutes)
		assert.Equal(t, int64(5<<20), cfg.MaxUploadBytes)
		assert.Equal(t, config.StorageDriverLocal, cfg.Storage.Driver)
		assert.Equal(t, "./file_uploads", cfg.Storage.LocalDir)
		assert.True(t, cfg.SecureCookies)
	})

	t.Run("Insecure cookies for local development", func(t *testing.T) {
		t.Setenv("JWT_SECRET_KEY", "secret")
		t.Setenv("SECURE_COOKIES", "false")
		t.Setenv("FRONTEND_URL", "http://localhost:5173/")

		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.False(t, cfg.SecureCookies)
		assert.Equal(t, "http://localhost:5173", cfg.FrontendURL)
	})

	t.Run("S3 block", func(t *testing.T) {
		t.Setenv("JWT_SECRET_KEY", "secret")
		t.Setenv("STORAGE_DRIVER", "s3")
		t.Setenv("S3_PROVIDER", "wasabi")
		t.Setenv("S3_REGION", "eu-west-1")
		t.Setenv("S3_BUCKET", "pictures")
		t.Setenv("S3_PUBLIC_BASE_URL", "https://cdn.example.com")

		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, storage.S3ProviderWasabi, cfg.Storage.S3.Provider)
		assert.Equal(t, "eu-west-1", cfg.Storage.S3.Region)
		assert.Equal(t, "pictures", cfg.Storage.S3.Bucket)
		assert.Equal(t, "https://cdn.example.com", cfg.Storage.S3.PublicBaseURL)
	})

	t.Run("S3 without bucket", func(t *testing.T) {
		t.Setenv("JWT_SECRET_KEY", "secret")
		t.Setenv("STORAGE_DRIVER", "s3")
		t.Setenv("S3_BUCKET", "")

		_, err := config.LoadConfig()
		assert.Error(t, err)
	})

	t.Run("Unknown driver", func(t *testing.T) {
		t.Setenv("JWT_SECRET_KEY", "secret")
		t.Setenv("STORAGE_DRIVER", "ftp")

		_, err := config.LoadConfig()
		assert.Error(t, err)
	})

	t.Run("Missing JWT secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET_KEY", "")

		_, err := config.LoadConfig()
		assert.Error(t, err)
	})
}
