package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_ENV", "ENV", "PORT", "DATABASE_URL", "STORAGE_BACKEND", "UPLOAD_DIR",
		"UPLOAD_URL_PREFIX", "MAX_UPLOAD_BYTES", "S3_ENDPOINT", "S3_REGION", "S3_BUCKET",
		"S3_ACCESS_KEY_ID", "S3_SECRET_ACCESS_KEY", "S3_PUBLIC_BASE_URL", "S3_USE_PATH_STYLE",
		"CORS_ALLOWED_ORIGINS", "JWT_SECRET", "ADMIN_PASSWORD_HASH", "ADMIN_TOKEN_TTL",
		"METRICS_ENABLED", "LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "gallery.db", cfg.DatabaseURL)
	assert.Equal(t, StorageLocal, cfg.StorageBackend)
	assert.Equal(t, "./uploads", cfg.UploadDir)
	assert.Equal(t, "/uploads", cfg.UploadURLPrefix)
	assert.Equal(t, int64(50<<20), cfg.MaxUploadBytes)
	assert.Equal(t, DefaultAllowedOrigins, cfg.AllowedOrigins)
	assert.Equal(t, 12*time.Hour, cfg.AdminTokenTTL)
	assert.True(t, cfg.MetricsEnabled)
	assert.True(t, cfg.S3UsePathStyle)
	assert.False(t, cfg.AdminEnabled())
	assert.False(t, cfg.IsRelease())
}

func TestLoad_ExtraOrigins(t *testing.T) {
	clearEnv(t)
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://admin.example.com/ ,http://localhost:3000,, https://www.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"http://localhost:3000",
		"https://sparsha-fabrication.vercel.app",
		"https://admin.example.com",
		"https://www.example.com",
	}, cfg.AllowedOrigins)
}

func TestLoad_S3RequiresCredentials(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_BACKEND", "s3")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "S3Endpoint")
	assert.Contains(t, err.Error(), "S3AccessKeyID")
	assert.Contains(t, err.Error(), "S3SecretAccessKey")
}

func TestLoad_S3(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_BACKEND", "S3")
	t.Setenv("S3_ENDPOINT", "https://project.supabase.co/storage/v1/s3")
	t.Setenv("S3_ACCESS_KEY_ID", "key")
	t.Setenv("S3_SECRET_ACCESS_KEY", "secret")
	t.Setenv("S3_PUBLIC_BASE_URL", "https://project.supabase.co/storage/v1/object/public/gallery/")
	t.Setenv("S3_USE_PATH_STYLE", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StorageS3, cfg.StorageBackend)
	assert.Equal(t, "gallery", cfg.S3Bucket)
	assert.Equal(t, "us-east-1", cfg.S3Region)
	assert.Equal(t, "https://project.supabase.co/storage/v1/object/public/gallery", cfg.S3PublicBaseURL)
	assert.False(t, cfg.S3UsePathStyle)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := []struct {
		name string
		key  string
		val  string
	}{
		{name: "backend", key: "STORAGE_BACKEND", val: "ftp"},
		{name: "max upload", key: "MAX_UPLOAD_BYTES", val: "lots"},
		{name: "zero max upload", key: "MAX_UPLOAD_BYTES", val: "0"},
		{name: "ttl", key: "ADMIN_TOKEN_TTL", val: "soon"},
		{name: "log level", key: "LOG_LEVEL", val: "verbose"},
		{name: "port", key: "PORT", val: "http"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_AdminGateNeedsBothValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "secret")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.AdminEnabled())
}

func TestLoad_ReleaseRejectsLocalStorage(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORAGE_BACKEND")
}
