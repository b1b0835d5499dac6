package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_REFRESH_SECRET", "")
	t.Setenv("PORT", "")
	t.Setenv("MAX_FILE_SIZE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.Expire)
	assert.Equal(t, 30*24*time.Hour, cfg.JWT.RefreshExpire)
	assert.Equal(t, "secret", cfg.JWT.RefreshSecret)
	assert.Equal(t, int64(10485760), cfg.Upload.MaxFileSize)
	assert.Equal(t, 15*time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 100, cfg.RateLimit.MaxRequests)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_EXPIRE", "15m")
	t.Setenv("ALLOWED_FILE_TYPES", "application/pdf, image/png")
	t.Setenv("OTEL_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, cfg.JWT.Expire)
	assert.Equal(t, []string{"application/pdf", "image/png"}, cfg.Upload.AllowedTypes)
	assert.True(t, cfg.Tracing.Enabled)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("JWT_EXPIRE", "xd")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{Driver: "postgres"}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "DB_USER")

	cfg = &Config{
		JWT:      JWTConfig{Secret: "s"},
		Database: DatabaseConfig{Driver: "sqlite", Path: "x.db"},
	}
	assert.NoError(t, cfg.Validate())

	cfg.Database.Driver = "mysql"
	assert.Error(t, cfg.Validate())
}
