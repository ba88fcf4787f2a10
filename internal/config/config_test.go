package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("SHOPFRONT_POSTGRES_DSN", "postgres://localhost/shopfront")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwtsecret")
}

func TestLoadRequiresDSN(t *testing.T) {
	t.Setenv("SHOPFRONT_SECURITY_JWTSECRET", "s3cret")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dsn")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SHOPFRONT_SECURITY_JWTSECRET", "s3cret")
	t.Setenv("SHOPFRONT_POSTGRES_DSN", "postgres://localhost/shopfront")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 5000, cfg.HTTP.Port)
	assert.Equal(t, 24*time.Hour, cfg.Security.TokenTTL)
	assert.Equal(t, "superadmin", cfg.Seed.AdminUsername)
	assert.Equal(t, DefaultAdminPassword, cfg.Seed.AdminPassword)
	assert.Equal(t, "s3cret", cfg.Security.JWTSecret)
}
