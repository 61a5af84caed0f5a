package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", "development")
	t.Setenv("FRONTEND_URL", "http://localhost:3000/, https://cheickthiam.com")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("ADMIN_EMAIL", "Admin@Example.com")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, []string{"http://localhost:3000", "https://cheickthiam.com"}, cfg.FrontendURLs)
	assert.Equal(t, "admin@example.com", cfg.AdminEmail)
	assert.Equal(t, 168*time.Hour, cfg.JWTExpiry)
	assert.Zero(t, cfg.SessionIdleTimeout)
	assert.Equal(t, 1, cfg.TrustProxyHops)
	assert.Equal(t, time.Hour, cfg.S3PresignExpiryPrivate)
	assert.Equal(t, "images", cfg.S3PublicBucket)
	assert.Equal(t, "certifications", cfg.S3PrivateBucket)
	assert.False(t, cfg.StorageConfigured())
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_ReportsEveryMissingVariable(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("FRONTEND_URL", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ADMIN_EMAIL", "")

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
	for _, key := range []string{"APP_ENV", "FRONTEND_URL", "JWT_SECRET", "ADMIN_EMAIL"} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestLoad_ProductionRequiresEmailKey(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("RESEND_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RESEND_API_KEY")
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_EXPIRY", "soon")
	t.Setenv("S3_ACCESS_KEY", "key")
	t.Setenv("S3_SECRET_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 168*time.Hour, cfg.JWTExpiry)
	assert.True(t, cfg.StorageConfigured())
}

func TestLoad_TrustProxyHops(t *testing.T) {
	setRequired(t)
	t.Setenv("TRUST_PROXY_HOPS", "0")
	t.Setenv("SESSION_IDLE_TIMEOUT", "15m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Zero(t, cfg.TrustProxyHops)
	assert.Equal(t, 15*time.Minute, cfg.SessionIdleTimeout)
	assert.Zero(t, cfg.Sanitized().TrustProxyHops)

	t.Setenv("TRUST_PROXY_HOPS", "-2")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.TrustProxyHops)
}

func TestSanitized_DropsSecrets(t *testing.T) {
	cfg := &Config{AppEnv: "production", JWTSecret: "s", S3SecretKey: "k", ResendAPIKey: "r"}
	safe := cfg.Sanitized()
	assert.Empty(t, safe.JWTSecret)
	assert.Empty(t, safe.S3SecretKey)
	assert.Empty(t, safe.ResendAPIKey)
	assert.True(t, safe.IsProduction())
}
