package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("DATABASE_URL")
	os.Unsetenv("SITE_URL")
	os.Unsetenv("HTTP_LISTEN_ADDR")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("S3_REGION")

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "", cfg.DatabaseURL)
	assert.Equal(t, "http://localhost:8080", cfg.SiteURL)
	assert.Equal(t, ":8080", cfg.HTTPListenAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "us-east-1", cfg.S3Region)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
}

func TestLoad_TrimsTrailingSlashes(t *testing.T) {
	t.Setenv("SITE_URL", "https://ordinaryseoulite.com/")
	t.Setenv("AUTH_URL", "https://auth.example.com/")
	t.Setenv("S3_PUBLIC_BASE_URL", "https://img.example.com/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://ordinaryseoulite.com", cfg.SiteURL)
	assert.Equal(t, "https://auth.example.com", cfg.AuthURL)
	assert.Equal(t, "https://img.example.com", cfg.S3PublicBaseURL)
}

func TestValidate_MissingRequired(t *testing.T) {
	cfg := &Config{SiteURL: "http://localhost:8080"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
	assert.Contains(t, err.Error(), "AUTH_URL")
	assert.Contains(t, err.Error(), "AUTH_API_KEY")
}

func TestValidate_BadSiteURL(t *testing.T) {
	cfg := &Config{
		DatabaseURL: "postgres://localhost/seoulite",
		AuthURL:     "https://auth.example.com",
		AuthAPIKey:  "publishable-key",
		SiteURL:     "ordinaryseoulite.com",
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SITE_URL")
}

func TestSecureCookies(t *testing.T) {
	assert.True(t, (&Config{SiteURL: "https://ordinaryseoulite.com"}).SecureCookies())
	assert.False(t, (&Config{SiteURL: "http://localhost:8080"}).SecureCookies())
}
