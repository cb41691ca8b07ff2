package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all environment-driven settings for the seoulite server.
type Config struct {
	DatabaseURL   string
	MigrationsDir string

	// SiteURL is the public origin of this deployment, e.g. "https://ordinaryseoulite.com".
	// Cookie security and OAuth callback URLs are derived from it.
	SiteURL string

	// AuthURL and AuthAPIKey point at the hosted identity provider.
	AuthURL    string
	AuthAPIKey string

	HTTPListenAddr string
	LogLevel       string
	CORSOrigins    []string
	DevMode        bool

	// Gallery image storage.
	S3Endpoint      string
	S3Region        string
	S3AccessKey     string
	S3SecretKey     string
	S3Bucket        string
	S3PublicBaseURL string

	// Tipping payment gateway.
	PaymentAPIURL    string
	PaymentSecretKey string
}

func Load() (*Config, error) {
	origins := getEnv("CORS_ORIGINS", "http://localhost:5173")
	var corsList []string
	for _, o := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			corsList = append(corsList, trimmed)
		}
	}

	cfg := &Config{
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		MigrationsDir:    getEnv("MIGRATIONS_DIR", ""),
		SiteURL:          strings.TrimRight(getEnv("SITE_URL", "http://localhost:8080"), "/"),
		AuthURL:          strings.TrimRight(getEnv("AUTH_URL", ""), "/"),
		AuthAPIKey:       getEnv("AUTH_API_KEY", ""),
		HTTPListenAddr:   getEnv("HTTP_LISTEN_ADDR", ":8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		CORSOrigins:      corsList,
		DevMode:          getEnv("DEV_MODE", "") == "true",
		S3Endpoint:       getEnv("S3_ENDPOINT", ""),
		S3Region:         getEnv("S3_REGION", "us-east-1"),
		S3AccessKey:      getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:      getEnv("S3_SECRET_KEY", ""),
		S3Bucket:         getEnv("S3_BUCKET", ""),
		S3PublicBaseURL:  strings.TrimRight(getEnv("S3_PUBLIC_BASE_URL", ""), "/"),
		PaymentAPIURL:    strings.TrimRight(getEnv("PAYMENT_API_URL", ""), "/"),
		PaymentSecretKey: getEnv("PAYMENT_SECRET_KEY", ""),
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	var missing []string
	if c.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if c.AuthURL == "" {
		missing = append(missing, "AUTH_URL")
	}
	if c.AuthAPIKey == "" {
		missing = append(missing, "AUTH_API_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required config: %s", strings.Join(missing, ", "))
	}
	if !strings.HasPrefix(c.SiteURL, "http://") && !strings.HasPrefix(c.SiteURL, "https://") {
		return fmt.Errorf("SITE_URL must be an absolute http(s) URL")
	}
	return nil
}

// SecureCookies reports whether session cookies should carry the Secure flag.
// True exactly when the public site origin is served over HTTPS.
func (c *Config) SecureCookies() bool {
	return strings.HasPrefix(c.SiteURL, "https://")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
