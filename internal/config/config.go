package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName      string
	AppEnv       string
	Port         string
	FrontendURLs []string

	// Reverse proxies in front of the server. The client address is read
	// that many entries from the right of X-Forwarded-For; 0 uses RemoteAddr.
	TrustProxyHops int

	// Database (driver switch via ENV, default: sqlite)
	DBDriver      string
	DBConnection  string
	MongoDatabase string

	// Security
	JWTSecret          string
	JWTExpiry          time.Duration
	SessionIdleTimeout time.Duration

	// Admin bootstrap
	AdminEmail    string
	AdminPassword string
	AdminName     string

	// Email
	EmailFrom          string
	ResendAPIKey       string
	EmailRatePerSecond float64

	// Observability (optional)
	SentryDSN string

	// Storage (S3-compatible: AWS S3, MinIO, Cloudflare R2, Supabase S3 gateway, etc.)
	// Uploads are disabled when the access key pair is missing.
	S3Region               string
	S3AccessKey            string
	S3SecretKey            string
	S3Endpoint             string
	S3PublicBucket         string
	S3PrivateBucket        string
	S3PublicURL            string // Optional: base URL of the public bucket (CDN, Supabase public path)
	S3PresignExpiryPrivate time.Duration
}

// loader accumulates missing required variables so they are all reported at once.
type loader struct {
	missing []string
}

// Load reads the environment (and .env when present) into a Config.
// Every missing required variable is reported in the returned error.
func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	l := &loader{}

	cfg := &Config{
		// Application
		AppName:      envString("APP_NAME", "Portfolio Cheick Ahmed Thiam"),
		AppEnv:       l.required("APP_ENV"), // 'development', 'production' or 'test'
		Port:         envString("PORT", "5000"),
		FrontendURLs: envList(l.required("FRONTEND_URL")),

		TrustProxyHops: envInt("TRUST_PROXY_HOPS", 1),

		// Database
		DBDriver:      envString("DB_DRIVER", "sqlite"),
		DBConnection:  envString("DB_CONNECTION", envString("MONGODB_URI", "./data/portfolio.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")),
		MongoDatabase: envString("MONGODB_DATABASE", "portfolio"),

		// Security
		JWTSecret:          l.required("JWT_SECRET"),
		JWTExpiry:          envDuration("JWT_EXPIRY", 168*time.Hour), // 7 days
		// Server-side idle expiry is opt-in; 0 leaves tokens valid until JWT_EXPIRY
		SessionIdleTimeout: envDuration("SESSION_IDLE_TIMEOUT", 0),

		// Admin
		AdminEmail:    strings.ToLower(l.required("ADMIN_EMAIL")),
		AdminPassword: envString("ADMIN_PASSWORD", ""),
		AdminName:     envString("ADMIN_NAME", "Cheick Ahmed Thiam"),

		// Email (RESEND_API_KEY optional in development, required in production)
		EmailFrom:          envString("EMAIL_FROM", "Portfolio Cheick Ahmed Thiam <noreply@cheickthiam.com>"),
		ResendAPIKey:       envString("RESEND_API_KEY", ""),
		EmailRatePerSecond: envFloat("EMAIL_RATE_PER_SECOND", 2),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),

		// Storage
		S3Region:               envString("S3_REGION", "us-east-1"),
		S3AccessKey:            envString("S3_ACCESS_KEY", ""),
		S3SecretKey:            envString("S3_SECRET_KEY", ""),
		S3Endpoint:             envString("S3_ENDPOINT", ""),
		S3PublicBucket:         envString("S3_PUBLIC_BUCKET", "images"),
		S3PrivateBucket:        envString("S3_PRIVATE_BUCKET", "certifications"),
		S3PublicURL:            envString("S3_PUBLIC_URL", ""),
		S3PresignExpiryPrivate: envDuration("S3_PRESIGN_EXPIRY_PRIVATE", 1*time.Hour),
	}

	if len(l.missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(l.missing, ", "))
	}

	if cfg.IsProduction() {
		err = validateProduction(cfg)
		if err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// validateProduction ensures all required services are configured for production deployments.
// Development allows email to fall back to log mode for easier local testing.
func validateProduction(cfg *Config) error {
	var errs []error
	if cfg.ResendAPIKey == "" {
		errs = append(errs, errors.New("production deployment requires RESEND_API_KEY (set APP_ENV=development for email log mode)"))
	}
	if len(cfg.JWTSecret) < 32 {
		errs = append(errs, errors.New("production deployment requires JWT_SECRET of at least 32 characters"))
	}
	return errors.Join(errs...)
}

func (l *loader) required(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	l.missing = append(l.missing, key)
	return ""
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, strings.TrimSuffix(part, "/"))
		}
	}
	return out
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil || i < 0 {
		slog.Warn("config invalid integer, using default", "key", key, "value", v, "default", def)
		return def
	}
	return i
}

func envFloat(key string, def float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("config invalid float, using default", "key", key, "value", v, "default", def)
		return def
	}
	return f
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// StorageConfigured reports whether object-store credentials were provided.
func (c *Config) StorageConfigured() bool {
	return c.S3AccessKey != "" && c.S3SecretKey != ""
}

// Sanitized returns a copy of the config with only public/safe fields.
// Safe to expose in request contexts and error responders.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName:        c.AppName,
		AppEnv:         c.AppEnv,
		Port:           c.Port,
		FrontendURLs:   c.FrontendURLs,
		TrustProxyHops: c.TrustProxyHops,
		DBDriver:       c.DBDriver,
		S3Endpoint:     c.S3Endpoint,
		S3PublicURL:    c.S3PublicURL,
	}
}
