package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pammu-27/sparsha-backend/internal/pkg/validator"
)

const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

const (
	defaultPort            = "5000"
	defaultDatabaseURL     = "gallery.db"
	defaultStorageBackend  = StorageLocal
	defaultUploadDir       = "./uploads"
	defaultUploadURLPrefix = "/uploads"
	defaultMaxUploadBytes  = "52428800" // 50 MiB
	defaultS3Region        = "us-east-1"
	defaultS3Bucket        = "gallery"
	defaultS3PathStyle     = "true"
	defaultAdminTokenTTL   = "12h"
	defaultMetricsEnabled  = "true"
	defaultLogLevel        = "info"
)

// DefaultAllowedOrigins are always admitted by the CORS gate.
var DefaultAllowedOrigins = []string{
	"http://localhost:3000",
	"https://sparsha-fabrication.vercel.app",
}

type Config struct {
	AppEnv      string
	Port        string `validate:"required,numeric"`
	DatabaseURL string `validate:"required"`

	StorageBackend  string `validate:"oneof=local s3"`
	UploadDir       string `validate:"required_if=StorageBackend local"`
	UploadURLPrefix string `validate:"required_if=StorageBackend local"`
	MaxUploadBytes  int64  `validate:"gt=0"`

	S3Endpoint        string `validate:"required_if=StorageBackend s3"`
	S3Region          string `validate:"required_if=StorageBackend s3"`
	S3Bucket          string `validate:"required_if=StorageBackend s3"`
	S3AccessKeyID     string `validate:"required_if=StorageBackend s3"`
	S3SecretAccessKey string `validate:"required_if=StorageBackend s3"`
	S3PublicBaseURL   string `validate:"omitempty,url"`
	S3UsePathStyle    bool

	AllowedOrigins []string `validate:"dive,required"`

	JWTSecret         string
	AdminPasswordHash string
	AdminTokenTTL     time.Duration `validate:"gt=0"`

	MetricsEnabled bool
	LogLevel       string `validate:"oneof=debug info warn error"`
}

// AdminEnabled reports whether protected routes require an admin token.
func (c *Config) AdminEnabled() bool {
	return c.JWTSecret != "" && c.AdminPasswordHash != ""
}

func (c *Config) IsRelease() bool {
	return isProdLike(c.AppEnv)
}

func Load() (*Config, error) {
	cfg := &Config{}
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))

	cfg.StorageBackend = strings.ToLower(strings.TrimSpace(getEnv("STORAGE_BACKEND", defaultStorageBackend)))
	cfg.UploadDir = strings.TrimSpace(getEnv("UPLOAD_DIR", defaultUploadDir))
	cfg.UploadURLPrefix = strings.TrimRight(strings.TrimSpace(getEnv("UPLOAD_URL_PREFIX", defaultUploadURLPrefix)), "/")

	var err error
	cfg.MaxUploadBytes, err = parseInt64Env("MAX_UPLOAD_BYTES", defaultMaxUploadBytes)
	if err != nil {
		return nil, err
	}

	cfg.S3Endpoint = strings.TrimSpace(os.Getenv("S3_ENDPOINT"))
	cfg.S3Region = strings.TrimSpace(getEnv("S3_REGION", defaultS3Region))
	cfg.S3Bucket = strings.TrimSpace(getEnv("S3_BUCKET", defaultS3Bucket))
	cfg.S3AccessKeyID = strings.TrimSpace(os.Getenv("S3_ACCESS_KEY_ID"))
	cfg.S3SecretAccessKey = strings.TrimSpace(os.Getenv("S3_SECRET_ACCESS_KEY"))
	cfg.S3PublicBaseURL = strings.TrimRight(strings.TrimSpace(os.Getenv("S3_PUBLIC_BASE_URL")), "/")
	cfg.S3UsePathStyle = parseBoolEnv("S3_USE_PATH_STYLE", defaultS3PathStyle)

	cfg.AllowedOrigins = allowedOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	cfg.JWTSecret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	cfg.AdminPasswordHash = strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH"))
	cfg.AdminTokenTTL, err = parseDurationEnv("ADMIN_TOKEN_TTL", defaultAdminTokenTTL)
	if err != nil {
		return nil, err
	}

	cfg.MetricsEnabled = parseBoolEnv("METRICS_ENABLED", defaultMetricsEnabled)
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(getEnv("LOG_LEVEL", defaultLogLevel)))

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if errs := validator.Validate(cfg); errs != nil {
		fields := make([]string, 0, len(errs))
		for field, tag := range errs {
			fields = append(fields, fmt.Sprintf("%s (%s)", field, tag))
		}
		sort.Strings(fields)
		return fmt.Errorf("invalid config: %s", strings.Join(fields, ", "))
	}

	// Half-configured admin gate would silently leave routes open.
	if (cfg.JWTSecret == "") != (cfg.AdminPasswordHash == "") {
		return fmt.Errorf("JWT_SECRET and ADMIN_PASSWORD_HASH must be set together")
	}
	if isProdLike(cfg.AppEnv) && cfg.StorageBackend == StorageLocal {
		return fmt.Errorf("in prod/release STORAGE_BACKEND must be %q", StorageS3)
	}
	return nil
}

func allowedOrigins(extra string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, len(DefaultAllowedOrigins))
	add := func(o string) {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "" || seen[o] {
			return
		}
		seen[o] = true
		out = append(out, o)
	}
	for _, o := range DefaultAllowedOrigins {
		add(o)
	}
	// CORS_ALLOWED_ORIGINS=https://app.com,https://admin.app.com
	for _, o := range strings.Split(extra, ",") {
		add(o)
	}
	return out
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseInt64Env(name, fallback string) (int64, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func parseBoolEnv(name, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
