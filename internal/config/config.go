package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	HTTPPort string `env:"HTTP_PORT" envDefault:"8081"`

	DatabaseURL string `env:"DATABASE_URL"`

	JWTIssuer         string        `env:"JWT_ISSUER" envDefault:"volunteer-management-backend"`
	JWTAudience       string        `env:"JWT_AUDIENCE" envDefault:"volunteer-management-web"`
	JWTSecret         string        `env:"JWT_SECRET"`
	SessionTTL        time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	SessionCookieName string        `env:"SESSION_COOKIE_NAME" envDefault:"token"`
	CookieDomain      string        `env:"COOKIE_DOMAIN"`
	CookieSecure      bool          `env:"COOKIE_SECURE" envDefault:"true"`
	CookieSameSite    string        `env:"COOKIE_SAMESITE" envDefault:"lax"`

	CORSAllowedOrigins     []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:5173" envSeparator:","`
	AuthRequireOnMutations bool     `env:"AUTH_REQUIRE_ON_MUTATIONS" envDefault:"true"`

	PasswordHashTime      uint32 `env:"PASSWORD_HASH_TIME" envDefault:"3"`
	PasswordHashMemoryKiB uint32 `env:"PASSWORD_HASH_MEMORY_KIB" envDefault:"65536"`
	PasswordHashThreads   uint8  `env:"PASSWORD_HASH_THREADS" envDefault:"2"`

	AuthRateLimitPerMin   int    `env:"AUTH_RATE_LIMIT_PER_MIN" envDefault:"30"`
	APIRateLimitPerMin    int    `env:"API_RATE_LIMIT_PER_MIN" envDefault:"120"`
	RateLimitRedisEnabled bool   `env:"RATE_LIMIT_REDIS_ENABLED" envDefault:"false"`
	RateLimitRedisPrefix  string `env:"RATE_LIMIT_REDIS_PREFIX" envDefault:"vm_rl"`
	RedisAddr             string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword         string `env:"REDIS_PASSWORD"`
	RedisDB               int    `env:"REDIS_DB" envDefault:"0"`

	StorageBackend     string `env:"STORAGE_BACKEND" envDefault:"local"`
	UploadDir          string `env:"UPLOAD_DIR" envDefault:"uploads"`
	MaxUploadBytes     int64  `env:"MAX_UPLOAD_BYTES" envDefault:"5242880"`
	MinIOEndpoint      string `env:"MINIO_ENDPOINT"`
	MinIOAccessKey     string `env:"MINIO_ACCESS_KEY"`
	MinIOSecretKey     string `env:"MINIO_SECRET_KEY"`
	MinIOBucket        string `env:"MINIO_BUCKET" envDefault:"profile-pictures"`
	MinIOUseSSL        bool   `env:"MINIO_USE_SSL" envDefault:"false"`
	MinIOReadinessPing bool   `env:"MINIO_READINESS_PING" envDefault:"true"`

	ReadinessProbeTimeout        time.Duration `env:"READINESS_PROBE_TIMEOUT" envDefault:"1s"`
	ServerStartGracePeriod       time.Duration `env:"SERVER_START_GRACE_PERIOD" envDefault:"0s"`
	ShutdownTimeout              time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"20s"`
	ShutdownHTTPDrainTimeout     time.Duration `env:"SHUTDOWN_HTTP_DRAIN_TIMEOUT" envDefault:"10s"`
	ShutdownObservabilityTimeout time.Duration `env:"SHUTDOWN_OBSERVABILITY_TIMEOUT" envDefault:"8s"`

	OTELServiceName           string        `env:"OTEL_SERVICE_NAME" envDefault:"volunteer-management-backend"`
	OTELEnvironment           string        `env:"OTEL_ENVIRONMENT"`
	OTELExporterOTLPEndpoint  string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4317"`
	OTELExporterOTLPInsecure  bool          `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"true"`
	OTELMetricsExportInterval time.Duration `env:"OTEL_METRICS_EXPORT_INTERVAL" envDefault:"10s"`
	OTELTraceSamplingRatio    float64       `env:"OTEL_TRACE_SAMPLING_RATIO" envDefault:"1.0"`
	OTELMetricsEnabled        bool          `env:"OTEL_METRICS_ENABLED" envDefault:"true"`
	OTELTracingEnabled        bool          `env:"OTEL_TRACING_ENABLED" envDefault:"true"`
	OTELLogsEnabled           bool          `env:"OTEL_LOGS_ENABLED" envDefault:"true"`
	OTELLogLevel              string        `env:"OTEL_LOG_LEVEL" envDefault:"info"`
}

// Load reads the process environment, after merging an optional dotenv file
// named by ENV_FILE (".env" when unset). Variables already set win.
func Load() (*Config, error) {
	if err := LoadEnvFile(envFilePath()); err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadForTools parses the environment like Load but only requires what a
// database tool needs. Secrets and HTTP settings are not checked.
func LoadForTools() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.normalize()
	if err := cfg.ValidateDatabase(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) ValidateDatabase() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return errors.New("DATABASE_URL is required")
	}
	return nil
}

// LoadEnvFile merges KEY=VALUE pairs from path into the environment.
// A missing file is not an error.
func LoadEnvFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if isNotExist(err) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

func envFilePath() string {
	if p, ok := os.LookupEnv("ENV_FILE"); ok {
		return p
	}
	return ".env"
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

func (c *Config) normalize() {
	c.CookieSameSite = strings.ToLower(strings.TrimSpace(c.CookieSameSite))
	c.StorageBackend = strings.ToLower(strings.TrimSpace(c.StorageBackend))
	c.OTELLogLevel = strings.ToLower(strings.TrimSpace(c.OTELLogLevel))
	if c.OTELEnvironment == "" {
		c.OTELEnvironment = c.Env
	}
	origins := make([]string, 0, len(c.CORSAllowedOrigins))
	for _, o := range c.CORSAllowedOrigins {
		if trim := strings.TrimSpace(o); trim != "" {
			origins = append(origins, trim)
		}
	}
	c.CORSAllowedOrigins = origins
}

func (c *Config) Validate() error {
	var errs []string
	if err := c.ValidateDatabase(); err != nil {
		errs = append(errs, err.Error())
	}
	if len(c.JWTSecret) < 32 {
		errs = append(errs, "JWT_SECRET must be at least 32 chars")
	}
	if c.SessionTTL <= 0 || c.SessionTTL > 7*24*time.Hour {
		errs = append(errs, "SESSION_TTL must be between 1s and 7d")
	}
	if strings.TrimSpace(c.SessionCookieName) == "" {
		errs = append(errs, "SESSION_COOKIE_NAME is required")
	}
	if !isValidSameSite(c.CookieSameSite) {
		errs = append(errs, "COOKIE_SAMESITE must be one of lax, strict, none")
	}
	if c.CookieSameSite == "none" && !c.CookieSecure {
		errs = append(errs, "COOKIE_SAMESITE=none requires COOKIE_SECURE=true")
	}
	if c.PasswordHashTime == 0 {
		errs = append(errs, "PASSWORD_HASH_TIME must be > 0")
	}
	if c.PasswordHashMemoryKiB < 8*1024 {
		errs = append(errs, "PASSWORD_HASH_MEMORY_KIB must be >= 8192")
	}
	if c.PasswordHashThreads == 0 {
		errs = append(errs, "PASSWORD_HASH_THREADS must be > 0")
	}
	if c.AuthRateLimitPerMin <= 0 {
		errs = append(errs, "AUTH_RATE_LIMIT_PER_MIN must be > 0")
	}
	if c.APIRateLimitPerMin <= 0 {
		errs = append(errs, "API_RATE_LIMIT_PER_MIN must be > 0")
	}
	if c.RateLimitRedisEnabled && strings.TrimSpace(c.RedisAddr) == "" {
		errs = append(errs, "REDIS_ADDR is required when RATE_LIMIT_REDIS_ENABLED=true")
	}
	switch c.StorageBackend {
	case "local":
		if strings.TrimSpace(c.UploadDir) == "" {
			errs = append(errs, "UPLOAD_DIR is required when STORAGE_BACKEND=local")
		}
	case "minio":
		if c.MinIOEndpoint == "" || c.MinIOAccessKey == "" || c.MinIOSecretKey == "" || c.MinIOBucket == "" {
			errs = append(errs, "MINIO_ENDPOINT, MINIO_ACCESS_KEY, MINIO_SECRET_KEY and MINIO_BUCKET are required when STORAGE_BACKEND=minio")
		}
	default:
		errs = append(errs, "STORAGE_BACKEND must be one of local, minio")
	}
	if c.MaxUploadBytes <= 0 {
		errs = append(errs, "MAX_UPLOAD_BYTES must be > 0")
	}
	if c.ReadinessProbeTimeout <= 0 {
		errs = append(errs, "READINESS_PROBE_TIMEOUT must be > 0")
	}
	if (c.OTELMetricsEnabled || c.OTELTracingEnabled || c.OTELLogsEnabled) && c.OTELExporterOTLPEndpoint == "" {
		errs = append(errs, "OTEL_EXPORTER_OTLP_ENDPOINT is required when OTel is enabled")
	}
	if c.OTELTraceSamplingRatio < 0 || c.OTELTraceSamplingRatio > 1 {
		errs = append(errs, "OTEL_TRACE_SAMPLING_RATIO must be between 0 and 1")
	}
	if c.OTELMetricsExportInterval <= 0 {
		errs = append(errs, "OTEL_METRICS_EXPORT_INTERVAL must be > 0")
	}
	if !isValidLogLevel(c.OTELLogLevel) {
		errs = append(errs, "OTEL_LOG_LEVEL must be one of debug, info, warn, error")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func isValidSameSite(v string) bool {
	switch v {
	case "lax", "strict", "none":
		return true
	default:
		return false
	}
}

func isValidLogLevel(v string) bool {
	switch strings.ToLower(v) {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}
