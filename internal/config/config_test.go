package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func validConfigForTest() *Config {
	return &Config{
		Env:                       "development",
		HTTPPort:                  "8081",
		DatabaseURL:               "postgres://x",
		JWTIssuer:                 "iss",
		JWTAudience:               "aud",
		JWTSecret:                 "abcdefghijklmnopqrstuvwxyz123456",
		SessionTTL:                24 * time.Hour,
		SessionCookieName:         "token",
		CookieSecure:              true,
		CookieSameSite:            "lax",
		PasswordHashTime:          3,
		PasswordHashMemoryKiB:     64 * 1024,
		PasswordHashThreads:       2,
		AuthRateLimitPerMin:       30,
		APIRateLimitPerMin:        120,
		StorageBackend:            "local",
		UploadDir:                 "uploads",
		MaxUploadBytes:            5 << 20,
		ReadinessProbeTimeout:     time.Second,
		OTELExporterOTLPEndpoint:  "localhost:4317",
		OTELTraceSamplingRatio:    1.0,
		OTELMetricsExportInterval: 10 * time.Second,
		OTELLogLevel:              "info",
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := validConfigForTest().Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	cfg := validConfigForTest()
	cfg.DatabaseURL = ""
	cfg.JWTSecret = "short"
	cfg.CookieSameSite = "none"
	cfg.CookieSecure = false
	cfg.StorageBackend = "ftp"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{
		"DATABASE_URL is required",
		"JWT_SECRET must be at least 32 chars",
		"COOKIE_SAMESITE=none requires COOKIE_SECURE=true",
		"STORAGE_BACKEND must be one of local, minio",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %q", want, err.Error())
		}
	}
}

func TestValidateMinIORequiresCredentials(t *testing.T) {
	cfg := validConfigForTest()
	cfg.StorageBackend = "minio"
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "MINIO_ENDPOINT") {
		t.Fatalf("expected minio validation error, got %v", err)
	}
	cfg.MinIOEndpoint = "localhost:9000"
	cfg.MinIOAccessKey = "minioadmin"
	cfg.MinIOSecretKey = "minioadmin"
	cfg.MinIOBucket = "profile-pictures"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid minio config, got %v", err)
	}
}

func TestValidateSessionTTLBounds(t *testing.T) {
	cfg := validConfigForTest()
	cfg.SessionTTL = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected zero session ttl to be rejected")
	}
	cfg.SessionTTL = 8 * 24 * time.Hour
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected oversized session ttl to be rejected")
	}
}

func TestLoadReadsEnvironmentAndDotenvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	content := "DATABASE_URL=postgres://from-file\nJWT_SECRET=abcdefghijklmnopqrstuvwxyz123456\nHTTP_PORT=9999\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("ENV_FILE", envFile)
	t.Setenv("HTTP_PORT", "7000")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("COOKIE_SAMESITE", "Strict")
	// godotenv sets variables process-wide; register them so t.Setenv restores them.
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("DATABASE_URL")
	os.Unsetenv("JWT_SECRET")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DatabaseURL != "postgres://from-file" {
		t.Fatalf("expected database url from env file, got %q", cfg.DatabaseURL)
	}
	if cfg.HTTPPort != "7000" {
		t.Fatalf("expected process env to win over env file, got %q", cfg.HTTPPort)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "http://b.test" {
		t.Fatalf("unexpected cors origins %#v", cfg.CORSAllowedOrigins)
	}
	if cfg.CookieSameSite != "strict" {
		t.Fatalf("expected normalized same-site, got %q", cfg.CookieSameSite)
	}
	if cfg.SessionTTL != 24*time.Hour || cfg.SessionCookieName != "token" {
		t.Fatalf("unexpected session defaults ttl=%v cookie=%q", cfg.SessionTTL, cfg.SessionCookieName)
	}
	if cfg.OTELEnvironment != cfg.Env {
		t.Fatalf("expected otel environment to default to app env, got %q", cfg.OTELEnvironment)
	}
}

func TestLoadEnvFileMissingIsNotAnError(t *testing.T) {
	if err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("expected missing env file to be ignored, got %v", err)
	}
}

func TestLoadForToolsOnlyNeedsDatabase(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("DATABASE_URL", "postgres://localhost/volunteer")
	t.Setenv("JWT_SECRET", "short")
	t.Setenv("STORAGE_BACKEND", "ftp")

	if _, err := Load(); err == nil {
		t.Fatal("expected full load to reject short secret and unknown storage backend")
	}
	cfg, err := LoadForTools()
	if err != nil {
		t.Fatalf("load for tools: %v", err)
	}
	if cfg.DatabaseURL != "postgres://localhost/volunteer" {
		t.Fatalf("unexpected database url %q", cfg.DatabaseURL)
	}

	t.Setenv("DATABASE_URL", "  ")
	if _, err := LoadForTools(); err == nil || !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Fatalf("expected DATABASE_URL error, got %v", err)
	}
}
