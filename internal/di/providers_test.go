package di

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sandeepkv93/volunteer-management-backend/internal/config"
	"github.com/sandeepkv93/volunteer-management-backend/internal/security"
	"github.com/sandeepkv93/volunteer-management-backend/internal/service"
)

func testJWT() *security.JWTManager {
	return security.NewJWTManager("iss", "aud", "abcdefghijklmnopqrstuvwxyz123456", time.Hour)
}

func newDIUnitTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:di_"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
}

func TestProvideHTTPServer(t *testing.T) {
	cfg := &config.Config{HTTPPort: "9999"}
	srv := provideHTTPServer(cfg, nil)
	if srv.Addr != ":9999" {
		t.Fatalf("unexpected addr: %s", srv.Addr)
	}
	if srv.ReadHeaderTimeout != 5*time.Second {
		t.Fatalf("unexpected read header timeout: %v", srv.ReadHeaderTimeout)
	}
}

func TestProvideRouterDependencies(t *testing.T) {
	cfg := &config.Config{
		CORSAllowedOrigins:     []string{"http://localhost:5173"},
		AuthRateLimitPerMin:    10,
		APIRateLimitPerMin:     100,
		OTELTracingEnabled:     true,
		SessionCookieName:      "token",
		AuthRequireOnMutations: true,
		MaxUploadBytes:         4096,
	}
	dep := provideRouterDependencies(nil, nil, nil, nil, nil, nil, nil, nil, nil, cfg)
	if dep.AuthRateLimitRPM != 10 || dep.APIRateLimitRPM != 100 {
		t.Fatalf("unexpected rate limits: %+v", dep)
	}
	if !dep.EnableOTelHTTP || !dep.AuthRequireOnMutations || dep.MaxUploadBytes != 4096 {
		t.Fatalf("unexpected flags: %+v", dep)
	}
	if dep.TokenVerifier != nil {
		t.Fatal("nil jwt manager must not become a non-nil verifier")
	}

	dep = provideRouterDependencies(nil, nil, nil, nil, nil, testJWT(), nil, nil, nil, cfg)
	if dep.TokenVerifier == nil {
		t.Fatal("expected token verifier")
	}
}

func TestProvideGlobalRateLimiterUsesSubjectOrIP(t *testing.T) {
	cfg := &config.Config{APIRateLimitPerMin: 1, SessionCookieName: "token"}
	jwt := testJWT()
	limiter := provideGlobalRateLimiter(cfg, nil, jwt)

	token1, err := jwt.Issue(11)
	if err != nil {
		t.Fatalf("issue token1: %v", err)
	}
	token2, err := jwt.Issue(22)
	if err != nil {
		t.Fatalf("issue token2: %v", err)
	}
	h := limiter(okHandler())

	send := func(addr, token string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}
	if code := send("10.0.0.1:1111", token1); code != http.StatusOK {
		t.Fatalf("expected first request 200, got %d", code)
	}
	if code := send("10.0.0.2:2222", token1); code != http.StatusTooManyRequests {
		t.Fatalf("expected same subject to be limited across addresses, got %d", code)
	}
	if code := send("10.0.0.1:1111", token2); code != http.StatusOK {
		t.Fatalf("expected different subject to be allowed, got %d", code)
	}
}

func TestProvideGlobalRateLimiterRedisFailOpen(t *testing.T) {
	cfg := &config.Config{RateLimitRedisEnabled: true, RateLimitRedisPrefix: "rl", APIRateLimitPerMin: 5}
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 50 * time.Millisecond})
	t.Cleanup(func() { _ = client.Close() })

	h := provideGlobalRateLimiter(cfg, client, testJWT())(okHandler())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected api traffic to pass when redis is down, got %d", rr.Code)
	}
}

func TestProvideAuthRateLimiterRedisFailClosed(t *testing.T) {
	cfg := &config.Config{RateLimitRedisEnabled: true, RateLimitRedisPrefix: "rl", AuthRateLimitPerMin: 5}
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 50 * time.Millisecond})
	t.Cleanup(func() { _ = client.Close() })

	h := provideAuthRateLimiter(cfg, client)(okHandler())
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected login to be refused when redis is down, got %d", rr.Code)
	}
}

func TestProvideAuthRateLimiterRedisSharesBudget(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	cfg := &config.Config{RateLimitRedisEnabled: true, RateLimitRedisPrefix: "rl", AuthRateLimitPerMin: 1}

	first := provideAuthRateLimiter(cfg, client)(okHandler())
	second := provideAuthRateLimiter(cfg, client)(okHandler())
	for i, h := range []http.Handler{first, second} {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.9:1"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		want := http.StatusOK
		if i == 1 {
			want = http.StatusTooManyRequests
		}
		if rr.Code != want {
			t.Fatalf("instance %d: expected %d, got %d", i, want, rr.Code)
		}
	}
}

func TestProvideRedisClientDisabled(t *testing.T) {
	if client := provideRedisClient(&config.Config{RateLimitRedisEnabled: false}, nil); client != nil {
		t.Fatal("expected nil redis client when redis rate limiting is disabled")
	}
	client := provideRedisClient(&config.Config{RateLimitRedisEnabled: true, RedisAddr: "localhost:6379", RedisDB: 2}, nil)
	if client == nil {
		t.Fatal("expected redis client")
	}
	defer client.Close()
	if opts := client.(*redis.Client).Options(); opts.DB != 2 {
		t.Fatalf("expected db 2, got %d", opts.DB)
	}
}

func TestProvideImageStorage(t *testing.T) {
	images, err := provideImageStorage(&config.Config{StorageBackend: "local", UploadDir: t.TempDir(), MaxUploadBytes: 1024})
	if err != nil {
		t.Fatalf("local storage: %v", err)
	}
	if images.Backend() != "local" {
		t.Fatalf("expected local backend, got %q", images.Backend())
	}
	if _, err := provideImageStorage(&config.Config{StorageBackend: "ftp"}); err == nil {
		t.Fatal("expected unsupported backend error")
	}
}

func TestProvideReadinessProbeRunnerIncludesStorage(t *testing.T) {
	db := newDIUnitTestDB(t)
	images, err := service.NewLocalImageStorage(t.TempDir(), 1024)
	if err != nil {
		t.Fatalf("local storage: %v", err)
	}
	runner := provideReadinessProbeRunner(&config.Config{ReadinessProbeTimeout: time.Second}, db, nil, images)
	ready, results := runner.Ready(context.Background())
	if !ready {
		t.Fatalf("expected ready, got %+v", results)
	}
	names := map[string]bool{}
	for _, r := range results {
		names[r.Name] = true
	}
	if !names["db"] || !names["storage_local"] {
		t.Fatalf("expected db and storage checks, got %+v", results)
	}
}

func TestProvidePasswordHasherUsesConfiguredParams(t *testing.T) {
	hasher := providePasswordHasher(&config.Config{PasswordHashTime: 1, PasswordHashMemoryKiB: 64, PasswordHashThreads: 1})
	encoded, err := hasher.Hash("pw")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	ok, err := hasher.Verify("pw", encoded)
	if err != nil || !ok {
		t.Fatalf("expected verify to succeed, ok=%v err=%v", ok, err)
	}
}

func TestProvideCookieManager(t *testing.T) {
	mgr := provideCookieManager(&config.Config{SessionCookieName: "sid", CookieSecure: true, CookieSameSite: "strict"})
	if mgr.Name != "sid" || !mgr.Secure || mgr.SameSite != http.SameSiteStrictMode {
		t.Fatalf("unexpected cookie manager %+v", mgr)
	}
}
