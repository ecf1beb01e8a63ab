package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"
)

type mockLimiter struct {
	allow bool
	retry time.Duration
	err   error
}

func (m mockLimiter) Allow(context.Context, string, int, time.Duration) (Decision, error) {
	return Decision{
		Allowed:    m.allow,
		RetryAfter: m.retry,
		Remaining:  0,
		ResetAt:    time.Now().Add(m.retry),
	}, m.err
}

type recordingLimiter struct {
	lastKey string
	allow   bool
}

func (r *recordingLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) (Decision, error) {
	r.lastKey = key
	return Decision{
		Allowed:   r.allow,
		Remaining: max(limit-1, 0),
		ResetAt:   time.Now().Add(window),
	}, nil
}

type stubVerifier struct {
	token  string
	userID uint
}

func (s stubVerifier) Verify(token string) (uint, error) {
	if token != s.token {
		return 0, errors.New("invalid token")
	}
	return s.userID, nil
}

func serveLimited(t *testing.T, rl *RateLimiter, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	h := rl.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req.RemoteAddr = "10.0.0.1:1111"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestDistributedRateLimiterFailOpenOnBackendError(t *testing.T) {
	rl := NewDistributedRateLimiter(mockLimiter{err: errors.New("redis down")}, 10, time.Minute, FailOpen, "api")
	rr := serveLimited(t, rl, httptest.NewRequest(http.MethodGet, "/x", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected fail-open to allow request, got %d", rr.Code)
	}
}

func TestDistributedRateLimiterFailClosedOnBackendError(t *testing.T) {
	rl := NewDistributedRateLimiter(mockLimiter{err: errors.New("redis down")}, 10, time.Minute, FailClosed, "auth")
	rr := serveLimited(t, rl, httptest.NewRequest(http.MethodPost, "/login", nil))
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected fail-closed to reject request, got %d", rr.Code)
	}
	if got := rr.Header().Get("Retry-After"); got != "60" {
		t.Fatalf("expected Retry-After=60, got %q", got)
	}
}

func TestDistributedRateLimiterDeniedSetsRetryAfter(t *testing.T) {
	rl := NewDistributedRateLimiter(mockLimiter{allow: false, retry: 5 * time.Second}, 1, time.Minute, FailClosed, "api")
	rr := serveLimited(t, rl, httptest.NewRequest(http.MethodGet, "/x", nil))
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rr.Code)
	}
	if got := rr.Header().Get("Retry-After"); got != "5" {
		t.Fatalf("expected Retry-After=5, got %q", got)
	}
	if got := rr.Header().Get("X-RateLimit-Limit"); got != "1" {
		t.Fatalf("expected X-RateLimit-Limit=1, got %q", got)
	}
	if got := rr.Header().Get("X-RateLimit-Remaining"); got != "0" {
		t.Fatalf("expected X-RateLimit-Remaining=0, got %q", got)
	}
	if got := rr.Header().Get("X-RateLimit-Reset"); got == "" {
		t.Fatal("expected X-RateLimit-Reset header")
	} else if _, err := strconv.ParseInt(got, 10, 64); err != nil {
		t.Fatalf("expected numeric X-RateLimit-Reset, got %q", got)
	}
}

func TestDistributedRateLimiterAllowedSetsRateLimitHeaders(t *testing.T) {
	rl := NewDistributedRateLimiter(mockLimiter{allow: true, retry: time.Minute}, 3, time.Minute, FailClosed, "api")
	rr := serveLimited(t, rl, httptest.NewRequest(http.MethodGet, "/x", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if got := rr.Header().Get("X-RateLimit-Limit"); got != "3" {
		t.Fatalf("expected X-RateLimit-Limit=3, got %q", got)
	}
	if got := rr.Header().Get("Retry-After"); got != "" {
		t.Fatalf("did not expect Retry-After on allowed response, got %q", got)
	}
}

func TestRateLimiterKeysAreScoped(t *testing.T) {
	limiter := &recordingLimiter{allow: true}
	rl := NewDistributedRateLimiter(limiter, 10, time.Minute, FailClosed, "auth")
	serveLimited(t, rl, httptest.NewRequest(http.MethodPost, "/login", nil))
	if limiter.lastKey != "auth:10.0.0.1" {
		t.Fatalf("expected scoped ip key, got %q", limiter.lastKey)
	}
}

func TestSubjectOrIPKeyFunc(t *testing.T) {
	verifier := stubVerifier{token: "good", userID: 42}

	t.Run("cookie token", func(t *testing.T) {
		limiter := &recordingLimiter{allow: true}
		rl := NewDistributedRateLimiterWithKey(limiter, 10, time.Minute, FailClosed, "api", SubjectOrIPKeyFunc(verifier, "token"))
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: "good"})
		serveLimited(t, rl, req)
		if limiter.lastKey != "api:sub:42" {
			t.Fatalf("expected subject key, got %q", limiter.lastKey)
		}
	})

	t.Run("invalid bearer falls back to ip", func(t *testing.T) {
		limiter := &recordingLimiter{allow: true}
		rl := NewDistributedRateLimiterWithKey(limiter, 10, time.Minute, FailClosed, "api", SubjectOrIPKeyFunc(verifier, "token"))
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		serveLimited(t, rl, req)
		if limiter.lastKey != "api:10.0.0.1" {
			t.Fatalf("expected IP key fallback, got %q", limiter.lastKey)
		}
	})
}

func TestLocalFixedWindowLimiter(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := newLocalFixedWindowLimiter(func() time.Time { return now })
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		d, err := limiter.Allow(ctx, "k", 2, time.Minute)
		if err != nil || !d.Allowed {
			t.Fatalf("request %d: expected allowed, got %+v err=%v", i, d, err)
		}
		if d.Remaining != 1-i {
			t.Fatalf("request %d: expected remaining %d, got %d", i, 1-i, d.Remaining)
		}
	}

	now = now.Add(20 * time.Second)
	d, _ := limiter.Allow(ctx, "k", 2, time.Minute)
	if d.Allowed {
		t.Fatal("expected third request in window to be denied")
	}
	if d.RetryAfter != 40*time.Second {
		t.Fatalf("expected 40s retry-after, got %s", d.RetryAfter)
	}

	if d, _ := limiter.Allow(ctx, "other", 2, time.Minute); !d.Allowed {
		t.Fatal("expected separate key to have its own window")
	}

	now = now.Add(41 * time.Second)
	if d, _ := limiter.Allow(ctx, "k", 2, time.Minute); !d.Allowed {
		t.Fatal("expected new window to allow again")
	}
}

func TestRetryAfterHeader(t *testing.T) {
	cases := map[time.Duration]string{
		0:                       "1",
		-time.Second:            "1",
		100 * time.Millisecond:  "1",
		1500 * time.Millisecond: "2",
		30 * time.Second:        "30",
	}
	for in, want := range cases {
		if got := retryAfterHeader(in); got != want {
			t.Fatalf("retryAfterHeader(%s)=%q want %q", in, got, want)
		}
	}
}
