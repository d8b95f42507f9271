package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/baechuer/blog-api/internal/infrastructure/redis"
	"github.com/baechuer/blog-api/internal/transport/http/response"
)

type stubLimiter struct {
	dec  redis.Decision
	err  error
	keys []string
}

func (s *stubLimiter) AllowFixedWindow(_ context.Context, key string, limit int, _ time.Duration) (redis.Decision, error) {
	s.keys = append(s.keys, key)
	return s.dec, s.err
}

func runLimited(t *testing.T, limiter RateLimiter) *httptest.ResponseRecorder {
	t.Helper()

	writer := response.NewWriter(false)
	h := RateLimitFixedWindow(limiter, FixedWindowConfig{RouteKey: "login", Limit: 5, Window: time.Minute}, writer.WriteError)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit_Allowed(t *testing.T) {
	t.Parallel()

	rec := runLimited(t, &stubLimiter{dec: redis.Decision{Allowed: true}})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRateLimit_Denied(t *testing.T) {
	t.Parallel()

	rec := runLimited(t, &stubLimiter{dec: redis.Decision{Allowed: false, RetryAfter: 30 * time.Second}})
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") != "30" {
		t.Fatalf("Retry-After = %q", rec.Header().Get("Retry-After"))
	}
}

func TestRateLimit_LimiterErrorFailsOpen(t *testing.T) {
	t.Parallel()

	rec := runLimited(t, &stubLimiter{err: context.DeadlineExceeded})
	if rec.Code != http.StatusOK {
		t.Fatalf("limiter failure must fail open, got %d", rec.Code)
	}
}

func TestRateLimit_NilLimiterPassesThrough(t *testing.T) {
	t.Parallel()

	rec := runLimited(t, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRateLimit_KeyUsesIPForAnonymous(t *testing.T) {
	t.Parallel()

	lim := &stubLimiter{dec: redis.Decision{Allowed: true}}
	runLimited(t, lim)

	if len(lim.keys) != 1 {
		t.Fatalf("expected one limiter call, got %d", len(lim.keys))
	}
	if got := lim.keys[0]; !strings.Contains(got, "login") || !strings.Contains(got, "ip:10.0.0.1") {
		t.Fatalf("unexpected key %q", got)
	}
}
