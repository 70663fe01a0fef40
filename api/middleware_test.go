package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	h := testRouter(limiter)
	request := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/sites", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	for i := 0; i < 2; i++ {
		if rec := request("10.0.0.1:5000"); rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, rec.Code)
		}
	}

	rec := request("10.0.0.1:5001")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if rec.Header().Get("X-RateLimit-Remaining") != "0" || rec.Header().Get("X-RateLimit-Limit") != "2" {
		t.Fatalf("unexpected rate limit headers %v", rec.Header())
	}

	if rec := request("10.0.0.2:5000"); rec.Code != http.StatusOK {
		t.Fatalf("other client: expected 200, got %d", rec.Code)
	}

	now = now.Add(2 * time.Minute)
	if rec := request("10.0.0.1:5000"); rec.Code != http.StatusOK {
		t.Fatalf("after window: expected 200, got %d", rec.Code)
	}
}

func TestRateLimiterSkipsCharts(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)
	h := testRouter(limiter)

	for i := 0; i < 3; i++ {
		if rec := get(t, h, "/charts/pie.svg"); rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, rec.Code)
		}
	}
}
