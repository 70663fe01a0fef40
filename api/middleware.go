package api

import (
	"log"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimiter applies a fixed request window per client address
type RateLimiter struct {
	requests map[string]*ClientRequests
	mu       sync.Mutex

	maxRequests int
	window      time.Duration
	now         func() time.Time
}

type ClientRequests struct {
	count    int
	lastSeen time.Time
}

func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		requests:    make(map[string]*ClientRequests),
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
	}
}

func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientIP := r.RemoteAddr
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			clientIP = host
		}

		allowed, remaining, reset := l.allow(clientIP)

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.maxRequests))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		w.Header().Set("X-RateLimit-Reset", reset.UTC().Format(time.RFC3339))
		if !allowed {
			http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (l *RateLimiter) allow(clientIP string) (bool, int, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Clean up old entries
	now := l.now()
	for ip, req := range l.requests {
		if now.Sub(req.lastSeen) > l.window {
			delete(l.requests, ip)
		}
	}

	client, exists := l.requests[clientIP]
	if !exists {
		client = &ClientRequests{lastSeen: now}
		l.requests[clientIP] = client
	}

	if client.count >= l.maxRequests {
		return false, 0, client.lastSeen.Add(l.window)
	}

	client.count++
	client.lastSeen = now
	return true, l.maxRequests - client.count, now.Add(l.window)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

// LogRequests writes one access log line per request
func LogRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %d %v", r.Method, r.URL.RequestURI(), rec.status, time.Since(start).Round(time.Microsecond))
	})
}
