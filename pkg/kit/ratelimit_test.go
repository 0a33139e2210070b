package kit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func limiterRequest(l *IPRateLimiter, remote string) int {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = remote
	l.Middleware(next).ServeHTTP(rec, req)
	return rec.Code
}

func TestIPRateLimiterBlocksOverLimit(t *testing.T) {
	l := NewIPRateLimiter(2, 60)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	for i := 0; i < 2; i++ {
		if code := limiterRequest(l, "10.0.0.1:5000"); code != http.StatusOK {
			t.Fatalf("request %d status=%d", i+1, code)
		}
	}
	if code := limiterRequest(l, "10.0.0.1:5000"); code != http.StatusTooManyRequests {
		t.Fatalf("status=%d want=429", code)
	}

	// a different IP is counted separately
	if code := limiterRequest(l, "10.0.0.2:5000"); code != http.StatusOK {
		t.Fatalf("second ip status=%d", code)
	}
}

func TestIPRateLimiterWindowSlides(t *testing.T) {
	l := NewIPRateLimiter(1, 60)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	if code := limiterRequest(l, "10.0.0.1:5000"); code != http.StatusOK {
		t.Fatalf("status=%d", code)
	}
	if code := limiterRequest(l, "10.0.0.1:5000"); code != http.StatusTooManyRequests {
		t.Fatalf("status=%d want=429", code)
	}

	now = now.Add(61 * time.Second)
	if code := limiterRequest(l, "10.0.0.1:5000"); code != http.StatusOK {
		t.Fatalf("after window status=%d", code)
	}
}
