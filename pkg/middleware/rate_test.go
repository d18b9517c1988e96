package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/zhaygo/backend/pkg/middleware"
)

func limited(max int) http.Handler {
	return middleware.RateLimit(max, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func hit(h http.Handler, ip string) int {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.Header.Set("X-Forwarded-For", ip)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimitBlocksAfterMax(t *testing.T) {
	h := limited(2)

	if code := hit(h, "10.0.0.1"); code != http.StatusOK {
		t.Fatalf("first request: %d", code)
	}
	if code := hit(h, "10.0.0.1"); code != http.StatusOK {
		t.Fatalf("second request: %d", code)
	}
	if code := hit(h, "10.0.0.1"); code != http.StatusTooManyRequests {
		t.Errorf("third request: got %d, want 429", code)
	}
}

func TestRateLimitIsPerIP(t *testing.T) {
	h := limited(1)

	if code := hit(h, "10.0.1.1"); code != http.StatusOK {
		t.Fatalf("first ip: %d", code)
	}
	if code := hit(h, "10.0.1.2"); code != http.StatusOK {
		t.Errorf("second ip should have its own budget, got %d", code)
	}
	if code := hit(h, "10.0.1.1"); code != http.StatusTooManyRequests {
		t.Errorf("first ip over budget: got %d, want 429", code)
	}
}
