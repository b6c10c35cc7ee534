package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterCapsPerClient(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	rl := NewRateLimiter(3, 15*time.Minute)
	rl.now = func() time.Time { return now }

	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/events", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	for i := 0; i < 3; i++ {
		if rec := send("10.0.0.1:1234"); rec.Code != http.StatusOK {
			t.Fatalf("request %d got %d", i+1, rec.Code)
		}
	}

	rec := send("10.0.0.1:1234")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("over-limit request got %d", rec.Code)
	}
	if rec.Header().Get("RateLimit-Remaining") != "0" {
		t.Fatalf("remaining header %q", rec.Header().Get("RateLimit-Remaining"))
	}

	// A different client address has its own window.
	if rec := send("10.0.0.2:1234"); rec.Code != http.StatusOK {
		t.Fatalf("other client got %d", rec.Code)
	}

	// The window resets after it elapses.
	now = now.Add(15 * time.Minute)
	if rec := send("10.0.0.1:1234"); rec.Code != http.StatusOK {
		t.Fatalf("after reset got %d", rec.Code)
	}
}

func TestRateLimiterHeaders(t *testing.T) {
	rl := NewRateLimiter(100, 15*time.Minute)
	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("RateLimit-Limit"); got != "100" {
		t.Fatalf("limit header %q", got)
	}
	if got := rec.Header().Get("RateLimit-Remaining"); got != "99" {
		t.Fatalf("remaining header %q", got)
	}
	if rec.Header().Get("RateLimit-Reset") == "" {
		t.Fatal("missing reset header")
	}
}
