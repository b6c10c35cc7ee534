package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimiter enforces a fixed-window request cap per client address and
// reports its state through standard RateLimit-* headers.
type RateLimiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	windows map[string]*clientWindow
}

type clientWindow struct {
	start time.Time
	count int
}

// NewRateLimiter caps each client at limit requests per window.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:   limit,
		window:  window,
		now:     time.Now,
		windows: make(map[string]*clientWindow),
	}
}

// Middleware applies the limit and sets RateLimit-Limit,
// RateLimit-Remaining, and RateLimit-Reset on every response. Over-limit
// requests get 429 without reaching the handler.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		remaining, reset, allowed := rl.take(clientAddr(r))

		w.Header().Set("RateLimit-Limit", strconv.Itoa(rl.limit))
		w.Header().Set("RateLimit-Remaining", strconv.Itoa(remaining))
		w.Header().Set("RateLimit-Reset", strconv.Itoa(int(reset.Seconds()+0.5)))

		if !allowed {
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// take consumes one slot for the client, returning remaining slots, time
// until the window resets, and whether the request is allowed.
func (rl *RateLimiter) take(client string) (int, time.Duration, bool) {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	win, ok := rl.windows[client]
	if !ok || now.Sub(win.start) >= rl.window {
		win = &clientWindow{start: now}
		rl.windows[client] = win
	}

	reset := rl.window - now.Sub(win.start)
	if win.count >= rl.limit {
		return 0, reset, false
	}
	win.count++
	return rl.limit - win.count, reset, true
}

func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
