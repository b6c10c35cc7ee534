package main

import (
	"net/http"
	"strings"

	"blocktix/internal/app/contact"
	"blocktix/internal/app/events"
	"blocktix/internal/app/users"
	"blocktix/internal/auth"
	"blocktix/internal/httpapi"
	"blocktix/internal/metrics"
	"blocktix/internal/middleware"
	"blocktix/internal/store"
)

func newHTTPHandler(cfg Config, dataStore *store.Store) http.Handler {
	tokens := auth.NewTokenManager(cfg.JWTSecret)

	eventSvc := events.New(dataStore)
	userSvc := users.New(dataStore, tokens)
	contactSvc := contact.New(dataStore)

	apiMetrics := metrics.New()
	limiter := middleware.NewRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", apiMetrics.Handler())
	mux.Handle("/", httpapi.New(eventSvc, userSvc, contactSvc, cfg.Development()).Routes())

	var handler http.Handler = mux
	handler = apiMetrics.Middleware(handler)
	handler = limiter.Middleware(handler)
	handler = middleware.RequestLogging()(handler)
	handler = middleware.Recovery()(handler)

	return withCORS(cfg.AllowedOrigins, handler)
}

func withCORS(allowedOrigins []string, next http.Handler) http.Handler {
	originAllowed := func(origin string) bool {
		if len(allowedOrigins) == 0 || origin == "" {
			return false
		}
		for _, o := range allowedOrigins {
			if strings.EqualFold(o, origin) {
				return true
			}
		}
		return false
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Authorization")
			w.Header().Set("Access-Control-Max-Age", "3600")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
