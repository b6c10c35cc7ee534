package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config contains application-wide settings sourced from the environment.
type Config struct {
	DatabaseURL    string
	Addr           string
	JWTSecret      string
	AllowedOrigins []string

	Environment string
	LogLevel    string
	LogFormat   string

	RateLimitMax    int
	RateLimitWindow time.Duration
}

// Development reports whether the app runs with development error bodies.
func (c Config) Development() bool {
	return c.Environment == "development"
}

func loadConfig() (Config, error) {
	_ = godotenv.Load("config/local.env")

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return Config{}, errors.New("DATABASE_URL env var is required")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return Config{}, errors.New("JWT_SECRET env var is required")
	}

	addr := fmt.Sprintf(":%s", envOrDefault("PORT", "8080"))

	origins := parseAllowedOrigins(envOrDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173"))

	limitMax, err := strconv.Atoi(envOrDefault("RATE_LIMIT_MAX", "100"))
	if err != nil {
		return Config{}, fmt.Errorf("parse RATE_LIMIT_MAX: %w", err)
	}
	limitWindow, err := time.ParseDuration(envOrDefault("RATE_LIMIT_WINDOW", "15m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse RATE_LIMIT_WINDOW: %w", err)
	}

	return Config{
		DatabaseURL:     dsn,
		Addr:            addr,
		JWTSecret:       secret,
		AllowedOrigins:  origins,
		Environment:     envOrDefault("APP_ENV", "production"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		RateLimitMax:    limitMax,
		RateLimitWindow: limitWindow,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func parseAllowedOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	var origins []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
