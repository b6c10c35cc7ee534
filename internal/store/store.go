// Package store provides persistence backed by Postgres.
package store

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrUserExists signals the email is already registered.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials indicates a login failure.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEventNotFound indicates the event id is unknown.
	ErrEventNotFound = errors.New("event not found")
	// ErrUserNotFound indicates the user id is unknown.
	ErrUserNotFound = errors.New("user not found")
	// ErrMissingFields indicates a required field was empty.
	ErrMissingFields = errors.New("missing required fields")
)

// Store wraps the database handle.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
