package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContactSubmission is a stored contact-form entry.
type ContactSubmission struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject,omitempty"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// CreateContactSubmission stores a contact-form entry. Name, email, and
// message are required; subject is optional. Validation failure writes
// nothing.
func (s *Store) CreateContactSubmission(ctx context.Context, name, email, subject, message string) (ContactSubmission, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)
	if name == "" || email == "" || message == "" {
		return ContactSubmission{}, ErrMissingFields
	}

	sub := ContactSubmission{
		ID:      uuid.NewString(),
		Name:    name,
		Email:   email,
		Subject: strings.TrimSpace(subject),
		Message: message,
	}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO contact_submissions (id, name, email, subject, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING submitted_at
	`, sub.ID, sub.Name, sub.Email, sub.Subject, sub.Message).Scan(&sub.SubmittedAt)
	if err != nil {
		return ContactSubmission{}, fmt.Errorf("insert contact submission: %w", err)
	}

	return sub, nil
}
