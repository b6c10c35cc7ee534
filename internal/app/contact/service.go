package contact

import (
	"context"

	"blocktix/internal/store"
)

// Store describes the persistence operations required by the contact
// service.
type Store interface {
	CreateContactSubmission(ctx context.Context, name, email, subject, message string) (store.ContactSubmission, error)
}

// Service accepts contact-form submissions.
type Service interface {
	Submit(ctx context.Context, name, email, subject, message string) (store.ContactSubmission, error)
}

type service struct {
	store Store
}

// New wires a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Submit(ctx context.Context, name, email, subject, message string) (store.ContactSubmission, error) {
	if err := ctx.Err(); err != nil {
		return store.ContactSubmission{}, err
	}
	return s.store.CreateContactSubmission(ctx, name, email, subject, message)
}
