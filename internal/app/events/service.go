package events

import (
	"context"

	"blocktix/internal/catalog"
)

// Store describes the persistence operations required by the event service.
type Store interface {
	ListEvents(ctx context.Context) ([]catalog.Event, error)
	GetEvent(ctx context.Context, id string) (catalog.Event, error)
}

// Service exposes catalog reads. The server never filters or paginates;
// that lives client side.
type Service interface {
	List(ctx context.Context) ([]catalog.Event, error)
	Get(ctx context.Context, id string) (catalog.Event, error)
}

type service struct {
	store Store
}

// New wires a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) ([]catalog.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListEvents(ctx)
}

func (s *service) Get(ctx context.Context, id string) (catalog.Event, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Event{}, err
	}
	return s.store.GetEvent(ctx, id)
}
