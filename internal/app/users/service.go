package users

import (
	"context"

	"blocktix/internal/auth"
	"blocktix/internal/store"
)

// Store describes the persistence operations required by the user service.
type Store interface {
	CreateUser(ctx context.Context, name, email, password string) (store.User, error)
	AuthenticateUser(ctx context.Context, email, password string) (store.User, error)
	UserByID(ctx context.Context, id string) (store.User, error)
}

// Session pairs a bearer token with the account it was issued for.
type Session struct {
	Token string     `json:"token"`
	User  store.User `json:"user"`
}

// Service exposes account workflows.
type Service interface {
	Signup(ctx context.Context, name, email, password string) (Session, error)
	Login(ctx context.Context, email, password string) (Session, error)
	Profile(ctx context.Context, token string) (store.User, error)
}

type service struct {
	store  Store
	tokens *auth.TokenManager
}

// New wires a Service backed by the provided Store and token manager.
func New(store Store, tokens *auth.TokenManager) Service {
	return &service{store: store, tokens: tokens}
}

func (s *service) Signup(ctx context.Context, name, email, password string) (Session, error) {
	user, err := s.store.CreateUser(ctx, name, email, password)
	if err != nil {
		return Session{}, err
	}
	token, err := s.tokens.Issue(user.ID, user.Email, user.Name)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, User: user}, nil
}

func (s *service) Login(ctx context.Context, email, password string) (Session, error) {
	user, err := s.store.AuthenticateUser(ctx, email, password)
	if err != nil {
		return Session{}, err
	}
	token, err := s.tokens.Issue(user.ID, user.Email, user.Name)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, User: user}, nil
}

func (s *service) Profile(ctx context.Context, token string) (store.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return store.User{}, err
	}
	return s.store.UserByID(ctx, claims.UID)
}
