package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrAuthFailed indicates the identity provider rejected the credentials.
var ErrAuthFailed = errors.New("authentication failed")

// UserIdentity describes the signed-in user.
type UserIdentity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Credentials is a provider-issued session: the bearer token plus the
// identity it was issued for.
type Credentials struct {
	Token string
	User  UserIdentity
}

// AuthClient is the capability surface required from the identity provider.
type AuthClient interface {
	Signup(ctx context.Context, name, email, password string) (Credentials, error)
	Login(ctx context.Context, email, password string) (Credentials, error)
}

// AuthSession tracks the signed-in user for the lifetime of the process.
// Views re-evaluate their purchase decision whenever it changes.
type AuthSession struct {
	client AuthClient

	mu          sync.Mutex
	creds       *Credentials
	subscribers []func(*UserIdentity)
}

// NewAuthSession wires the session to an identity provider client.
func NewAuthSession(client AuthClient) *AuthSession {
	return &AuthSession{client: client}
}

// Signup registers a new account and signs the user in. On failure nothing
// about the current session changes.
func (s *AuthSession) Signup(ctx context.Context, name, email, password string) (UserIdentity, error) {
	creds, err := s.client.Signup(ctx, name, email, password)
	if err != nil {
		return UserIdentity{}, fmt.Errorf("signup: %w", err)
	}
	s.setCredentials(creds)
	return creds.User, nil
}

// Login authenticates and establishes the session. On failure the previous
// session, if any, is left intact.
func (s *AuthSession) Login(ctx context.Context, email, password string) (UserIdentity, error) {
	creds, err := s.client.Login(ctx, email, password)
	if err != nil {
		return UserIdentity{}, fmt.Errorf("login: %w", err)
	}
	s.setCredentials(creds)
	return creds.User, nil
}

// Logout clears the session.
func (s *AuthSession) Logout() {
	s.mu.Lock()
	s.creds = nil
	subscribers := make([]func(*UserIdentity), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(nil)
	}
}

// CurrentUser returns the signed-in identity, if any.
func (s *AuthSession) CurrentUser() (UserIdentity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.creds == nil {
		return UserIdentity{}, false
	}
	return s.creds.User, true
}

// Token returns the bearer token for authenticated requests.
func (s *AuthSession) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.creds == nil {
		return "", false
	}
	return s.creds.Token, true
}

// Authenticated reports whether a user is signed in.
func (s *AuthSession) Authenticated() bool {
	_, ok := s.CurrentUser()
	return ok
}

// Subscribe registers a callback invoked with the new identity on every
// change, nil meaning signed out. The current state is delivered
// immediately.
func (s *AuthSession) Subscribe(fn func(*UserIdentity)) {
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	var current *UserIdentity
	if s.creds != nil {
		u := s.creds.User
		current = &u
	}
	s.mu.Unlock()
	fn(current)
}

func (s *AuthSession) setCredentials(creds Credentials) {
	s.mu.Lock()
	s.creds = &creds
	subscribers := make([]func(*UserIdentity), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	user := creds.User
	for _, fn := range subscribers {
		fn(&user)
	}
}
