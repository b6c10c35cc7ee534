// Package session holds the process-wide wallet and auth sessions. Both are
// created once at startup, handed by reference to each view, and mutated
// only through their own methods; views observe changes through Subscribe.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrNoProvider indicates no wallet extension is available.
	ErrNoProvider = errors.New("wallet provider not available")
	// ErrConnectionRejected indicates the user or provider refused the
	// connection. Retrying via Connect is always allowed.
	ErrConnectionRejected = errors.New("wallet connection rejected")
	// ErrNotConnected indicates no wallet session is established.
	ErrNotConnected = errors.New("wallet not connected")
)

// WalletProvider is the narrow capability surface required from a wallet
// extension. The real browser provider is wrapped in an adapter
// implementing it, keeping its shape out of the core.
type WalletProvider interface {
	// RequestAccounts prompts the user and returns the authorized
	// accounts, the first being active.
	RequestAccounts(ctx context.Context) ([]string, error)
	// Accounts returns already-authorized accounts without prompting.
	Accounts(ctx context.Context) ([]string, error)
	// BalanceOf returns the display balance for an account.
	BalanceOf(ctx context.Context, account string) (string, error)
	// OnAccountsChanged registers a callback fired whenever the active
	// account set changes outside this application's control.
	OnAccountsChanged(fn func(accounts []string))
}

// WalletState is the snapshot published to subscribers.
type WalletState struct {
	Connected bool
	Account   string
	Balance   string
}

// WalletSession tracks the wallet connection for the lifetime of the
// process.
type WalletSession struct {
	provider WalletProvider

	mu          sync.Mutex
	state       WalletState
	subscribers []func(WalletState)
}

// NewWalletSession wires the session to a provider and starts listening for
// external account changes. A nil provider is allowed; Connect then fails
// with ErrNoProvider until one exists.
func NewWalletSession(provider WalletProvider) *WalletSession {
	s := &WalletSession{provider: provider}
	if provider != nil {
		provider.OnAccountsChanged(s.handleAccountsChanged)
	}
	return s
}

// Connect prompts the provider for access and establishes the session,
// returning the active account and its balance. Failures are terminal for
// this attempt only; the caller may simply call Connect again.
func (s *WalletSession) Connect(ctx context.Context) (WalletState, error) {
	if s.provider == nil {
		return WalletState{}, ErrNoProvider
	}

	accounts, err := s.provider.RequestAccounts(ctx)
	if err != nil {
		return WalletState{}, fmt.Errorf("%w: %v", ErrConnectionRejected, err)
	}
	if len(accounts) == 0 {
		return WalletState{}, ErrConnectionRejected
	}

	return s.establish(ctx, accounts[0])
}

// Resume silently re-establishes the session when the provider already
// authorized an account, as on application load. It never prompts; with no
// prior authorization it is a no-op.
func (s *WalletSession) Resume(ctx context.Context) error {
	if s.provider == nil {
		return nil
	}
	accounts, err := s.provider.Accounts(ctx)
	if err != nil || len(accounts) == 0 {
		return nil
	}
	_, err = s.establish(ctx, accounts[0])
	return err
}

// Disconnect clears the local session. No provider call is made.
func (s *WalletSession) Disconnect() {
	s.publish(WalletState{})
}

// CurrentAccount returns the active account, if connected.
func (s *WalletSession) CurrentAccount() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Account, s.state.Connected
}

// Balance returns the connected account's balance, if connected.
func (s *WalletSession) Balance() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Balance, s.state.Connected
}

// State returns the current snapshot.
func (s *WalletSession) State() WalletState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Connected reports whether a wallet session is established.
func (s *WalletSession) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Connected
}

// Subscribe registers a callback invoked with every state change. The
// current state is delivered immediately so new views start consistent.
func (s *WalletSession) Subscribe(fn func(WalletState)) {
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	current := s.state
	s.mu.Unlock()
	fn(current)
}

func (s *WalletSession) establish(ctx context.Context, account string) (WalletState, error) {
	balance, err := s.provider.BalanceOf(ctx, account)
	if err != nil {
		return WalletState{}, fmt.Errorf("load balance: %w", err)
	}

	state := WalletState{Connected: true, Account: account, Balance: balance}
	s.publish(state)
	return state, nil
}

// handleAccountsChanged reacts to the provider switching or revoking
// accounts outside the app. An empty account list means disconnect.
func (s *WalletSession) handleAccountsChanged(accounts []string) {
	if len(accounts) == 0 {
		s.Disconnect()
		return
	}

	s.mu.Lock()
	same := s.state.Connected && s.state.Account == accounts[0]
	s.mu.Unlock()
	if same {
		return
	}

	balance := ""
	if s.provider != nil {
		if b, err := s.provider.BalanceOf(context.Background(), accounts[0]); err == nil {
			balance = b
		}
	}
	s.publish(WalletState{Connected: true, Account: accounts[0], Balance: balance})
}

func (s *WalletSession) publish(state WalletState) {
	s.mu.Lock()
	s.state = state
	subscribers := make([]func(WalletState), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(state)
	}
}
