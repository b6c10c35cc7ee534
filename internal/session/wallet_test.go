package session

import (
	"context"
	"errors"
	"testing"
)

type fakeProvider struct {
	authorized []string
	requestErr error
	balances   map[string]string
	balanceErr error
	changed    func([]string)
}

func (p *fakeProvider) RequestAccounts(ctx context.Context) ([]string, error) {
	if p.requestErr != nil {
		return nil, p.requestErr
	}
	return p.authorized, nil
}

func (p *fakeProvider) Accounts(ctx context.Context) ([]string, error) {
	return p.authorized, nil
}

func (p *fakeProvider) BalanceOf(ctx context.Context, account string) (string, error) {
	if p.balanceErr != nil {
		return "", p.balanceErr
	}
	return p.balances[account], nil
}

func (p *fakeProvider) OnAccountsChanged(fn func([]string)) {
	p.changed = fn
}

func TestConnectEstablishesSession(t *testing.T) {
	provider := &fakeProvider{
		authorized: []string{"0xabc"},
		balances:   map[string]string{"0xabc": "1.2345"},
	}
	s := NewWalletSession(provider)

	state, err := s.Connect(context.Background())
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if !state.Connected || state.Account != "0xabc" || state.Balance != "1.2345" {
		t.Fatalf("unexpected state %+v", state)
	}
	if account, ok := s.CurrentAccount(); !ok || account != "0xabc" {
		t.Fatalf("current account = %q, %v", account, ok)
	}
}

func TestConnectFailuresAreRetryable(t *testing.T) {
	s := NewWalletSession(nil)
	if _, err := s.Connect(context.Background()); !errors.Is(err, ErrNoProvider) {
		t.Fatalf("got %v, want ErrNoProvider", err)
	}

	provider := &fakeProvider{requestErr: errors.New("user rejected")}
	s = NewWalletSession(provider)
	if _, err := s.Connect(context.Background()); !errors.Is(err, ErrConnectionRejected) {
		t.Fatalf("got %v, want ErrConnectionRejected", err)
	}
	if s.Connected() {
		t.Fatal("failed connect must not leave a session behind")
	}

	// A later attempt on the same session succeeds once the provider
	// cooperates.
	provider.requestErr = nil
	provider.authorized = []string{"0xabc"}
	provider.balances = map[string]string{"0xabc": "0.5"}
	if _, err := s.Connect(context.Background()); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if !s.Connected() {
		t.Fatal("retry should establish the session")
	}
}

func TestResumeOnlyWhenAlreadyAuthorized(t *testing.T) {
	// No prior authorization: silent no-op.
	s := NewWalletSession(&fakeProvider{})
	if err := s.Resume(context.Background()); err != nil {
		t.Fatalf("resume: %v", err)
	}
	if s.Connected() {
		t.Fatal("resume must not connect without prior authorization")
	}

	// Already authorized: re-establish without prompting.
	provider := &fakeProvider{
		authorized: []string{"0xdef"},
		balances:   map[string]string{"0xdef": "3.0"},
	}
	s = NewWalletSession(provider)
	if err := s.Resume(context.Background()); err != nil {
		t.Fatalf("resume: %v", err)
	}
	if account, ok := s.CurrentAccount(); !ok || account != "0xdef" {
		t.Fatalf("current account = %q, %v", account, ok)
	}
}

func TestAccountChangeAndDisconnect(t *testing.T) {
	provider := &fakeProvider{
		authorized: []string{"0xabc"},
		balances:   map[string]string{"0xabc": "1.0", "0xnew": "2.0"},
	}
	s := NewWalletSession(provider)
	if _, err := s.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}

	var states []WalletState
	s.Subscribe(func(state WalletState) {
		states = append(states, state)
	})
	if len(states) != 1 || !states[0].Connected {
		t.Fatalf("subscriber should see current state immediately, got %v", states)
	}

	// Provider switches the active account.
	provider.changed([]string{"0xnew"})
	if account, _ := s.CurrentAccount(); account != "0xnew" {
		t.Fatalf("account = %q, want 0xnew", account)
	}
	if states[len(states)-1].Balance != "2.0" {
		t.Fatalf("balance not refreshed: %+v", states[len(states)-1])
	}

	// Empty account list is treated as a disconnect.
	provider.changed(nil)
	if s.Connected() {
		t.Fatal("empty account list should disconnect")
	}
	if last := states[len(states)-1]; last.Connected || last.Account != "" {
		t.Fatalf("subscriber should see the disconnect, got %+v", last)
	}
}

func TestDisconnectIsLocal(t *testing.T) {
	provider := &fakeProvider{
		authorized: []string{"0xabc"},
		balances:   map[string]string{"0xabc": "1.0"},
	}
	s := NewWalletSession(provider)
	if _, err := s.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}

	s.Disconnect()
	if s.Connected() {
		t.Fatal("disconnect should clear the session")
	}
	// The provider still reports authorization; only local state cleared.
	if len(provider.authorized) != 1 {
		t.Fatal("disconnect must not touch the provider")
	}
}
