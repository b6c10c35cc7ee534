package storefront

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"blocktix/internal/catalog"
	"blocktix/internal/purchase"
	"blocktix/internal/session"
)

// DetailView owns a single event's detail flow: the loaded record, the
// quantity selection, and the purchase decision. The decision is
// recomputed from the wallet session, auth session, and stock on every
// evaluation; nothing about earlier decisions is remembered.
type DetailView struct {
	source   CatalogSource
	wallet   *session.WalletSession
	auth     *session.AuthSession
	executor purchase.Executor

	mu         sync.Mutex
	generation uint64
	intent     *purchase.Intent
	err        error
	closed     bool
}

// NewDetailView wires a detail view to its collaborators.
func NewDetailView(source CatalogSource, wallet *session.WalletSession, auth *session.AuthSession, executor purchase.Executor) *DetailView {
	return &DetailView{
		source:   source,
		wallet:   wallet,
		auth:     auth,
		executor: executor,
		intent:   purchase.NewIntent(),
	}
}

// Load fetches the event. Navigating to a different event resets the
// quantity to 1; reloading the same event re-clamps it against fresh
// availability. Stale responses racing a newer Load are dropped.
func (v *DetailView) Load(ctx context.Context, id string) error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return nil
	}
	v.generation++
	gen := v.generation
	v.mu.Unlock()

	event, err := v.source.GetEvent(ctx, id)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed || gen != v.generation {
		return nil
	}
	if err != nil {
		v.err = err
		return err
	}
	v.err = nil
	v.intent.SelectEvent(event)
	return nil
}

// Event returns the loaded event.
func (v *DetailView) Event() (catalog.Event, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.intent.Event()
}

// Err returns the load error, if the last load failed.
func (v *DetailView) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

// SetQuantity forwards to the intent's clamp.
func (v *DetailView) SetQuantity(n int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.intent.SetQuantity(n)
}

// Increment raises the quantity by one.
func (v *DetailView) Increment() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.intent.Increment()
}

// Decrement lowers the quantity by one.
func (v *DetailView) Decrement() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.intent.Decrement()
}

// Quantity returns the current selection.
func (v *DetailView) Quantity() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.intent.Quantity()
}

// TotalPrice returns price times quantity for the current selection.
func (v *DetailView) TotalPrice() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.intent.TotalPrice()
}

// PrimaryAction evaluates the purchase decision from current state. With
// no event loaded the control stays blocked.
func (v *DetailView) PrimaryAction() purchase.Action {
	v.mu.Lock()
	event, ok := v.intent.Event()
	v.mu.Unlock()
	if !ok {
		return purchase.ActionBlocked
	}
	return purchase.Decide(v.wallet.Connected(), v.auth.Authenticated(), event.IsSoldOut())
}

// SignInRedirect is the login destination preserving the way back to this
// event.
func (v *DetailView) SignInRedirect() string {
	v.mu.Lock()
	event, ok := v.intent.Event()
	v.mu.Unlock()
	if !ok {
		return "/login"
	}
	return "/login?redirect=" + url.QueryEscape("/events/"+event.ID)
}

// Purchase is the single side-effecting action. It re-evaluates the
// decision and only fires the executor when the decision is
// ActionPurchase, handing it the final clamped quantity and the current
// price snapshot.
func (v *DetailView) Purchase(ctx context.Context) (purchase.Result, error) {
	if action := v.PrimaryAction(); action != purchase.ActionPurchase {
		return purchase.Result{}, fmt.Errorf("%w: required action is %s", purchase.ErrNotPurchasable, action)
	}

	v.mu.Lock()
	order, err := v.intent.Order()
	v.mu.Unlock()
	if err != nil {
		return purchase.Result{}, err
	}

	return v.executor.Execute(ctx, order)
}

// Close marks the view as navigated away and clears the intent.
func (v *DetailView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	v.intent.Clear()
}
