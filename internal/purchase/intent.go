package purchase

import (
	"context"
	"errors"

	"blocktix/internal/catalog"
)

var (
	// ErrNoEvent indicates no event has been selected yet.
	ErrNoEvent = errors.New("no event selected")
	// ErrNotPurchasable indicates the current state does not permit a
	// purchase (wallet disconnected, signed out, or sold out).
	ErrNotPurchasable = errors.New("purchase not permitted in current state")
)

// Order is the snapshot handed to the executor: the final clamped quantity
// and the event's price at the moment of purchase, never a stale copy.
type Order struct {
	EventID    string
	Quantity   int
	UnitPrice  float64
	TotalPrice float64
}

// Result reports the outcome of a purchase command.
type Result struct {
	Order     Order
	Reference string
}

// Executor carries out a purchase command. The shipped implementation is a
// stub boundary; nothing here talks to a chain or settles payment.
type Executor interface {
	Execute(ctx context.Context, order Order) (Result, error)
}

// Intent tracks the ephemeral quantity selection for a single event. It is
// created when a detail view opens and discarded when the view closes; it
// carries no persistence.
type Intent struct {
	event    catalog.Event
	hasEvent bool
	quantity int
}

// NewIntent returns an intent with no event selected.
func NewIntent() *Intent {
	return &Intent{quantity: 1}
}

// SelectEvent points the intent at an event. Selecting a different event
// resets the quantity to 1; refreshing the same event keeps the current
// quantity but re-clamps it against the new availability.
func (in *Intent) SelectEvent(ev catalog.Event) {
	sameEvent := in.hasEvent && in.event.ID == ev.ID
	in.event = ev
	in.hasEvent = true
	if !sameEvent {
		in.quantity = 1
		return
	}
	if in.quantity > ev.AvailableTickets && ev.AvailableTickets > 0 {
		in.quantity = ev.AvailableTickets
	}
	if in.quantity < 1 {
		in.quantity = 1
	}
}

// Clear drops the selected event, as when navigating away.
func (in *Intent) Clear() {
	*in = Intent{quantity: 1}
}

// Event returns the currently selected event.
func (in *Intent) Event() (catalog.Event, bool) {
	return in.event, in.hasEvent
}

// Quantity returns the current selection, always at least 1.
func (in *Intent) Quantity() int {
	return in.quantity
}

// SetQuantity commits the requested quantity if it lies in
// [1, availableTickets] and reports whether it was accepted. Out-of-range
// requests are rejected without changing the current value.
func (in *Intent) SetQuantity(requested int) bool {
	if !in.hasEvent {
		return false
	}
	if requested < 1 || requested > in.event.AvailableTickets {
		return false
	}
	in.quantity = requested
	return true
}

// Increment raises the quantity by one, subject to the same clamp.
func (in *Intent) Increment() bool {
	return in.SetQuantity(in.quantity + 1)
}

// Decrement lowers the quantity by one, subject to the same clamp.
func (in *Intent) Decrement() bool {
	return in.SetQuantity(in.quantity - 1)
}

// TotalPrice is always derived from the current price and quantity; it is
// never stored independently.
func (in *Intent) TotalPrice() float64 {
	if !in.hasEvent {
		return 0
	}
	return in.event.Price * float64(in.quantity)
}

// Order builds the purchase snapshot from the current selection.
func (in *Intent) Order() (Order, error) {
	if !in.hasEvent {
		return Order{}, ErrNoEvent
	}
	return Order{
		EventID:    in.event.ID,
		Quantity:   in.quantity,
		UnitPrice:  in.event.Price,
		TotalPrice: in.TotalPrice(),
	}, nil
}

// StubExecutor accepts every order and hands back a reference from the
// supplied generator. It stands in for the settlement boundary that does
// not exist in this system.
type StubExecutor struct {
	NewReference func() string
	Executed     []Order
}

func (s *StubExecutor) Execute(ctx context.Context, order Order) (Result, error) {
	s.Executed = append(s.Executed, order)
	ref := ""
	if s.NewReference != nil {
		ref = s.NewReference()
	}
	return Result{Order: order, Reference: ref}, nil
}
