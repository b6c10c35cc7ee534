// Package purchase models the purchase-intent flow: which primary action a
// detail view must offer given wallet, auth, and stock state, and the
// quantity selection leading up to a purchase command.
package purchase

// Action is the single required next step for the primary control on an
// event detail view.
type Action int

const (
	// ActionConnectWallet asks the user to connect a wallet first.
	ActionConnectWallet Action = iota
	// ActionSignIn redirects to login, preserving the return destination.
	ActionSignIn
	// ActionBlocked disables the control; the event is sold out.
	ActionBlocked
	// ActionPurchase proceeds with the selected event and quantity.
	ActionPurchase
)

// Label returns the display text for the primary control.
func (a Action) Label() string {
	switch a {
	case ActionConnectWallet:
		return "Connect Wallet"
	case ActionSignIn:
		return "Sign In to Purchase"
	case ActionBlocked:
		return "Sold Out"
	case ActionPurchase:
		return "Purchase Tickets"
	}
	return ""
}

func (a Action) String() string {
	switch a {
	case ActionConnectWallet:
		return "connect-wallet"
	case ActionSignIn:
		return "sign-in"
	case ActionBlocked:
		return "blocked"
	case ActionPurchase:
		return "purchase"
	}
	return "unknown"
}

// Decide maps the three observed booleans to the required action. The
// decision is level-triggered: callers re-evaluate it from current state on
// every change and it keeps no memory of earlier decisions. The wallet
// check precedes the auth check, which precedes the stock check.
func Decide(walletConnected, authenticated, soldOut bool) Action {
	switch {
	case !walletConnected:
		return ActionConnectWallet
	case !authenticated:
		return ActionSignIn
	case soldOut:
		return ActionBlocked
	default:
		return ActionPurchase
	}
}
