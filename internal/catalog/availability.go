package catalog

// ScarcityTier classifies how close an event is to selling out. It is
// presentation only and never blocks a purchase.
type ScarcityTier string

const (
	ScarcityHigh   ScarcityTier = "high"
	ScarcityMedium ScarcityTier = "medium"
	ScarcityLow    ScarcityTier = "low"
)

// lowStockThreshold is the remaining-ticket count at or below which an
// event is flagged as low stock.
const lowStockThreshold = 10

// SoldPercentage reports how many of the event's tickets have sold, floored
// to an integer in [0, 100]. An event with no tickets at all counts as 0%
// sold rather than dividing by zero.
func (e Event) SoldPercentage() int {
	if e.TotalTickets <= 0 {
		return 0
	}
	pct := (e.TotalTickets - e.AvailableTickets) * 100 / e.TotalTickets
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// ScarcityTier buckets the sold percentage: high above 80%, medium above
// 50%, low otherwise.
func (e Event) ScarcityTier() ScarcityTier {
	switch pct := e.SoldPercentage(); {
	case pct > 80:
		return ScarcityHigh
	case pct > 50:
		return ScarcityMedium
	default:
		return ScarcityLow
	}
}

// IsSoldOut reports whether no tickets remain.
func (e Event) IsSoldOut() bool {
	return e.AvailableTickets == 0
}

// IsLowStock reports whether the event still has tickets but ten or fewer.
func (e Event) IsLowStock() bool {
	return e.AvailableTickets > 0 && e.AvailableTickets <= lowStockThreshold
}
