package catalog

import "time"

// Event is a single listing in the catalog. Records are created and retired
// by the backing store; the client side only ever reads them.
type Event struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Date             time.Time `json:"date"`
	Location         string    `json:"location"`
	LocationDetails  string    `json:"locationDetails,omitempty"`
	Image            string    `json:"image"`
	Price            float64   `json:"price"`
	AvailableTickets int       `json:"availableTickets"`
	TotalTickets     int       `json:"totalTickets"`
	Category         string    `json:"category"`
	IsFeatured       bool      `json:"isFeatured"`
	Organizer        string    `json:"organizer"`
}
