package entities

import "time"

// Asset represents a single portfolio holding. OwnerID is set at creation
// and never reassigned; every by-id access must check it against the
// authenticated user.
type Asset struct {
	ID           string    `json:"id"` // UUID
	OwnerID      string    `json:"ownerId"`
	Name         string    `json:"name"`
	Symbol       string    `json:"symbol"`
	Quantity     float64   `json:"quantity"`
	BuyPrice     float64   `json:"buyPrice"`
	PurchaseDate time.Time `json:"purchaseDate"`
	Notes        *string   `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
