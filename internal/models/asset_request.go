package models

// CreateAssetRequest represents the request body for adding an asset.
// PurchaseDate accepts "2006-01-02" or RFC 3339.
type CreateAssetRequest struct {
	Name         string  `json:"name" binding:"required"`
	Symbol       string  `json:"symbol" binding:"required"`
	Quantity     float64 `json:"quantity" binding:"required,gt=0"`
	BuyPrice     float64 `json:"buyPrice" binding:"required,gt=0"`
	PurchaseDate string  `json:"purchaseDate" binding:"required"`
	Notes        *string `json:"notes,omitempty"`
}

// UpdateAssetRequest represents a partial asset update. Only the provided
// fields are applied; the owner can never be reassigned.
type UpdateAssetRequest struct {
	Name         *string  `json:"name,omitempty"`
	Symbol       *string  `json:"symbol,omitempty"`
	Quantity     *float64 `json:"quantity,omitempty" binding:"omitempty,gt=0"`
	BuyPrice     *float64 `json:"buyPrice,omitempty" binding:"omitempty,gt=0"`
	PurchaseDate *string  `json:"purchaseDate,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
}
