package stock

import "time"

// Stock is an item held for repairs or resale, keyed by a unique SKU in
// addition to its serial id.
type Stock struct {
	ID        int64     `json:"id"`
	SKU       string    `json:"sku"`
	Barcode   string    `json:"barcode,omitempty"`
	Name      string    `json:"name"`
	Category  string    `json:"category,omitempty"`
	Qty       int       `json:"qty"`
	Price     float64   `json:"price"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpsertStockRequest is the payload for creating or updating a stock item.
type UpsertStockRequest struct {
	SKU      string  `json:"sku"`
	Barcode  string  `json:"barcode"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Qty      int     `json:"qty"`
	Price    float64 `json:"price"`
	Notes    string  `json:"notes"`
}
