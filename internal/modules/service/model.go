package service

import "time"

// Payment status values for a service row. Unpaid rows are the shop's
// receivables (piutang).
const (
	PaymentPaid   = "Paid"
	PaymentUnpaid = "Unpaid"
)

// Member status values recorded on a service row.
const (
	StatusMember    = "Member"
	StatusNonMember = "Non-Member"
)

// Source values derived at read time, never stored: a service either
// consumed a stock item or was a catalog-type job.
const (
	SourceStock = "stock"
	SourceType  = "type"
)

// ServiceRecord is one repair job.
type ServiceRecord struct {
	ID            int64     `json:"id"`
	ServiceDate   time.Time `json:"service_date"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	ServiceType   string    `json:"service_type"`
	Price         float64   `json:"price"`
	StockSKU      string    `json:"service_stock_sku,omitempty"`
	MemberStatus  string    `json:"member_status"`
	PaymentStatus string    `json:"payment_status"`
	Notes         string    `json:"notes,omitempty"`
	MemberID      *int64    `json:"member_id,omitempty"`
	MemberCode    string    `json:"member_code,omitempty"`
	Source        string    `json:"source"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateServiceRequest is the payload for recording a repair job.
type CreateServiceRequest struct {
	ServiceDate   string  `json:"service_date"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	ServiceType   string  `json:"service_type"`
	Price         float64 `json:"price"`
	StockSKU      string  `json:"service_stock_sku"`
	MemberStatus  string  `json:"member_status"`
	PaymentStatus string  `json:"payment_status"`
	Notes         string  `json:"notes"`
}

// TrackResult is the answer to a phone lookup: the matching jobs plus the
// distinct service dates seen for that phone, offered as retry suggestions.
type TrackResult struct {
	Services    []*ServiceRecord `json:"services"`
	Suggestions []string         `json:"suggestions"`
}
