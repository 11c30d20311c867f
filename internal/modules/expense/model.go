package expense

import "time"

// Expense is a recorded outgoing cost.
type Expense struct {
	ID          int64     `json:"id"`
	ExpenseDate time.Time `json:"expense_date"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Notes       string    `json:"notes,omitempty"`
}

// UpsertExpenseRequest is the payload for creating or updating an expense.
type UpsertExpenseRequest struct {
	ExpenseDate string  `json:"expense_date"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Notes       string  `json:"notes"`
}
