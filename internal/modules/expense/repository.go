package expense

import "context"

// Repository defines data access for expenses.
type Repository interface {
	List(ctx context.Context) ([]*Expense, error)
	Create(ctx context.Context, e *Expense) (*Expense, error)
	Update(ctx context.Context, id int64, e *Expense) error
	Delete(ctx context.Context, id int64) error
}
