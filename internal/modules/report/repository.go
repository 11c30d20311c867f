package report

import "context"

// Repository defines the aggregate reads behind the report summary and the
// service report dataset.
type Repository interface {
	PaidIncome(ctx context.Context, r DateRange) (float64, error)
	ExpenseTotal(ctx context.Context, r DateRange) (float64, error)
	PaidServiceCount(ctx context.Context, r DateRange) (int, error)
	IncomeByType(ctx context.Context, r DateRange) ([]TypeBreakdown, error)
	ExpenseByCategory(ctx context.Context, r DateRange) ([]CategoryBreakdown, error)
	ServiceRows(ctx context.Context) ([]ServiceRow, error)
}
