package dashboard

import "context"

// Repository defines the aggregate reads behind the dashboard snapshot.
type Repository interface {
	TodayIncome(ctx context.Context) (float64, error)
	TodayExpense(ctx context.Context) (float64, error)
	TodayServiceCount(ctx context.Context) (int, error)
	TotalReceivables(ctx context.Context) (float64, error)
	MonthlyRevenue(ctx context.Context) ([]MonthRevenue, error)
	PopularServices(ctx context.Context) ([]PopularService, error)
}
