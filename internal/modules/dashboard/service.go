package dashboard

import "context"

// Service assembles the dashboard snapshot.
type Service interface {
	Stats(ctx context.Context) (*Stats, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	var err error

	if stats.TodayIncome, err = s.repo.TodayIncome(ctx); err != nil {
		return nil, err
	}
	if stats.TodayExpense, err = s.repo.TodayExpense(ctx); err != nil {
		return nil, err
	}
	if stats.TodayServices, err = s.repo.TodayServiceCount(ctx); err != nil {
		return nil, err
	}
	if stats.TotalPiutang, err = s.repo.TotalReceivables(ctx); err != nil {
		return nil, err
	}
	if stats.MonthlyRevenue, err = s.repo.MonthlyRevenue(ctx); err != nil {
		return nil, err
	}
	if stats.PopularServices, err = s.repo.PopularServices(ctx); err != nil {
		return nil, err
	}
	return stats, nil
}
