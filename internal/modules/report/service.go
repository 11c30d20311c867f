package report

import (
	"context"
	"time"
)

// Service defines report logic.
type Service interface {
	Summary(ctx context.Context, startDate, endDate string) (*Summary, error)
	ServiceReport(ctx context.Context) ([]ServiceRow, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

// dateLayouts are the formats accepted for range bounds, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01/02/2006",
}

// normalizeDate canonicalizes a bound to YYYY-MM-DD. Unparseable input
// yields "", which degrades that bound to unbounded rather than erroring.
func normalizeDate(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

func (s *service) Summary(ctx context.Context, startDate, endDate string) (*Summary, error) {
	r := DateRange{Start: normalizeDate(startDate), End: normalizeDate(endDate)}

	sum := &Summary{}
	var err error
	if sum.TotalIncome, err = s.repo.PaidIncome(ctx, r); err != nil {
		return nil, err
	}
	if sum.TotalExpense, err = s.repo.ExpenseTotal(ctx, r); err != nil {
		return nil, err
	}
	if sum.TotalServices, err = s.repo.PaidServiceCount(ctx, r); err != nil {
		return nil, err
	}
	if sum.IncomeByType, err = s.repo.IncomeByType(ctx, r); err != nil {
		return nil, err
	}
	if sum.ExpenseByCategory, err = s.repo.ExpenseByCategory(ctx, r); err != nil {
		return nil, err
	}
	return sum, nil
}

func (s *service) ServiceReport(ctx context.Context) ([]ServiceRow, error) {
	return s.repo.ServiceRows(ctx)
}
