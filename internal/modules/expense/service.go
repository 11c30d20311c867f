package expense

import (
	"context"
	"time"

	"servicehp-backend/internal/apperr"
)

// Service defines expense business logic.
type Service interface {
	ListExpenses(ctx context.Context) ([]*Expense, error)
	CreateExpense(ctx context.Context, req UpsertExpenseRequest) (*Expense, error)
	UpdateExpense(ctx context.Context, id int64, req UpsertExpenseRequest) error
	DeleteExpense(ctx context.Context, id int64) error
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListExpenses(ctx context.Context) ([]*Expense, error) {
	return s.repo.List(ctx)
}

func (s *service) CreateExpense(ctx context.Context, req UpsertExpenseRequest) (*Expense, error) {
	e, err := validate(req)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, e)
}

func (s *service) UpdateExpense(ctx context.Context, id int64, req UpsertExpenseRequest) error {
	e, err := validate(req)
	if err != nil {
		return err
	}
	return s.repo.Update(ctx, id, e)
}

func (s *service) DeleteExpense(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func validate(req UpsertExpenseRequest) (*Expense, error) {
	if req.ExpenseDate == "" || req.Category == "" || req.Description == "" || req.Amount <= 0 {
		return nil, apperr.Validation("expense_date, category, description and amount are required")
	}
	date, err := time.Parse("2006-01-02", req.ExpenseDate)
	if err != nil {
		return nil, apperr.Validation("expense_date must be YYYY-MM-DD")
	}
	return &Expense{
		ExpenseDate: date,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		Notes:       req.Notes,
	}, nil
}
