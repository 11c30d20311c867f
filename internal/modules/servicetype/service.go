package servicetype

import (
	"context"

	"servicehp-backend/internal/apperr"
)

// Service defines service-type catalog logic.
type Service interface {
	ListTypes(ctx context.Context) ([]*ServiceType, error)
	CreateType(ctx context.Context, name string) (*ServiceType, error)
	UpdateType(ctx context.Context, id int64, name string) error
	DeleteType(ctx context.Context, id int64) error
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListTypes(ctx context.Context) ([]*ServiceType, error) {
	return s.repo.List(ctx)
}

func (s *service) CreateType(ctx context.Context, name string) (*ServiceType, error) {
	if name == "" {
		return nil, apperr.Validation("name is required")
	}
	return s.repo.Create(ctx, name)
}

func (s *service) UpdateType(ctx context.Context, id int64, name string) error {
	if name == "" {
		return apperr.Validation("name is required")
	}
	return s.repo.Update(ctx, id, name)
}

func (s *service) DeleteType(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
