package member

import (
	"context"

	"servicehp-backend/internal/apperr"
)

// Service defines member business logic.
type Service interface {
	ListMembers(ctx context.Context) ([]*Member, error)
	CreateMember(ctx context.Context, req UpsertMemberRequest) (*Member, error)
	UpdateMember(ctx context.Context, id int64, req UpsertMemberRequest) error
	DeleteMember(ctx context.Context, id int64) error
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListMembers(ctx context.Context) ([]*Member, error) {
	return s.repo.List(ctx)
}

func (s *service) CreateMember(ctx context.Context, req UpsertMemberRequest) (*Member, error) {
	if req.Name == "" || req.Phone == "" {
		return nil, apperr.Validation("name and phone are required")
	}
	return s.repo.Create(ctx, &Member{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	})
}

func (s *service) UpdateMember(ctx context.Context, id int64, req UpsertMemberRequest) error {
	if req.Name == "" || req.Phone == "" {
		return apperr.Validation("name and phone are required")
	}
	return s.repo.Update(ctx, id, &Member{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	})
}

func (s *service) DeleteMember(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
