package user

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"servicehp-backend/internal/apperr"
)

// Service defines user management logic.
type Service interface {
	ListUsers(ctx context.Context) ([]*User, error)
	CreateUser(ctx context.Context, req UpsertUserRequest) (*User, error)
	UpdateUser(ctx context.Context, id int64, req UpsertUserRequest) error
	DeleteUser(ctx context.Context, id int64) error
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListUsers(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

func (s *service) CreateUser(ctx context.Context, req UpsertUserRequest) (*User, error) {
	if req.Username == "" || req.Password == "" {
		return nil, apperr.Validation("username and password are required")
	}
	existing, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("username taken")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, &User{
		Name:     req.Name,
		Username: req.Username,
		Password: string(hash),
		Email:    req.Email,
		Role:     req.Role,
		IsActive: req.IsActive,
		Photo:    req.Photo,
	})
}

// UpdateUser applies partial semantics to photo and password: a blank value
// keeps what is stored; everything else is overwritten.
func (s *service) UpdateUser(ctx context.Context, id int64, req UpsertUserRequest) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	photo := current.Photo
	if strings.TrimSpace(req.Photo) != "" {
		photo = req.Photo
	}

	password := current.Password
	if strings.TrimSpace(req.Password) != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		password = string(hash)
	}

	return s.repo.Update(ctx, id, &User{
		Name:     req.Name,
		Username: req.Username,
		Password: password,
		Email:    req.Email,
		Role:     req.Role,
		IsActive: req.IsActive,
		Photo:    photo,
	})
}

func (s *service) DeleteUser(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
