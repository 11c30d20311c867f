package member

import "context"

// Repository defines data access for members.
type Repository interface {
	List(ctx context.Context) ([]*Member, error)
	// FindActiveByPhone returns nil, nil when no active member matches.
	FindActiveByPhone(ctx context.Context, phone string) (*Member, error)
	Create(ctx context.Context, m *Member) (*Member, error)
	Update(ctx context.Context, id int64, m *Member) error
	Delete(ctx context.Context, id int64) error
}
