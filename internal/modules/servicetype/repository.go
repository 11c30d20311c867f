package servicetype

import "context"

// Repository defines data access for service types.
type Repository interface {
	List(ctx context.Context) ([]*ServiceType, error)
	Create(ctx context.Context, name string) (*ServiceType, error)
	Update(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
}
