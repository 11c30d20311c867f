package stock

import "context"

// Repository defines data access for stock items.
type Repository interface {
	List(ctx context.Context) ([]*Stock, error)
	Get(ctx context.Context, ident Identifier) (*Stock, error)
	GetBySKU(ctx context.Context, sku string) (*Stock, error)
	GetByBarcode(ctx context.Context, barcode string) (*Stock, error)
	Create(ctx context.Context, s *Stock) (*Stock, error)
	Update(ctx context.Context, ident Identifier, s *Stock) (*Stock, error)
	Delete(ctx context.Context, ident Identifier) error
	Count(ctx context.Context) (int, error)
}
