package stock

import (
	"context"

	"servicehp-backend/internal/apperr"
)

// Service defines stock business logic.
type Service interface {
	ListStocks(ctx context.Context) ([]*Stock, error)
	GetStock(ctx context.Context, ident Identifier) (*Stock, error)
	CreateStock(ctx context.Context, req UpsertStockRequest) (*Stock, error)
	UpdateStock(ctx context.Context, ident Identifier, req UpsertStockRequest) (*Stock, error)
	DeleteStock(ctx context.Context, ident Identifier) error
	Search(ctx context.Context, barcode, sku string) (interface{}, error)
	Seed(ctx context.Context) ([]*Stock, bool, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListStocks(ctx context.Context) ([]*Stock, error) {
	return s.repo.List(ctx)
}

func (s *service) GetStock(ctx context.Context, ident Identifier) (*Stock, error) {
	return s.repo.Get(ctx, ident)
}

func (s *service) CreateStock(ctx context.Context, req UpsertStockRequest) (*Stock, error) {
	if req.SKU == "" {
		return nil, apperr.Validation("sku is required")
	}
	if req.Name == "" {
		return nil, apperr.Validation("name is required")
	}
	if req.Qty < 0 || req.Price < 0 {
		return nil, apperr.Validation("qty and price must not be negative")
	}
	return s.repo.Create(ctx, &Stock{
		SKU:      req.SKU,
		Barcode:  req.Barcode,
		Name:     req.Name,
		Category: req.Category,
		Qty:      req.Qty,
		Price:    req.Price,
		Notes:    req.Notes,
	})
}

func (s *service) UpdateStock(ctx context.Context, ident Identifier, req UpsertStockRequest) (*Stock, error) {
	if req.SKU == "" {
		return nil, apperr.Validation("sku is required")
	}
	if req.Name == "" {
		return nil, apperr.Validation("name is required")
	}
	return s.repo.Update(ctx, ident, &Stock{
		SKU:      req.SKU,
		Barcode:  req.Barcode,
		Name:     req.Name,
		Category: req.Category,
		Qty:      req.Qty,
		Price:    req.Price,
		Notes:    req.Notes,
	})
}

func (s *service) DeleteStock(ctx context.Context, ident Identifier) error {
	return s.repo.Delete(ctx, ident)
}

// Search resolves an exact barcode or exact sku to a single item; with
// neither filter it returns the full listing.
func (s *service) Search(ctx context.Context, barcode, sku string) (interface{}, error) {
	if barcode != "" {
		return s.repo.GetByBarcode(ctx, barcode)
	}
	if sku != "" {
		return s.repo.GetBySKU(ctx, sku)
	}
	return s.repo.List(ctx)
}

var sampleStocks = []Stock{
	{SKU: "SKU-001", Barcode: "BC-0001", Name: "Charger USB-C", Category: "Aksesoris", Qty: 25, Price: 75000, Notes: "Charger original compatible"},
	{SKU: "SKU-002", Barcode: "BC-0002", Name: "Glass Screen Protector", Category: "Aksesoris", Qty: 100, Price: 15000, Notes: "Untuk berbagai tipe"},
	{SKU: "SKU-003", Barcode: "BC-0003", Name: "Baterai Replacement", Category: "Spare Parts", Qty: 40, Price: 125000, Notes: "Baterai for popular models"},
	{SKU: "SKU-004", Barcode: "BC-0004", Name: "Kabel Data Micro USB", Category: "Aksesoris", Qty: 60, Price: 20000, Notes: "Kabel berkualitas"},
}

// Seed inserts the sample rows only when the table is empty. The second
// return reports whether new rows were written.
func (s *service) Seed(ctx context.Context) ([]*Stock, bool, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return nil, false, err
	}
	if n > 0 {
		all, err := s.repo.List(ctx)
		return all, false, err
	}
	for i := range sampleStocks {
		sample := sampleStocks[i]
		if _, err := s.repo.Create(ctx, &sample); err != nil {
			return nil, false, err
		}
	}
	all, err := s.repo.List(ctx)
	return all, true, err
}
