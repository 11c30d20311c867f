package stock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicehp-backend/internal/apperr"
)

type fakeRepo struct {
	items  []*Stock
	nextID int64
}

func newFakeRepo() *fakeRepo { return &fakeRepo{nextID: 1} }

func (f *fakeRepo) List(ctx context.Context) ([]*Stock, error) { return f.items, nil }

func (f *fakeRepo) Get(ctx context.Context, ident Identifier) (*Stock, error) {
	for _, s := range f.items {
		if ident.Numeric && s.ID == ident.ID {
			return s, nil
		}
		if !ident.Numeric && s.SKU == ident.SKU {
			return s, nil
		}
	}
	return nil, apperr.NotFound("stock not found")
}

func (f *fakeRepo) GetBySKU(ctx context.Context, sku string) (*Stock, error) {
	return f.Get(ctx, Identifier{SKU: sku})
}

func (f *fakeRepo) GetByBarcode(ctx context.Context, barcode string) (*Stock, error) {
	for _, s := range f.items {
		if s.Barcode == barcode {
			return s, nil
		}
	}
	return nil, apperr.NotFound("stock not found")
}

func (f *fakeRepo) Create(ctx context.Context, s *Stock) (*Stock, error) {
	copied := *s
	copied.ID = f.nextID
	f.nextID++
	f.items = append(f.items, &copied)
	return &copied, nil
}

func (f *fakeRepo) Update(ctx context.Context, ident Identifier, s *Stock) (*Stock, error) {
	existing, err := f.Get(ctx, ident)
	if err != nil {
		return nil, err
	}
	id := existing.ID
	*existing = *s
	existing.ID = id
	return existing, nil
}

func (f *fakeRepo) Delete(ctx context.Context, ident Identifier) error {
	for i, s := range f.items {
		if (ident.Numeric && s.ID == ident.ID) || (!ident.Numeric && s.SKU == ident.SKU) {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("stock not found")
}

func (f *fakeRepo) Count(ctx context.Context) (int, error) { return len(f.items), nil }

func TestParseIdentifier(t *testing.T) {
	tests := []struct {
		key     string
		numeric bool
		id      int64
	}{
		{"42", true, 42},
		{"007", true, 7},
		{"SKU-001", false, 0},
		{"12A", false, 0},
		{"", false, 0},
	}
	for _, tc := range tests {
		ident := ParseIdentifier(tc.key)
		assert.Equal(t, tc.numeric, ident.Numeric, "key %q", tc.key)
		if tc.numeric {
			assert.Equal(t, tc.id, ident.ID, "key %q", tc.key)
		} else {
			assert.Equal(t, tc.key, ident.SKU, "key %q", tc.key)
		}
	}
}

func TestCreateStockValidation(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.CreateStock(context.Background(), UpsertStockRequest{Name: "Charger"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.CreateStock(context.Background(), UpsertStockRequest{SKU: "SKU-009"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.CreateStock(context.Background(), UpsertStockRequest{SKU: "SKU-009", Name: "Charger", Qty: -1})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestSeedIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	first, seeded, err := svc.Seed(context.Background())
	require.NoError(t, err)
	assert.True(t, seeded)
	assert.Len(t, first, 4)

	second, seeded, err := svc.Seed(context.Background())
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Len(t, second, 4)
}

func TestSearchDispatch(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	_, _, err := svc.Seed(context.Background())
	require.NoError(t, err)

	byBarcode, err := svc.Search(context.Background(), "BC-0002", "")
	require.NoError(t, err)
	assert.Equal(t, "SKU-002", byBarcode.(*Stock).SKU)

	bySKU, err := svc.Search(context.Background(), "", "SKU-003")
	require.NoError(t, err)
	assert.Equal(t, "BC-0003", bySKU.(*Stock).Barcode)

	all, err := svc.Search(context.Background(), "", "")
	require.NoError(t, err)
	assert.Len(t, all.([]*Stock), 4)
}
