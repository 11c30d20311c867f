package stock

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"servicehp-backend/internal/apperr"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const stockColumns = `id, sku, barcode, name, category, qty, price, notes, created_at, updated_at`

func (r *postgresRepo) List(ctx context.Context) ([]*Stock, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+stockColumns+` FROM stocks ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func (r *postgresRepo) Get(ctx context.Context, ident Identifier) (*Stock, error) {
	where, arg := ident.clause(1)
	s, err := r.scan(r.db.QueryRowContext(ctx, `
		SELECT `+stockColumns+` FROM stocks WHERE `+where, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("stock not found")
	}
	return s, err
}

func (r *postgresRepo) GetBySKU(ctx context.Context, sku string) (*Stock, error) {
	s, err := r.scan(r.db.QueryRowContext(ctx, `
		SELECT `+stockColumns+` FROM stocks WHERE sku = $1`, sku))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("stock not found")
	}
	return s, err
}

func (r *postgresRepo) GetByBarcode(ctx context.Context, barcode string) (*Stock, error) {
	s, err := r.scan(r.db.QueryRowContext(ctx, `
		SELECT `+stockColumns+` FROM stocks WHERE barcode = $1`, barcode))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("stock not found")
	}
	return s, err
}

func (r *postgresRepo) Create(ctx context.Context, s *Stock) (*Stock, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO stocks (sku, barcode, name, category, qty, price, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		s.SKU, nullable(s.Barcode), s.Name, nullable(s.Category), s.Qty, s.Price, nullable(s.Notes),
	).Scan(&id)
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, Identifier{Numeric: true, ID: id})
}

func (r *postgresRepo) Update(ctx context.Context, ident Identifier, s *Stock) (*Stock, error) {
	where, arg := ident.clause(8)
	res, err := r.db.ExecContext(ctx, `
		UPDATE stocks
		SET sku = $1, barcode = $2, name = $3, category = $4, qty = $5,
		    price = $6, notes = $7, updated_at = NOW()
		WHERE `+where,
		s.SKU, nullable(s.Barcode), s.Name, nullable(s.Category), s.Qty, s.Price, nullable(s.Notes), arg)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, apperr.NotFound("stock not found")
	}
	return r.GetBySKU(ctx, s.SKU)
}

func (r *postgresRepo) Delete(ctx context.Context, ident Identifier) error {
	where, arg := ident.clause(1)
	res, err := r.db.ExecContext(ctx, `DELETE FROM stocks WHERE `+where, arg)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("stock not found")
	}
	return nil
}

func (r *postgresRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM stocks`).Scan(&n)
	return n, err
}

// clause returns the WHERE fragment and argument for the identifier, with
// the placeholder numbered n within the statement using it.
func (i Identifier) clause(n int) (string, interface{}) {
	if i.Numeric {
		return fmt.Sprintf("id = $%d", n), i.ID
	}
	return fmt.Sprintf("sku = $%d", n), i.SKU
}

// ── scanner ───────────────────────────────────────────────────────────────────

type rowScanner interface{ Scan(dest ...interface{}) error }

func (r *postgresRepo) scan(row rowScanner) (*Stock, error) {
	s := &Stock{}
	var barcode, category, notes sql.NullString
	err := row.Scan(&s.ID, &s.SKU, &barcode, &s.Name, &category,
		&s.Qty, &s.Price, &notes, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.Barcode = barcode.String
	s.Category = category.String
	s.Notes = notes.String
	return s, nil
}

func collect(rows *sql.Rows) ([]*Stock, error) {
	var out []*Stock
	for rows.Next() {
		s := &Stock{}
		var barcode, category, notes sql.NullString
		if err := rows.Scan(&s.ID, &s.SKU, &barcode, &s.Name, &category,
			&s.Qty, &s.Price, &notes, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		s.Barcode = barcode.String
		s.Category = category.String
		s.Notes = notes.String
		out = append(out, s)
	}
	return out, rows.Err()
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
