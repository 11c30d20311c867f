package service

import (
	"context"
	"database/sql"
	"errors"

	"servicehp-backend/internal/apperr"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

// source is derived per read; it is never a column.
const serviceSelect = `
	SELECT s.id, s.service_date, s.customer_name, s.customer_phone,
	       s.service_type, s.price, s.service_stock_sku, s.member_status,
	       s.payment_status, s.notes, s.member_id, m.code,
	       CASE WHEN s.service_stock_sku IS NOT NULL AND s.service_stock_sku <> ''
	            THEN 'stock' ELSE 'type' END AS source,
	       s.created_at
	FROM services s
	LEFT JOIN members m ON s.member_id = m.id`

func (r *postgresRepo) List(ctx context.Context) ([]*ServiceRecord, error) {
	rows, err := r.db.QueryContext(ctx, serviceSelect+` ORDER BY s.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectServices(rows)
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*ServiceRecord, error) {
	svc, err := scanService(r.db.QueryRowContext(ctx, serviceSelect+` WHERE s.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("service not found")
	}
	return svc, err
}

func (r *postgresRepo) Insert(ctx context.Context, svc *ServiceRecord) (*ServiceRecord, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO services (
			service_date, customer_name, customer_phone, service_type, price,
			service_stock_sku, member_status, payment_status, notes, member_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		svc.ServiceDate, svc.CustomerName, svc.CustomerPhone, svc.ServiceType,
		svc.Price, nullable(svc.StockSKU), svc.MemberStatus, svc.PaymentStatus,
		nullable(svc.Notes), svc.MemberID,
	).Scan(&id)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *postgresRepo) UpdatePaymentStatus(ctx context.Context, id int64, status string) (*ServiceRecord, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE services SET payment_status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, apperr.NotFound("service not found")
	}
	return r.GetByID(ctx, id)
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("service not found")
	}
	return nil
}

func (r *postgresRepo) ListUnpaid(ctx context.Context) ([]*ServiceRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		serviceSelect+` WHERE s.payment_status = $1 ORDER BY s.service_date ASC`,
		PaymentUnpaid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectServices(rows)
}

func (r *postgresRepo) FindByNormalizedPhone(ctx context.Context, digits, date string) ([]*ServiceRecord, error) {
	query := serviceSelect + `
		WHERE REPLACE(REPLACE(s.customer_phone, ' ', ''), '-', '') LIKE $1`
	args := []interface{}{"%" + digits + "%"}
	if date != "" {
		query += ` AND s.service_date = $2::date`
		args = append(args, date)
	}
	query += ` ORDER BY s.service_date DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectServices(rows)
}

func (r *postgresRepo) DatesByNormalizedPhone(ctx context.Context, digits string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT to_char(service_date, 'YYYY-MM-DD') AS d
		FROM services
		WHERE REPLACE(REPLACE(customer_phone, ' ', ''), '-', '') LIKE $1
		ORDER BY d DESC`,
		"%"+digits+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// ── scanner ───────────────────────────────────────────────────────────────────

type rowScanner interface{ Scan(dest ...interface{}) error }

func scanService(row rowScanner) (*ServiceRecord, error) {
	svc := &ServiceRecord{}
	var sku, notes, memberCode sql.NullString
	var memberID sql.NullInt64
	err := row.Scan(&svc.ID, &svc.ServiceDate, &svc.CustomerName, &svc.CustomerPhone,
		&svc.ServiceType, &svc.Price, &sku, &svc.MemberStatus,
		&svc.PaymentStatus, &notes, &memberID, &memberCode,
		&svc.Source, &svc.CreatedAt)
	if err != nil {
		return nil, err
	}
	svc.StockSKU = sku.String
	svc.Notes = notes.String
	svc.MemberCode = memberCode.String
	if memberID.Valid {
		svc.MemberID = &memberID.Int64
	}
	return svc, nil
}

func collectServices(rows *sql.Rows) ([]*ServiceRecord, error) {
	var out []*ServiceRecord
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, svc)
	}
	return out, rows.Err()
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
