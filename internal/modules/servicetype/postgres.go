package servicetype

import (
	"context"
	"database/sql"

	"servicehp-backend/internal/apperr"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) List(ctx context.Context) ([]*ServiceType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM service_types ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*ServiceType
	for rows.Next() {
		t := &ServiceType{}
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *postgresRepo) Create(ctx context.Context, name string) (*ServiceType, error) {
	t := &ServiceType{Name: name}
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO service_types (name) VALUES ($1) RETURNING id`, name,
	).Scan(&t.ID)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *postgresRepo) Update(ctx context.Context, id int64, name string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE service_types SET name = $1 WHERE id = $2`, name, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("service type not found")
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM service_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("service type not found")
	}
	return nil
}
