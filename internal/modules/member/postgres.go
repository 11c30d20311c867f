package member

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"servicehp-backend/internal/apperr"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const memberColumns = `id, code, name, phone, email, address, join_date, is_active`

func (r *postgresRepo) List(ctx context.Context) ([]*Member, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+memberColumns+` FROM members ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *postgresRepo) FindActiveByPhone(ctx context.Context, phone string) (*Member, error) {
	m, err := scanMember(r.db.QueryRowContext(ctx, `
		SELECT `+memberColumns+` FROM members WHERE phone = $1 AND is_active = TRUE`, phone))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return m, err
}

// Create inserts the row and derives the member code from the serial id the
// store assigned, all inside one transaction so concurrent creates cannot
// produce duplicate codes.
func (r *postgresRepo) Create(ctx context.Context, m *Member) (*Member, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO members (code, name, phone, email, address, join_date, is_active)
		VALUES ('', $1, $2, $3, $4, NOW(), TRUE)
		RETURNING id`,
		m.Name, m.Phone, m.Email, m.Address,
	).Scan(&id)
	if err != nil {
		return nil, err
	}

	code := fmt.Sprintf("M%03d", id)
	if _, err := tx.ExecContext(ctx, `UPDATE members SET code = $1 WHERE id = $2`, code, id); err != nil {
		return nil, err
	}

	created, err := scanMember(tx.QueryRowContext(ctx, `
		SELECT `+memberColumns+` FROM members WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return created, nil
}

func (r *postgresRepo) Update(ctx context.Context, id int64, m *Member) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE members SET name = $1, phone = $2, email = $3, address = $4 WHERE id = $5`,
		m.Name, m.Phone, m.Email, m.Address, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("member not found")
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("member not found")
	}
	return nil
}

type rowScanner interface{ Scan(dest ...interface{}) error }

func scanMember(row rowScanner) (*Member, error) {
	m := &Member{}
	var email, address sql.NullString
	err := row.Scan(&m.ID, &m.Code, &m.Name, &m.Phone, &email, &address, &m.JoinDate, &m.IsActive)
	if err != nil {
		return nil, err
	}
	m.Email = email.String
	m.Address = address.String
	return m, nil
}
