package expense

import (
	"context"
	"database/sql"

	"servicehp-backend/internal/apperr"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) List(ctx context.Context) ([]*Expense, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, expense_date, category, description, amount, notes
		FROM expenses ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*Expense
	for rows.Next() {
		e := &Expense{}
		var notes sql.NullString
		if err := rows.Scan(&e.ID, &e.ExpenseDate, &e.Category, &e.Description, &e.Amount, &notes); err != nil {
			return nil, err
		}
		e.Notes = notes.String
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *postgresRepo) Create(ctx context.Context, e *Expense) (*Expense, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO expenses (expense_date, category, description, amount, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		e.ExpenseDate, e.Category, e.Description, e.Amount, e.Notes,
	).Scan(&e.ID)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *postgresRepo) Update(ctx context.Context, id int64, e *Expense) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE expenses
		SET expense_date = $1, category = $2, description = $3, amount = $4, notes = $5
		WHERE id = $6`,
		e.ExpenseDate, e.Category, e.Description, e.Amount, e.Notes, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("expense not found")
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("expense not found")
	}
	return nil
}
