package report

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

// rangeClause appends a BETWEEN filter on the given date column when the
// range is bounded. Placeholders start at $1 because every summary query
// takes only the range as arguments.
func rangeClause(col string, r DateRange, firstKeyword string) (string, []interface{}) {
	if !r.Bounded() {
		return "", nil
	}
	return " " + firstKeyword + " " + col + " BETWEEN $1 AND $2", []interface{}{r.Start, r.End}
}

func (p *postgresRepo) PaidIncome(ctx context.Context, r DateRange) (float64, error) {
	query := `SELECT COALESCE(SUM(price), 0) FROM services WHERE payment_status = 'Paid'`
	clause, args := rangeClause("service_date", r, "AND")
	var total float64
	err := p.db.QueryRowContext(ctx, query+clause, args...).Scan(&total)
	return total, err
}

func (p *postgresRepo) ExpenseTotal(ctx context.Context, r DateRange) (float64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM expenses`
	clause, args := rangeClause("expense_date", r, "WHERE")
	var total float64
	err := p.db.QueryRowContext(ctx, query+clause, args...).Scan(&total)
	return total, err
}

func (p *postgresRepo) PaidServiceCount(ctx context.Context, r DateRange) (int, error) {
	query := `SELECT COUNT(*) FROM services WHERE payment_status = 'Paid'`
	clause, args := rangeClause("service_date", r, "AND")
	var n int
	err := p.db.QueryRowContext(ctx, query+clause, args...).Scan(&n)
	return n, err
}

func (p *postgresRepo) IncomeByType(ctx context.Context, r DateRange) ([]TypeBreakdown, error) {
	query := `SELECT service_type, COALESCE(SUM(price), 0) AS total, COUNT(*) AS count
		FROM services WHERE payment_status = 'Paid'`
	clause, args := rangeClause("service_date", r, "AND")
	rows, err := p.db.QueryContext(ctx, query+clause+` GROUP BY service_type`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []TypeBreakdown{}
	for rows.Next() {
		var t TypeBreakdown
		if err := rows.Scan(&t.ServiceType, &t.Total, &t.Count); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (p *postgresRepo) ExpenseByCategory(ctx context.Context, r DateRange) ([]CategoryBreakdown, error) {
	query := `SELECT category, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count
		FROM expenses`
	clause, args := rangeClause("expense_date", r, "WHERE")
	rows, err := p.db.QueryContext(ctx, query+clause+` GROUP BY category`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []CategoryBreakdown{}
	for rows.Next() {
		var c CategoryBreakdown
		if err := rows.Scan(&c.Category, &c.Total, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (p *postgresRepo) ServiceRows(ctx context.Context) ([]ServiceRow, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT s.id, s.service_date, s.service_type, s.price,
		       COALESCE(m.name, '') AS member_name
		FROM services s
		LEFT JOIN members m ON s.member_id = m.id
		ORDER BY s.service_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []ServiceRow{}
	for rows.Next() {
		var row ServiceRow
		if err := rows.Scan(&row.ID, &row.ServiceDate, &row.ServiceType, &row.Price, &row.MemberName); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
