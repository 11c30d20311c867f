package dashboard

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) TodayIncome(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(price), 0) FROM services
		WHERE service_date = CURRENT_DATE AND payment_status = 'Paid'`).Scan(&total)
	return total, err
}

func (r *postgresRepo) TodayExpense(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM expenses
		WHERE expense_date = CURRENT_DATE`).Scan(&total)
	return total, err
}

func (r *postgresRepo) TodayServiceCount(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM services WHERE service_date = CURRENT_DATE`).Scan(&n)
	return n, err
}

func (r *postgresRepo) TotalReceivables(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(price), 0) FROM services
		WHERE payment_status = 'Unpaid'`).Scan(&total)
	return total, err
}

func (r *postgresRepo) MonthlyRevenue(ctx context.Context) ([]MonthRevenue, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT to_char(date_trunc('month', service_date), 'Mon') AS month,
		       COALESCE(SUM(price), 0) AS total
		FROM services
		WHERE payment_status = 'Paid'
		  AND service_date >= CURRENT_DATE - INTERVAL '12 months'
		GROUP BY date_trunc('month', service_date)
		ORDER BY date_trunc('month', service_date)`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []MonthRevenue{}
	for rows.Next() {
		var m MonthRevenue
		if err := rows.Scan(&m.Month, &m.Total); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *postgresRepo) PopularServices(ctx context.Context) ([]PopularService, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT service_type, COUNT(*) AS count
		FROM services
		WHERE payment_status = 'Paid'
		GROUP BY service_type
		ORDER BY count DESC
		LIMIT 5`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []PopularService{}
	for rows.Next() {
		var p PopularService
		if err := rows.Scan(&p.ServiceType, &p.Count); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
