package report

import "time"

// DateRange bounds a summary. Empty fields mean unbounded; the range only
// applies when both ends are present, matching the original behavior.
type DateRange struct {
	Start string
	End   string
}

// Bounded reports whether the range actually filters anything.
func (r DateRange) Bounded() bool { return r.Start != "" && r.End != "" }

// Summary is the report rollup for a date range (or all time).
type Summary struct {
	TotalIncome       float64             `json:"totalIncome"`
	TotalExpense      float64             `json:"totalExpense"`
	TotalServices     int                 `json:"totalServices"`
	IncomeByType      []TypeBreakdown     `json:"incomeByType"`
	ExpenseByCategory []CategoryBreakdown `json:"expenseByCategory"`
}

// TypeBreakdown is paid income grouped by service type.
type TypeBreakdown struct {
	ServiceType string  `json:"service_type"`
	Total       float64 `json:"total"`
	Count       int     `json:"count"`
}

// CategoryBreakdown is expense grouped by category.
type CategoryBreakdown struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

// ServiceRow is one line of the service report: the job joined with the
// member's name (empty when the job has no member).
type ServiceRow struct {
	ID          int64     `json:"id"`
	ServiceDate time.Time `json:"service_date"`
	ServiceType string    `json:"service_type"`
	Price       float64   `json:"price"`
	MemberName  string    `json:"member_name"`
}
