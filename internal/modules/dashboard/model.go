package dashboard

// Stats is the KPI snapshot for the current date. Every sum is coalesced to
// zero in SQL so an empty day still serializes as numbers, never null.
type Stats struct {
	TodayIncome     float64          `json:"todayIncome"`
	TodayExpense    float64          `json:"todayExpense"`
	TodayServices   int              `json:"todayServices"`
	TotalPiutang    float64          `json:"totalPiutang"`
	MonthlyRevenue  []MonthRevenue   `json:"monthlyRevenue"`
	PopularServices []PopularService `json:"popularServices"`
}

// MonthRevenue is one month of paid revenue in the trailing-12-month trend.
type MonthRevenue struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// PopularService is a service type ranked by count of paid jobs.
type PopularService struct {
	ServiceType string `json:"service_type"`
	Count       int    `json:"count"`
}
