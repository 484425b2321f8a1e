package models

// UserBalance is one member's share of a MonthlyBalance.
type UserBalance struct {
	UserID   string  `json:"user_id"`
	UserName string  `json:"user_name"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Balance  float64 `json:"balance"`
}

// MonthlyBalance is computed on demand and never persisted.
type MonthlyBalance struct {
	TotalIncome   float64       `json:"total_income"`
	TotalExpenses float64       `json:"total_expenses"`
	Balance       float64       `json:"balance"`
	ByUser        []UserBalance `json:"by_user"`
}
