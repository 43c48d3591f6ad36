package models

import "github.com/finwell/finhealth-service/internal/money"

// DebtStrategy describes the outcome of the debt payoff simulation
type DebtStrategy struct {
	Strategy                string      `json:"strategy"`
	FreedomDate             string      `json:"freedom_date"`
	RecommendedExtraPayment money.Money `json:"recommended_extra_payment"`
	MonthsToFreedom         int         `json:"months_to_freedom"` // 999 signals a debt trap
}

// Projection is one month of the net-worth forecast
type Projection struct {
	Month    string      `json:"month"`
	NetWorth money.Money `json:"net_worth"`
}

// HealthReport is the consolidated financial health report
type HealthReport struct {
	Score                 int                `json:"score"`
	NetWorth              money.Money        `json:"net_worth"`
	Surplus               money.Money        `json:"surplus"`
	MonthlyBurn           money.Money        `json:"monthly_burn"`
	RecommendedInvestment money.Money        `json:"recommended_investment"`
	EmergencyMonths       float64            `json:"emergency_months"`
	DebtStrategy          DebtStrategy       `json:"debt_strategy"`
	Projections           []Projection       `json:"projections"`
	AnalyzedGoals         []AnalyzedGoal     `json:"analyzed_goals"`
	Allocation            map[string]float64 `json:"allocation"`
}
