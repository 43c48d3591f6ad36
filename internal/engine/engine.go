// Package engine computes a user's consolidated financial health report.
// It is pure computation: no I/O, no storage, no network. Every call is
// independent, so a single Engine may be shared across goroutines.
package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finwell/finhealth-service/internal/models"
	"github.com/finwell/finhealth-service/internal/money"
)

// Engine derives health reports from raw financial records. The clock is
// injectable because debt freedom dates and goal horizons depend on the
// current month; with a fixed clock identical inputs give identical output.
type Engine struct {
	now func() time.Time
}

// New creates an Engine using the system clock.
func New() *Engine {
	return &Engine{now: time.Now}
}

// NewWithClock creates an Engine with a custom clock.
func NewWithClock(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// CalculateFinancialHealth runs the full pipeline over one user's records
// and assembles the report. It never fails on well-typed input: malformed
// values have already been normalized to zero and every divisor is guarded.
func (e *Engine) CalculateFinancialHealth(
	profile models.Profile,
	expenses []models.Expense,
	assets []models.Asset,
	liabilities []models.Liability,
	goals []models.Goal,
) models.HealthReport {
	now := e.now()

	t := aggregate(profile, expenses, assets, liabilities)

	debt := simulatePayoff(t.TotalDebt, t.TotalEMI, liabilities, t.Surplus, now)
	analyzedGoals := analyzeGoals(goals, t.Surplus, now)
	projections := project(t.NetWorth, t.Surplus, now)
	allocation := allocate(assets, money.Normalize(profile.CurrentSavings), t.TotalAssets)

	emergency := emergencyMonths(t.LiquidAssets, t.ActualBurn)

	return models.HealthReport{
		Score:                 healthScore(t.Surplus, emergency, debt.MonthsToFreedom),
		NetWorth:              money.New(t.NetWorth),
		Surplus:               money.New(t.Surplus),
		MonthlyBurn:           money.New(t.ActualBurn),
		RecommendedInvestment: money.New(recommendedInvestment(t.Salary, t.Surplus)),
		EmergencyMonths:       emergency.Round(1).InexactFloat64(),
		DebtStrategy:          debt,
		Projections:           projections,
		AnalyzedGoals:         analyzedGoals,
		Allocation:            allocation,
	}
}

// recommendedInvestment suggests 30% of the positive surplus, capped at
// 20% of gross salary so a lean lifestyle does not inflate the advice.
func recommendedInvestment(salary, surplus decimal.Decimal) decimal.Decimal {
	if !salary.IsPositive() {
		return decimal.Zero
	}
	available := decimal.Max(decimal.Zero, surplus)
	return decimal.Min(
		available.Mul(decimal.NewFromFloat(0.3)),
		salary.Mul(decimal.NewFromFloat(0.2)),
	).Round(2)
}
