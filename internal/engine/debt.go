package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finwell/finhealth-service/internal/models"
	"github.com/finwell/finhealth-service/internal/money"
)

const (
	// maxPayoffMonths bounds the amortization loop.
	maxPayoffMonths = 120
	// debtTrapMonths is the sentinel for a non-amortizing schedule.
	debtTrapMonths = 999
)

// fallbackMonthlyRate (15% annual) applies only when no rate data is
// derivable from the liabilities.
var fallbackMonthlyRate = decimal.NewFromFloat(0.0125)

// simulatePayoff runs a month-by-month avalanche amortization with a
// debt-weighted average interest rate and a surplus-derived extra payment.
// Outcomes are three-way: converged early (months iterated), converged at
// the 120-month cap (months == 120 with a real date), or debt trap (999
// with no date) when a month's interest meets or exceeds the payment.
func simulatePayoff(
	totalDebt, totalEMI decimal.Decimal,
	liabilities []models.Liability,
	surplus decimal.Decimal,
	now time.Time,
) models.DebtStrategy {
	if !totalDebt.IsPositive() {
		return models.DebtStrategy{
			Strategy:                "None",
			FreedomDate:             "N/A",
			RecommendedExtraPayment: money.New(decimal.Zero),
			MonthsToFreedom:         0,
		}
	}

	// At most half of the surplus, never more than the debt itself.
	extra := decimal.Min(surplus.Mul(decimal.NewFromFloat(0.5)), totalDebt)
	if extra.IsNegative() {
		extra = decimal.Zero
	}
	extra = extra.Round(2)

	monthlyRate := weightedMonthlyRate(liabilities, totalDebt)
	if monthlyRate.IsZero() {
		monthlyRate = fallbackMonthlyRate
	}

	payment := totalEMI.Add(extra)
	balance := totalDebt
	months := 0
	for months < maxPayoffMonths && balance.IsPositive() {
		interest := balance.Mul(monthlyRate).Round(2)
		if interest.GreaterThanOrEqual(payment) {
			return models.DebtStrategy{
				Strategy:                "Avalanche",
				FreedomDate:             "Never (Debt Trap)",
				RecommendedExtraPayment: money.New(extra),
				MonthsToFreedom:         debtTrapMonths,
			}
		}
		balance = balance.Add(interest).Sub(payment)
		if balance.IsNegative() {
			balance = decimal.Zero
		}
		months++
	}

	return models.DebtStrategy{
		Strategy:                "Avalanche",
		FreedomDate:             monthStart(now).AddDate(0, months, 0).Format("Jan 2006"),
		RecommendedExtraPayment: money.New(extra),
		MonthsToFreedom:         months,
	}
}

// weightedMonthlyRate is the outstanding-amount-weighted average annual
// rate across liabilities, divided by 12.
func weightedMonthlyRate(liabilities []models.Liability, totalDebt decimal.Decimal) decimal.Decimal {
	weighted := decimal.Zero
	for _, l := range liabilities {
		rate := money.Normalize(l.InterestRate).Div(decimal.NewFromInt(100))
		weighted = weighted.Add(money.Normalize(l.OutstandingAmount).Mul(rate))
	}
	return weighted.Div(totalDebt).Div(decimal.NewFromInt(12))
}

// monthStart normalizes to the first of the month so adding months never
// overflows into the month after next.
func monthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}
