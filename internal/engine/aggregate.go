package engine

import (
	"github.com/shopspring/decimal"

	"github.com/finwell/finhealth-service/internal/models"
	"github.com/finwell/finhealth-service/internal/money"
)

// liquidityThreshold is the minimum liquidity score for an asset to count
// toward the emergency fund.
const liquidityThreshold = 4

// totals holds the scalar aggregates every downstream component consumes.
type totals struct {
	Salary              decimal.Decimal
	TotalMonthlyExpense decimal.Decimal
	TotalDebt           decimal.Decimal
	TotalEMI            decimal.Decimal
	LiquidAssets        decimal.Decimal
	TotalAssets         decimal.Decimal
	NetWorth            decimal.Decimal
	ActualBurn          decimal.Decimal
	Surplus             decimal.Decimal
}

// aggregate reduces the raw collections into scalar totals. Empty
// collections yield zero sums; there are no error conditions.
func aggregate(
	profile models.Profile,
	expenses []models.Expense,
	assets []models.Asset,
	liabilities []models.Liability,
) totals {
	salary := money.Normalize(profile.Salary)
	rent := money.Normalize(profile.Rent)
	savings := money.Normalize(profile.CurrentSavings)

	totalExpense := decimal.Zero
	for _, e := range expenses {
		totalExpense = totalExpense.Add(money.Normalize(e.Amount))
	}

	totalDebt := decimal.Zero
	totalEMI := decimal.Zero
	for _, l := range liabilities {
		totalDebt = totalDebt.Add(money.Normalize(l.OutstandingAmount))
		totalEMI = totalEMI.Add(money.Normalize(l.MonthlyPayment))
	}

	liquid := savings
	totalAssets := savings
	for _, a := range assets {
		value := money.Normalize(a.Value)
		totalAssets = totalAssets.Add(value)
		if clampLiquidity(a.LiquidityScore) >= liquidityThreshold {
			liquid = liquid.Add(value)
		}
	}

	burn := rent.Add(totalExpense).Add(totalEMI)

	return totals{
		Salary:              salary,
		TotalMonthlyExpense: totalExpense,
		TotalDebt:           totalDebt,
		TotalEMI:            totalEMI,
		LiquidAssets:        liquid,
		TotalAssets:         totalAssets,
		NetWorth:            totalAssets.Sub(totalDebt),
		ActualBurn:          burn,
		Surplus:             salary.Sub(burn),
	}
}

// clampLiquidity forces a liquidity score into [1, 5]; a missing score
// defaults to 1 (illiquid).
func clampLiquidity(score int) int {
	if score < 1 {
		return 1
	}
	if score > 5 {
		return 5
	}
	return score
}
