package engine

import "github.com/shopspring/decimal"

// Score weights. Base 50, bounded to [0, 100] after adjustments.
const (
	scoreBase            = 50
	surplusBonus         = 15
	emergencyBonus       = 15
	longDebtPenalty      = 20
	emergencyOKMonths    = 3
	longFreedomThreshold = 60
)

// emergencyMonths is liquid assets over the monthly burn, with the divisor
// floored at 1 so a zero burn never divides by zero.
func emergencyMonths(liquidAssets, actualBurn decimal.Decimal) decimal.Decimal {
	divisor := decimal.Max(actualBurn, decimal.NewFromInt(1))
	return liquidAssets.Div(divisor)
}

// healthScore folds the weighted signals into a composite 0-100 score.
// The emergency threshold compares the unrounded value.
func healthScore(surplus, emergency decimal.Decimal, monthsToFreedom int) int {
	score := scoreBase
	if surplus.IsPositive() {
		score += surplusBonus
	}
	if emergency.GreaterThan(decimal.NewFromInt(emergencyOKMonths)) {
		score += emergencyBonus
	}
	if monthsToFreedom > longFreedomThreshold {
		score -= longDebtPenalty
	}
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
