package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/finwell/finhealth-service/internal/models"
	"github.com/finwell/finhealth-service/internal/money"
)

func liability(outstanding, rate, payment float64) models.Liability {
	return models.Liability{
		OutstandingAmount: money.FromFloat(outstanding),
		InterestRate:      money.FromFloat(rate),
		MonthlyPayment:    money.FromFloat(payment),
	}
}

func TestSimulatePayoffNoDebt(t *testing.T) {
	strategy := simulatePayoff(decimal.Zero, decimal.Zero, nil, decimal.NewFromInt(5000), fixedNow)

	assert.Equal(t, "None", strategy.Strategy)
	assert.Equal(t, "N/A", strategy.FreedomDate)
	assert.Equal(t, 0, strategy.MonthsToFreedom)
	assert.True(t, strategy.RecommendedExtraPayment.IsZero())
}

func TestSimulatePayoffConvergesEarly(t *testing.T) {
	ls := []models.Liability{liability(10000, 12, 500)}
	strategy := simulatePayoff(
		decimal.NewFromInt(10000), decimal.NewFromInt(500), ls,
		decimal.NewFromInt(9500), fixedNow)

	// extra = 4750, payment = 5250, 1% monthly rate: gone in two months
	assert.Equal(t, "Avalanche", strategy.Strategy)
	assert.Equal(t, 2, strategy.MonthsToFreedom)
	assert.Equal(t, "May 2026", strategy.FreedomDate)
	assert.Equal(t, "4750.00", strategy.RecommendedExtraPayment.StringFixed(2))
}

func TestSimulatePayoffCapIsNotATrap(t *testing.T) {
	// 15%/yr on 100000 with a 1300 payment amortizes, but needs far more
	// than 120 months. The cap is reported as-is with a real date.
	ls := []models.Liability{liability(100000, 15, 1300)}
	strategy := simulatePayoff(
		decimal.NewFromInt(100000), decimal.NewFromInt(1300), ls,
		decimal.Zero, fixedNow)

	assert.Equal(t, 120, strategy.MonthsToFreedom)
	assert.Equal(t, "Mar 2036", strategy.FreedomDate)
}

func TestSimulatePayoffDetectsTrapImmediately(t *testing.T) {
	ls := []models.Liability{liability(100000, 60, 1000)}
	strategy := simulatePayoff(
		decimal.NewFromInt(100000), decimal.NewFromInt(1000), ls,
		decimal.NewFromInt(1000), fixedNow)

	assert.Equal(t, 999, strategy.MonthsToFreedom)
	assert.Equal(t, "Never (Debt Trap)", strategy.FreedomDate)
}

func TestSimulatePayoffNegativeSurplusMeansNoExtra(t *testing.T) {
	ls := []models.Liability{liability(5000, 12, 500)}
	strategy := simulatePayoff(
		decimal.NewFromInt(5000), decimal.NewFromInt(500), ls,
		decimal.NewFromInt(-2000), fixedNow)

	assert.True(t, strategy.RecommendedExtraPayment.IsZero())
	assert.Equal(t, 11, strategy.MonthsToFreedom)
}

func TestSimulatePayoffExtraCappedAtDebt(t *testing.T) {
	ls := []models.Liability{liability(1000, 12, 100)}
	strategy := simulatePayoff(
		decimal.NewFromInt(1000), decimal.NewFromInt(100), ls,
		decimal.NewFromInt(50000), fixedNow)

	assert.Equal(t, "1000.00", strategy.RecommendedExtraPayment.StringFixed(2))
	assert.Equal(t, 1, strategy.MonthsToFreedom)
}

func TestWeightedMonthlyRate(t *testing.T) {
	ls := []models.Liability{
		liability(60000, 10, 0),
		liability(40000, 20, 0),
	}
	// (60000*0.10 + 40000*0.20) / 100000 / 12 = 0.14 / 12
	rate := weightedMonthlyRate(ls, decimal.NewFromInt(100000))
	want := decimal.NewFromFloat(0.14).Div(decimal.NewFromInt(12))
	assert.True(t, rate.Equal(want), "got %s, want %s", rate, want)
}

func TestFallbackRateWhenNoRateData(t *testing.T) {
	// Zero interest rates on the books: the 15%/yr fallback still accrues,
	// stretching a naive 10-month payoff to 11.
	ls := []models.Liability{liability(1000, 0, 100)}
	strategy := simulatePayoff(
		decimal.NewFromInt(1000), decimal.NewFromInt(100), ls,
		decimal.Zero, fixedNow)

	assert.Equal(t, 11, strategy.MonthsToFreedom)
	assert.Equal(t, "Feb 2027", strategy.FreedomDate)
}
