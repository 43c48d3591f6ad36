package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finwell/finhealth-service/internal/models"
	"github.com/finwell/finhealth-service/internal/money"
)

// projectionMonths is the fixed forecast length.
const projectionMonths = 12

// monthlyGrowthRate is the fixed 0.5% growth applied to positive balances.
var monthlyGrowthRate = decimal.NewFromFloat(0.005)

// project produces the 12-month net-worth forecast. Growth compounds only
// on positive balances; a negative net worth accrues no penalty, it just
// shifts by the monthly surplus.
func project(netWorth, surplus decimal.Decimal, now time.Time) []models.Projection {
	base := monthStart(now)
	balance := netWorth

	out := make([]models.Projection, 0, projectionMonths)
	for i := 1; i <= projectionMonths; i++ {
		if balance.IsPositive() {
			balance = balance.Add(balance.Mul(monthlyGrowthRate).Round(2))
		}
		balance = balance.Add(surplus)
		out = append(out, models.Projection{
			Month:    base.AddDate(0, i, 0).Format("Jan"),
			NetWorth: money.New(balance),
		})
	}
	return out
}
