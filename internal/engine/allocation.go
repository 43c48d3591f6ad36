package engine

import (
	"github.com/shopspring/decimal"

	"github.com/finwell/finhealth-service/internal/models"
	"github.com/finwell/finhealth-service/internal/money"
)

// cashBucket is the synthetic allocation bucket for current savings.
const cashBucket = "Cash"

// allocate computes the percent-of-total-assets per asset type, with
// savings in a synthetic "Cash" bucket. Returns an empty map when there
// are no assets to allocate.
func allocate(assets []models.Asset, savings, totalAssets decimal.Decimal) map[string]float64 {
	out := make(map[string]float64)
	if !totalAssets.IsPositive() {
		return out
	}

	buckets := make(map[string]decimal.Decimal)
	for _, a := range assets {
		buckets[a.Type] = buckets[a.Type].Add(money.Normalize(a.Value))
	}
	buckets[cashBucket] = buckets[cashBucket].Add(savings)

	hundred := decimal.NewFromInt(100)
	for label, value := range buckets {
		out[label] = value.Div(totalAssets).Mul(hundred).Round(1).InexactFloat64()
	}
	return out
}
