package models

import "github.com/finwell/finhealth-service/internal/money"

// Asset represents an asset holding. LiquidityScore ranges 1 (illiquid)
// to 5 (cash-like); scores of 4 and above count toward liquid assets.
type Asset struct {
	ID             int64       `json:"id"`
	Username       string      `json:"username,omitempty"`
	Name           string      `json:"name"`
	Type           string      `json:"type"`
	Value          money.Money `json:"value"`
	LiquidityScore int         `json:"liquidity_score"`
}
