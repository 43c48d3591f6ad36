package models

import "github.com/finwell/finhealth-service/internal/money"

// Liability represents an outstanding debt. InterestRate is annual percent.
type Liability struct {
	ID                int64       `json:"id"`
	Username          string      `json:"username,omitempty"`
	Name              string      `json:"name"`
	Type              string      `json:"type"`
	OutstandingAmount money.Money `json:"outstanding_amount"`
	InterestRate      money.Money `json:"interest_rate"`
	MonthlyPayment    money.Money `json:"monthly_payment"`
}
