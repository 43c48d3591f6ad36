package models

import (
	"time"

	"github.com/finwell/finhealth-service/internal/money"
)

// Profile represents a user's financial profile
type Profile struct {
	Username       string      `json:"username"`
	Email          string      `json:"email,omitempty"`
	Salary         money.Money `json:"salary"`
	Rent           money.Money `json:"rent"`
	CurrentSavings money.Money `json:"current_savings"`
	UpdatedAt      time.Time   `json:"updated_at"`
}
