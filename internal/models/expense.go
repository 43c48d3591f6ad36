package models

import (
	"time"

	"github.com/finwell/finhealth-service/internal/money"
)

// Expense represents a single recorded expense
type Expense struct {
	ID        int64       `json:"id"`
	Username  string      `json:"username,omitempty"`
	Title     string      `json:"title"`
	Amount    money.Money `json:"amount"`
	Category  string      `json:"category"`
	Date      string      `json:"date"` // Format: YYYY-MM-DD
	CreatedAt time.Time   `json:"created_at"`
}
