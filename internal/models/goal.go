package models

import (
	"time"

	"github.com/finwell/finhealth-service/internal/money"
)

// Goal represents a savings goal
type Goal struct {
	ID           int64       `json:"id"`
	Username     string      `json:"username,omitempty"`
	Name         string      `json:"name"`
	TargetAmount money.Money `json:"target_amount"`
	TargetDate   string      `json:"target_date"` // Format: YYYY-MM-DD, may be malformed
	Priority     string      `json:"priority"`    // High, Medium or Low
	CreatedAt    time.Time   `json:"created_at"`
}

// AnalyzedGoal is a goal enriched with the engine's feasibility verdict
type AnalyzedGoal struct {
	Goal
	RequiredMonthly money.Money `json:"required_monthly"`
	MonthsLeft      int         `json:"months_left"`
	Status          string      `json:"status"` // On Track, At Risk, Unrealistic or Pending
}
