package models

import "github.com/finwell/finhealth-service/internal/money"

// ProfileSummary is the profile slice echoed back with a dashboard snapshot
type ProfileSummary struct {
	Salary money.Money `json:"salary"`
	Rent   money.Money `json:"rent"`
}

// RecordLists holds the raw records backing a snapshot
type RecordLists struct {
	Expenses    []Expense      `json:"expenses"`
	Assets      []Asset        `json:"assets"`
	Liabilities []Liability    `json:"liabilities"`
	Goals       []AnalyzedGoal `json:"goals"`
}

// Snapshot is the full dashboard payload for one user
type Snapshot struct {
	UserProfile ProfileSummary `json:"user_profile"`
	Health      HealthReport   `json:"health"`
	Lists       RecordLists    `json:"lists"`
}
