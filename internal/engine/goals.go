package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finwell/finhealth-service/internal/models"
	"github.com/finwell/finhealth-service/internal/money"
)

// Feasibility statuses assigned to analyzed goals.
const (
	GoalOnTrack     = "On Track"
	GoalAtRisk      = "At Risk"
	GoalUnrealistic = "Unrealistic"
)

// defaultGoalHorizon is assumed when a target date cannot be parsed.
const defaultGoalHorizon = 12

// analyzeGoals classifies each goal against the disposable surplus.
// Output preserves input order.
func analyzeGoals(goals []models.Goal, surplus decimal.Decimal, now time.Time) []models.AnalyzedGoal {
	available := decimal.Max(decimal.Zero, surplus)

	out := make([]models.AnalyzedGoal, 0, len(goals))
	for _, g := range goals {
		monthsLeft := monthsUntil(g.TargetDate, now)
		required := money.Normalize(g.TargetAmount).
			Div(decimal.NewFromInt(int64(monthsLeft))).
			Round(2)

		status := GoalOnTrack
		if required.GreaterThan(available) {
			if required.GreaterThan(available.Mul(decimal.NewFromInt(2))) {
				status = GoalUnrealistic
			} else {
				status = GoalAtRisk
			}
		}

		out = append(out, models.AnalyzedGoal{
			Goal:            g,
			RequiredMonthly: money.New(required),
			MonthsLeft:      monthsLeft,
			Status:          status,
		})
	}
	return out
}

// monthsUntil counts whole calendar months from now to the target date,
// floored at 1. Unparseable dates default to 12 months.
func monthsUntil(target string, now time.Time) int {
	t, err := time.Parse("2006-01-02", target)
	if err != nil {
		return defaultGoalHorizon
	}
	months := (t.Year()-now.Year())*12 + int(t.Month()) - int(now.Month())
	if months < 1 {
		return 1
	}
	return months
}
