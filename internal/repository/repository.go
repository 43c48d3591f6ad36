package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/finwell/finhealth-service/internal/models"
)

// ErrNotFound is returned when a record does not exist or belongs to
// another user.
var ErrNotFound = errors.New("not found")

// Repository provides database operations for the raw financial records.
// Computed reports are never stored; the engine recomputes on demand.
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// UpsertProfile creates or updates a user's financial profile
func (r *Repository) UpsertProfile(profile *models.Profile) error {
	query := `
		INSERT INTO finhealth.profiles (username, email, salary, rent, current_savings, updated_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP)
		ON CONFLICT (username) DO UPDATE
		SET email = EXCLUDED.email,
		    salary = EXCLUDED.salary,
		    rent = EXCLUDED.rent,
		    current_savings = EXCLUDED.current_savings,
		    updated_at = CURRENT_TIMESTAMP
		RETURNING updated_at`
	err := r.db.QueryRow(query,
		profile.Username, profile.Email, profile.Salary, profile.Rent, profile.CurrentSavings).
		Scan(&profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

// GetProfile retrieves a user's financial profile
func (r *Repository) GetProfile(username string) (*models.Profile, error) {
	profile := &models.Profile{}
	query := `
		SELECT username, email, salary, rent, current_savings, updated_at
		FROM finhealth.profiles
		WHERE username = $1`
	err := r.db.QueryRow(query, username).
		Scan(&profile.Username, &profile.Email, &profile.Salary, &profile.Rent,
			&profile.CurrentSavings, &profile.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("profile %s: %w", username, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// ListProfiles returns every profile, used by the digest job
func (r *Repository) ListProfiles() ([]models.Profile, error) {
	query := `
		SELECT username, email, salary, rent, current_savings, updated_at
		FROM finhealth.profiles
		ORDER BY username`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		var p models.Profile
		if err := rows.Scan(&p.Username, &p.Email, &p.Salary, &p.Rent,
			&p.CurrentSavings, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// ListExpenses returns a user's most recent expenses, newest first
func (r *Repository) ListExpenses(username string) ([]models.Expense, error) {
	query := `
		SELECT id, username, title, amount, category, date, created_at
		FROM finhealth.expenses
		WHERE username = $1
		ORDER BY date DESC, id DESC
		LIMIT 50`
	rows, err := r.db.Query(query, username)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.Username, &e.Title, &e.Amount,
			&e.Category, &e.Date, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// CreateExpense records a new expense
func (r *Repository) CreateExpense(expense *models.Expense) error {
	query := `
		INSERT INTO finhealth.expenses (username, title, amount, category, date, created_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query,
		expense.Username, expense.Title, expense.Amount, expense.Category, expense.Date).
		Scan(&expense.ID, &expense.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// DeleteExpense removes an expense owned by the user
func (r *Repository) DeleteExpense(username string, id int64) error {
	return r.deleteOwned("finhealth.expenses", username, id)
}

// ListAssets returns a user's asset holdings
func (r *Repository) ListAssets(username string) ([]models.Asset, error) {
	query := `
		SELECT id, username, name, type, value, liquidity_score
		FROM finhealth.assets
		WHERE username = $1
		ORDER BY id`
	rows, err := r.db.Query(query, username)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	var assets []models.Asset
	for rows.Next() {
		var a models.Asset
		if err := rows.Scan(&a.ID, &a.Username, &a.Name, &a.Type,
			&a.Value, &a.LiquidityScore); err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

// CreateAsset records a new asset holding
func (r *Repository) CreateAsset(asset *models.Asset) error {
	query := `
		INSERT INTO finhealth.assets (username, name, type, value, liquidity_score)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.db.QueryRow(query,
		asset.Username, asset.Name, asset.Type, asset.Value, asset.LiquidityScore).
		Scan(&asset.ID)
	if err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}
	return nil
}

// DeleteAsset removes an asset owned by the user
func (r *Repository) DeleteAsset(username string, id int64) error {
	return r.deleteOwned("finhealth.assets", username, id)
}

// ListLiabilities returns a user's liabilities
func (r *Repository) ListLiabilities(username string) ([]models.Liability, error) {
	query := `
		SELECT id, username, name, type, outstanding_amount, interest_rate, monthly_payment
		FROM finhealth.liabilities
		WHERE username = $1
		ORDER BY id`
	rows, err := r.db.Query(query, username)
	if err != nil {
		return nil, fmt.Errorf("failed to list liabilities: %w", err)
	}
	defer rows.Close()

	var liabilities []models.Liability
	for rows.Next() {
		var l models.Liability
		if err := rows.Scan(&l.ID, &l.Username, &l.Name, &l.Type,
			&l.OutstandingAmount, &l.InterestRate, &l.MonthlyPayment); err != nil {
			return nil, fmt.Errorf("failed to scan liability: %w", err)
		}
		liabilities = append(liabilities, l)
	}
	return liabilities, rows.Err()
}

// CreateLiability records a new liability
func (r *Repository) CreateLiability(liability *models.Liability) error {
	query := `
		INSERT INTO finhealth.liabilities (username, name, type, outstanding_amount, interest_rate, monthly_payment)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.db.QueryRow(query,
		liability.Username, liability.Name, liability.Type,
		liability.OutstandingAmount, liability.InterestRate, liability.MonthlyPayment).
		Scan(&liability.ID)
	if err != nil {
		return fmt.Errorf("failed to create liability: %w", err)
	}
	return nil
}

// DeleteLiability removes a liability owned by the user
func (r *Repository) DeleteLiability(username string, id int64) error {
	return r.deleteOwned("finhealth.liabilities", username, id)
}

// ListGoals returns a user's savings goals in insertion order
func (r *Repository) ListGoals(username string) ([]models.Goal, error) {
	query := `
		SELECT id, username, name, target_amount, target_date, priority, created_at
		FROM finhealth.goals
		WHERE username = $1
		ORDER BY id`
	rows, err := r.db.Query(query, username)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		var g models.Goal
		if err := rows.Scan(&g.ID, &g.Username, &g.Name, &g.TargetAmount,
			&g.TargetDate, &g.Priority, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// CreateGoal records a new savings goal
func (r *Repository) CreateGoal(goal *models.Goal) error {
	query := `
		INSERT INTO finhealth.goals (username, name, target_amount, target_date, priority, created_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query,
		goal.Username, goal.Name, goal.TargetAmount, goal.TargetDate, goal.Priority).
		Scan(&goal.ID, &goal.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

// DeleteGoal removes a goal owned by the user
func (r *Repository) DeleteGoal(username string, id int64) error {
	return r.deleteOwned("finhealth.goals", username, id)
}

func (r *Repository) deleteOwned(table, username string, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 AND username = $2`, table)
	res, err := r.db.Exec(query, id, username)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("record %d in %s: %w", id, table, ErrNotFound)
	}
	return nil
}
