package service

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/finwell/finhealth-service/internal/models"
)

// Store is the persistence surface the service needs. Satisfied by
// *repository.Repository; mocked in tests.
type Store interface {
	UpsertProfile(profile *models.Profile) error
	GetProfile(username string) (*models.Profile, error)
	ListProfiles() ([]models.Profile, error)
	ListExpenses(username string) ([]models.Expense, error)
	CreateExpense(expense *models.Expense) error
	DeleteExpense(username string, id int64) error
	ListAssets(username string) ([]models.Asset, error)
	CreateAsset(asset *models.Asset) error
	DeleteAsset(username string, id int64) error
	ListLiabilities(username string) ([]models.Liability, error)
	CreateLiability(liability *models.Liability) error
	DeleteLiability(username string, id int64) error
	ListGoals(username string) ([]models.Goal, error)
	CreateGoal(goal *models.Goal) error
	DeleteGoal(username string, id int64) error
}

// HealthEngine computes a health report from one user's records.
type HealthEngine interface {
	CalculateFinancialHealth(
		profile models.Profile,
		expenses []models.Expense,
		assets []models.Asset,
		liabilities []models.Liability,
		goals []models.Goal,
	) models.HealthReport
}

// RateSource supplies the central-bank benchmark rate for the digest.
type RateSource interface {
	GetKeyRate() (float64, error)
}

// Mailer delivers health digest emails.
type Mailer interface {
	SendHealthDigest(to, username string, report models.HealthReport, keyRate float64) error
}

// Service handles business logic
type Service struct {
	store  Store
	engine HealthEngine
	rates  RateSource
	mailer Mailer
	log    *logrus.Logger
}

// NewService initializes a new service
func NewService(store Store, engine HealthEngine, rates RateSource, mailer Mailer, log *logrus.Logger) *Service {
	return &Service{store: store, engine: engine, rates: rates, mailer: mailer, log: log}
}

// BuildSnapshot fetches a user's records, runs the engine and assembles
// the dashboard payload.
func (s *Service) BuildSnapshot(username string) (*models.Snapshot, error) {
	profile, err := s.store.GetProfile(username)
	if err != nil {
		return nil, err
	}
	expenses, err := s.store.ListExpenses(username)
	if err != nil {
		return nil, err
	}
	assets, err := s.store.ListAssets(username)
	if err != nil {
		return nil, err
	}
	liabilities, err := s.store.ListLiabilities(username)
	if err != nil {
		return nil, err
	}
	goals, err := s.store.ListGoals(username)
	if err != nil {
		return nil, err
	}

	health := s.computeHealth(username, *profile, expenses, assets, liabilities, goals)

	// The dashboard always shows the goals list, even when the engine
	// produced no analysis for them.
	listedGoals := health.AnalyzedGoals
	if len(listedGoals) == 0 && len(goals) > 0 {
		listedGoals = make([]models.AnalyzedGoal, 0, len(goals))
		for _, g := range goals {
			listedGoals = append(listedGoals, models.AnalyzedGoal{Goal: g, Status: "Pending"})
		}
	}

	return &models.Snapshot{
		UserProfile: models.ProfileSummary{Salary: profile.Salary, Rent: profile.Rent},
		Health:      health,
		Lists: models.RecordLists{
			Expenses:    emptyIfNil(expenses),
			Assets:      emptyIfNil(assets),
			Liabilities: emptyIfNil(liabilities),
			Goals:       emptyIfNil(listedGoals),
		},
	}, nil
}

// computeHealth shields the request from an engine failure: a panic is
// logged and replaced by the zeroed fallback report.
func (s *Service) computeHealth(
	username string,
	profile models.Profile,
	expenses []models.Expense,
	assets []models.Asset,
	liabilities []models.Liability,
	goals []models.Goal,
) (report models.HealthReport) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Errorf("Financial engine failed for user %s: %v", username, r)
			report = FallbackReport()
		}
	}()
	return s.engine.CalculateFinancialHealth(profile, expenses, assets, liabilities, goals)
}

// FallbackReport is the documented substitute when the engine cannot
// produce a report: score 0, zero aggregates, empty lists.
func FallbackReport() models.HealthReport {
	return models.HealthReport{
		Score: 0,
		DebtStrategy: models.DebtStrategy{
			Strategy:    "None",
			FreedomDate: "N/A",
		},
		Projections:   []models.Projection{},
		AnalyzedGoals: []models.AnalyzedGoal{},
		Allocation:    map[string]float64{},
	}
}

// SaveProfile upserts a user's financial profile
func (s *Service) SaveProfile(profile *models.Profile) error {
	if err := s.store.UpsertProfile(profile); err != nil {
		return err
	}
	s.log.Infof("Profile saved: %s", profile.Username)
	return nil
}

// AddExpense records an expense, defaulting the date to today
func (s *Service) AddExpense(expense *models.Expense) error {
	if expense.Date == "" {
		expense.Date = time.Now().Format("2006-01-02")
	}
	if expense.Category == "" {
		expense.Category = "General"
	}
	if err := s.store.CreateExpense(expense); err != nil {
		return err
	}
	s.log.Infof("Expense added for user %s: %s", expense.Username, expense.Title)
	return nil
}

// DeleteExpense removes a user's expense
func (s *Service) DeleteExpense(username string, id int64) error {
	return s.store.DeleteExpense(username, id)
}

// AddAsset records an asset holding
func (s *Service) AddAsset(asset *models.Asset) error {
	if err := s.store.CreateAsset(asset); err != nil {
		return err
	}
	s.log.Infof("Asset added for user %s: %s", asset.Username, asset.Name)
	return nil
}

// DeleteAsset removes a user's asset
func (s *Service) DeleteAsset(username string, id int64) error {
	return s.store.DeleteAsset(username, id)
}

// AddLiability records a liability
func (s *Service) AddLiability(liability *models.Liability) error {
	if err := s.store.CreateLiability(liability); err != nil {
		return err
	}
	s.log.Infof("Liability added for user %s: %s", liability.Username, liability.Name)
	return nil
}

// DeleteLiability removes a user's liability
func (s *Service) DeleteLiability(username string, id int64) error {
	return s.store.DeleteLiability(username, id)
}

// AddGoal records a savings goal, defaulting priority to Medium
func (s *Service) AddGoal(goal *models.Goal) error {
	if goal.Priority == "" {
		goal.Priority = "Medium"
	}
	if err := s.store.CreateGoal(goal); err != nil {
		return err
	}
	s.log.Infof("Goal added for user %s: %s", goal.Username, goal.Name)
	return nil
}

// DeleteGoal removes a user's goal
func (s *Service) DeleteGoal(username string, id int64) error {
	return s.store.DeleteGoal(username, id)
}

func emptyIfNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
