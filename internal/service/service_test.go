package service

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finwell/finhealth-service/internal/engine"
	"github.com/finwell/finhealth-service/internal/models"
	"github.com/finwell/finhealth-service/internal/money"
)

type mockStore struct {
	profiles    map[string]*models.Profile
	expenses    []models.Expense
	assets      []models.Asset
	liabilities []models.Liability
	goals       []models.Goal
	listErr     error
}

func (m *mockStore) UpsertProfile(p *models.Profile) error {
	if m.profiles == nil {
		m.profiles = map[string]*models.Profile{}
	}
	m.profiles[p.Username] = p
	return nil
}

func (m *mockStore) GetProfile(username string) (*models.Profile, error) {
	p, ok := m.profiles[username]
	if !ok {
		return nil, errors.New("profile not found")
	}
	return p, nil
}

func (m *mockStore) ListProfiles() ([]models.Profile, error) {
	var out []models.Profile
	for _, p := range m.profiles {
		out = append(out, *p)
	}
	return out, m.listErr
}

func (m *mockStore) ListExpenses(string) ([]models.Expense, error) { return m.expenses, m.listErr }
func (m *mockStore) CreateExpense(e *models.Expense) error         { m.expenses = append(m.expenses, *e); return nil }
func (m *mockStore) DeleteExpense(string, int64) error             { return nil }
func (m *mockStore) ListAssets(string) ([]models.Asset, error)     { return m.assets, m.listErr }
func (m *mockStore) CreateAsset(a *models.Asset) error             { m.assets = append(m.assets, *a); return nil }
func (m *mockStore) DeleteAsset(string, int64) error               { return nil }
func (m *mockStore) ListLiabilities(string) ([]models.Liability, error) {
	return m.liabilities, m.listErr
}
func (m *mockStore) CreateLiability(l *models.Liability) error { m.liabilities = append(m.liabilities, *l); return nil }
func (m *mockStore) DeleteLiability(string, int64) error       { return nil }
func (m *mockStore) ListGoals(string) ([]models.Goal, error)   { return m.goals, m.listErr }
func (m *mockStore) CreateGoal(g *models.Goal) error           { m.goals = append(m.goals, *g); return nil }
func (m *mockStore) DeleteGoal(string, int64) error            { return nil }

type panicEngine struct{}

func (panicEngine) CalculateFinancialHealth(
	models.Profile, []models.Expense, []models.Asset, []models.Liability, []models.Goal,
) models.HealthReport {
	panic("boom")
}

type stubRates struct {
	rate float64
	err  error
}

func (s stubRates) GetKeyRate() (float64, error) { return s.rate, s.err }

type recordingMailer struct {
	sentTo []string
	err    error
}

func (m *recordingMailer) SendHealthDigest(to, _ string, _ models.HealthReport, _ float64) error {
	if m.err != nil {
		return m.err
	}
	m.sentTo = append(m.sentTo, to)
	return nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func fixedEngine() *engine.Engine {
	return engine.NewWithClock(func() time.Time {
		return time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	})
}

func bobStore() *mockStore {
	return &mockStore{
		profiles: map[string]*models.Profile{
			"bob": {
				Username:       "bob",
				Email:          "bob@example.com",
				Salary:         money.FromFloat(100000),
				Rent:           money.FromFloat(20000),
				CurrentSavings: money.FromFloat(50000),
			},
		},
		expenses: []models.Expense{{ID: 1, Title: "Groceries", Amount: money.FromFloat(4000)}},
		goals:    []models.Goal{{ID: 3, Name: "Trip", TargetAmount: money.FromFloat(60000), TargetDate: "2026-09-01"}},
	}
}

func TestBuildSnapshot(t *testing.T) {
	svc := NewService(bobStore(), fixedEngine(), stubRates{}, &recordingMailer{}, quietLogger())

	snapshot, err := svc.BuildSnapshot("bob")
	require.NoError(t, err)

	assert.Equal(t, "100000.00", snapshot.UserProfile.Salary.StringFixed(2))
	assert.Equal(t, "20000.00", snapshot.UserProfile.Rent.StringFixed(2))
	assert.Len(t, snapshot.Lists.Expenses, 1)
	assert.Empty(t, snapshot.Lists.Assets)
	assert.NotNil(t, snapshot.Lists.Assets)
	require.Len(t, snapshot.Lists.Goals, 1)
	assert.Equal(t, "On Track", snapshot.Lists.Goals[0].Status)
	assert.Greater(t, snapshot.Health.Score, 0)
	assert.Len(t, snapshot.Health.Projections, 12)
}

func TestBuildSnapshotUnknownUser(t *testing.T) {
	svc := NewService(&mockStore{}, fixedEngine(), stubRates{}, &recordingMailer{}, quietLogger())

	_, err := svc.BuildSnapshot("nobody")
	assert.Error(t, err)
}

func TestBuildSnapshotEngineFailureYieldsFallback(t *testing.T) {
	svc := NewService(bobStore(), panicEngine{}, stubRates{}, &recordingMailer{}, quietLogger())

	snapshot, err := svc.BuildSnapshot("bob")
	require.NoError(t, err)

	assert.Equal(t, 0, snapshot.Health.Score)
	assert.True(t, snapshot.Health.NetWorth.IsZero())
	assert.Equal(t, "None", snapshot.Health.DebtStrategy.Strategy)
	assert.Equal(t, "N/A", snapshot.Health.DebtStrategy.FreedomDate)
	assert.Empty(t, snapshot.Health.Projections)

	// Raw goals are still listed, marked Pending
	require.Len(t, snapshot.Lists.Goals, 1)
	assert.Equal(t, "Pending", snapshot.Lists.Goals[0].Status)
	assert.Equal(t, "Trip", snapshot.Lists.Goals[0].Name)
}

func TestAddGoalDefaultsPriority(t *testing.T) {
	store := &mockStore{profiles: map[string]*models.Profile{}}
	svc := NewService(store, fixedEngine(), stubRates{}, &recordingMailer{}, quietLogger())

	g := &models.Goal{Username: "bob", Name: "Trip", TargetAmount: money.FromFloat(1000), TargetDate: "2027-01-01"}
	require.NoError(t, svc.AddGoal(g))
	assert.Equal(t, "Medium", g.Priority)
}

func TestAddExpenseDefaultsDateAndCategory(t *testing.T) {
	store := &mockStore{profiles: map[string]*models.Profile{}}
	svc := NewService(store, fixedEngine(), stubRates{}, &recordingMailer{}, quietLogger())

	e := &models.Expense{Username: "bob", Title: "Coffee", Amount: money.FromFloat(5)}
	require.NoError(t, svc.AddExpense(e))
	assert.Equal(t, "General", e.Category)
	assert.Equal(t, time.Now().Format("2006-01-02"), e.Date)
}

func TestSendWeeklyDigestSkipsProfilesWithoutEmail(t *testing.T) {
	store := bobStore()
	store.profiles["carol"] = &models.Profile{Username: "carol"} // no email
	mailer := &recordingMailer{}
	svc := NewService(store, fixedEngine(), stubRates{rate: 16.5}, mailer, quietLogger())

	svc.SendWeeklyDigest()

	assert.Equal(t, []string{"bob@example.com"}, mailer.sentTo)
}

func TestSendWeeklyDigestSurvivesRateOutage(t *testing.T) {
	mailer := &recordingMailer{}
	svc := NewService(bobStore(), fixedEngine(), stubRates{err: errors.New("cbr down")}, mailer, quietLogger())

	svc.SendWeeklyDigest()

	assert.Len(t, mailer.sentTo, 1)
}
