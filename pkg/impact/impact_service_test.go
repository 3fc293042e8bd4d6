package impact

import (
	"context"
	"testing"
	"time"

	"EcoBite-Backend/domain"
	"EcoBite-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockImpactRepository struct {
	logs    []*entities.UsageLog
	balance float64
	txns    []*entities.SavingsTransaction
}

func (m *mockImpactRepository) GetUsageLogs(ctx context.Context, userID string) ([]*entities.UsageLog, error) {
	return m.logs, nil
}

func (m *mockImpactRepository) AddSavingsTransaction(ctx context.Context, txn *entities.SavingsTransaction) error {
	m.txns = append(m.txns, txn)
	return nil
}

func (m *mockImpactRepository) GetSavingsTransactions(ctx context.Context, userID string) ([]*entities.SavingsTransaction, error) {
	var txns []*entities.SavingsTransaction
	for _, txn := range m.txns {
		if txn.UserID.String() == userID {
			txns = append(txns, txn)
		}
	}
	return txns, nil
}

func (m *mockImpactRepository) GetAvailableBalance(ctx context.Context, userID string) (float64, error) {
	return m.balance, nil
}

func usageLog(action string, qty int, unit string, cost float64, when time.Time) *entities.UsageLog {
	return &entities.UsageLog{
		LogID:      uuid.New(),
		UserID:     uuid.New(),
		ItemID:     uuid.New(),
		ActionType: action,
		Quantity:   qty,
		Unit:       unit,
		Cost:       &cost,
		ActionDate: when,
	}
}

func TestWeekStart(t *testing.T) {
	// 2026-03-12 is a Thursday
	thursday := time.Date(2026, 3, 12, 15, 30, 0, 0, time.UTC)
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, monday, WeekStart(thursday))
	assert.Equal(t, monday, WeekStart(monday.Add(5*time.Minute)))
	// a Sunday belongs to the week of the preceding Monday
	sunday := time.Date(2026, 3, 15, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, monday, WeekStart(sunday))
}

func TestEstimateKg(t *testing.T) {
	assert.Equal(t, 2.0, EstimateKg(2, "kg"))
	assert.Equal(t, 0.5, EstimateKg(500, "g"))
	assert.Equal(t, 0.25, EstimateKg(250, "gram"))
	assert.Equal(t, 1.5, EstimateKg(3, "pcs"))
	assert.Equal(t, 1.0, EstimateKg(2, ""))
}

func TestGetSavingsBucketsByWeekAndAction(t *testing.T) {
	week1 := time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC) // Monday
	week2 := week1.AddDate(0, 0, 9)

	repo := &mockImpactRepository{
		balance: 42,
		logs: []*entities.UsageLog{
			usageLog("cooked", 1, "kg", 10, week1),
			usageLog("used", 1, "kg", 5, week1.AddDate(0, 0, 2)),
			usageLog("donated", 1, "kg", 7, week2),
			usageLog("wasted", 1, "kg", 99, week2), // wasted never counts as saved
		},
	}
	service := NewImpactService(repo)

	res, err := service.GetSavings(context.Background(), uuid.NewString())
	require.NoError(t, err)

	assert.Equal(t, 22.0, res.TotalSaved)
	assert.Equal(t, 42.0, res.Balance)
	require.Len(t, res.Weekly, 2)

	assert.Equal(t, 10.0, res.Weekly[0].CookedValue)
	assert.Equal(t, 5.0, res.Weekly[0].WastePreventedValue)
	assert.Equal(t, 0.0, res.Weekly[0].DonatedValue)

	assert.Equal(t, 7.0, res.Weekly[1].DonatedValue)
	assert.True(t, res.Weekly[0].WeekStart.Before(res.Weekly[1].WeekStart))
}

func TestGetTransactionsListsLedger(t *testing.T) {
	userID := uuid.New()
	repo := &mockImpactRepository{
		txns: []*entities.SavingsTransaction{
			{ID: uuid.New(), UserID: userID, Amount: 50, Type: "Donate", Description: "Money donation", Balance: 70},
		},
	}
	service := NewImpactService(repo)

	txns, err := service.GetTransactions(context.Background(), userID.String())
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "Donate", txns[0].Type)
	assert.Equal(t, 50.0, txns[0].Amount)
	assert.Equal(t, 70.0, txns[0].Balance)

	empty, err := service.GetTransactions(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGetImpactCounters(t *testing.T) {
	now := time.Now()
	repo := &mockImpactRepository{
		logs: []*entities.UsageLog{
			usageLog("cooked", 2, "kg", 10, now),
			usageLog("cooked", 500, "g", 3, now),
			usageLog("donated", 1, "kg", 5, now),
			usageLog("wasted", 4, "pcs", 8, now),
			usageLog("used", 2, "pcs", 2, now),
		},
	}
	service := NewImpactService(repo)

	res, err := service.GetImpact(context.Background(), uuid.NewString())
	require.NoError(t, err)

	assert.Equal(t, 2, res.MealsCreated)
	assert.Equal(t, 1, res.DonationsMade)
	assert.Equal(t, 1, res.ItemsWasted)

	// 2kg + 0.5kg + 1kg + 1kg(2 pcs estimate) = 4.5kg
	assert.InDelta(t, 4.5, res.FoodSavedKg, 0.001)
	assert.InDelta(t, 4.5*domain.CO2PerKgFood, res.CO2PreventedKg, 0.001)
	assert.InDelta(t, 4.5*domain.WaterLPerKgFood, res.WaterSavedL, 0.001)
}
