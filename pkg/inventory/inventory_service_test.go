package inventory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"EcoBite-Backend/domain"
	"EcoBite-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockInventoryRepository struct {
	addItemFn     func(ctx context.Context, item *entities.InventoryItem) error
	getItemByIDFn func(ctx context.Context, id string) (*entities.InventoryItem, error)
	updateItemFn  func(ctx context.Context, item *entities.InventoryItem) error
	deleteItemFn  func(ctx context.Context, id string) error
	getItemsFn    func(ctx context.Context, userID string) ([]*entities.InventoryItem, error)
	addUsageLogFn func(ctx context.Context, usageLog *entities.UsageLog) error
}

func (m *mockInventoryRepository) AddItem(ctx context.Context, item *entities.InventoryItem) error {
	return m.addItemFn(ctx, item)
}

func (m *mockInventoryRepository) GetItemByID(ctx context.Context, id string) (*entities.InventoryItem, error) {
	return m.getItemByIDFn(ctx, id)
}

func (m *mockInventoryRepository) UpdateItem(ctx context.Context, item *entities.InventoryItem) error {
	return m.updateItemFn(ctx, item)
}

func (m *mockInventoryRepository) DeleteItem(ctx context.Context, id string) error {
	return m.deleteItemFn(ctx, id)
}

func (m *mockInventoryRepository) GetItems(ctx context.Context, userID string) ([]*entities.InventoryItem, error) {
	return m.getItemsFn(ctx, userID)
}

func (m *mockInventoryRepository) AddUsageLog(ctx context.Context, usageLog *entities.UsageLog) error {
	return m.addUsageLogFn(ctx, usageLog)
}

func (m *mockInventoryRepository) WithTransaction(ctx context.Context, fn func(txRepo InventoryRepository) error) error {
	return fn(m)
}

func TestDaysLeft(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	now := time.Date(2026, 3, 10, 23, 45, 0, 0, loc)

	tests := []struct {
		name   string
		expiry time.Time
		want   int
	}{
		{"expires today late evening", time.Date(2026, 3, 10, 0, 0, 0, 0, loc), 0},
		{"expires today early morning", time.Date(2026, 3, 10, 6, 0, 0, 0, loc), 0},
		{"tomorrow", time.Date(2026, 3, 11, 1, 0, 0, 0, loc), 1},
		{"yesterday", time.Date(2026, 3, 9, 23, 59, 0, 0, loc), -1},
		{"next week", time.Date(2026, 3, 17, 12, 0, 0, 0, loc), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysLeft(tt.expiry, now))
		})
	}
}

func TestDaysLeftIgnoresTimeOfDay(t *testing.T) {
	loc := time.UTC
	expiry := time.Date(2026, 5, 3, 0, 0, 0, 0, loc)

	for hour := 0; hour < 24; hour++ {
		now := time.Date(2026, 5, 1, hour, 30, 0, 0, loc)
		assert.Equal(t, 2, DaysLeft(expiry, now), "hour %d", hour)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		daysLeft int
		want     string
	}{
		{-10, domain.StatusExpired},
		{-1, domain.StatusExpired},
		{0, domain.StatusExpiring},
		{1, domain.StatusExpiring},
		{3, domain.StatusExpiring},
		{4, domain.StatusFresh},
		{30, domain.StatusFresh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.daysLeft), "daysLeft=%d", tt.daysLeft)
	}
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Expired", StatusLabel(-1))
	assert.Equal(t, "Expires today", StatusLabel(0))
	assert.Equal(t, "1 day left", StatusLabel(1))
	assert.Equal(t, "2 days left", StatusLabel(2))
	assert.Equal(t, "14 days left", StatusLabel(14))
}

func TestLoadInventoryEmptyUserID(t *testing.T) {
	repo := &mockInventoryRepository{
		getItemsFn: func(ctx context.Context, userID string) ([]*entities.InventoryItem, error) {
			t.Fatal("repository should not be queried without a user")
			return nil, nil
		},
	}
	service := NewInventoryService(repo, nil)

	items, err := service.LoadInventory(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestLoadInventoryAnnotatesItems(t *testing.T) {
	userID := uuid.New()
	repo := &mockInventoryRepository{
		getItemsFn: func(ctx context.Context, uid string) ([]*entities.InventoryItem, error) {
			return []*entities.InventoryItem{
				{
					ItemID:     uuid.New(),
					UserID:     userID,
					ItemName:   "Milk",
					Quantity:   1,
					Unit:       "l",
					ExpiryDate: time.Now().AddDate(0, 0, 10),
				},
				{
					ItemID:     uuid.New(),
					UserID:     userID,
					ItemName:   "Spinach",
					Quantity:   2,
					Unit:       "bunch",
					ExpiryDate: time.Now().AddDate(0, 0, -2),
				},
			}, nil
		},
	}
	service := NewInventoryService(repo, nil)

	items, err := service.LoadInventory(context.Background(), userID.String())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, domain.StatusFresh, items[0].Status)
	assert.Equal(t, 10, items[0].DaysLeft)

	assert.Equal(t, domain.StatusExpired, items[1].Status)
	assert.Equal(t, "Expired", items[1].StatusLabel)
}

func TestMarkItemLogsAndDeletes(t *testing.T) {
	userID := uuid.New()
	itemID := uuid.New()
	cost := 12000.0

	var loggedAction string
	var loggedQuantity int
	var deletedID string

	repo := &mockInventoryRepository{
		getItemByIDFn: func(ctx context.Context, id string) (*entities.InventoryItem, error) {
			return &entities.InventoryItem{
				ItemID:     itemID,
				UserID:     userID,
				ItemName:   "Bread",
				Quantity:   2,
				Unit:       "loaf",
				ExpiryDate: time.Now(),
				Cost:       &cost,
			}, nil
		},
		addUsageLogFn: func(ctx context.Context, usageLog *entities.UsageLog) error {
			loggedAction = usageLog.ActionType
			loggedQuantity = usageLog.Quantity
			require.NotNil(t, usageLog.Cost)
			assert.Equal(t, cost, *usageLog.Cost)
			return nil
		},
		deleteItemFn: func(ctx context.Context, id string) error {
			deletedID = id
			return nil
		},
	}
	service := NewInventoryService(repo, nil)

	err := service.MarkItem(context.Background(), domain.MarkItemRequest{
		ItemID: itemID.String(),
		Action: "wasted",
	}, userID.String())
	require.NoError(t, err)

	assert.Equal(t, "wasted", loggedAction)
	assert.Equal(t, 2, loggedQuantity)
	assert.Equal(t, itemID.String(), deletedID)
}

func TestMarkItemRejectsUnknownAction(t *testing.T) {
	service := NewInventoryService(&mockInventoryRepository{}, nil)

	err := service.MarkItem(context.Background(), domain.MarkItemRequest{
		ItemID: uuid.NewString(),
		Action: "eaten",
	}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrInvalidMarkAction)
}

func TestMarkItemOwnership(t *testing.T) {
	repo := &mockInventoryRepository{
		getItemByIDFn: func(ctx context.Context, id string) (*entities.InventoryItem, error) {
			return &entities.InventoryItem{
				ItemID: uuid.New(),
				UserID: uuid.New(),
			}, nil
		},
	}
	service := NewInventoryService(repo, nil)

	err := service.MarkItem(context.Background(), domain.MarkItemRequest{
		ItemID: uuid.NewString(),
		Action: "used",
	}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedItem)
}

func TestAddItemValidation(t *testing.T) {
	service := NewInventoryService(&mockInventoryRepository{}, nil)

	_, err := service.AddItem(context.Background(), domain.AddInventoryItemRequest{
		ItemName:   "Eggs",
		Quantity:   12,
		Unit:       "pcs",
		ExpiryDate: "03-10-2026",
	}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)
}

func TestUpdateItemNotFound(t *testing.T) {
	repo := &mockInventoryRepository{
		getItemByIDFn: func(ctx context.Context, id string) (*entities.InventoryItem, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	service := NewInventoryService(repo, nil)

	err := service.UpdateItem(context.Background(), uuid.NewString(), domain.UpdateInventoryItemRequest{}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestStatusLabelMatchesDaysLeft(t *testing.T) {
	for d := -3; d <= 10; d++ {
		label := StatusLabel(d)
		switch {
		case d < 0:
			assert.Equal(t, "Expired", label)
		case d == 0:
			assert.Equal(t, "Expires today", label)
		case d == 1:
			assert.Equal(t, "1 day left", label)
		default:
			assert.Equal(t, fmt.Sprintf("%d days left", d), label)
		}
	}
}
