package inventory

import (
	"context"
	"errors"
	"testing"
	"time"

	"EcoBite-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Tables are created by hand because the production schema relies on
	// postgres uuid defaults that sqlite cannot evaluate.
	ddl := []string{
		`CREATE TABLE inventory (
			item_id TEXT PRIMARY KEY,
			user_id TEXT,
			item_name TEXT,
			quantity INTEGER,
			unit TEXT,
			expiry_date DATETIME,
			cost REAL,
			image_url TEXT,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE usage_logs (
			log_id TEXT PRIMARY KEY,
			user_id TEXT,
			item_id TEXT,
			action_type TEXT,
			quantity INTEGER,
			unit TEXT,
			cost REAL,
			action_date DATETIME,
			notes TEXT
		)`,
	}
	for _, stmt := range ddl {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return db
}

func TestInventoryRepositoryCRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInventoryRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	item := &entities.InventoryItem{
		ItemID:     uuid.New(),
		UserID:     userID,
		ItemName:   "Tomato",
		Quantity:   5,
		Unit:       "pcs",
		ExpiryDate: time.Now().AddDate(0, 0, 4),
	}
	require.NoError(t, repo.AddItem(ctx, item))

	got, err := repo.GetItemByID(ctx, item.ItemID.String())
	require.NoError(t, err)
	assert.Equal(t, "Tomato", got.ItemName)
	assert.Equal(t, 5, got.Quantity)

	got.Quantity = 3
	require.NoError(t, repo.UpdateItem(ctx, got))

	got, err = repo.GetItemByID(ctx, item.ItemID.String())
	require.NoError(t, err)
	assert.Equal(t, 3, got.Quantity)

	require.NoError(t, repo.DeleteItem(ctx, item.ItemID.String()))

	_, err = repo.GetItemByID(ctx, item.ItemID.String())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetItemsOrderedByExpiry(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInventoryRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	expiries := []int{7, 1, 3}
	for _, days := range expiries {
		require.NoError(t, repo.AddItem(ctx, &entities.InventoryItem{
			ItemID:     uuid.New(),
			UserID:     userID,
			ItemName:   "Item",
			Quantity:   1,
			Unit:       "pcs",
			ExpiryDate: time.Now().AddDate(0, 0, days),
		}))
	}
	// an item for another user must not leak in
	require.NoError(t, repo.AddItem(ctx, &entities.InventoryItem{
		ItemID:     uuid.New(),
		UserID:     uuid.New(),
		ItemName:   "Other",
		Quantity:   1,
		Unit:       "pcs",
		ExpiryDate: time.Now(),
	}))

	items, err := repo.GetItems(ctx, userID.String())
	require.NoError(t, err)
	require.Len(t, items, 3)

	for i := 1; i < len(items); i++ {
		assert.False(t, items[i].ExpiryDate.Before(items[i-1].ExpiryDate))
	}
}

func TestWithTransactionRollsBack(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInventoryRepository(db)
	ctx := context.Background()
	itemID := uuid.New()

	boom := errors.New("boom")
	err := repo.WithTransaction(ctx, func(txRepo InventoryRepository) error {
		if err := txRepo.AddItem(ctx, &entities.InventoryItem{
			ItemID:     itemID,
			UserID:     uuid.New(),
			ItemName:   "Ghost",
			Quantity:   1,
			Unit:       "pcs",
			ExpiryDate: time.Now(),
		}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = repo.GetItemByID(ctx, itemID.String())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
