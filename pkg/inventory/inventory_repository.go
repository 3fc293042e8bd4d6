package inventory

import (
	"context"

	"EcoBite-Backend/entities"

	"gorm.io/gorm"
)

type (
	InventoryRepository interface {
		AddItem(ctx context.Context, item *entities.InventoryItem) error
		GetItemByID(ctx context.Context, id string) (*entities.InventoryItem, error)
		UpdateItem(ctx context.Context, item *entities.InventoryItem) error
		DeleteItem(ctx context.Context, id string) error
		GetItems(ctx context.Context, userID string) ([]*entities.InventoryItem, error)
		AddUsageLog(ctx context.Context, usageLog *entities.UsageLog) error
		WithTransaction(ctx context.Context, fn func(txRepo InventoryRepository) error) error
	}

	inventoryRepository struct {
		db *gorm.DB
	}
)

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) AddItem(ctx context.Context, item *entities.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventoryRepository) GetItemByID(ctx context.Context, id string) (*entities.InventoryItem, error) {
	var item entities.InventoryItem
	if err := r.db.WithContext(ctx).Where("item_id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepository) UpdateItem(ctx context.Context, item *entities.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *inventoryRepository) DeleteItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("item_id = ?", id).Delete(&entities.InventoryItem{}).Error
}

func (r *inventoryRepository) GetItems(ctx context.Context, userID string) ([]*entities.InventoryItem, error) {
	var items []*entities.InventoryItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("expiry_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *inventoryRepository) AddUsageLog(ctx context.Context, usageLog *entities.UsageLog) error {
	return r.db.WithContext(ctx).Create(usageLog).Error
}

// WithTransaction runs fn against a repository bound to a single database
// transaction. Any error from fn rolls the whole batch back.
func (r *inventoryRepository) WithTransaction(ctx context.Context, fn func(txRepo InventoryRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&inventoryRepository{db: tx})
	})
}
