package shopping

import (
	"context"

	"EcoBite-Backend/entities"

	"gorm.io/gorm"
)

type (
	ShoppingRepository interface {
		CreateList(ctx context.Context, list *entities.ShoppingList) error
		GetListByID(ctx context.Context, id string) (*entities.ShoppingList, error)
		GetListsByUser(ctx context.Context, userID string) ([]*entities.ShoppingList, error)
		DeleteList(ctx context.Context, id string) error
		AddItem(ctx context.Context, item *entities.ShoppingListItem) error
		GetItemByID(ctx context.Context, id string) (*entities.ShoppingListItem, error)
		UpdateItem(ctx context.Context, item *entities.ShoppingListItem) error
		DeleteCheckedItems(ctx context.Context, listID string) error
		WithTransaction(ctx context.Context, fn func(txRepo ShoppingRepository, tx *gorm.DB) error) error
	}

	shoppingRepository struct {
		db *gorm.DB
	}
)

func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &shoppingRepository{db: db}
}

func (r *shoppingRepository) CreateList(ctx context.Context, list *entities.ShoppingList) error {
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *shoppingRepository) GetListByID(ctx context.Context, id string) (*entities.ShoppingList, error) {
	var list entities.ShoppingList
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *shoppingRepository) GetListsByUser(ctx context.Context, userID string) ([]*entities.ShoppingList, error) {
	var lists []*entities.ShoppingList
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *shoppingRepository) DeleteList(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("shopping_list_id = ?", id).Delete(&entities.ShoppingListItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.ShoppingList{}).Error
	})
}

func (r *shoppingRepository) AddItem(ctx context.Context, item *entities.ShoppingListItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *shoppingRepository) GetItemByID(ctx context.Context, id string) (*entities.ShoppingListItem, error) {
	var item entities.ShoppingListItem
	if err := r.db.WithContext(ctx).
		Preload("ShoppingList").
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *shoppingRepository) UpdateItem(ctx context.Context, item *entities.ShoppingListItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *shoppingRepository) DeleteCheckedItems(ctx context.Context, listID string) error {
	return r.db.WithContext(ctx).
		Where("shopping_list_id = ? AND checked = ?", listID, true).
		Delete(&entities.ShoppingListItem{}).Error
}

func (r *shoppingRepository) WithTransaction(ctx context.Context, fn func(txRepo ShoppingRepository, tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&shoppingRepository{db: tx}, tx)
	})
}
