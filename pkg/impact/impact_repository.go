package impact

import (
	"context"

	"EcoBite-Backend/entities"

	"gorm.io/gorm"
)

type (
	ImpactRepository interface {
		GetUsageLogs(ctx context.Context, userID string) ([]*entities.UsageLog, error)
		AddSavingsTransaction(ctx context.Context, txn *entities.SavingsTransaction) error
		GetSavingsTransactions(ctx context.Context, userID string) ([]*entities.SavingsTransaction, error)
		GetAvailableBalance(ctx context.Context, userID string) (float64, error)
	}

	impactRepository struct {
		db *gorm.DB
	}
)

func NewImpactRepository(db *gorm.DB) ImpactRepository {
	return &impactRepository{db: db}
}

func (r *impactRepository) GetUsageLogs(ctx context.Context, userID string) ([]*entities.UsageLog, error) {
	var logs []*entities.UsageLog
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("action_date asc").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *impactRepository) AddSavingsTransaction(ctx context.Context, txn *entities.SavingsTransaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

func (r *impactRepository) GetSavingsTransactions(ctx context.Context, userID string) ([]*entities.SavingsTransaction, error) {
	var txns []*entities.SavingsTransaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&txns).Error; err != nil {
		return nil, err
	}
	return txns, nil
}

// GetAvailableBalance is the money saved by not wasting food, minus what has
// already been donated from it.
func (r *impactRepository) GetAvailableBalance(ctx context.Context, userID string) (float64, error) {
	var saved float64
	if err := r.db.WithContext(ctx).
		Model(&entities.UsageLog{}).
		Select("COALESCE(SUM(cost), 0)").
		Where("user_id = ? AND action_type <> ?", userID, "wasted").
		Scan(&saved).Error; err != nil {
		return 0, err
	}

	var donated float64
	if err := r.db.WithContext(ctx).
		Model(&entities.SavingsTransaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND type = ?", userID, "Donate").
		Scan(&donated).Error; err != nil {
		return 0, err
	}

	return saved - donated, nil
}
