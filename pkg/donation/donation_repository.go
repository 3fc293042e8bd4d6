package donation

import (
	"context"

	"EcoBite-Backend/entities"

	"gorm.io/gorm"
)

type (
	DonationRepository interface {
		GetActiveCharities(ctx context.Context) ([]*entities.Charity, error)
		GetCharityByID(ctx context.Context, id string) (*entities.Charity, error)
		CreateDonation(ctx context.Context, donation *entities.Donation) error
		UpdateDonation(ctx context.Context, donation *entities.Donation) error
		GetDonationByID(ctx context.Context, id string) (*entities.Donation, error)
		GetDonationsByUser(ctx context.Context, userID string) ([]*entities.Donation, error)
		WithTransaction(ctx context.Context, fn func(txRepo DonationRepository, tx *gorm.DB) error) error
	}

	donationRepository struct {
		db *gorm.DB
	}
)

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) GetActiveCharities(ctx context.Context) ([]*entities.Charity, error) {
	var charities []*entities.Charity
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name asc").
		Find(&charities).Error; err != nil {
		return nil, err
	}
	return charities, nil
}

func (r *donationRepository) GetCharityByID(ctx context.Context, id string) (*entities.Charity, error) {
	var charity entities.Charity
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&charity).Error; err != nil {
		return nil, err
	}
	return &charity, nil
}

func (r *donationRepository) CreateDonation(ctx context.Context, donation *entities.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *donationRepository) UpdateDonation(ctx context.Context, donation *entities.Donation) error {
	return r.db.WithContext(ctx).Save(donation).Error
}

func (r *donationRepository) GetDonationByID(ctx context.Context, id string) (*entities.Donation, error) {
	var donation entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("Charity").
		Preload("DonationItems").
		Where("id = ?", id).
		First(&donation).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *donationRepository) GetDonationsByUser(ctx context.Context, userID string) ([]*entities.Donation, error) {
	var donations []*entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("Charity").
		Preload("DonationItems").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) WithTransaction(ctx context.Context, fn func(txRepo DonationRepository, tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&donationRepository{db: tx}, tx)
	})
}
