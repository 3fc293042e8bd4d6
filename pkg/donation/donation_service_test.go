package donation

import (
	"context"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"EcoBite-Backend/domain"
	"EcoBite-Backend/entities"
	"EcoBite-Backend/pkg/impact"
	"EcoBite-Backend/pkg/inventory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeMidtransService struct {
	lastOrderID string
	fail        bool
}

func (f *fakeMidtransService) CreateTransaction(ctx context.Context, req domain.PaymentRequest) (domain.PaymentResponse, error) {
	if f.fail {
		return domain.PaymentResponse{}, domain.ErrPaymentFailed
	}
	f.lastOrderID = req.OrderID
	return domain.PaymentResponse{
		Token:       "tok-" + req.OrderID,
		RedirectURL: "https://pay.example/" + req.OrderID,
	}, nil
}

type fakeAwsS3 struct {
	uploads []string
}

func (f *fakeAwsS3) UploadFile(fileName string, file *multipart.FileHeader, dir string, allowedExt ...string) (string, error) {
	key := dir + "/" + fileName
	f.uploads = append(f.uploads, key)
	return key, nil
}

func (f *fakeAwsS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedExt ...string) (string, error) {
	f.uploads = append(f.uploads, objectKey)
	return objectKey, nil
}

func (f *fakeAwsS3) DeleteFile(objectKey string) error { return nil }

func (f *fakeAwsS3) GetPublicLinkKey(objectKey string) string {
	return "https://cdn.example/" + objectKey
}

func (f *fakeAwsS3) GetObjectKeyFromLink(link string) string {
	return strings.TrimPrefix(link, "https://cdn.example/")
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	ddl := []string{
		`CREATE TABLE charities (
			id TEXT PRIMARY KEY,
			name TEXT,
			description TEXT,
			address TEXT,
			contact_number TEXT,
			image_url TEXT,
			is_active BOOLEAN,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE donations (
			id TEXT PRIMARY KEY,
			user_id TEXT,
			charity_id TEXT,
			donation_type TEXT,
			amount REAL,
			status TEXT,
			payment_token TEXT,
			payment_url TEXT,
			image_url TEXT,
			completed_at DATETIME,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE donation_items (
			id TEXT PRIMARY KEY,
			donation_id TEXT,
			item_id TEXT,
			item_name TEXT,
			quantity INTEGER,
			unit TEXT,
			created_at DATETIME,
			updated_at DATETIME
		)`,
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
		`CREATE TABLE savings_transactions (
			id TEXT PRIMARY KEY,
			user_id TEXT,
			amount REAL,
			type TEXT,
			description TEXT,
			balance REAL,
			created_at DATETIME,
			updated_at DATETIME
		)`,
	}
	for _, stmt := range ddl {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return db
}

func seedCharity(t *testing.T, db *gorm.DB) *entities.Charity {
	t.Helper()
	charity := &entities.Charity{
		ID:       uuid.New(),
		Name:     "Food Bank",
		IsActive: true,
	}
	require.NoError(t, db.Create(charity).Error)
	return charity
}

func seedSavings(t *testing.T, db *gorm.DB, userID uuid.UUID, amount float64) {
	t.Helper()
	require.NoError(t, db.Create(&entities.UsageLog{
		LogID:      uuid.New(),
		UserID:     userID,
		ItemID:     uuid.New(),
		ActionType: "cooked",
		Quantity:   1,
		Unit:       "kg",
		Cost:       &amount,
		ActionDate: time.Now(),
	}).Error)
}

func newService(db *gorm.DB, gateway *fakeMidtransService) DonationService {
	return NewDonationService(
		NewDonationRepository(db),
		impact.NewImpactRepository(db),
		gateway,
		&fakeAwsS3{},
	)
}

func TestFoodDonationConsumesItems(t *testing.T) {
	db := setupTestDB(t)
	charity := seedCharity(t, db)
	userID := uuid.New()
	ctx := context.Background()

	invRepo := inventory.NewInventoryRepository(db)
	cost := 15000.0
	item := &entities.InventoryItem{
		ItemID:     uuid.New(),
		UserID:     userID,
		ItemName:   "Canned beans",
		Quantity:   6,
		Unit:       "can",
		ExpiryDate: time.Now().AddDate(0, 6, 0),
		Cost:       &cost,
	}
	require.NoError(t, invRepo.AddItem(ctx, item))

	service := newService(db, &fakeMidtransService{})

	res, err := service.CreateDonation(ctx, domain.CreateDonationRequest{
		CharityID:    charity.ID.String(),
		DonationType: domain.DonationTypeFood,
		ItemIDs:      []string{item.ItemID.String()},
	}, userID.String())
	require.NoError(t, err)

	assert.Equal(t, domain.DonationStatusCompleted, res.Status)
	assert.Equal(t, "Food Bank", res.CharityName)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Canned beans", res.Items[0].ItemName)

	// item is gone from inventory
	_, err = invRepo.GetItemByID(ctx, item.ItemID.String())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// and a donated usage log exists
	var logs []*entities.UsageLog
	require.NoError(t, db.Where("user_id = ?", userID).Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, "donated", logs[0].ActionType)
	assert.Contains(t, logs[0].Notes, "Food Bank")
}

func TestFoodDonationForeignItemRollsBack(t *testing.T) {
	db := setupTestDB(t)
	charity := seedCharity(t, db)
	ctx := context.Background()

	invRepo := inventory.NewInventoryRepository(db)
	owner := uuid.New()
	mine := &entities.InventoryItem{
		ItemID:     uuid.New(),
		UserID:     owner,
		ItemName:   "Rice",
		Quantity:   1,
		Unit:       "kg",
		ExpiryDate: time.Now().AddDate(0, 1, 0),
	}
	theirs := &entities.InventoryItem{
		ItemID:     uuid.New(),
		UserID:     uuid.New(),
		ItemName:   "Pasta",
		Quantity:   1,
		Unit:       "kg",
		ExpiryDate: time.Now().AddDate(0, 1, 0),
	}
	require.NoError(t, invRepo.AddItem(ctx, mine))
	require.NoError(t, invRepo.AddItem(ctx, theirs))

	service := newService(db, &fakeMidtransService{})

	_, err := service.CreateDonation(ctx, domain.CreateDonationRequest{
		CharityID:    charity.ID.String(),
		DonationType: domain.DonationTypeFood,
		ItemIDs:      []string{mine.ItemID.String(), theirs.ItemID.String()},
	}, owner.String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedItem)

	// the first item must have been restored by the rollback
	_, err = invRepo.GetItemByID(ctx, mine.ItemID.String())
	assert.NoError(t, err)

	var donations []*entities.Donation
	require.NoError(t, db.Find(&donations).Error)
	assert.Empty(t, donations)
}

func TestMoneyDonationRequiresBalance(t *testing.T) {
	db := setupTestDB(t)
	charity := seedCharity(t, db)
	userID := uuid.New()
	ctx := context.Background()

	seedSavings(t, db, userID, 50)

	service := newService(db, &fakeMidtransService{})

	_, err := service.CreateDonation(ctx, domain.CreateDonationRequest{
		CharityID:    charity.ID.String(),
		DonationType: domain.DonationTypeMoney,
		Amount:       100,
		Email:        "donor@example.com",
	}, userID.String())
	assert.ErrorIs(t, err, domain.ErrInsufficientSavings)
}

func TestMoneyDonationCreatesPendingPayment(t *testing.T) {
	db := setupTestDB(t)
	charity := seedCharity(t, db)
	userID := uuid.New()
	ctx := context.Background()

	seedSavings(t, db, userID, 200)

	gateway := &fakeMidtransService{}
	service := newService(db, gateway)

	res, err := service.CreateDonation(ctx, domain.CreateDonationRequest{
		CharityID:    charity.ID.String(),
		DonationType: domain.DonationTypeMoney,
		Amount:       150,
		Email:        "donor@example.com",
	}, userID.String())
	require.NoError(t, err)

	assert.Equal(t, domain.DonationStatusPending, res.Status)
	assert.Equal(t, "https://pay.example/"+res.ID, res.PaymentURL)
	assert.Equal(t, res.ID, gateway.lastOrderID)
}

func TestPaymentNotificationSettlesDonation(t *testing.T) {
	db := setupTestDB(t)
	charity := seedCharity(t, db)
	userID := uuid.New()
	ctx := context.Background()

	seedSavings(t, db, userID, 200)

	service := newService(db, &fakeMidtransService{})

	res, err := service.CreateDonation(ctx, domain.CreateDonationRequest{
		CharityID:    charity.ID.String(),
		DonationType: domain.DonationTypeMoney,
		Amount:       80,
		Email:        "donor@example.com",
	}, userID.String())
	require.NoError(t, err)

	require.NoError(t, service.HandlePaymentNotification(ctx, domain.PaymentNotificationRequest{
		OrderID:           res.ID,
		TransactionStatus: "settlement",
	}))

	donations, err := service.GetDonations(ctx, userID.String())
	require.NoError(t, err)
	require.Len(t, donations, 1)
	assert.Equal(t, domain.DonationStatusCompleted, donations[0].Status)

	// ledger debited: 200 earned - 80 donated
	impactRepo := impact.NewImpactRepository(db)
	balance, err := impactRepo.GetAvailableBalance(ctx, userID.String())
	require.NoError(t, err)
	assert.InDelta(t, 120, balance, 0.001)

	// a duplicate callback must not debit twice
	require.NoError(t, service.HandlePaymentNotification(ctx, domain.PaymentNotificationRequest{
		OrderID:           res.ID,
		TransactionStatus: "settlement",
	}))
	balance, err = impactRepo.GetAvailableBalance(ctx, userID.String())
	require.NoError(t, err)
	assert.InDelta(t, 120, balance, 0.001)
}

func TestPaymentNotificationCancels(t *testing.T) {
	db := setupTestDB(t)
	charity := seedCharity(t, db)
	userID := uuid.New()
	ctx := context.Background()

	seedSavings(t, db, userID, 100)

	service := newService(db, &fakeMidtransService{})

	res, err := service.CreateDonation(ctx, domain.CreateDonationRequest{
		CharityID:    charity.ID.String(),
		DonationType: domain.DonationTypeMoney,
		Amount:       60,
		Email:        "donor@example.com",
	}, userID.String())
	require.NoError(t, err)

	require.NoError(t, service.HandlePaymentNotification(ctx, domain.PaymentNotificationRequest{
		OrderID:           res.ID,
		TransactionStatus: "expire",
	}))

	donations, err := service.GetDonations(ctx, userID.String())
	require.NoError(t, err)
	require.Len(t, donations, 1)
	assert.Equal(t, domain.DonationStatusCancelled, donations[0].Status)
}

func TestUploadDonationImageSetsPhotoURL(t *testing.T) {
	db := setupTestDB(t)
	charity := seedCharity(t, db)
	userID := uuid.New()
	ctx := context.Background()

	invRepo := inventory.NewInventoryRepository(db)
	item := &entities.InventoryItem{
		ItemID:     uuid.New(),
		UserID:     userID,
		ItemName:   "Bread",
		Quantity:   2,
		Unit:       "loaf",
		ExpiryDate: time.Now().AddDate(0, 0, 2),
	}
	require.NoError(t, invRepo.AddItem(ctx, item))

	s3 := &fakeAwsS3{}
	service := NewDonationService(
		NewDonationRepository(db),
		impact.NewImpactRepository(db),
		&fakeMidtransService{},
		s3,
	)

	res, err := service.CreateDonation(ctx, domain.CreateDonationRequest{
		CharityID:    charity.ID.String(),
		DonationType: domain.DonationTypeFood,
		ItemIDs:      []string{item.ItemID.String()},
	}, userID.String())
	require.NoError(t, err)

	image := &multipart.FileHeader{Filename: "handover.jpg"}
	require.NoError(t, service.UploadDonationImage(ctx, domain.UploadDonationImageRequest{
		DonationID: res.ID,
	}, image, userID.String()))

	require.Len(t, s3.uploads, 1)
	assert.Equal(t, "donation-photos/donation-"+res.ID, s3.uploads[0])

	donations, err := service.GetDonations(ctx, userID.String())
	require.NoError(t, err)
	require.Len(t, donations, 1)
	assert.Equal(t, "https://cdn.example/donation-photos/donation-"+res.ID, donations[0].ImageURL)
}

func TestUploadDonationImageOwnership(t *testing.T) {
	db := setupTestDB(t)
	charity := seedCharity(t, db)
	userID := uuid.New()
	ctx := context.Background()

	seedSavings(t, db, userID, 100)
	service := newService(db, &fakeMidtransService{})

	res, err := service.CreateDonation(ctx, domain.CreateDonationRequest{
		CharityID:    charity.ID.String(),
		DonationType: domain.DonationTypeMoney,
		Amount:       50,
		Email:        "donor@example.com",
	}, userID.String())
	require.NoError(t, err)

	image := &multipart.FileHeader{Filename: "handover.jpg"}
	err = service.UploadDonationImage(ctx, domain.UploadDonationImageRequest{
		DonationID: res.ID,
	}, image, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedDonation)

	err = service.UploadDonationImage(ctx, domain.UploadDonationImageRequest{
		DonationID: uuid.NewString(),
	}, image, userID.String())
	assert.ErrorIs(t, err, domain.ErrDonationNotFound)
}

func TestCreateDonationUnknownCharity(t *testing.T) {
	db := setupTestDB(t)
	service := newService(db, &fakeMidtransService{})

	_, err := service.CreateDonation(context.Background(), domain.CreateDonationRequest{
		CharityID:    uuid.NewString(),
		DonationType: domain.DonationTypeMoney,
		Amount:       10,
	}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrCharityNotFound)
}
