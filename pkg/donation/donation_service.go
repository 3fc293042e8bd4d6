package donation

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"EcoBite-Backend/domain"
	"EcoBite-Backend/entities"
	"EcoBite-Backend/internal/utils/storage"
	"EcoBite-Backend/pkg/impact"
	"EcoBite-Backend/pkg/inventory"
	"EcoBite-Backend/pkg/midtrans"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	DonationService interface {
		GetCharities(ctx context.Context) ([]domain.CharityResponse, error)
		CreateDonation(ctx context.Context, req domain.CreateDonationRequest, userID string) (domain.DonationResponse, error)
		GetDonations(ctx context.Context, userID string) ([]domain.DonationResponse, error)
		UploadDonationImage(ctx context.Context, req domain.UploadDonationImageRequest, image *multipart.FileHeader, userID string) error
		HandlePaymentNotification(ctx context.Context, req domain.PaymentNotificationRequest) error
	}

	donationService struct {
		donationRepository DonationRepository
		impactRepository   impact.ImpactRepository
		midtransService    midtrans.MidtransService
		s3                 storage.AwsS3
	}
)

func NewDonationService(
	donationRepository DonationRepository,
	impactRepository impact.ImpactRepository,
	midtransService midtrans.MidtransService,
	s3 storage.AwsS3,
) DonationService {
	return &donationService{
		donationRepository: donationRepository,
		impactRepository:   impactRepository,
		midtransService:    midtransService,
		s3:                 s3,
	}
}

func (s *donationService) GetCharities(ctx context.Context) ([]domain.CharityResponse, error) {
	charities, err := s.donationRepository.GetActiveCharities(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.CharityResponse, 0, len(charities))
	for _, charity := range charities {
		response = append(response, domain.CharityResponse{
			ID:            charity.ID.String(),
			Name:          charity.Name,
			Description:   charity.Description,
			Address:       charity.Address,
			ContactNumber: charity.ContactNumber,
			ImageURL:      charity.ImageURL,
		})
	}
	return response, nil
}

func toDonationResponse(donation *entities.Donation) domain.DonationResponse {
	response := domain.DonationResponse{
		ID:           donation.ID.String(),
		DonationType: donation.DonationType,
		Amount:       donation.Amount,
		Status:       donation.Status,
		PaymentURL:   donation.PaymentURL,
		ImageURL:     donation.ImageURL,
		CreatedAt:    donation.CreatedAt,
	}
	if donation.Charity != nil {
		response.CharityName = donation.Charity.Name
	}
	for _, item := range donation.DonationItems {
		response.Items = append(response.Items, domain.DonationItemResponse{
			ItemName: item.ItemName,
			Quantity: item.Quantity,
			Unit:     item.Unit,
		})
	}
	return response
}

func (s *donationService) CreateDonation(ctx context.Context, req domain.CreateDonationRequest, userID string) (domain.DonationResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.DonationResponse{}, domain.ErrParseUUID
	}

	charity, err := s.donationRepository.GetCharityByID(ctx, req.CharityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DonationResponse{}, domain.ErrCharityNotFound
		}
		return domain.DonationResponse{}, err
	}

	switch req.DonationType {
	case domain.DonationTypeMoney:
		return s.createMoneyDonation(ctx, req, userUUID, charity)
	case domain.DonationTypeFood:
		return s.createFoodDonation(ctx, req, userID, userUUID, charity)
	default:
		return domain.DonationResponse{}, domain.ErrInvalidDonationType
	}
}

// createMoneyDonation spends part of the user's accumulated savings through a
// payment gateway. The savings ledger is only debited once the payment
// settles, in HandlePaymentNotification.
func (s *donationService) createMoneyDonation(ctx context.Context, req domain.CreateDonationRequest, userUUID uuid.UUID, charity *entities.Charity) (domain.DonationResponse, error) {
	if req.Amount <= 0 {
		return domain.DonationResponse{}, domain.ErrInvalidAmount
	}

	balance, err := s.impactRepository.GetAvailableBalance(ctx, userUUID.String())
	if err != nil {
		return domain.DonationResponse{}, err
	}
	if balance < req.Amount {
		return domain.DonationResponse{}, domain.ErrInsufficientSavings
	}

	donation := &entities.Donation{
		ID:           uuid.New(),
		UserID:       userUUID,
		CharityID:    charity.ID,
		DonationType: domain.DonationTypeMoney,
		Amount:       req.Amount,
		Status:       domain.DonationStatusPending,
	}
	if err := s.donationRepository.CreateDonation(ctx, donation); err != nil {
		return domain.DonationResponse{}, err
	}

	payment, err := s.midtransService.CreateTransaction(ctx, domain.PaymentRequest{
		OrderID: donation.ID.String(),
		Amount:  int64(req.Amount),
		Email:   req.Email,
	})
	if err != nil {
		return domain.DonationResponse{}, err
	}

	donation.PaymentToken = payment.Token
	donation.PaymentURL = payment.RedirectURL
	if err := s.donationRepository.UpdateDonation(ctx, donation); err != nil {
		return domain.DonationResponse{}, err
	}

	donation.Charity = charity
	return toDonationResponse(donation), nil
}

// createFoodDonation hands selected inventory items over to a charity. The
// items leave inventory immediately, each with a "donated" usage log, and the
// donation completes in the same transaction.
func (s *donationService) createFoodDonation(ctx context.Context, req domain.CreateDonationRequest, userID string, userUUID uuid.UUID, charity *entities.Charity) (domain.DonationResponse, error) {
	if len(req.ItemIDs) == 0 {
		return domain.DonationResponse{}, domain.ErrNoItemsSelected
	}

	now := time.Now()
	donation := &entities.Donation{
		ID:           uuid.New(),
		UserID:       userUUID,
		CharityID:    charity.ID,
		DonationType: domain.DonationTypeFood,
		Status:       domain.DonationStatusCompleted,
		CompletedAt:  &now,
	}

	err := s.donationRepository.WithTransaction(ctx, func(txRepo DonationRepository, tx *gorm.DB) error {
		inventoryRepo := inventory.NewInventoryRepository(tx)

		for _, itemID := range req.ItemIDs {
			item, err := inventoryRepo.GetItemByID(ctx, itemID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.ErrItemNotFound
				}
				return err
			}
			if item.UserID.String() != userID {
				return domain.ErrUnauthorizedItem
			}

			donation.DonationItems = append(donation.DonationItems, &entities.DonationItem{
				ID:         uuid.New(),
				DonationID: donation.ID,
				ItemID:     item.ItemID,
				ItemName:   item.ItemName,
				Quantity:   item.Quantity,
				Unit:       item.Unit,
			})

			usageLog := &entities.UsageLog{
				LogID:      uuid.New(),
				UserID:     item.UserID,
				ItemID:     item.ItemID,
				ActionType: "donated",
				Quantity:   item.Quantity,
				Unit:       item.Unit,
				Cost:       item.Cost,
				ActionDate: now,
				Notes:      "Donated to " + charity.Name,
			}
			if err := inventoryRepo.AddUsageLog(ctx, usageLog); err != nil {
				return err
			}

			if err := inventoryRepo.DeleteItem(ctx, itemID); err != nil {
				return err
			}
		}

		return txRepo.CreateDonation(ctx, donation)
	})
	if err != nil {
		return domain.DonationResponse{}, err
	}

	donation.Charity = charity
	return toDonationResponse(donation), nil
}

func (s *donationService) GetDonations(ctx context.Context, userID string) ([]domain.DonationResponse, error) {
	donations, err := s.donationRepository.GetDonationsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.DonationResponse, 0, len(donations))
	for _, donation := range donations {
		response = append(response, toDonationResponse(donation))
	}
	return response, nil
}

// UploadDonationImage attaches a handover photo to a food donation.
func (s *donationService) UploadDonationImage(ctx context.Context, req domain.UploadDonationImageRequest, image *multipart.FileHeader, userID string) error {
	donation, err := s.donationRepository.GetDonationByID(ctx, req.DonationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDonationNotFound
		}
		return err
	}

	if donation.UserID.String() != userID {
		return domain.ErrUnauthorizedDonation
	}

	fileName := fmt.Sprintf("donation-%s", donation.ID.String())
	var objectKey string
	var uploadErr error

	if donation.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(donation.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, image, "donation-photos", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, image, "donation-photos", storage.AllowImage...)
	}

	if uploadErr != nil {
		return uploadErr
	}

	donation.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	return s.donationRepository.UpdateDonation(ctx, donation)
}

// HandlePaymentNotification reacts to the gateway's status callback. A
// settled payment completes the donation and debits the savings ledger; a
// failed one cancels it. Repeated callbacks for a finished donation are
// ignored.
func (s *donationService) HandlePaymentNotification(ctx context.Context, req domain.PaymentNotificationRequest) error {
	donation, err := s.donationRepository.GetDonationByID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDonationNotFound
		}
		return err
	}

	if donation.Status != domain.DonationStatusPending {
		return nil
	}

	switch req.TransactionStatus {
	case "settlement", "capture":
		if req.TransactionStatus == "capture" && req.FraudStatus != "accept" {
			return nil
		}
		now := time.Now()
		donation.Status = domain.DonationStatusCompleted
		donation.CompletedAt = &now
		if err := s.donationRepository.UpdateDonation(ctx, donation); err != nil {
			return err
		}

		balance, err := s.impactRepository.GetAvailableBalance(ctx, donation.UserID.String())
		if err != nil {
			return err
		}
		return s.impactRepository.AddSavingsTransaction(ctx, &entities.SavingsTransaction{
			ID:          uuid.New(),
			UserID:      donation.UserID,
			Amount:      donation.Amount,
			Type:        "Donate",
			Description: "Money donation",
			Balance:     balance - donation.Amount,
		})
	case "deny", "cancel", "expire":
		donation.Status = domain.DonationStatusCancelled
		return s.donationRepository.UpdateDonation(ctx, donation)
	default:
		return nil
	}
}
