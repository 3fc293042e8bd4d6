package inventory

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"mime/multipart"
	"strings"
	"time"

	"EcoBite-Backend/domain"
	"EcoBite-Backend/entities"
	"EcoBite-Backend/internal/utils/mailing"
	"EcoBite-Backend/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	InventoryService interface {
		LoadInventory(ctx context.Context, userID string) ([]domain.InventoryItemResponse, error)
		AddItem(ctx context.Context, req domain.AddInventoryItemRequest, userID string) (domain.InventoryItemResponse, error)
		UpdateItem(ctx context.Context, id string, req domain.UpdateInventoryItemRequest, userID string) error
		DeleteItem(ctx context.Context, id string, userID string) error
		MarkItem(ctx context.Context, req domain.MarkItemRequest, userID string) error
		UploadItemImage(ctx context.Context, req domain.UploadItemImageRequest, image *multipart.FileHeader, userID string) error
		NotifyExpiring(ctx context.Context, userID string, email string) (int, error)
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
		s3                  storage.AwsS3
	}
)

func NewInventoryService(inventoryRepository InventoryRepository, s3 storage.AwsS3) InventoryService {
	return &inventoryService{
		inventoryRepository: inventoryRepository,
		s3:                  s3,
	}
}

// DaysLeft truncates both instants to midnight before subtracting so that
// time-of-day differences never shift the day count.
func DaysLeft(expiry time.Time, now time.Time) int {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	y, m, d = expiry.Date()
	expiryMidnight := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return int(math.Ceil(expiryMidnight.Sub(today).Hours() / 24))
}

func StatusFor(daysLeft int) string {
	if daysLeft < 0 {
		return domain.StatusExpired
	}
	if daysLeft <= domain.ExpiringThresholdDays {
		return domain.StatusExpiring
	}
	return domain.StatusFresh
}

func StatusLabel(daysLeft int) string {
	switch {
	case daysLeft < 0:
		return "Expired"
	case daysLeft == 0:
		return "Expires today"
	case daysLeft == 1:
		return "1 day left"
	default:
		return fmt.Sprintf("%d days left", daysLeft)
	}
}

func toItemResponse(item *entities.InventoryItem, now time.Time) domain.InventoryItemResponse {
	daysLeft := DaysLeft(item.ExpiryDate, now)
	return domain.InventoryItemResponse{
		ItemID:      item.ItemID.String(),
		ItemName:    item.ItemName,
		Quantity:    item.Quantity,
		Unit:        item.Unit,
		ExpiryDate:  item.ExpiryDate,
		Cost:        item.Cost,
		ImageURL:    item.ImageURL,
		DaysLeft:    daysLeft,
		Status:      StatusFor(daysLeft),
		StatusLabel: StatusLabel(daysLeft),
		CreatedAt:   item.CreatedAt,
	}
}

func (s *inventoryService) LoadInventory(ctx context.Context, userID string) ([]domain.InventoryItemResponse, error) {
	// A missing user is a soft precondition failure: the screen renders an
	// empty state instead of an error.
	if userID == "" {
		log.Println("LoadInventory called without user ID")
		return []domain.InventoryItemResponse{}, nil
	}

	items, err := s.inventoryRepository.GetItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	response := make([]domain.InventoryItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toItemResponse(item, now))
	}

	return response, nil
}

func (s *inventoryService) AddItem(ctx context.Context, req domain.AddInventoryItemRequest, userID string) (domain.InventoryItemResponse, error) {
	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return domain.InventoryItemResponse{}, domain.ErrInvalidExpiryDate
	}

	if req.Quantity <= 0 {
		return domain.InventoryItemResponse{}, domain.ErrInvalidQuantity
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.InventoryItemResponse{}, domain.ErrParseUUID
	}

	item := &entities.InventoryItem{
		ItemID:     uuid.New(),
		UserID:     userUUID,
		ItemName:   req.ItemName,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		ExpiryDate: expiryDate,
		Cost:       req.Cost,
	}

	if err := s.inventoryRepository.AddItem(ctx, item); err != nil {
		return domain.InventoryItemResponse{}, err
	}

	return toItemResponse(item, time.Now()), nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, id string, req domain.UpdateInventoryItemRequest, userID string) error {
	item, err := s.inventoryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}

	if item.UserID.String() != userID {
		return domain.ErrUnauthorizedItem
	}

	if req.ItemName != "" {
		item.ItemName = req.ItemName
	}

	if req.Quantity > 0 {
		item.Quantity = req.Quantity
	}

	if req.Unit != "" {
		item.Unit = req.Unit
	}

	if req.ExpiryDate != "" {
		expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		item.ExpiryDate = expiryDate
	}

	if req.Cost != nil {
		item.Cost = req.Cost
	}

	return s.inventoryRepository.UpdateItem(ctx, item)
}

func (s *inventoryService) DeleteItem(ctx context.Context, id string, userID string) error {
	item, err := s.inventoryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}

	if item.UserID.String() != userID {
		return domain.ErrUnauthorizedItem
	}

	if item.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(item.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.inventoryRepository.DeleteItem(ctx, id)
}

func (s *inventoryService) MarkItem(ctx context.Context, req domain.MarkItemRequest, userID string) error {
	if req.Action != "used" && req.Action != "wasted" {
		return domain.ErrInvalidMarkAction
	}

	item, err := s.inventoryRepository.GetItemByID(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}

	if item.UserID.String() != userID {
		return domain.ErrUnauthorizedItem
	}

	usageLog := &entities.UsageLog{
		LogID:      uuid.New(),
		UserID:     item.UserID,
		ItemID:     item.ItemID,
		ActionType: req.Action,
		Quantity:   item.Quantity,
		Unit:       item.Unit,
		Cost:       item.Cost,
		ActionDate: time.Now(),
		Notes:      fmt.Sprintf("Marked %s %s as %s", itemQuantityLabel(item), item.ItemName, req.Action),
	}

	if err := s.inventoryRepository.AddUsageLog(ctx, usageLog); err != nil {
		return err
	}

	return s.inventoryRepository.DeleteItem(ctx, req.ItemID)
}

func itemQuantityLabel(item *entities.InventoryItem) string {
	return strings.TrimSpace(fmt.Sprintf("%d %s", item.Quantity, item.Unit))
}

func (s *inventoryService) UploadItemImage(ctx context.Context, req domain.UploadItemImageRequest, image *multipart.FileHeader, userID string) error {
	item, err := s.inventoryRepository.GetItemByID(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}

	if item.UserID.String() != userID {
		return domain.ErrUnauthorizedItem
	}

	fileName := fmt.Sprintf("inventory-item-%s", item.ItemID.String())
	var objectKey string
	var uploadErr error

	if item.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(item.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, image, "inventory-items", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, image, "inventory-items", storage.AllowImage...)
	}

	if uploadErr != nil {
		return uploadErr
	}

	item.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	return s.inventoryRepository.UpdateItem(ctx, item)
}

func (s *inventoryService) NotifyExpiring(ctx context.Context, userID string, email string) (int, error) {
	items, err := s.inventoryRepository.GetItems(ctx, userID)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	var expiring []*entities.InventoryItem
	for _, item := range items {
		daysLeft := DaysLeft(item.ExpiryDate, now)
		if StatusFor(daysLeft) == domain.StatusExpiring {
			expiring = append(expiring, item)
		}
	}

	if len(expiring) == 0 {
		return 0, domain.ErrNothingExpiring
	}

	var sb strings.Builder
	sb.WriteString("<h3>Items expiring soon</h3><ul>")
	for _, item := range expiring {
		daysLeft := DaysLeft(item.ExpiryDate, now)
		sb.WriteString(fmt.Sprintf("<li>%s (%s) - %s</li>",
			item.ItemName, itemQuantityLabel(item), StatusLabel(daysLeft)))
	}
	sb.WriteString("</ul><p>Cook or donate them before they go to waste!</p>")

	if err := mailing.SendMail(email, "EcoBite: items expiring soon", sb.String()); err != nil {
		return 0, err
	}

	return len(expiring), nil
}
