package shopping

import (
	"context"
	"errors"
	"time"

	"EcoBite-Backend/domain"
	"EcoBite-Backend/entities"
	"EcoBite-Backend/pkg/inventory"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ShoppingService interface {
		CreateList(ctx context.Context, req domain.CreateShoppingListRequest, userID string) (domain.ShoppingListResponse, error)
		GetLists(ctx context.Context, userID string) ([]domain.ShoppingListResponse, error)
		DeleteList(ctx context.Context, id string, userID string) error
		AddItem(ctx context.Context, listID string, req domain.AddShoppingItemRequest, userID string) (domain.ShoppingListItemResponse, error)
		CheckItem(ctx context.Context, itemID string, req domain.CheckShoppingItemRequest, userID string) error
		PromoteChecked(ctx context.Context, listID string, req domain.PromoteCheckedRequest, userID string) (int, error)
	}

	shoppingService struct {
		shoppingRepository ShoppingRepository
	}
)

func NewShoppingService(shoppingRepository ShoppingRepository) ShoppingService {
	return &shoppingService{shoppingRepository: shoppingRepository}
}

func toItemResponse(item *entities.ShoppingListItem) domain.ShoppingListItemResponse {
	return domain.ShoppingListItemResponse{
		ID:       item.ID.String(),
		ItemName: item.ItemName,
		Quantity: item.Quantity,
		Unit:     item.Unit,
		Note:     item.Note,
		Checked:  item.Checked,
	}
}

func toListResponse(list *entities.ShoppingList) domain.ShoppingListResponse {
	response := domain.ShoppingListResponse{
		ID:        list.ID.String(),
		Name:      list.Name,
		CreatedAt: list.CreatedAt,
		Items:     []domain.ShoppingListItemResponse{},
	}
	for _, item := range list.Items {
		response.Items = append(response.Items, toItemResponse(item))
	}
	return response
}

func (s *shoppingService) CreateList(ctx context.Context, req domain.CreateShoppingListRequest, userID string) (domain.ShoppingListResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ShoppingListResponse{}, domain.ErrParseUUID
	}

	list := &entities.ShoppingList{
		ID:     uuid.New(),
		UserID: userUUID,
		Name:   req.Name,
	}
	if err := s.shoppingRepository.CreateList(ctx, list); err != nil {
		return domain.ShoppingListResponse{}, err
	}

	return toListResponse(list), nil
}

func (s *shoppingService) GetLists(ctx context.Context, userID string) ([]domain.ShoppingListResponse, error) {
	lists, err := s.shoppingRepository.GetListsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ShoppingListResponse, 0, len(lists))
	for _, list := range lists {
		response = append(response, toListResponse(list))
	}
	return response, nil
}

func (s *shoppingService) getOwnedList(ctx context.Context, id string, userID string) (*entities.ShoppingList, error) {
	list, err := s.shoppingRepository.GetListByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShoppingListNotFound
		}
		return nil, err
	}
	if list.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedList
	}
	return list, nil
}

func (s *shoppingService) DeleteList(ctx context.Context, id string, userID string) error {
	if _, err := s.getOwnedList(ctx, id, userID); err != nil {
		return err
	}
	return s.shoppingRepository.DeleteList(ctx, id)
}

func (s *shoppingService) AddItem(ctx context.Context, listID string, req domain.AddShoppingItemRequest, userID string) (domain.ShoppingListItemResponse, error) {
	list, err := s.getOwnedList(ctx, listID, userID)
	if err != nil {
		return domain.ShoppingListItemResponse{}, err
	}

	item := &entities.ShoppingListItem{
		ID:             uuid.New(),
		ShoppingListID: list.ID,
		ItemName:       req.ItemName,
		Quantity:       req.Quantity,
		Unit:           req.Unit,
		Note:           req.Note,
	}
	if err := s.shoppingRepository.AddItem(ctx, item); err != nil {
		return domain.ShoppingListItemResponse{}, err
	}

	return toItemResponse(item), nil
}

func (s *shoppingService) CheckItem(ctx context.Context, itemID string, req domain.CheckShoppingItemRequest, userID string) error {
	item, err := s.shoppingRepository.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrShoppingItemNotFound
		}
		return err
	}

	if item.ShoppingList == nil || item.ShoppingList.UserID.String() != userID {
		return domain.ErrUnauthorizedList
	}

	item.Checked = req.Checked
	item.ShoppingList = nil
	return s.shoppingRepository.UpdateItem(ctx, item)
}

// PromoteChecked turns every checked item on the list into an inventory row
// with the supplied expiry date, then clears those items off the list. Both
// sides happen in one transaction.
func (s *shoppingService) PromoteChecked(ctx context.Context, listID string, req domain.PromoteCheckedRequest, userID string) (int, error) {
	list, err := s.getOwnedList(ctx, listID, userID)
	if err != nil {
		return 0, err
	}

	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return 0, domain.ErrInvalidExpiryDate
	}

	var checked []*entities.ShoppingListItem
	for _, item := range list.Items {
		if item.Checked {
			checked = append(checked, item)
		}
	}
	if len(checked) == 0 {
		return 0, domain.ErrNoCheckedItems
	}

	err = s.shoppingRepository.WithTransaction(ctx, func(txRepo ShoppingRepository, tx *gorm.DB) error {
		inventoryRepo := inventory.NewInventoryRepository(tx)
		for _, item := range checked {
			inventoryItem := &entities.InventoryItem{
				ItemID:     uuid.New(),
				UserID:     list.UserID,
				ItemName:   item.ItemName,
				Quantity:   item.Quantity,
				Unit:       item.Unit,
				ExpiryDate: expiryDate,
			}
			if err := inventoryRepo.AddItem(ctx, inventoryItem); err != nil {
				return err
			}
		}
		return txRepo.DeleteCheckedItems(ctx, listID)
	})
	if err != nil {
		return 0, err
	}

	return len(checked), nil
}
