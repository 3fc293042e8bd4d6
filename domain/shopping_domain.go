package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateList   = "shopping list created successfully"
	MessageSuccessGetLists     = "shopping lists retrieved successfully"
	MessageSuccessDeleteList   = "shopping list deleted successfully"
	MessageSuccessAddListItem  = "shopping list item added successfully"
	MessageSuccessCheckItem    = "shopping list item updated successfully"
	MessageSuccessPromoteItems = "checked items moved to inventory"

	MessageFailedCreateList   = "failed to create shopping list"
	MessageFailedGetLists     = "failed to retrieve shopping lists"
	MessageFailedDeleteList   = "failed to delete shopping list"
	MessageFailedAddListItem  = "failed to add shopping list item"
	MessageFailedCheckItem    = "failed to update shopping list item"
	MessageFailedPromoteItems = "failed to move checked items to inventory"

	ErrShoppingListNotFound = errors.New("shopping list not found")
	ErrShoppingItemNotFound = errors.New("shopping list item not found")
	ErrUnauthorizedList     = errors.New("unauthorized access to shopping list")
	ErrNoCheckedItems       = errors.New("no checked items to promote")
)

type (
	CreateShoppingListRequest struct {
		Name string `json:"name" validate:"required"`
	}

	AddShoppingItemRequest struct {
		ItemName string `json:"item_name" validate:"required"`
		Quantity int    `json:"quantity" validate:"required,min=1"`
		Unit     string `json:"unit" validate:"required"`
		Note     string `json:"note"`
	}

	CheckShoppingItemRequest struct {
		Checked bool `json:"checked"`
	}

	// PromoteCheckedRequest moves every checked item on a list into inventory
	// with the given expiry date.
	PromoteCheckedRequest struct {
		ExpiryDate string `json:"expiry_date" validate:"required"`
	}

	ShoppingListItemResponse struct {
		ID       string `json:"id"`
		ItemName string `json:"item_name"`
		Quantity int    `json:"quantity"`
		Unit     string `json:"unit"`
		Note     string `json:"note,omitempty"`
		Checked  bool   `json:"checked"`
	}

	ShoppingListResponse struct {
		ID        string                     `json:"id"`
		Name      string                     `json:"name"`
		CreatedAt time.Time                  `json:"created_at"`
		Items     []ShoppingListItemResponse `json:"items"`
	}
)
