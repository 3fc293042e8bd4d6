package domain

import (
	"errors"
	"time"
)

const (
	StatusFresh    = "fresh"
	StatusExpiring = "expiring"
	StatusExpired  = "expired"

	// Items within this many days of expiry count as expiring.
	ExpiringThresholdDays = 3
)

var (
	MessageSuccessAddItem        = "inventory item added successfully"
	MessageSuccessUpdateItem     = "inventory item updated successfully"
	MessageSuccessDeleteItem     = "inventory item deleted successfully"
	MessageSuccessGetInventory   = "inventory retrieved successfully"
	MessageSuccessMarkItem       = "inventory item marked successfully"
	MessageSuccessUploadImage    = "item image uploaded successfully"
	MessageSuccessNotifyExpiring = "expiry alert sent successfully"

	MessageFailedAddItem        = "failed to add inventory item"
	MessageFailedUpdateItem     = "failed to update inventory item"
	MessageFailedDeleteItem     = "failed to delete inventory item"
	MessageFailedGetInventory   = "failed to retrieve inventory"
	MessageFailedMarkItem       = "failed to mark inventory item"
	MessageFailedUploadImage    = "failed to upload item image"
	MessageFailedNotifyExpiring = "failed to send expiry alert"

	ErrItemNotFound          = errors.New("inventory item not found")
	ErrInvalidExpiryDate     = errors.New("invalid expiry date")
	ErrInvalidQuantity       = errors.New("quantity must be positive")
	ErrUnauthorizedItem      = errors.New("unauthorized access to inventory item")
	ErrNothingExpiring       = errors.New("no items expiring soon")
	ErrInvalidMarkAction     = errors.New("mark action must be used or wasted")
)

type (
	AddInventoryItemRequest struct {
		ItemName   string   `json:"item_name" validate:"required"`
		Quantity   int      `json:"quantity" validate:"required,min=1"`
		Unit       string   `json:"unit" validate:"required"`
		ExpiryDate string   `json:"expiry_date" validate:"required"`
		Cost       *float64 `json:"cost" validate:"omitempty,min=0"`
	}

	UpdateInventoryItemRequest struct {
		ItemName   string   `json:"item_name" validate:"omitempty"`
		Quantity   int      `json:"quantity" validate:"omitempty,min=1"`
		Unit       string   `json:"unit" validate:"omitempty"`
		ExpiryDate string   `json:"expiry_date" validate:"omitempty"`
		Cost       *float64 `json:"cost" validate:"omitempty,min=0"`
	}

	MarkItemRequest struct {
		ItemID string `json:"item_id" validate:"required,uuid"`
		Action string `json:"action" validate:"required,oneof=used wasted"`
	}

	UploadItemImageRequest struct {
		ItemID string `json:"item_id" form:"item_id" validate:"required,uuid"`
	}

	InventoryItemResponse struct {
		ItemID      string    `json:"item_id"`
		ItemName    string    `json:"item_name"`
		Quantity    int       `json:"quantity"`
		Unit        string    `json:"unit"`
		ExpiryDate  time.Time `json:"expiry_date"`
		Cost        *float64  `json:"cost,omitempty"`
		ImageURL    string    `json:"image_url,omitempty"`
		DaysLeft    int       `json:"days_left"`
		Status      string    `json:"status"`
		StatusLabel string    `json:"status_label"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
