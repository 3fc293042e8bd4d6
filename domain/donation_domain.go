package domain

import (
	"errors"
	"time"
)

const (
	DonationTypeMoney = "money"
	DonationTypeFood  = "food"

	DonationStatusPending   = "Pending"
	DonationStatusCompleted = "Completed"
	DonationStatusCancelled = "Cancelled"
)

var (
	MessageSuccessGetCharities        = "charities retrieved successfully"
	MessageSuccessCreateDonation      = "donation created successfully"
	MessageSuccessGetDonations        = "donations retrieved successfully"
	MessageSuccessUploadDonationImage = "donation photo uploaded successfully"

	MessageFailedGetCharities        = "failed to retrieve charities"
	MessageFailedCreateDonation      = "failed to create donation"
	MessageFailedGetDonations        = "failed to retrieve donations"
	MessageFailedUploadDonationImage = "failed to upload donation photo"

	ErrCharityNotFound      = errors.New("charity not found")
	ErrDonationNotFound     = errors.New("donation not found")
	ErrUnauthorizedDonation = errors.New("donation does not belong to user")
	ErrInvalidDonationType  = errors.New("donation type must be money or food")
	ErrInvalidAmount        = errors.New("donation amount must be positive")
	ErrInsufficientSavings  = errors.New("insufficient savings balance")
	ErrNoItemsSelected      = errors.New("no inventory items selected")
)

type (
	CharityResponse struct {
		ID            string `json:"id"`
		Name          string `json:"name"`
		Description   string `json:"description"`
		Address       string `json:"address"`
		ContactNumber string `json:"contact_number"`
		ImageURL      string `json:"image_url,omitempty"`
	}

	CreateDonationRequest struct {
		CharityID    string   `json:"charity_id" validate:"required,uuid"`
		DonationType string   `json:"donation_type" validate:"required,oneof=money food"`
		Amount       float64  `json:"amount" validate:"omitempty,gt=0"`
		Email        string   `json:"email" validate:"omitempty,email"`
		ItemIDs      []string `json:"item_ids" validate:"omitempty,dive,uuid"`
	}

	UploadDonationImageRequest struct {
		DonationID string `json:"donation_id" form:"donation_id" validate:"required,uuid"`
	}

	DonationItemResponse struct {
		ItemName string `json:"item_name"`
		Quantity int    `json:"quantity"`
		Unit     string `json:"unit"`
	}

	DonationResponse struct {
		ID           string                 `json:"id"`
		CharityName  string                 `json:"charity_name"`
		DonationType string                 `json:"donation_type"`
		Amount       float64                `json:"amount,omitempty"`
		Status       string                 `json:"status"`
		PaymentURL   string                 `json:"payment_url,omitempty"`
		ImageURL     string                 `json:"image_url,omitempty"`
		Items        []DonationItemResponse `json:"items,omitempty"`
		CreatedAt    time.Time              `json:"created_at"`
	}
)
