package entities

import (
	"time"

	"github.com/google/uuid"
)

type Charity struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Address       string    `json:"address"`
	ContactNumber string    `json:"contact_number"`
	ImageURL      string    `json:"image_url,omitempty"`
	IsActive      bool      `json:"is_active"`

	Donations []*Donation `gorm:"foreignKey:CharityID"`
	Timestamp
}

type Donation struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	CharityID    uuid.UUID  `json:"charity_id"`
	DonationType string     `json:"donation_type"` // "money" or "food"
	Amount       float64    `json:"amount"`
	Status       string     `json:"status"` // "Pending", "Completed", "Cancelled"
	PaymentToken string     `json:"payment_token,omitempty"`
	PaymentURL   string     `json:"payment_url,omitempty"`
	ImageURL     string     `json:"image_url,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`

	User          *User           `gorm:"foreignKey:UserID"`
	Charity       *Charity        `gorm:"foreignKey:CharityID"`
	DonationItems []*DonationItem `gorm:"foreignKey:DonationID"`
	Timestamp
}

type DonationItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonationID uuid.UUID `json:"donation_id"`
	ItemID     uuid.UUID `json:"item_id"`
	ItemName   string    `json:"item_name"`
	Quantity   int       `json:"quantity"`
	Unit       string    `json:"unit"`

	Donation *Donation `gorm:"foreignKey:DonationID"`
	Timestamp
}

// SavingsTransaction is a per-user ledger of money saved and donated.
type SavingsTransaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"` // "Earn" or "Donate"
	Description string    `json:"description"`
	Balance     float64   `json:"balance"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
