package entities

import (
	"time"

	"github.com/google/uuid"
)

// Column names follow the mobile client's schema and must stay as-is.
type InventoryItem struct {
	ItemID     uuid.UUID `gorm:"column:item_id;type:uuid;primary_key;default:uuid_generate_v4()" json:"item_id"`
	UserID     uuid.UUID `gorm:"column:user_id" json:"user_id"`
	ItemName   string    `gorm:"column:item_name" json:"item_name"`
	Quantity   int       `gorm:"column:quantity" json:"quantity"`
	Unit       string    `gorm:"column:unit" json:"unit"`
	ExpiryDate time.Time `gorm:"column:expiry_date" json:"expiry_date"`
	Cost       *float64  `gorm:"column:cost" json:"cost,omitempty"`
	ImageURL   string    `gorm:"column:image_url" json:"image_url,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

func (InventoryItem) TableName() string {
	return "inventory"
}
