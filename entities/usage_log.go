package entities

import (
	"time"

	"github.com/google/uuid"
)

// UsageLog is append-only; rows are never updated after insert.
type UsageLog struct {
	LogID      uuid.UUID `gorm:"column:log_id;type:uuid;primary_key;default:uuid_generate_v4()" json:"log_id"`
	UserID     uuid.UUID `gorm:"column:user_id" json:"user_id"`
	ItemID     uuid.UUID `gorm:"column:item_id" json:"item_id"`
	ActionType string    `gorm:"column:action_type" json:"action_type"` // "cooked", "used", "wasted", "donated"
	Quantity   int       `gorm:"column:quantity" json:"quantity"`
	Unit       string    `gorm:"column:unit" json:"unit,omitempty"`
	Cost       *float64  `gorm:"column:cost" json:"cost,omitempty"`
	ActionDate time.Time `gorm:"column:action_date" json:"action_date"`
	Notes      string    `gorm:"column:notes;type:text" json:"notes,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
}

func (UsageLog) TableName() string {
	return "usage_logs"
}
