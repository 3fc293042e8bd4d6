package entities

import (
	"github.com/google/uuid"
)

type ShoppingList struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`

	User  *User               `gorm:"foreignKey:UserID"`
	Items []*ShoppingListItem `gorm:"foreignKey:ShoppingListID"`
	Timestamp
}

type ShoppingListItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ShoppingListID uuid.UUID `json:"shopping_list_id"`
	ItemName       string    `json:"item_name"`
	Quantity       int       `json:"quantity"`
	Unit           string    `json:"unit"`
	Note           string    `json:"note,omitempty"`
	Checked        bool      `json:"checked"`

	ShoppingList *ShoppingList `gorm:"foreignKey:ShoppingListID"`
	Timestamp
}
