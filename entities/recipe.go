package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	RecipeID     uuid.UUID `gorm:"column:recipe_id;type:uuid;primary_key;default:uuid_generate_v4()" json:"recipe_id"`
	UserID       uuid.UUID `gorm:"column:user_id" json:"user_id"`
	Title        string    `gorm:"column:title" json:"title"`
	Description  string    `gorm:"column:description;type:text" json:"description"`
	Instructions string    `gorm:"column:instructions;type:text" json:"instructions"`

	User        *User               `gorm:"foreignKey:UserID"`
	Ingredients []*RecipeIngredient `gorm:"foreignKey:RecipeID"`
	Timestamp
}

func (Recipe) TableName() string {
	return "recipes"
}

type RecipeIngredient struct {
	IngredientID   uuid.UUID `gorm:"column:ingredient_id;type:uuid;primary_key;default:uuid_generate_v4()" json:"ingredient_id"`
	RecipeID       uuid.UUID `gorm:"column:recipe_id" json:"recipe_id"`
	ItemName       string    `gorm:"column:item_name" json:"item_name"`
	QuantityNeeded float64   `gorm:"column:quantity_needed" json:"quantity_needed"`
	Unit           string    `gorm:"column:unit" json:"unit"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}
