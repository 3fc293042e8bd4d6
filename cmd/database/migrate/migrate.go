package migration

import (
	"fmt"
	"log"

	"EcoBite-Backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []interface{}{
		&entities.User{},
		&entities.InventoryItem{},
		&entities.UsageLog{},
		&entities.Recipe{},
		&entities.RecipeIngredient{},
		&entities.Conversation{},
		&entities.Message{},
		&entities.ShoppingList{},
		&entities.ShoppingListItem{},
		&entities.Charity{},
		&entities.Donation{},
		&entities.DonationItem{},
		&entities.SavingsTransaction{},
	}

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating %T: %v", model, err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
