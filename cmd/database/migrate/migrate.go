package migration

import (
	"fmt"
	"log"

	"DTCL-Backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []interface{}{
		&entities.User{},
		&entities.Group{},
		&entities.Category{},
		&entities.Unit{},
		&entities.Food{},
		&entities.FridgeItem{},
		&entities.ShoppingList{},
		&entities.ShoppingTask{},
		&entities.MealPlan{},
		&entities.Recipe{},
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
