package migration

import (
	"KeepEat-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.UserSetting{}); err != nil {
		log.Fatalf("Error migrating user setting database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodItem{}); err != nil {
		log.Fatalf("Error migrating food item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.SavedRecipe{}); err != nil {
		log.Fatalf("Error migrating saved recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CommunityPost{}); err != nil {
		log.Fatalf("Error migrating community post database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
