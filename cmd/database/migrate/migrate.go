package migration

import (
	"Melt-App/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Printf("Error migrating user table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Printf("Error migrating recipe table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Collection{}, &entities.CollectionRecipe{}); err != nil {
		log.Printf("Error migrating collection tables: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MoodEntry{}); err != nil {
		log.Printf("Error migrating mood entry table: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
