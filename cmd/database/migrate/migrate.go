package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/sanchita-88/meal-planner/entities"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodInteraction{}); err != nil {
		log.Fatalf("Error migrating food interaction database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.TagScore{}); err != nil {
		log.Fatalf("Error migrating tag score database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
