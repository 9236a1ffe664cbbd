package config

import (
	"log"

	"gorm.io/gorm"

	"miniecom_backend/models"
)

func Migrate(db *gorm.DB) error {
	// Migrate the schema
	err := db.AutoMigrate(
		&models.Product{},
	)

	if err != nil {
		log.Printf("Failed to migrate database schema: %v", err)
		return err
	}

	log.Println("Database Migrations completed succesfully...")

	// Ensure a demo catalog exists even on normal migration
	SeedProducts(db)

	return err
}
