package config

import (
	"log"

	"gorm.io/gorm"

	"miniecom_backend/models"
)

func SeedProducts(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		log.Printf("Failed to count products: %v", err)
		return
	}
	if count > 0 {
		return
	}

	log.Println("🌱 Seeding products...")

	products := []models.Product{
		{
			Title:       "Classic Cotton Shirt",
			Description: "Soft breathable cotton, regular fit.",
			Price:       999,
			ImageURL:    "http://localhost:3000/uploads/products/seed-shirt.jpg",
		},
		{
			Title:       "Slim Fit Jeans",
			Description: "Stretch denim with a slim cut.",
			Price:       2499,
			ImageURL:    "http://localhost:3000/uploads/products/seed-jeans.jpg",
		},
		{
			Title:       "Canvas Sneakers",
			Description: "Everyday low-top sneakers.",
			Price:       1799,
			ImageURL:    "http://localhost:3000/uploads/products/seed-sneakers.jpg",
		},
	}

	for _, product := range products {
		if err := db.Create(&product).Error; err != nil {
			log.Printf("Failed to seed product %s: %v", product.Title, err)
		} else {
			log.Printf("Product seeded: %s (ID: %d)", product.Title, product.ID)
		}
	}

	log.Println("✅ Seeding complete.")
}
