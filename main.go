package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"miniecom_backend/config"
	"miniecom_backend/handlers"
	"miniecom_backend/internal/imagestore"
	"miniecom_backend/internal/repository"
	"miniecom_backend/middleware"
)

func main() {
	cfg := config.LoadConfig()

	app := fiber.New(fiber.Config{
		AppName:      "MiniEcom Backend",
		ServerHeader: "MiniEcom Backend Server/1.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Default 500 statuscode
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"

			// Retrieve the custom statuscode if it's a *fiber.Error
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}

			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": msg,
			})
		},
	})

	middleware.SetupMiddleware(app, cfg)

	// Product rows live in the database when one is configured; the memory
	// repository keeps local development working without one.
	var repo repository.ProductRepository
	if cfg.DatabaseURL != "" {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
		if err != nil {
			log.Fatal("Failed to connect database: ", err)
		}
		if err := config.Migrate(db); err != nil {
			log.Fatal("Failed to migrate database: ", err)
		}
		repo = repository.NewGorm(db)
	} else {
		log.Println("DATABASE_URL not set, using in-memory product store")
		repo = repository.NewMemory()
	}

	images := imagestore.NewDisk(cfg.UploadDir, cfg.PublicBaseURL)

	productHandler := handlers.NewProductHandler(repo, images)
	uploadHandler := handlers.NewUploadHandler(images)

	// Health Check Endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "success",
			"message": "API is healthy",
		})
	})

	// Uploaded images are served statically under the same URLs the image
	// store hands out.
	app.Static("/uploads", cfg.UploadDir)

	api := app.Group("/api")
	adminOnly := middleware.AdminOnly(cfg)

	// Storefront surface
	api.Get("/products", productHandler.GetAllProducts)
	api.Get("/products/:id", productHandler.GetProduct)

	// Admin surface, gated by the identity provider's token
	api.Post("/products", adminOnly, productHandler.CreateProduct)
	api.Patch("/products/:id", adminOnly, productHandler.UpdateProduct)
	api.Delete("/products/:id", adminOnly, productHandler.DeleteProduct)
	api.Post("/upload-image", adminOnly, uploadHandler.UploadImage)
	api.Delete("/upload-image", adminOnly, uploadHandler.RemoveImage)

	middleware.SetupErrorHandler(app)

	log.Printf("🚀 Server starting on host %s in port %s mode", cfg.HOST, cfg.AppPort)

	if err := app.Listen(cfg.HOST + ":" + cfg.AppPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
