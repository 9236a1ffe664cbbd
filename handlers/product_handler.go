package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"miniecom_backend/internal/imagestore"
	"miniecom_backend/internal/repository"
	"miniecom_backend/models"
)

type ProductHandler struct {
	Repo   repository.ProductRepository
	Images imagestore.Store
}

func NewProductHandler(repo repository.ProductRepository, images imagestore.Store) *ProductHandler {
	return &ProductHandler{Repo: repo, Images: images}
}

// UpdateProductRequest carries the full overwrite plus an optional
// replacement image as a base64 data URI.
type UpdateProductRequest struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageBase64 string  `json:"imageBase64"`
}

// CreateProduct - POST /api/products
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req models.ProductInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	// A product row is never written without a resolvable image URL
	if errs := req.Validate(true); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing required fields",
			"errors":  errs.Errors,
		})
	}

	product := models.Product{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	}

	if err := h.Repo.Create(c.Context(), &product); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create product"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Product created successfully", "data": product})
}

// GetAllProducts - GET /api/products
func (h *ProductHandler) GetAllProducts(c *fiber.Ctx) error {
	products, err := h.Repo.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch products"})
	}

	return c.JSON(fiber.Map{"message": "Products fetched successfully", "data": products})
}

// GetProduct - GET /api/products/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	product, err := h.Repo.Get(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch product"})
	}

	return c.JSON(fiber.Map{"data": product})
}

// UpdateProduct - PATCH /api/products/:id
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	existing, err := h.Repo.Get(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch product"})
	}

	var req UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	input := models.ProductInput{
		Title:       req.Title,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    existing.ImageURL,
	}
	if errs := input.Validate(false); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing required fields",
			"errors":  errs.Errors,
		})
	}

	// No new image supplied: the stored URL is kept unchanged
	imageURL := existing.ImageURL
	uploaded := ""
	if req.ImageBase64 != "" {
		data, contentType, err := imagestore.DecodeDataURI(req.ImageBase64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid image data"})
		}
		url, err := h.Images.Upload(c.Context(), data, contentType)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not upload image"})
		}
		imageURL = url
		uploaded = url
	}

	product := models.Product{
		ID:          existing.ID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    imageURL,
	}

	if err := h.Repo.Update(c.Context(), &product); err != nil {
		// The row write failed after the image write succeeded: undo the
		// image write so no orphan is left behind.
		if uploaded != "" {
			_ = h.Images.Remove(c.Context(), uploaded)
		}
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update product"})
	}

	return c.JSON(fiber.Map{"message": "Product updated successfully", "data": product})
}

// DeleteProduct - DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	product, err := h.Repo.Delete(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete product"})
	}

	return c.JSON(fiber.Map{"message": "Product deleted successfully", "data": product})
}
