package handlers

import (
	"errors"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"miniecom_backend/internal/imagestore"
)

// UploadHandler handles image uploads
type UploadHandler struct {
	Images imagestore.Store
}

func NewUploadHandler(images imagestore.Store) *UploadHandler {
	return &UploadHandler{Images: images}
}

// UploadImage - POST /api/upload-image
// Accepts a multipart "image" field and returns the stored public URL.
func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil || file.Size == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "An image file is required.",
		})
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = mime.TypeByExtension(strings.ToLower(filepath.Ext(file.Filename)))
	}

	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to upload image.",
		})
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to upload image.",
		})
	}

	imageURL, err := h.Images.Upload(c.Context(), data, contentType)
	if err != nil {
		if errors.Is(err, imagestore.ErrEmptyImage) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "An image file is required.",
			})
		}
		if errors.Is(err, imagestore.ErrUnsupportedType) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Only .jpg, .jpeg, .png and .webp files are allowed",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to upload image.",
		})
	}

	return c.JSON(fiber.Map{
		"message":  "Image uploaded successfully",
		"imageUrl": imageURL,
	})
}

// RemoveImage - DELETE /api/upload-image?url=...
// Compensating removal for a persist step that failed after upload.
func (h *UploadHandler) RemoveImage(c *fiber.Ctx) error {
	url := c.Query("url")
	if url == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Query parameter 'url' is required",
		})
	}

	if err := h.Images.Remove(c.Context(), url); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not remove image",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
