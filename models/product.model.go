package models

import (
	"strings"
	"time"
)

type Product struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"size:255;not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	ImageURL    string  `gorm:"not null" json:"imageUrl"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProductInput is the payload accepted by create and update. Every entry
// point validates it through the same Validate call.
type ProductInput struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
}

// Validate checks required fields and ranges. requireImage is true on create,
// where a product must never be persisted without a resolvable image URL;
// update may omit the image to keep the stored one.
func (in ProductInput) Validate(requireImage bool) *ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(in.Title) == "" {
		errs.Add("required", "title", "Title is required")
	}
	if in.Price <= 0 {
		errs.Add("range", "price", "Price must be greater than zero")
	}
	if strings.TrimSpace(in.Description) == "" {
		errs.Add("required", "description", "Description is required")
	}
	if requireImage && strings.TrimSpace(in.ImageURL) == "" {
		errs.Add("required", "imageUrl", "An image is required")
	}

	if len(errs.Errors) == 0 {
		return nil
	}
	return &errs
}
