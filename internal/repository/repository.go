package repository

import (
	"context"
	"errors"

	"miniecom_backend/models"
)

// ErrNotFound is returned when no product matches the requested id.
var ErrNotFound = errors.New("product not found")

// ProductRepository is the data-access boundary for the catalog.
type ProductRepository interface {
	// Create persists a new product and fills in the assigned id and
	// timestamps.
	Create(ctx context.Context, p *models.Product) error
	// List returns the full catalog, newest first. No pagination: the
	// storefront filters the whole set in memory.
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id uint) (models.Product, error)
	// Update overwrites title, price, description and imageUrl of the row
	// matching p.ID.
	Update(ctx context.Context, p *models.Product) error
	// Delete removes the row and returns it, so callers can echo what was
	// deleted.
	Delete(ctx context.Context, id uint) (models.Product, error)
}
