package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"miniecom_backend/models"
)

// ProductService talks to the product endpoints.
type ProductService struct {
	Client *Client
}

// UpdatePayload is the body of PATCH /api/products/:id. ImageBase64 is a
// data URI; leave it empty to keep the stored image.
type UpdatePayload struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageBase64 string  `json:"imageBase64,omitempty"`
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if _, err := s.Client.doJSON(ctx, http.MethodGet, "/api/products", nil, &products); err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id uint) (models.Product, error) {
	var product models.Product
	path := fmt.Sprintf("/api/products/%d", id)
	if _, err := s.Client.doJSON(ctx, http.MethodGet, path, nil, &product); err != nil {
		return models.Product{}, tagNotFound(err, id)
	}
	return product, nil
}

func (s *ProductService) Create(ctx context.Context, input models.ProductInput) (models.Product, error) {
	var product models.Product
	if _, err := s.Client.doJSON(ctx, http.MethodPost, "/api/products", input, &product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id uint, payload UpdatePayload) (models.Product, error) {
	var product models.Product
	path := fmt.Sprintf("/api/products/%d", id)
	if _, err := s.Client.doJSON(ctx, http.MethodPatch, path, payload, &product); err != nil {
		return models.Product{}, tagNotFound(err, id)
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id uint) (models.Product, error) {
	var product models.Product
	path := fmt.Sprintf("/api/products/%d", id)
	if _, err := s.Client.doJSON(ctx, http.MethodDelete, path, nil, &product); err != nil {
		return models.Product{}, tagNotFound(err, id)
	}
	return product, nil
}

// tagNotFound fills in the id on not-found errors so the caller's message
// can name the product.
func tagNotFound(err error, id uint) error {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		nf.ID = id
	}
	return err
}
