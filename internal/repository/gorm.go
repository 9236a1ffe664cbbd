package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"miniecom_backend/models"
)

// Gorm is the production ProductRepository backed by the relational store.
type Gorm struct {
	DB *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{DB: db}
}

func (r *Gorm) Create(ctx context.Context, p *models.Product) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

func (r *Gorm) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.DB.WithContext(ctx).Order("created_at desc").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *Gorm) Get(ctx context.Context, id uint) (models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, ErrNotFound
		}
		return models.Product{}, err
	}
	return product, nil
}

func (r *Gorm) Update(ctx context.Context, p *models.Product) error {
	var existing models.Product
	if err := r.DB.WithContext(ctx).First(&existing, p.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	existing.Title = p.Title
	existing.Description = p.Description
	existing.Price = p.Price
	existing.ImageURL = p.ImageURL

	if err := r.DB.WithContext(ctx).Save(&existing).Error; err != nil {
		return err
	}
	*p = existing
	return nil
}

func (r *Gorm) Delete(ctx context.Context, id uint) (models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, ErrNotFound
		}
		return models.Product{}, err
	}
	if err := r.DB.WithContext(ctx).Delete(&product).Error; err != nil {
		return models.Product{}, err
	}
	return product, nil
}
