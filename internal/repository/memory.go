package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"miniecom_backend/models"
)

// Memory is an in-process ProductRepository. It backs handler tests and dev
// runs without a database.
type Memory struct {
	mu     sync.RWMutex
	nextID uint
	m      map[uint]models.Product
}

func NewMemory() *Memory {
	return &Memory{nextID: 1, m: make(map[uint]models.Product)}
}

func (r *Memory) Create(_ context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.m[p.ID] = *p
	return nil
}

func (r *Memory) List(_ context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]models.Product, 0, len(r.m))
	for _, p := range r.m {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool {
		if products[i].CreatedAt.Equal(products[j].CreatedAt) {
			return products[i].ID > products[j].ID
		}
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}

func (r *Memory) Get(_ context.Context, id uint) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.m[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return p, nil
}

func (r *Memory) Update(_ context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.m[p.ID]
	if !ok {
		return ErrNotFound
	}
	existing.Title = p.Title
	existing.Description = p.Description
	existing.Price = p.Price
	existing.ImageURL = p.ImageURL
	existing.UpdatedAt = time.Now()
	r.m[p.ID] = existing
	*p = existing
	return nil
}

func (r *Memory) Delete(_ context.Context, id uint) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.m[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	delete(r.m, id)
	return p, nil
}
