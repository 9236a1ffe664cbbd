package repository

import (
	"context"
	"errors"
	"testing"

	"miniecom_backend/models"
)

func TestMemoryCRUD(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()

	p := models.Product{Title: "Shirt", Price: 999, Description: "Cotton", ImageURL: "https://cdn/x.jpg"}
	if err := repo.Create(ctx, &p); err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if p.CreatedAt.IsZero() {
		t.Fatal("expected assigned createdAt")
	}

	got, err := repo.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Shirt" || got.ImageURL != "https://cdn/x.jpg" {
		t.Fatalf("unexpected row: %+v", got)
	}

	upd := models.Product{ID: p.ID, Title: "Shirt v2", Price: 1099, Description: "Linen", ImageURL: got.ImageURL}
	if err := repo.Update(ctx, &upd); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ = repo.Get(ctx, p.ID)
	if got.Title != "Shirt v2" || got.Price != 1099 {
		t.Fatalf("update not applied: %+v", got)
	}
	// image untouched by a field-only update
	if got.ImageURL != "https://cdn/x.jpg" {
		t.Fatalf("imageUrl changed: %s", got.ImageURL)
	}

	deleted, err := repo.Delete(ctx, p.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.ID != p.ID {
		t.Fatalf("deleted wrong row: %+v", deleted)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, row := range list {
		if row.ID == p.ID {
			t.Fatal("deleted row still listed")
		}
	}
}

func TestMemoryNotFound(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()

	if _, err := repo.Get(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get: expected ErrNotFound, got %v", err)
	}
	if err := repo.Update(ctx, &models.Product{ID: 42}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update: expected ErrNotFound, got %v", err)
	}
	if _, err := repo.Delete(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete: expected ErrNotFound, got %v", err)
	}
}

func TestMemoryListNewestFirst(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		p := models.Product{Title: title, Price: 1, Description: "d", ImageURL: "u"}
		if err := repo.Create(ctx, &p); err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(list))
	}
	if list[0].Title != "third" || list[2].Title != "first" {
		t.Fatalf("not newest first: %v, %v, %v", list[0].Title, list[1].Title, list[2].Title)
	}
}
