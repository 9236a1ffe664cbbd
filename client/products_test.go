package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"miniecom_backend/models"
)

func TestProductServiceList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products" || r.Method != http.MethodGet {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "Products fetched successfully",
			"data": []models.Product{
				{ID: 1, Title: "Shirt", Price: 999},
				{ID: 2, Title: "Jeans", Price: 2499},
			},
		})
	}))
	defer srv.Close()

	svc := &ProductService{Client: New(srv.URL)}
	products, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(products) != 2 || products[0].Title != "Shirt" {
		t.Fatalf("products: %+v", products)
	}
}

func TestProductServiceGetNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Product not found"})
	}))
	defer srv.Close()

	svc := &ProductService{Client: New(srv.URL)}
	_, err := svc.Get(context.Background(), 7)

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.ID != 7 {
		t.Fatalf("id: %d", nf.ID)
	}
}

func TestProductServiceCreateValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "Missing required fields",
			"errors": []models.ErrorDetail{
				{Code: "required", Field: "title", Message: "Title is required"},
			},
		})
	}))
	defer srv.Close()

	svc := &ProductService{Client: New(srv.URL)}
	_, err := svc.Create(context.Background(), models.ProductInput{})

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.FieldError("title") != "Title is required" {
		t.Fatalf("field error: %q", ve.FieldError("title"))
	}
}

func TestProductServiceServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "Internal Server Error"})
	}))
	defer srv.Close()

	svc := &ProductService{Client: New(srv.URL)}
	_, err := svc.Delete(context.Background(), 1)

	var se *ServerError
	if !errors.As(err, &se) {
		t.Fatalf("expected ServerError, got %v", err)
	}
	if se.Status != http.StatusInternalServerError {
		t.Fatalf("status: %d", se.Status)
	}
}

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "ok",
			"data":    models.Product{ID: 1},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.Token = "admin-token"
	svc := &ProductService{Client: c}
	if _, err := svc.Get(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "Bearer admin-token" {
		t.Fatalf("authorization header: %q", gotAuth)
	}
}
