package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newUploadApp(images *fakeImages) *fiber.App {
	app := fiber.New()
	h := NewUploadHandler(images)
	app.Post("/api/upload-image", h.UploadImage)
	app.Delete("/api/upload-image", h.RemoveImage)
	return app
}

func multipartImage(t *testing.T, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	if contentType != "" {
		hdr.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(hdr)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatal(err)
	}
	w.Close()
	return &body, w.FormDataContentType()
}

func TestUploadImage(t *testing.T) {
	images := &fakeImages{}
	app := newUploadApp(images)

	body, contentType := multipartImage(t, "photo.jpg", "image/jpeg", []byte("jpeg bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload-image", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("status %d: %s", resp.StatusCode, raw)
	}

	var out struct {
		Message  string `json:"message"`
		ImageURL string `json:"imageUrl"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.ImageURL != "https://cdn/img-1.jpg" {
		t.Fatalf("imageUrl: %s", out.ImageURL)
	}
}

func TestUploadImageMissingFile(t *testing.T) {
	app := newUploadApp(&fakeImages{})

	req := httptest.NewRequest(http.MethodPost, "/api/upload-image", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status %d", resp.StatusCode)
	}
}

func TestUploadImageStoreFailure(t *testing.T) {
	app := newUploadApp(&fakeImages{failUpload: true})

	body, contentType := multipartImage(t, "photo.png", "image/png", []byte("png bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload-image", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status %d", resp.StatusCode)
	}
}

func TestRemoveImage(t *testing.T) {
	images := &fakeImages{}
	app := newUploadApp(images)

	req := httptest.NewRequest(http.MethodDelete, "/api/upload-image?url=https%3A%2F%2Fcdn%2Fimg-1.jpg", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if len(images.removed) != 1 || images.removed[0] != "https://cdn/img-1.jpg" {
		t.Fatalf("removed: %v", images.removed)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/upload-image", nil)
	resp, _ = app.Test(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing url status %d", resp.StatusCode)
	}
}
