package imagestore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiskUploadAndRemove(t *testing.T) {
	dir := t.TempDir()
	store := NewDisk(dir, "http://localhost:3000/uploads")
	ctx := context.Background()

	url, err := store.Upload(ctx, []byte("fake image bytes"), "image/jpeg")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if !strings.HasPrefix(url, "http://localhost:3000/uploads/products/") {
		t.Fatalf("unexpected url: %s", url)
	}
	if !strings.HasSuffix(url, ".jpg") {
		t.Fatalf("expected .jpg suffix, got %s", url)
	}

	name := strings.TrimPrefix(url, "http://localhost:3000/uploads/products/")
	data, err := os.ReadFile(filepath.Join(dir, "products", name))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(data) != "fake image bytes" {
		t.Fatalf("stored bytes mismatch")
	}

	if err := store.Remove(ctx, url); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "products", name)); !os.IsNotExist(err) {
		t.Fatalf("file still present after remove")
	}
}

func TestDiskUploadRejectsBadPayloads(t *testing.T) {
	store := NewDisk(t.TempDir(), "http://localhost:3000/uploads")
	ctx := context.Background()

	if _, err := store.Upload(ctx, nil, "image/png"); err != ErrEmptyImage {
		t.Fatalf("expected ErrEmptyImage, got %v", err)
	}
	if _, err := store.Upload(ctx, []byte("x"), "application/pdf"); err == nil {
		t.Fatal("expected unsupported type error")
	}
}

func TestDiskRemoveRejectsForeignURLs(t *testing.T) {
	store := NewDisk(t.TempDir(), "http://localhost:3000/uploads")
	if err := store.Remove(context.Background(), "https://elsewhere/img.jpg"); err == nil {
		t.Fatal("expected error for unmanaged url")
	}
	if err := store.Remove(context.Background(), "http://localhost:3000/uploads/products/../../etc"); err == nil {
		t.Fatal("expected error for traversal url")
	}
}

func TestDecodeDataURI(t *testing.T) {
	data, mime, err := DecodeDataURI("data:image/png;base64,aGVsbG8=")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if mime != "image/png" {
		t.Fatalf("mime: %s", mime)
	}
	if string(data) != "hello" {
		t.Fatalf("data: %q", data)
	}

	for _, bad := range []string{"", "hello", "data:image/png,hello", "data:image/png;base64,%%%"} {
		if _, _, err := DecodeDataURI(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
