package imagestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// images live under a fixed logical folder, same as the hosted service the
// storefront originally wrote into
const folder = "products"

var extByType = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// Disk stores images on the local filesystem and serves them through the
// app's static /uploads route.
type Disk struct {
	// Root is the upload directory, e.g. "./uploads".
	Root string
	// BaseURL prefixes returned URLs, e.g. "http://localhost:3000/uploads".
	BaseURL string
}

func NewDisk(root, baseURL string) *Disk {
	return &Disk{Root: root, BaseURL: strings.TrimSuffix(baseURL, "/")}
}

func (d *Disk) Upload(_ context.Context, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyImage
	}
	ext, ok := extByType[strings.ToLower(contentType)]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	filename := uuid.NewString() + ext
	dir := filepath.Join(d.Root, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}

	return d.BaseURL + "/" + folder + "/" + filename, nil
}

func (d *Disk) Remove(_ context.Context, url string) error {
	name, ok := strings.CutPrefix(url, d.BaseURL+"/"+folder+"/")
	if !ok || name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("url %q is not managed by this store", url)
	}
	if err := os.Remove(filepath.Join(d.Root, folder, name)); err != nil {
		return fmt.Errorf("remove image: %w", err)
	}
	return nil
}
