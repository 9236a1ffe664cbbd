// Package imagestore stores product images and hands back durable public
// URLs for them.
package imagestore

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyImage is returned when the payload has no bytes.
	ErrEmptyImage = errors.New("image payload is empty")
	// ErrUnsupportedType is returned for content types outside the allowed
	// image formats.
	ErrUnsupportedType = errors.New("unsupported image type")
)

// Store uploads image payloads and can remove them again, which is the
// compensating half of the upload-then-persist flow.
type Store interface {
	// Upload writes the image and returns its public URL.
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
	// Remove deletes a previously uploaded image by its public URL.
	Remove(ctx context.Context, url string) error
}

// DecodeDataURI splits a "data:<mime>;base64,..." payload into raw bytes and
// content type. Update requests carry their replacement image this way.
func DecodeDataURI(s string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return nil, "", fmt.Errorf("not a data URI")
	}
	mime, b64, ok := strings.Cut(rest, ";base64,")
	if !ok {
		return nil, "", fmt.Errorf("data URI is not base64 encoded")
	}
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, "", fmt.Errorf("decode image data: %w", err)
	}
	return data, mime, nil
}
