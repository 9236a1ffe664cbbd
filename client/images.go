package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
)

// ImageService talks to the upload endpoints.
type ImageService struct {
	Client *Client
}

type uploadResponse struct {
	Message  string `json:"message"`
	ImageURL string `json:"imageUrl"`
}

// Upload sends the image as a multipart form and returns its durable public
// URL.
func (s *ImageService) Upload(ctx context.Context, filename string, image io.Reader) (string, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, image); err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Client.BaseURL+"/api/upload-image", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if s.Client.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Client.Token)
	}

	resp, err := s.Client.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil && resp.StatusCode < 300 {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode >= 300 {
		msg := out.Message
		if msg == "" {
			msg = "Failed to upload image."
		}
		return "", &ServerError{Status: resp.StatusCode, Message: msg}
	}
	return out.ImageURL, nil
}

// Remove deletes an uploaded image by URL. Best effort compensation for a
// failed persist step.
func (s *ImageService) Remove(ctx context.Context, imageURL string) error {
	path := "/api/upload-image?url=" + url.QueryEscape(imageURL)
	_, err := s.Client.doJSON(ctx, http.MethodDelete, path, nil, nil)
	return err
}
