// Package client is the storefront and dashboard SDK: product and image
// services over the HTTP API, the two-step submission flow, debounced
// search filtering and the shopping cart.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"miniecom_backend/models"
)

// Client issues requests against the API and maps responses onto the error
// kinds in this package.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	// Token is the identity provider's bearer token; required for the
	// admin surface.
	Token string
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: http.DefaultClient,
	}
}

type apiEnvelope struct {
	Message string               `json:"message"`
	Data    json.RawMessage      `json:"data"`
	Error   string               `json:"error"`
	Errors  []models.ErrorDetail `json:"errors"`
}

// doJSON sends a JSON request and decodes the {message, data} envelope. out
// may be nil when the caller only cares about success.
func (c *Client) doJSON(ctx context.Context, method, path string, body interface{}, out interface{}) (string, error) {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return "", err
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return "", err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out interface{}) (string, error) {
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return "", nil
	}

	var env apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil && resp.StatusCode < 300 {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode >= 300 {
		return "", c.errorFromResponse(resp.StatusCode, env)
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return "", fmt.Errorf("decode response data: %w", err)
		}
	}
	return env.Message, nil
}

func (c *Client) errorFromResponse(status int, env apiEnvelope) error {
	switch {
	case status == http.StatusBadRequest && len(env.Errors) > 0:
		return &ValidationError{Errors: env.Errors}
	case status == http.StatusNotFound:
		return &NotFoundError{}
	default:
		msg := env.Message
		if msg == "" {
			msg = env.Error
		}
		return &ServerError{Status: status, Message: msg}
	}
}
