package client

import (
	"fmt"
	"strings"

	"miniecom_backend/models"
)

// The API never retries and never kills the caller: every failure comes back
// as one of these error kinds so the UI can pick the right message.

// ValidationError reports missing or invalid fields, detected either locally
// before any network call or by the server.
type ValidationError struct {
	Errors []models.ErrorDetail
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(e.Errors))
	for _, d := range e.Errors {
		msgs = append(msgs, d.Field+": "+d.Message)
	}
	return "validation failed: " + strings.Join(msgs, ", ")
}

// FieldError returns the message for one field, or "" if the field is fine.
func (e *ValidationError) FieldError(field string) string {
	for _, d := range e.Errors {
		if d.Field == field {
			return d.Message
		}
	}
	return ""
}

// UploadError means the image store was unreachable or rejected the payload.
// The submission was aborted before any product row was written.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string { return "image upload failed: " + e.Err.Error() }
func (e *UploadError) Unwrap() error { return e.Err }

// PersistenceError means the product write failed after a successful image
// upload. Compensated reports whether the uploaded image was removed again;
// when false an orphaned image remains in the store.
type PersistenceError struct {
	Err         error
	Compensated bool
}

func (e *PersistenceError) Error() string { return "saving product failed: " + e.Err.Error() }
func (e *PersistenceError) Unwrap() error { return e.Err }

// NotFoundError reports a missing product id.
type NotFoundError struct {
	ID uint
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("product %d not found", e.ID) }

// ServerError covers any unclassified failure.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (status %d)", e.Status)
	}
	return e.Message
}
