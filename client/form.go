package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"miniecom_backend/models"
)

// SubmissionState tracks one form submission through the two-step flow.
type SubmissionState int

const (
	StateIdle SubmissionState = iota
	StateUploading
	StatePersisting
	StateSucceeded
	StateFailed
)

func (s SubmissionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateUploading:
		return "uploading"
	case StatePersisting:
		return "persisting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ImageFile is a selected image: its name decides the content type sent to
// the store.
type ImageFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// ProductForm drives the add/edit flows: validate locally, upload the image,
// then persist the row. Submissions are not coordinated with each other, so
// two concurrent Submit calls can create duplicate rows.
type ProductForm struct {
	Products *ProductService
	Images   *ImageService

	state SubmissionState
}

func NewProductForm(c *Client) *ProductForm {
	return &ProductForm{
		Products: &ProductService{Client: c},
		Images:   &ImageService{Client: c},
		state:    StateIdle,
	}
}

// State reports where the last submission got to.
func (f *ProductForm) State() SubmissionState { return f.state }

// Create validates the input, uploads the image, then creates the product.
// No network call happens when validation fails. When the persist step fails
// after a successful upload, the uploaded image is removed again best
// effort; if that also fails the returned PersistenceError says so.
func (f *ProductForm) Create(ctx context.Context, input models.ProductInput, image *ImageFile) (models.Product, error) {
	f.state = StateIdle

	errs := input.Validate(false)
	if image == nil || len(image.Data) == 0 {
		if errs == nil {
			errs = &models.ValidationErrors{}
		}
		errs.Add("required", "image", "An image file is required")
	}
	if errs != nil {
		f.state = StateFailed
		return models.Product{}, &ValidationError{Errors: errs.Errors}
	}

	f.state = StateUploading
	imageURL, err := f.Images.Upload(ctx, image.Name, bytes.NewReader(image.Data))
	if err != nil {
		f.state = StateFailed
		return models.Product{}, &UploadError{Err: err}
	}

	f.state = StatePersisting
	input.ImageURL = imageURL
	product, err := f.Products.Create(ctx, input)
	if err != nil {
		f.state = StateFailed
		compensated := f.Images.Remove(ctx, imageURL) == nil
		return models.Product{}, &PersistenceError{Err: err, Compensated: compensated}
	}

	f.state = StateSucceeded
	return product, nil
}

// Update overwrites title, price and description of an existing product.
// image may be nil, in which case the stored image URL is kept unchanged;
// otherwise the replacement travels inside the update call as a data URI and
// the server swaps the image.
func (f *ProductForm) Update(ctx context.Context, id uint, input models.ProductInput, image *ImageFile) (models.Product, error) {
	f.state = StateIdle

	if errs := input.Validate(false); errs != nil {
		f.state = StateFailed
		return models.Product{}, &ValidationError{Errors: errs.Errors}
	}

	payload := UpdatePayload{
		Title:       input.Title,
		Price:       input.Price,
		Description: input.Description,
	}
	if image != nil && len(image.Data) > 0 {
		payload.ImageBase64 = image.DataURI()
	}

	f.state = StatePersisting
	product, err := f.Products.Update(ctx, id, payload)
	if err != nil {
		f.state = StateFailed
		var nf *NotFoundError
		if errors.As(err, &nf) {
			return models.Product{}, err
		}
		return models.Product{}, &PersistenceError{Err: err}
	}

	f.state = StateSucceeded
	return product, nil
}

// DataURI encodes the file as "data:<mime>;base64,...".
func (img *ImageFile) DataURI() string {
	return fmt.Sprintf("data:%s;base64,%s", img.ContentType, base64.StdEncoding.EncodeToString(img.Data))
}
