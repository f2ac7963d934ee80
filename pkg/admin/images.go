package admin

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"strconv"
	"time"

	"github.com/panelkit/panelkit/pkg/apiclient"
)

// Image is the image entity as served by the admin API. Every image carries
// a unique share code and an expiry deadline.
type Image struct {
	ID            int64     `json:"id"`
	ImageCode     string    `json:"image_code"`
	FileName      string    `json:"file_name"`
	FilePath      string    `json:"file_path"`
	FileSize      int64     `json:"file_size"`
	FileType      string    `json:"file_type"`
	UploadTime    time.Time `json:"upload_time"`
	ExpireTime    time.Time `json:"expire_time"`
	Status        string    `json:"status"`
	RemainingTime int64     `json:"remaining_time"`
	IsExpired     bool      `json:"is_expired"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ImagePage is one page of the image listing.
type ImagePage struct {
	Total int     `json:"total"`
	Items []Image `json:"items"`
}

// UploadImageRequest describes an image upload. Expiry is expressed as a
// value plus a unit ("minutes", "hours" or "days"), matching the server's
// multipart form contract.
type UploadImageRequest struct {
	FileName    string
	Body        io.Reader
	ExpireValue int
	ExpireUnit  string
}

// ImageService exposes the /images endpoints.
type ImageService struct {
	api *apiclient.Client
}

// NewImageService creates an image service over the given client.
func NewImageService(api *apiclient.Client) *ImageService {
	return &ImageService{api: api}
}

// List returns one page of images. Page numbering starts at 1; zero values
// fall back to the server defaults.
func (s *ImageService) List(ctx context.Context, page, pageSize int) (*ImagePage, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		query.Set("page_size", strconv.Itoa(pageSize))
	}

	path := "/images"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var result ImagePage
	if err := s.api.Get(ctx, path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get returns a single image by id.
func (s *ImageService) Get(ctx context.Context, id int64) (*Image, error) {
	var image Image
	if err := s.api.Get(ctx, fmt.Sprintf("/images/%d", id), &image); err != nil {
		return nil, err
	}
	return &image, nil
}

// GetByCode returns a single image by its share code.
func (s *ImageService) GetByCode(ctx context.Context, code string) (*Image, error) {
	var image Image
	if err := s.api.Get(ctx, "/images/code/"+url.PathEscape(code), &image); err != nil {
		return nil, err
	}
	return &image, nil
}

// Upload sends an image as a multipart form. The form carries the file under
// the "image" field plus the expiry fields. The Content-Type header is owned
// by the multipart writer, not the JSON default.
func (s *ImageService) Upload(ctx context.Context, req UploadImageRequest) (*Image, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	part, err := form.CreateFormFile("image", req.FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart form: %w", err)
	}
	if _, err := io.Copy(part, req.Body); err != nil {
		return nil, fmt.Errorf("failed to read image body: %w", err)
	}

	if req.ExpireValue > 0 {
		if err := form.WriteField("expire_value", strconv.Itoa(req.ExpireValue)); err != nil {
			return nil, fmt.Errorf("failed to build multipart form: %w", err)
		}
	}
	if req.ExpireUnit != "" {
		if err := form.WriteField("expire_unit", req.ExpireUnit); err != nil {
			return nil, fmt.Errorf("failed to build multipart form: %w", err)
		}
	}

	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart form: %w", err)
	}

	var image Image
	if err := s.api.Upload(ctx, "/images/upload", form.FormDataContentType(), &buf, &image); err != nil {
		return nil, err
	}
	return &image, nil
}

// Delete removes an image by id.
func (s *ImageService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/images/%d", id), nil)
}
