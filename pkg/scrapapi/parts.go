package scrapapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/scrapyardhq/scrapdash/pkg/types"
	"github.com/scrapyardhq/scrapdash/pkg/validate"
)

// PartService is the gateway for /parts/.
type PartService struct {
	client *Client
}

func (s *PartService) List(ctx context.Context) ([]types.Part, error) {
	var parts []types.Part
	if err := s.client.do(ctx, call{method: http.MethodGet, path: "/parts/", out: &parts}); err != nil {
		return nil, err
	}
	return parts, nil
}

// ListByBox returns the parts contained in one box.
func (s *PartService) ListByBox(ctx context.Context, boxID int64) ([]types.Part, error) {
	query := url.Values{"box": []string{strconv.FormatInt(boxID, 10)}}
	var parts []types.Part
	if err := s.client.do(ctx, call{method: http.MethodGet, path: "/parts/", query: query, out: &parts}); err != nil {
		return nil, err
	}
	return parts, nil
}

func (s *PartService) Get(ctx context.Context, id int64) (*types.Part, error) {
	var part types.Part
	if err := s.client.do(ctx, call{method: http.MethodGet, path: partPath(id), out: &part}); err != nil {
		return nil, err
	}
	return &part, nil
}

func (s *PartService) Create(ctx context.Context, req types.PartCreateRequest) (*types.Part, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	payload, err := marshalPayload(req)
	if err != nil {
		return nil, err
	}
	var part types.Part
	if err := s.client.do(ctx, call{method: http.MethodPost, path: "/parts/", payload: payload, out: &part}); err != nil {
		return nil, err
	}
	return &part, nil
}

func (s *PartService) Update(ctx context.Context, id int64, req types.PartUpdateRequest) (*types.Part, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	payload, err := marshalPayload(req)
	if err != nil {
		return nil, err
	}
	var part types.Part
	if err := s.client.do(ctx, call{method: http.MethodPatch, path: partPath(id), payload: payload, out: &part}); err != nil {
		return nil, err
	}
	return &part, nil
}

func (s *PartService) Delete(ctx context.Context, id int64) error {
	return s.client.do(ctx, call{method: http.MethodDelete, path: partPath(id)})
}

// UploadPhoto attaches the part's single photo, under the same multipart
// contract as box photos.
func (s *PartService) UploadPhoto(ctx context.Context, id int64, filename string, file io.Reader) (*types.Part, error) {
	payload, contentType, err := s.client.buildPhotoUpload("photo", filename, file)
	if err != nil {
		return nil, err
	}
	var part types.Part
	if err := s.client.do(ctx, call{
		method:      http.MethodPatch,
		path:        partPath(id),
		contentType: contentType,
		payload:     payload,
		out:         &part,
	}); err != nil {
		return nil, err
	}
	return &part, nil
}

func partPath(id int64) string {
	return fmt.Sprintf("/parts/%d/", id)
}
