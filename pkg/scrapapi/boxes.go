package scrapapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/scrapyardhq/scrapdash/pkg/enums"
	pkgerrors "github.com/scrapyardhq/scrapdash/pkg/errors"
	"github.com/scrapyardhq/scrapdash/pkg/types"
	"github.com/scrapyardhq/scrapdash/pkg/validate"
)

// BoxService is the gateway for /boxes/.
type BoxService struct {
	client *Client
}

func (s *BoxService) List(ctx context.Context) ([]types.Box, error) {
	var boxes []types.Box
	if err := s.client.do(ctx, call{method: http.MethodGet, path: "/boxes/", out: &boxes}); err != nil {
		return nil, err
	}
	return boxes, nil
}

func (s *BoxService) Get(ctx context.Context, id int64) (*types.Box, error) {
	var box types.Box
	if err := s.client.do(ctx, call{method: http.MethodGet, path: boxPath(id), out: &box}); err != nil {
		return nil, err
	}
	return &box, nil
}

func (s *BoxService) Create(ctx context.Context, req types.BoxCreateRequest) (*types.Box, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	payload, err := marshalPayload(req)
	if err != nil {
		return nil, err
	}
	var box types.Box
	if err := s.client.do(ctx, call{method: http.MethodPost, path: "/boxes/", payload: payload, out: &box}); err != nil {
		return nil, err
	}
	return &box, nil
}

// Update sends a partial patch; nil fields are left untouched server-side.
func (s *BoxService) Update(ctx context.Context, id int64, req types.BoxUpdateRequest) (*types.Box, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	payload, err := marshalPayload(req)
	if err != nil {
		return nil, err
	}
	var box types.Box
	if err := s.client.do(ctx, call{method: http.MethodPatch, path: boxPath(id), payload: payload, out: &box}); err != nil {
		return nil, err
	}
	return &box, nil
}

func (s *BoxService) Delete(ctx context.Context, id int64) error {
	return s.client.do(ctx, call{method: http.MethodDelete, path: boxPath(id)})
}

// Finalize seals the box for sale. One-way under normal operation; see
// Unfinalize for deployments that expose the reverse transition.
func (s *BoxService) Finalize(ctx context.Context, id int64) (*types.Box, error) {
	return s.transition(ctx, id, "finalize")
}

// Unfinalize reopens a finalized box. Not every deployment enables it; the
// backend answers 404 or 403 where it is off.
func (s *BoxService) Unfinalize(ctx context.Context, id int64) (*types.Box, error) {
	return s.transition(ctx, id, "unfinalize")
}

func (s *BoxService) transition(ctx context.Context, id int64, action string) (*types.Box, error) {
	var box types.Box
	path := fmt.Sprintf("%s%s/", boxPath(id), action)
	if err := s.client.do(ctx, call{method: http.MethodPost, path: path, out: &box}); err != nil {
		return nil, err
	}
	return &box, nil
}

// UploadPhoto attaches an image to one of the box's photo slots. The slot
// identifier doubles as the multipart field name. Size and content type are
// validated before any network I/O.
func (s *BoxService) UploadPhoto(ctx context.Context, id int64, slot enums.PhotoSlot, filename string, file io.Reader) (*types.Box, error) {
	if !slot.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown photo slot %q", slot))
	}
	payload, contentType, err := s.client.buildPhotoUpload(slot.String(), filename, file)
	if err != nil {
		return nil, err
	}
	var box types.Box
	if err := s.client.do(ctx, call{
		method:      http.MethodPatch,
		path:        boxPath(id),
		contentType: contentType,
		payload:     payload,
		out:         &box,
	}); err != nil {
		return nil, err
	}
	return &box, nil
}

func boxPath(id int64) string {
	return fmt.Sprintf("/boxes/%d/", id)
}
