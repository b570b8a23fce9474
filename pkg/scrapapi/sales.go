package scrapapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/scrapyardhq/scrapdash/pkg/types"
	"github.com/scrapyardhq/scrapdash/pkg/validate"
)

// SaleService is the gateway for /sales/.
type SaleService struct {
	client *Client
}

func (s *SaleService) List(ctx context.Context) ([]types.Sale, error) {
	var sales []types.Sale
	if err := s.client.do(ctx, call{method: http.MethodGet, path: "/sales/", out: &sales}); err != nil {
		return nil, err
	}
	return sales, nil
}

// Marketplace lists open sales across organizations, the buyer-facing view.
func (s *SaleService) Marketplace(ctx context.Context) ([]types.Sale, error) {
	var sales []types.Sale
	if err := s.client.do(ctx, call{method: http.MethodGet, path: "/sales/marketplace/", out: &sales}); err != nil {
		return nil, err
	}
	return sales, nil
}

func (s *SaleService) Get(ctx context.Context, id int64) (*types.Sale, error) {
	var sale types.Sale
	if err := s.client.do(ctx, call{method: http.MethodGet, path: salePath(id), out: &sale}); err != nil {
		return nil, err
	}
	return &sale, nil
}

// Create lists a finalized box for bidding. The backend rejects boxes still
// in their working state.
func (s *SaleService) Create(ctx context.Context, req types.SaleCreateRequest) (*types.Sale, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	payload, err := marshalPayload(req)
	if err != nil {
		return nil, err
	}
	var sale types.Sale
	if err := s.client.do(ctx, call{method: http.MethodPost, path: "/sales/", payload: payload, out: &sale}); err != nil {
		return nil, err
	}
	return &sale, nil
}

func (s *SaleService) Update(ctx context.Context, id int64, req types.SaleUpdateRequest) (*types.Sale, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	payload, err := marshalPayload(req)
	if err != nil {
		return nil, err
	}
	var sale types.Sale
	if err := s.client.do(ctx, call{method: http.MethodPatch, path: salePath(id), payload: payload, out: &sale}); err != nil {
		return nil, err
	}
	return &sale, nil
}

func (s *SaleService) Delete(ctx context.Context, id int64) error {
	return s.client.do(ctx, call{method: http.MethodDelete, path: salePath(id)})
}

// Publish moves DRAFT -> OPEN. One-way.
func (s *SaleService) Publish(ctx context.Context, id int64) (*types.Sale, error) {
	return s.transition(ctx, id, "publish")
}

// Close moves OPEN -> CLOSED. One-way.
func (s *SaleService) Close(ctx context.Context, id int64) (*types.Sale, error) {
	return s.transition(ctx, id, "close")
}

func (s *SaleService) transition(ctx context.Context, id int64, action string) (*types.Sale, error) {
	var sale types.Sale
	path := fmt.Sprintf("%s%s/", salePath(id), action)
	if err := s.client.do(ctx, call{method: http.MethodPost, path: path, out: &sale}); err != nil {
		return nil, err
	}
	return &sale, nil
}

// Bids lists the bids placed against one sale, the seller-side view.
func (s *SaleService) Bids(ctx context.Context, id int64) ([]types.Bid, error) {
	var bids []types.Bid
	path := fmt.Sprintf("%sbids/", salePath(id))
	if err := s.client.do(ctx, call{method: http.MethodGet, path: path, out: &bids}); err != nil {
		return nil, err
	}
	return bids, nil
}

func salePath(id int64) string {
	return fmt.Sprintf("/sales/%d/", id)
}
