package scrapapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/scrapyardhq/scrapdash/pkg/types"
	"github.com/scrapyardhq/scrapdash/pkg/validate"
)

// BidService is the gateway for /bids/.
type BidService struct {
	client *Client
}

func (s *BidService) List(ctx context.Context) ([]types.Bid, error) {
	var bids []types.Bid
	if err := s.client.do(ctx, call{method: http.MethodGet, path: "/bids/", out: &bids}); err != nil {
		return nil, err
	}
	return bids, nil
}

// Mine lists the authenticated buyer's own bids.
func (s *BidService) Mine(ctx context.Context) ([]types.Bid, error) {
	var bids []types.Bid
	if err := s.client.do(ctx, call{method: http.MethodGet, path: "/bids/my_bids/", out: &bids}); err != nil {
		return nil, err
	}
	return bids, nil
}

func (s *BidService) Get(ctx context.Context, id int64) (*types.Bid, error) {
	var bid types.Bid
	if err := s.client.do(ctx, call{method: http.MethodGet, path: bidPath(id), out: &bid}); err != nil {
		return nil, err
	}
	return &bid, nil
}

// Place submits an offer against an open sale. Bids start PENDING.
func (s *BidService) Place(ctx context.Context, req types.BidCreateRequest) (*types.Bid, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	payload, err := marshalPayload(req)
	if err != nil {
		return nil, err
	}
	var bid types.Bid
	if err := s.client.do(ctx, call{method: http.MethodPost, path: "/bids/", payload: payload, out: &bid}); err != nil {
		return nil, err
	}
	return &bid, nil
}

// Update adjusts a pending bid's amount.
func (s *BidService) Update(ctx context.Context, id int64, req types.BidUpdateRequest) (*types.Bid, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	payload, err := marshalPayload(req)
	if err != nil {
		return nil, err
	}
	var bid types.Bid
	if err := s.client.do(ctx, call{method: http.MethodPatch, path: bidPath(id), payload: payload, out: &bid}); err != nil {
		return nil, err
	}
	return &bid, nil
}

// Accept moves the bid to its ACCEPTED terminal state. Seller-side only;
// the backend rejects bidders attempting to decide their own bids.
func (s *BidService) Accept(ctx context.Context, id int64) (*types.Bid, error) {
	return s.transition(ctx, id, "accept")
}

// Reject moves the bid to its REJECTED terminal state. Seller-side only.
func (s *BidService) Reject(ctx context.Context, id int64) (*types.Bid, error) {
	return s.transition(ctx, id, "reject")
}

func (s *BidService) transition(ctx context.Context, id int64, action string) (*types.Bid, error) {
	var bid types.Bid
	path := fmt.Sprintf("%s%s/", bidPath(id), action)
	if err := s.client.do(ctx, call{method: http.MethodPost, path: path, out: &bid}); err != nil {
		return nil, err
	}
	return &bid, nil
}

func bidPath(id int64) string {
	return fmt.Sprintf("/bids/%d/", id)
}
