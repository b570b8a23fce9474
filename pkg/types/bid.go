package types

import (
	"time"

	"github.com/scrapyardhq/scrapdash/pkg/enums"
)

// Bid is a buyer's monetary offer against an open sale.
type Bid struct {
	ID            int64           `json:"id"`
	Sale          int64           `json:"sale"`
	Bidder        int64           `json:"bidder"`
	BidderName    string          `json:"bidder_name,omitempty"`
	BidderOrg     *int64          `json:"bidder_org,omitempty"`
	BidderOrgName string          `json:"bidder_org_name,omitempty"`
	AmountUSD     float64         `json:"amount_usd"`
	Status        enums.BidStatus `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// BidCreateRequest is the payload for POST /bids/.
type BidCreateRequest struct {
	Sale      int64   `json:"sale" validate:"required,gt=0"`
	AmountUSD float64 `json:"amount_usd" validate:"required,gt=0"`
}

// BidUpdateRequest adjusts a pending bid's amount.
type BidUpdateRequest struct {
	AmountUSD float64 `json:"amount_usd" validate:"required,gt=0"`
}
