package types

import (
	"time"

	"github.com/scrapyardhq/scrapdash/pkg/enums"
)

// Sale lists one finalized box for bidding.
type Sale struct {
	ID          int64            `json:"id"`
	Org         int64            `json:"org"`
	OrgName     string           `json:"org_name,omitempty"`
	Box         int64            `json:"box"`
	BoxDetails  *Box             `json:"box_details,omitempty"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	SaleType    enums.SaleType   `json:"sale_type"`
	Status      enums.SaleStatus `json:"status"`

	ReservePriceUSD   *float64 `json:"reserve_price_usd"`
	StartingBidUSD    *float64 `json:"starting_bid_usd,omitempty"`
	CurrentHighBidUSD *float64 `json:"current_high_bid_usd,omitempty"`
	BidCount          *int     `json:"bid_count,omitempty"`

	OpensAt   time.Time `json:"opens_at"`
	ClosesAt  time.Time `json:"closes_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SaleCreateRequest is the payload for POST /sales/. Sales start in DRAFT.
type SaleCreateRequest struct {
	Box             int64          `json:"box" validate:"required,gt=0"`
	Title           string         `json:"title" validate:"required"`
	Description     string         `json:"description,omitempty"`
	SaleType        enums.SaleType `json:"sale_type" validate:"required"`
	ReservePriceUSD *float64       `json:"reserve_price_usd,omitempty" validate:"omitempty,gte=0"`
	StartingBidUSD  *float64       `json:"starting_bid_usd,omitempty" validate:"omitempty,gte=0"`
	OpensAt         time.Time      `json:"opens_at" validate:"required"`
	ClosesAt        time.Time      `json:"closes_at" validate:"required,gtfield=OpensAt"`
}

// SaleUpdateRequest is a partial patch; nil fields are left untouched.
type SaleUpdateRequest struct {
	Title           *string    `json:"title,omitempty"`
	Description     *string    `json:"description,omitempty"`
	ReservePriceUSD *float64   `json:"reserve_price_usd,omitempty" validate:"omitempty,gte=0"`
	StartingBidUSD  *float64   `json:"starting_bid_usd,omitempty" validate:"omitempty,gte=0"`
	OpensAt         *time.Time `json:"opens_at,omitempty"`
	ClosesAt        *time.Time `json:"closes_at,omitempty"`
}
