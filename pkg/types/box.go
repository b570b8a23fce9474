package types

import (
	"time"

	"github.com/scrapyardhq/scrapdash/pkg/enums"
)

// Box is an inventory container of scrap parts. box_number is unique within
// an organization; the backend enforces that and this client surfaces the
// collision error text unchanged.
type Box struct {
	ID             int64           `json:"id"`
	Org            int64           `json:"org"`
	BoxNumber      string          `json:"box_number"`
	Name           string          `json:"name"`
	Status         enums.BoxStatus `json:"status"`
	GrossWeightLbs *float64        `json:"gross_weight_lbs"`
	TareWeightLbs  *float64        `json:"tare_weight_lbs"`
	NetWeightLbs   *float64        `json:"net_weight_lbs,omitempty"`

	Photo1 *string `json:"photo1,omitempty"`
	Photo2 *string `json:"photo2,omitempty"`
	Photo3 *string `json:"photo3,omitempty"`
	Photo4 *string `json:"photo4,omitempty"`
	Photo5 *string `json:"photo5,omitempty"`
	Photo6 *string `json:"photo6,omitempty"`
	Photo7 *string `json:"photo7,omitempty"`
	Photo8 *string `json:"photo8,omitempty"`

	CreatedBy     int64     `json:"created_by"`
	CreatedByName string    `json:"created_by_name,omitempty"`
	PartsCount    *int      `json:"parts_count,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// IsFinalized reports whether parts may no longer be freely added or removed.
func (b Box) IsFinalized() bool {
	return b.Status.Normalize() == enums.BoxStatusFinalized
}

// BoxCreateRequest is the payload for POST /boxes/.
type BoxCreateRequest struct {
	BoxNumber      string   `json:"box_number" validate:"required"`
	Name           string   `json:"name" validate:"required"`
	GrossWeightLbs *float64 `json:"gross_weight_lbs,omitempty" validate:"omitempty,gte=0"`
	TareWeightLbs  *float64 `json:"tare_weight_lbs,omitempty" validate:"omitempty,gte=0"`
}

// BoxUpdateRequest is a partial patch; nil fields are left untouched.
type BoxUpdateRequest struct {
	BoxNumber      *string  `json:"box_number,omitempty"`
	Name           *string  `json:"name,omitempty"`
	GrossWeightLbs *float64 `json:"gross_weight_lbs,omitempty" validate:"omitempty,gte=0"`
	TareWeightLbs  *float64 `json:"tare_weight_lbs,omitempty" validate:"omitempty,gte=0"`
}
