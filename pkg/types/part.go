package types

import (
	"time"

	"github.com/scrapyardhq/scrapdash/pkg/enums"
)

// Part is an individual component item; it always belongs to exactly one box.
type Part struct {
	ID           int64               `json:"id"`
	Box          int64               `json:"box"`
	MaterialType enums.MaterialType  `json:"material_type"`
	PartType     string              `json:"part_type"`
	WeightLbs    float64             `json:"weight_lbs"`
	Condition    enums.PartCondition `json:"condition"`
	Notes        string              `json:"notes,omitempty"`
	Photo        *string             `json:"photo,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// PartCreateRequest is the payload for POST /parts/. The owning box must be
// in its non-finalized state; the backend enforces that policy.
type PartCreateRequest struct {
	Box          int64               `json:"box" validate:"required,gt=0"`
	MaterialType enums.MaterialType  `json:"material_type" validate:"required"`
	PartType     string              `json:"part_type" validate:"required"`
	WeightLbs    float64             `json:"weight_lbs" validate:"gte=0"`
	Condition    enums.PartCondition `json:"condition" validate:"required"`
	Notes        string              `json:"notes,omitempty"`
}

// PartUpdateRequest is a partial patch; nil fields are left untouched.
type PartUpdateRequest struct {
	MaterialType *enums.MaterialType  `json:"material_type,omitempty"`
	PartType     *string              `json:"part_type,omitempty"`
	WeightLbs    *float64             `json:"weight_lbs,omitempty" validate:"omitempty,gte=0"`
	Condition    *enums.PartCondition `json:"condition,omitempty"`
	Notes        *string              `json:"notes,omitempty"`
}
