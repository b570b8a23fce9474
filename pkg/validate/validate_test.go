package validate

import (
	"testing"
	"time"

	pkgerrors "github.com/scrapyardhq/scrapdash/pkg/errors"
	"github.com/scrapyardhq/scrapdash/pkg/types"
)

func TestStructReportsFieldNamesFromJSONTags(t *testing.T) {
	err := Struct(types.BoxCreateRequest{})
	if err == nil {
		t.Fatal("expected validation failure")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected typed validation error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field details, got %T", typed.Details())
	}
	if _, present := details["box_number"]; !present {
		t.Fatalf("expected box_number in details, got %v", details)
	}
}

func TestStructAcceptsValidPayload(t *testing.T) {
	if err := Struct(types.BoxCreateRequest{BoxNumber: "BX-100", Name: "Mixed copper"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSaleWindowOrdering(t *testing.T) {
	opens := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	req := types.SaleCreateRequest{
		Box:      3,
		Title:    "Copper lot",
		SaleType: "SEALED_BID",
		OpensAt:  opens,
		ClosesAt: opens.Add(-time.Hour),
	}
	if err := Struct(req); err == nil {
		t.Fatal("closes_at before opens_at must fail")
	}

	req.ClosesAt = opens.Add(48 * time.Hour)
	if err := Struct(req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNegativeWeightRejected(t *testing.T) {
	err := Struct(types.PartCreateRequest{
		Box:          1,
		MaterialType: "COPPER",
		PartType:     "pipe",
		WeightLbs:    -4,
		Condition:    "CLEAN",
	})
	if err == nil {
		t.Fatal("negative weight must fail")
	}
}
